package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/farellandr/fyyur/internal/dto"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// --- Mock repositories ---

type mockVenueRepo struct {
	listFn     func(ctx context.Context) ([]dto.Area, error)
	searchFn   func(ctx context.Context, term string) (dto.VenueSearchResult, error)
	findByIDFn func(ctx context.Context, id uint) (*models.Venue, error)
	detailFn   func(ctx context.Context, id uint) (*dto.VenueDetail, error)
	createFn   func(ctx context.Context, fields dto.VenueFields, genres []string) (*models.Venue, error)
	updateFn   func(ctx context.Context, id uint, fields dto.VenueFields, genres []string) (*models.Venue, error)
	deleteFn   func(ctx context.Context, id uint) (dto.DeleteResult, error)
}

func (m *mockVenueRepo) ListGroupedByArea(ctx context.Context) ([]dto.Area, error) {
	return m.listFn(ctx)
}
func (m *mockVenueRepo) Search(ctx context.Context, term string) (dto.VenueSearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockVenueRepo) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockVenueRepo) Detail(ctx context.Context, id uint) (*dto.VenueDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockVenueRepo) Create(ctx context.Context, fields dto.VenueFields, genres []string) (*models.Venue, error) {
	return m.createFn(ctx, fields, genres)
}
func (m *mockVenueRepo) Update(ctx context.Context, id uint, fields dto.VenueFields, genres []string) (*models.Venue, error) {
	return m.updateFn(ctx, id, fields, genres)
}
func (m *mockVenueRepo) Delete(ctx context.Context, id uint) (dto.DeleteResult, error) {
	return m.deleteFn(ctx, id)
}

type mockArtistRepo struct {
	findAllFn  func(ctx context.Context) ([]dto.ArtistSummary, error)
	searchFn   func(ctx context.Context, term string) (dto.ArtistSearchResult, error)
	findByIDFn func(ctx context.Context, id uint) (*models.Artist, error)
	detailFn   func(ctx context.Context, id uint) (*dto.ArtistDetail, error)
	createFn   func(ctx context.Context, fields dto.ArtistFields, genres []string) (*models.Artist, error)
	updateFn   func(ctx context.Context, id uint, fields dto.ArtistFields, genres []string) (*models.Artist, error)
	deleteFn   func(ctx context.Context, id uint) (dto.DeleteResult, error)
}

func (m *mockArtistRepo) FindAll(ctx context.Context) ([]dto.ArtistSummary, error) {
	return m.findAllFn(ctx)
}
func (m *mockArtistRepo) Search(ctx context.Context, term string) (dto.ArtistSearchResult, error) {
	return m.searchFn(ctx, term)
}
func (m *mockArtistRepo) FindByID(ctx context.Context, id uint) (*models.Artist, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockArtistRepo) Detail(ctx context.Context, id uint) (*dto.ArtistDetail, error) {
	return m.detailFn(ctx, id)
}
func (m *mockArtistRepo) Create(ctx context.Context, fields dto.ArtistFields, genres []string) (*models.Artist, error) {
	return m.createFn(ctx, fields, genres)
}
func (m *mockArtistRepo) Update(ctx context.Context, id uint, fields dto.ArtistFields, genres []string) (*models.Artist, error) {
	return m.updateFn(ctx, id, fields, genres)
}
func (m *mockArtistRepo) Delete(ctx context.Context, id uint) (dto.DeleteResult, error) {
	return m.deleteFn(ctx, id)
}

type mockShowRepo struct {
	createFn  func(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error)
	findAllFn func(ctx context.Context) ([]dto.ShowListing, error)
}

func (m *mockShowRepo) Create(ctx context.Context, venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	return m.createFn(ctx, venueID, artistID, startTime)
}
func (m *mockShowRepo) FindAll(ctx context.Context) ([]dto.ShowListing, error) {
	return m.findAllFn(ctx)
}

type mockGenreRepo struct {
	resolveFn func(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error)
	findAllFn func(ctx context.Context) ([]models.Genre, error)
}

func (m *mockGenreRepo) Resolve(ctx context.Context, tx *gorm.DB, names []string) ([]models.Genre, error) {
	return m.resolveFn(ctx, tx, names)
}
func (m *mockGenreRepo) FindAll(ctx context.Context) ([]models.Genre, error) {
	return m.findAllFn(ctx)
}

// --- Mock publisher ---

type published struct {
	key     string
	payload any
}

type mockPublisher struct {
	err  error
	sent []published
}

func (m *mockPublisher) Publish(routingKey string, payload any) error {
	m.sent = append(m.sent, published{key: routingKey, payload: payload})
	return m.err
}

// --- Request helpers ---

var errBrokenPipe = errors.New("broken pipe")

func newEngine(register func(g *gin.RouterGroup), prefix string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r.Group(prefix))
	return r
}

func serve(r *gin.Engine, method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
