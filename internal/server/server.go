package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/farellandr/fyyur/config"
	"github.com/farellandr/fyyur/internal/handlers"
	"github.com/farellandr/fyyur/internal/middleware"
	"github.com/farellandr/fyyur/internal/repository"
	"github.com/farellandr/fyyur/pkg/rabbitmq"
	"github.com/gin-gonic/gin"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// Left as a nil interface unless a broker is reachable.
	var events handlers.EventPublisher
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("[RabbitMQ] publishing disabled: %v", err)
		} else {
			defer publisher.Close()
			events = publisher
		}
	}

	r := gin.Default()

	setupRoutes(r, repository.New(db), events)

	log.Printf("Fyyur starting on :%s", cfg.Port)
	return r.Run(":" + cfg.Port)
}

func setupRoutes(r *gin.Engine, repos *repository.Repositories, events handlers.EventPublisher) {
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handlers.NewVenueHandler(repos.Venues, events).RegisterRoutes(r.Group("/venues"))
	handlers.NewArtistHandler(repos.Artists, events).RegisterRoutes(r.Group("/artists"))
	handlers.NewShowHandler(repos.Shows, events).RegisterRoutes(r.Group("/shows"))
	handlers.NewGenreHandler(repos.Genres).RegisterRoutes(r.Group("/genres"))
}
