package models

type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:120;not null;uniqueIndex" json:"name"`
}

func (Genre) TableName() string {
	return "genres"
}

// GenreNames returns the names of genres in their stored order.
func GenreNames(genres []Genre) []string {
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return names
}
