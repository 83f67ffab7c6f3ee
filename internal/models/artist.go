package models

type Artist struct {
	ID                 uint    `gorm:"primaryKey" json:"id"`
	Name               string  `json:"name"`
	City               string  `gorm:"size:120" json:"city"`
	State              string  `gorm:"size:120" json:"state"`
	Phone              string  `gorm:"size:120" json:"phone"`
	ImageLink          string  `gorm:"size:500" json:"image_link"`
	FacebookLink       string  `gorm:"size:120" json:"facebook_link"`
	Website            string  `gorm:"size:120" json:"website"`
	SeekingVenue       bool    `json:"seeking_venue"`
	SeekingDescription string  `gorm:"size:250" json:"seeking_description"`
	Genres             []Genre `gorm:"many2many:artist_genres;" json:"genres"`
	Shows              []Show  `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
}

func (Artist) TableName() string {
	return "Artist"
}
