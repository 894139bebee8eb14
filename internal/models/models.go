package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Venue struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Address            string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	FacebookLink       string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	Genres             string `gorm:"size:500"`
	SeekingTalent      bool
	SeekingDescription string `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type Artist struct {
	ID                 uint   `gorm:"primaryKey"`
	Name               string `gorm:"not null"`
	City               string `gorm:"size:120"`
	State              string `gorm:"size:120"`
	Phone              string `gorm:"size:120"`
	Website            string `gorm:"size:120"`
	FacebookLink       string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	Genres             string `gorm:"size:500"`
	SeekingTalent      bool
	SeekingDescription string `gorm:"size:500"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Show is the join between a venue and an artist for one scheduled
// appearance. Past/upcoming is derived from StartTime at read time,
// never stored.
type Show struct {
	VenueID   uint      `gorm:"primaryKey;not null"`
	ArtistID  uint      `gorm:"primaryKey;not null"`
	StartTime time.Time `gorm:"primaryKey;not null"`

	Venue  Venue  `gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
	Artist Artist `gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"not null"`
	Answer     string `json:"answer" gorm:"not null"`
	CategoryID uint   `json:"category" gorm:"column:category;not null"`
	Difficulty int    `json:"difficulty" gorm:"not null"`
}

// Category is seeded out of band and read-only from the application.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"not null"`
}

const genreSeparator = ","

// JoinGenres flattens a genre list into the delimited string the
// venue/artist rows store.
func JoinGenres(genres []string) string {
	return strings.Join(genres, genreSeparator)
}

// SplitGenres parses the stored delimited string back into a list.
func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, genreSeparator)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Venue{},
		&Artist{},
		&Show{},
		&Category{},
		&Question{},
	)
}
