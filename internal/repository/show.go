package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/models"
)

type ShowRepo struct {
	db *gorm.DB
}

func NewShowRepo(db *gorm.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// ShowDetail is a show row joined with the display fields of both
// endpoints.
type ShowDetail struct {
	VenueID         uint      `json:"venue_id"`
	ArtistID        uint      `json:"artist_id"`
	StartTime       time.Time `json:"start_time"`
	VenueName       string    `json:"venue_name"`
	VenueImageLink  string    `json:"venue_image_link"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
}

const showDetailSelect = `shows.venue_id, shows.artist_id, shows.start_time,
	venues.name AS venue_name, venues.image_link AS venue_image_link,
	artists.name AS artist_name, artists.image_link AS artist_image_link`

func (r *ShowRepo) Create(show *models.Show) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(show).Error
	})
}

// Get looks up a show by its composite key.
func (r *ShowRepo) Get(venueID, artistID uint, startTime time.Time) (*models.Show, error) {
	var show models.Show
	err := r.db.
		Where("venue_id = ? AND artist_id = ? AND start_time = ?", venueID, artistID, startTime).
		First(&show).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &show, nil
}

func (r *ShowRepo) All() ([]ShowDetail, error) {
	var details []ShowDetail
	err := r.db.Table("shows").
		Select(showDetailSelect).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Order("shows.start_time asc").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ShowRepo) ForVenue(venueID uint) ([]ShowDetail, error) {
	var details []ShowDetail
	err := r.db.Table("shows").
		Select(showDetailSelect).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.venue_id = ?", venueID).
		Order("shows.start_time asc").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ShowRepo) ForArtist(artistID uint) ([]ShowDetail, error) {
	var details []ShowDetail
	err := r.db.Table("shows").
		Select(showDetailSelect).
		Joins("JOIN venues ON venues.id = shows.venue_id").
		Joins("JOIN artists ON artists.id = shows.artist_id").
		Where("shows.artist_id = ?", artistID).
		Order("shows.start_time asc").
		Scan(&details).Error
	if err != nil {
		return nil, err
	}
	return details, nil
}

func (r *ShowRepo) UpcomingCountForVenue(venueID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Show{}).
		Where("venue_id = ? AND start_time > ?", venueID, time.Now().UTC()).
		Count(&count).Error
	return count, err
}

func (r *ShowRepo) UpcomingCountForArtist(artistID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Show{}).
		Where("artist_id = ? AND start_time > ?", artistID, time.Now().UTC()).
		Count(&count).Error
	return count, err
}
