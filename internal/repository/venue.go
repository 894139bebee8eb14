package repository

import (
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/models"
)

type VenueRepo struct {
	db *gorm.DB
}

func NewVenueRepo(db *gorm.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

func (r *VenueRepo) Create(venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(venue).Error
	})
}

func (r *VenueRepo) GetByID(id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.First(&venue, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &venue, nil
}

func (r *VenueRepo) All() ([]models.Venue, error) {
	var venues []models.Venue
	if err := r.db.Order("id asc").Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// Update replaces the stored row for id with venue's fields.
func (r *VenueRepo) Update(id uint, venue *models.Venue) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Venue
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err)
		}
		venue.ID = id
		venue.CreatedAt = existing.CreatedAt
		return tx.Save(venue).Error
	})
}

// Delete removes the venue and, in the same transaction, every show
// scheduled at it.
func (r *VenueRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var venue models.Venue
		if err := tx.First(&venue, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&venue).Error
	})
}

// SearchByName matches the term as a case-insensitive substring of the
// venue name, ordered by id.
func (r *VenueRepo) SearchByName(term string) ([]models.Venue, error) {
	var venues []models.Venue
	err := r.db.
		Where("lower(name) LIKE ?", "%"+lowered(term)+"%").
		Order("id asc").
		Find(&venues).Error
	if err != nil {
		return nil, err
	}
	return venues, nil
}
