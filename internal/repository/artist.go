package repository

import (
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/models"
)

type ArtistRepo struct {
	db *gorm.DB
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func (r *ArtistRepo) Create(artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(artist).Error
	})
}

func (r *ArtistRepo) GetByID(id uint) (*models.Artist, error) {
	var artist models.Artist
	if err := r.db.First(&artist, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &artist, nil
}

func (r *ArtistRepo) All() ([]models.Artist, error) {
	var artists []models.Artist
	if err := r.db.Order("id asc").Find(&artists).Error; err != nil {
		return nil, err
	}
	return artists, nil
}

func (r *ArtistRepo) Update(id uint, artist *models.Artist) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Artist
		if err := tx.First(&existing, id).Error; err != nil {
			return notFoundOr(err)
		}
		artist.ID = id
		artist.CreatedAt = existing.CreatedAt
		return tx.Save(artist).Error
	})
}

// Delete removes the artist and every show they appear in, in one
// transaction.
func (r *ArtistRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var artist models.Artist
		if err := tx.First(&artist, id).Error; err != nil {
			return notFoundOr(err)
		}
		if err := tx.Where("artist_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		return tx.Delete(&artist).Error
	})
}

func (r *ArtistRepo) SearchByName(term string) ([]models.Artist, error) {
	var artists []models.Artist
	err := r.db.
		Where("lower(name) LIKE ?", "%"+lowered(term)+"%").
		Order("id asc").
		Find(&artists).Error
	if err != nil {
		return nil, err
	}
	return artists, nil
}
