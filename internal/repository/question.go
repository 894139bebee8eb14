package repository

import (
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/models"
)

type QuestionRepo struct {
	db *gorm.DB
}

func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

func (r *QuestionRepo) Create(question *models.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(question).Error
	})
}

func (r *QuestionRepo) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &question, nil
}

func (r *QuestionRepo) All() ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Question{}).Count(&count).Error
	return count, err
}

func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, id).Error; err != nil {
			return notFoundOr(err)
		}
		return tx.Delete(&question).Error
	})
}

// Search matches the term as a case-insensitive substring of the
// question text, ordered by id.
func (r *QuestionRepo) Search(term string) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("lower(question) LIKE ?", "%"+lowered(term)+"%").
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *QuestionRepo) ByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.
		Where("category = ?", categoryID).
		Order("id asc").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

// QuizCandidates returns the pool the quiz picker draws from: all
// questions, or one category's when categoryID is non-zero.
func (r *QuestionRepo) QuizCandidates(categoryID uint) ([]models.Question, error) {
	if categoryID == 0 {
		return r.All()
	}
	return r.ByCategory(categoryID)
}
