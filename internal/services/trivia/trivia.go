// Package trivia serves the question bank JSON API: paginated listing,
// search, create/delete, and the quiz question picker. Every error uses
// the envelope {success:false, error:<code>, message:<text>}.
package trivia

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/cache"
	"github.com/showhub/showhub-go/internal/config"
	"github.com/showhub/showhub-go/internal/models"
	"github.com/showhub/showhub-go/internal/pagination"
	"github.com/showhub/showhub-go/internal/quiz"
	"github.com/showhub/showhub-go/internal/repository"
	"github.com/showhub/showhub-go/internal/validate"
)

const categoriesCacheKey = "trivia:categories"

type Service struct {
	questions  *repository.QuestionRepo
	categories *repository.CategoryRepo
	cache      *cache.Client
	perPage    int
}

// NewService builds the trivia API. cacheClient may be nil, in which
// case category lookups always hit the database.
func NewService(db *gorm.DB, cacheClient *cache.Client, cfg *config.Config) *Service {
	return &Service{
		questions:  repository.NewQuestionRepo(db),
		categories: repository.NewCategoryRepo(db),
		cache:      cacheClient,
		perPage:    cfg.QuestionsPerPage,
	}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.HandleMethodNotAllowed = true

	r.GET("/categories", s.GetCategories)
	r.GET("/categories/:id/questions", s.GetQuestionsByCategory)
	r.GET("/questions", s.GetQuestions)
	r.POST("/questions", s.CreateOrSearchQuestions)
	r.DELETE("/questions/:id", s.DeleteQuestion)
	r.POST("/quizzes", s.PlayQuiz)
	r.GET("/health", s.HealthCheck)

	r.NoRoute(func(c *gin.Context) {
		abortWithError(c, http.StatusNotFound, "resource not found")
	})
	r.NoMethod(func(c *gin.Context) {
		abortWithError(c, http.StatusMethodNotAllowed, "method not allowed")
	})
}

func (s *Service) GetCategories(c *gin.Context) {
	payload, err := s.categoryPayload(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	if payload.Total == 0 {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"total_categories": payload.Total,
		"categories":       payload.Categories,
	})
}

func (s *Service) GetQuestions(c *gin.Context) {
	questions, err := s.questions.All()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	current := pagination.Paginate(questions, pageParam(c), s.perPage)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}

	payload, err := s.categoryPayload(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        current,
		"total_questions":  len(questions),
		"categories":       payload.Categories,
		"current_category": nil,
	})
}

func (s *Service) DeleteQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}

	if err := s.questions.Delete(uint(id)); err != nil {
		// A missing row and a failed delete both surface as
		// unprocessable; nothing was removed either way.
		abortWithError(c, http.StatusUnprocessableEntity, "unprocessable")
		return
	}

	questions, err := s.questions.All()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	current := pagination.Paginate(questions, pageParam(c), s.perPage)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"deleted_id":      id,
		"questions":       current,
		"total_questions": len(questions),
	})
}

// CreateOrSearchQuestions handles both POST /questions bodies: a
// searchTerm triggers the search path, anything else is a create.
func (s *Service) CreateOrSearchQuestions(c *gin.Context) {
	var body struct {
		Question   string  `json:"question"`
		Answer     string  `json:"answer"`
		Category   uint    `json:"category"`
		Difficulty int     `json:"difficulty"`
		SearchTerm *string `json:"searchTerm"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad request")
		return
	}

	if body.SearchTerm != nil && *body.SearchTerm != "" {
		s.searchQuestions(c, *body.SearchTerm)
		return
	}

	in := validate.QuestionInput{
		Question:   body.Question,
		Answer:     body.Answer,
		CategoryID: body.Category,
		Difficulty: body.Difficulty,
	}
	errs := validate.Question(in)
	if errs.Valid() {
		if _, err := s.categories.GetByID(body.Category); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				errs.Add("category", "Unknown category.")
			} else {
				abortWithError(c, http.StatusInternalServerError, "internal server error")
				return
			}
		}
	}
	if !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   http.StatusBadRequest,
			"message": "bad request",
			"errors":  errs,
		})
		return
	}

	question := models.Question{
		Question:   body.Question,
		Answer:     body.Answer,
		CategoryID: body.Category,
		Difficulty: body.Difficulty,
	}
	if err := s.questions.Create(&question); err != nil {
		abortWithError(c, http.StatusUnprocessableEntity, "unprocessable")
		return
	}

	total, err := s.questions.Count()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"created_id":      question.ID,
		"total_questions": total,
	})
}

func (s *Service) searchQuestions(c *gin.Context, term string) {
	results, err := s.questions.Search(term)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	current := pagination.Paginate(results, pageParam(c), s.perPage)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        current,
		"total_questions":  len(results),
		"current_category": nil,
	})
}

func (s *Service) GetQuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}

	category, err := s.categories.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "resource not found")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	questions, err := s.questions.ByCategory(uint(id))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	current := pagination.Paginate(questions, pageParam(c), s.perPage)
	if len(current) == 0 {
		abortWithError(c, http.StatusNotFound, "resource not found")
		return
	}

	total, err := s.questions.Count()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}
	payload, err := s.categoryPayload(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"questions":        current,
		"total_questions":  total,
		"categories":       payload.Categories,
		"current_category": category.Type,
	})
}

// PlayQuiz serves one random question not yet seen this round. An
// exhausted pool is success with a null question, not an error; a
// missing or malformed payload is a 400.
func (s *Service) PlayQuiz(c *gin.Context) {
	var body struct {
		PreviousQuestions []uint `json:"previous_questions"`
		QuizCategory      *struct {
			ID *uint `json:"id"`
		} `json:"quiz_category"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		abortWithError(c, http.StatusBadRequest, "bad request")
		return
	}
	if body.QuizCategory == nil || body.QuizCategory.ID == nil {
		abortWithError(c, http.StatusBadRequest, "bad request")
		return
	}

	candidates, err := s.questions.QuizCandidates(*body.QuizCategory.ID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	remaining := quiz.Remaining(candidates, body.PreviousQuestions)
	picked := quiz.Pick(remaining)
	if picked == nil {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"questions": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"questions":       picked,
		"total_questions": len(remaining),
	})
}

func (s *Service) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "trivia-service",
	})
}

type categoriesPayload struct {
	Total      int             `json:"total_categories"`
	Categories map[uint]string `json:"categories"`
}

// categoryPayload serves the id->type map through the cache when one
// is configured. Cache failures fall back to the database.
func (s *Service) categoryPayload(ctx context.Context) (categoriesPayload, error) {
	var payload categoriesPayload
	if hit, err := s.cache.GetJSON(ctx, categoriesCacheKey, &payload); err == nil && hit {
		return payload, nil
	}

	categories, err := s.categories.All()
	if err != nil {
		return categoriesPayload{}, err
	}
	payload = categoriesPayload{
		Total:      len(categories),
		Categories: make(map[uint]string, len(categories)),
	}
	for _, category := range categories {
		payload.Categories[category.ID] = category.Type
	}

	_ = s.cache.SetJSON(ctx, categoriesCacheKey, payload, time.Hour)
	return payload, nil
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func abortWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   code,
		"message": message,
	})
}
