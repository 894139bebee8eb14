// Package booking serves the venue/artist/show listing site: form-encoded
// submissions, redirect on success, JSON view models on reads.
package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/repository"
)

type Service struct {
	venues  *repository.VenueRepo
	artists *repository.ArtistRepo
	shows   *repository.ShowRepo
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		venues:  repository.NewVenueRepo(db),
		artists: repository.NewArtistRepo(db),
		shows:   repository.NewShowRepo(db),
	}
}

func (s *Service) SetupRoutes(r *gin.Engine) {
	r.GET("/", s.Index)

	r.GET("/venues", s.Venues)
	r.POST("/venues/search", s.SearchVenues)
	r.GET("/venues/create", s.CreateVenueForm)
	r.POST("/venues/create", s.CreateVenue)
	r.GET("/venues/:id", s.ShowVenue)
	r.GET("/venues/:id/edit", s.EditVenueForm)
	r.POST("/venues/:id/edit", s.EditVenue)
	r.GET("/venues/:id/delete", s.DeleteVenue)

	r.GET("/artists", s.Artists)
	r.POST("/artists/search", s.SearchArtists)
	r.GET("/artists/create", s.CreateArtistForm)
	r.POST("/artists/create", s.CreateArtist)
	r.GET("/artists/:id", s.ShowArtist)
	r.GET("/artists/:id/edit", s.EditArtistForm)
	r.POST("/artists/:id/edit", s.EditArtist)
	r.GET("/artists/:id/delete", s.DeleteArtist)

	r.GET("/shows", s.Shows)
	r.GET("/shows/create", s.CreateShowForm)
	r.POST("/shows/create", s.CreateShow)

	r.GET("/health", s.HealthCheck)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
	})
}

func (s *Service) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to ShowHub"})
}

func (s *Service) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "booking-service",
	})
}

// paramID parses the :id route parameter. On failure it has already
// written the 400 response.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
