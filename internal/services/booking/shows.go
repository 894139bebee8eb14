package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/showhub/showhub-go/internal/models"
	"github.com/showhub/showhub-go/internal/repository"
	"github.com/showhub/showhub-go/internal/validate"
)

func (s *Service) Shows(c *gin.Context) {
	details, err := s.shows.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shows"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shows": details,
		"count": len(details),
	})
}

func (s *Service) CreateShowForm(c *gin.Context) {
	venues, err := s.venues.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}
	artists, err := s.artists.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
		return
	}

	venueChoices := make([]gin.H, 0, len(venues))
	for _, v := range venues {
		venueChoices = append(venueChoices, gin.H{"id": v.ID, "name": v.Name})
	}
	artistChoices := make([]gin.H, 0, len(artists))
	for _, a := range artists {
		artistChoices = append(artistChoices, gin.H{"id": a.ID, "name": a.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"venues":  venueChoices,
		"artists": artistChoices,
	})
}

func (s *Service) CreateShow(c *gin.Context) {
	in := validate.ShowInput{
		VenueID:   c.PostForm("venue_id"),
		ArtistID:  c.PostForm("artist_id"),
		StartTime: c.PostForm("start_time"),
	}
	if errs := validate.Show(in); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return
	}

	venueID, _ := strconv.ParseUint(in.VenueID, 10, 32)
	artistID, _ := strconv.ParseUint(in.ArtistID, 10, 32)
	startTime, _ := validate.ParseStartTime(in.StartTime)

	// Both endpoints must exist before the join row is written.
	if _, err := s.venues.GetByID(uint(venueID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venue"})
		return
	}
	if _, err := s.artists.GetByID(uint(artistID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
		return
	}

	show := &models.Show{
		VenueID:   uint(venueID),
		ArtistID:  uint(artistID),
		StartTime: startTime,
	}
	if err := s.shows.Create(show); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create show"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}
