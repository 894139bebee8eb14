package booking

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showhub/showhub-go/internal/models"
	"github.com/showhub/showhub-go/internal/repository"
	"github.com/showhub/showhub-go/internal/validate"
)

type artistSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

func (s *Service) Artists(c *gin.Context) {
	artists, err := s.artists.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artists"})
		return
	}

	data := []artistSummary{}
	for _, artist := range artists {
		count, err := s.shows.UpcomingCountForArtist(artist.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count shows"})
			return
		}
		data = append(data, artistSummary{ID: artist.ID, Name: artist.Name, NumUpcomingShows: count})
	}

	c.JSON(http.StatusOK, gin.H{"artists": data})
}

func (s *Service) SearchArtists(c *gin.Context) {
	term := c.PostForm("search_term")

	artists, err := s.artists.SearchByName(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search artists"})
		return
	}

	data := []artistSummary{}
	for _, artist := range artists {
		count, err := s.shows.UpcomingCountForArtist(artist.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count shows"})
			return
		}
		data = append(data, artistSummary{ID: artist.ID, Name: artist.Name, NumUpcomingShows: count})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(data),
		"data":        data,
		"search_term": term,
	})
}

func (s *Service) ShowArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	artist, err := s.artists.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
		return
	}

	details, err := s.shows.ForArtist(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shows"})
		return
	}
	past, upcoming := splitShows(details, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"genres":               models.SplitGenres(artist.Genres),
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"website":              artist.Website,
		"facebook_link":        artist.FacebookLink,
		"image_link":           artist.ImageLink,
		"seeking_talent":       artist.SeekingTalent,
		"seeking_description":  artist.SeekingDescription,
		"past_shows":           past,
		"upcoming_shows":       upcoming,
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func (s *Service) CreateArtistForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states": validate.States,
		"genres": validate.Genres,
	})
}

func (s *Service) CreateArtist(c *gin.Context) {
	in := artistInputFromForm(c)
	if errs := validate.Artist(in); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return
	}

	artist := artistFromInput(c, in)
	if err := s.artists.Create(artist); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) EditArtistForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	artist, err := s.artists.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch artist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"artist": gin.H{
			"id":                  artist.ID,
			"name":                artist.Name,
			"city":                artist.City,
			"state":               artist.State,
			"phone":               artist.Phone,
			"website":             artist.Website,
			"facebook_link":       artist.FacebookLink,
			"image_link":          artist.ImageLink,
			"genres":              models.SplitGenres(artist.Genres),
			"seeking_talent":      artist.SeekingTalent,
			"seeking_description": artist.SeekingDescription,
		},
		"states": validate.States,
		"genres": validate.Genres,
	})
}

func (s *Service) EditArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	in := artistInputFromForm(c)
	if errs := validate.Artist(in); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return
	}

	artist := artistFromInput(c, in)
	if err := s.artists.Update(id, artist); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/artists/%d", id))
}

// DeleteArtist removes the artist and cascades to their shows.
func (s *Service) DeleteArtist(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := s.artists.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artist not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete artist"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func artistInputFromForm(c *gin.Context) validate.ArtistInput {
	return validate.ArtistInput{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Phone:              c.PostForm("phone"),
		Genres:             c.PostFormArray("genres"),
		Website:            c.PostForm("website"),
		FacebookLink:       c.PostForm("facebook_link"),
		ImageLink:          c.PostForm("image_link"),
		SeekingDescription: c.PostForm("seeking_description"),
	}
}

func artistFromInput(c *gin.Context, in validate.ArtistInput) *models.Artist {
	return &models.Artist{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Website:            in.Website,
		FacebookLink:       in.FacebookLink,
		ImageLink:          in.ImageLink,
		Genres:             models.JoinGenres(in.Genres),
		SeekingTalent:      c.PostForm("seeking_talent") == "y",
		SeekingDescription: in.SeekingDescription,
	}
}
