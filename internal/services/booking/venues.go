package booking

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/showhub/showhub-go/internal/models"
	"github.com/showhub/showhub-go/internal/repository"
	"github.com/showhub/showhub-go/internal/validate"
)

type venueSummary struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int64  `json:"num_upcoming_shows"`
}

type cityArea struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []venueSummary `json:"venues"`
}

// Venues lists all venues grouped by (city, state), each annotated with
// its upcoming-show count, busiest venue first within an area.
func (s *Service) Venues(c *gin.Context) {
	venues, err := s.venues.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	areas := []cityArea{}
	index := map[[2]string]int{}
	for _, venue := range venues {
		count, err := s.shows.UpcomingCountForVenue(venue.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count shows"})
			return
		}
		key := [2]string{venue.City, venue.State}
		if _, ok := index[key]; !ok {
			index[key] = len(areas)
			areas = append(areas, cityArea{City: venue.City, State: venue.State})
		}
		area := &areas[index[key]]
		area.Venues = append(area.Venues, venueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: count,
		})
	}
	for i := range areas {
		sort.SliceStable(areas[i].Venues, func(a, b int) bool {
			return areas[i].Venues[a].NumUpcomingShows > areas[i].Venues[b].NumUpcomingShows
		})
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// SearchVenues matches the posted search_term as a case-insensitive
// substring of the venue name.
func (s *Service) SearchVenues(c *gin.Context) {
	term := c.PostForm("search_term")

	venues, err := s.venues.SearchByName(term)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search venues"})
		return
	}

	data := []venueSummary{}
	for _, venue := range venues {
		count, err := s.shows.UpcomingCountForVenue(venue.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count shows"})
			return
		}
		data = append(data, venueSummary{ID: venue.ID, Name: venue.Name, NumUpcomingShows: count})
	}

	c.JSON(http.StatusOK, gin.H{
		"count":       len(data),
		"data":        data,
		"search_term": term,
	})
}

func (s *Service) ShowVenue(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	venue, err := s.venues.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venue"})
		return
	}

	details, err := s.shows.ForVenue(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shows"})
		return
	}
	past, upcoming := splitShows(details, time.Now())

	c.JSON(http.StatusOK, gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"genres":               models.SplitGenres(venue.Genres),
		"address":              venue.Address,
		"city":                 venue.City,
		"state":                venue.State,
		"phone":                venue.Phone,
		"website":              venue.Website,
		"facebook_link":        venue.FacebookLink,
		"image_link":           venue.ImageLink,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"past_shows":           past,
		"upcoming_shows":       upcoming,
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	})
}

func (s *Service) CreateVenueForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"states": validate.States,
		"genres": validate.Genres,
	})
}

func (s *Service) CreateVenue(c *gin.Context) {
	in := venueInputFromForm(c)
	if errs := validate.Venue(in); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return
	}

	venue := venueFromInput(c, in)
	if err := s.venues.Create(venue); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Service) EditVenueForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	venue, err := s.venues.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venue"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"venue": gin.H{
			"id":                  venue.ID,
			"name":                venue.Name,
			"city":                venue.City,
			"state":               venue.State,
			"address":             venue.Address,
			"phone":               venue.Phone,
			"website":             venue.Website,
			"facebook_link":       venue.FacebookLink,
			"image_link":          venue.ImageLink,
			"genres":              models.SplitGenres(venue.Genres),
			"seeking_talent":      venue.SeekingTalent,
			"seeking_description": venue.SeekingDescription,
		},
		"states": validate.States,
		"genres": validate.Genres,
	})
}

func (s *Service) EditVenue(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	in := venueInputFromForm(c)
	if errs := validate.Venue(in); !errs.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"errors": errs,
		})
		return
	}

	venue := venueFromInput(c, in)
	if err := s.venues.Update(id, venue); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
		return
	}

	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/venues/%d", id))
}

// DeleteVenue removes the venue and cascades to its shows.
func (s *Service) DeleteVenue(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := s.venues.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venue"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func venueInputFromForm(c *gin.Context) validate.VenueInput {
	return validate.VenueInput{
		Name:               c.PostForm("name"),
		City:               c.PostForm("city"),
		State:              c.PostForm("state"),
		Address:            c.PostForm("address"),
		Phone:              c.PostForm("phone"),
		Genres:             c.PostFormArray("genres"),
		Website:            c.PostForm("website"),
		FacebookLink:       c.PostForm("facebook_link"),
		ImageLink:          c.PostForm("image_link"),
		SeekingDescription: c.PostForm("seeking_description"),
	}
}

func venueFromInput(c *gin.Context, in validate.VenueInput) *models.Venue {
	return &models.Venue{
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Website:            in.Website,
		FacebookLink:       in.FacebookLink,
		ImageLink:          in.ImageLink,
		Genres:             models.JoinGenres(in.Genres),
		SeekingTalent:      c.PostForm("seeking_talent") == "y",
		SeekingDescription: in.SeekingDescription,
	}
}

// splitShows classifies joined show rows as past or upcoming relative
// to now.
func splitShows(details []repository.ShowDetail, now time.Time) (past, upcoming []repository.ShowDetail) {
	past = []repository.ShowDetail{}
	upcoming = []repository.ShowDetail{}
	for _, d := range details {
		if d.StartTime.Before(now) {
			past = append(past, d)
		} else {
			upcoming = append(upcoming, d)
		}
	}
	return past, upcoming
}
