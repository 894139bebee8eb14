// Package validate checks submitted form and JSON fields against the
// field-level rules each entity requires. Malformed input is the expected
// case: every rule is evaluated and every message collected before the
// result is reported, and nothing here ever touches the database.
package validate

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Errors maps a field name to the messages collected for it. An empty
// map means the input is valid.
type Errors map[string][]string

func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

func (e Errors) Valid() bool {
	return len(e) == 0
}

var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B", "Reggae",
	"Rock n Roll", "Soul", "Other",
}

var phonePattern = regexp.MustCompile(`^[0-9\-\+]+$`)

// startTimeLayouts accepted for show submissions, tried in order.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
}

type VenueInput struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	Website            string
	FacebookLink       string
	ImageLink          string
	SeekingDescription string
}

type ArtistInput struct {
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	Website            string
	FacebookLink       string
	ImageLink          string
	SeekingDescription string
}

type ShowInput struct {
	VenueID   string
	ArtistID  string
	StartTime string
}

type QuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

func Venue(in VenueInput) Errors {
	errs := Errors{}
	requireText(errs, "name", in.Name)
	requireText(errs, "city", in.City)
	requireText(errs, "address", in.Address)
	checkState(errs, in.State)
	checkPhone(errs, in.Phone)
	checkGenres(errs, in.Genres)
	checkURL(errs, "website", in.Website)
	checkURL(errs, "facebook_link", in.FacebookLink)
	checkURL(errs, "image_link", in.ImageLink)
	return errs
}

func Artist(in ArtistInput) Errors {
	errs := Errors{}
	requireText(errs, "name", in.Name)
	requireText(errs, "city", in.City)
	checkState(errs, in.State)
	checkPhone(errs, in.Phone)
	checkGenres(errs, in.Genres)
	checkURL(errs, "website", in.Website)
	checkURL(errs, "facebook_link", in.FacebookLink)
	checkURL(errs, "image_link", in.ImageLink)
	return errs
}

func Show(in ShowInput) Errors {
	errs := Errors{}
	checkID(errs, "venue_id", in.VenueID)
	checkID(errs, "artist_id", in.ArtistID)
	if strings.TrimSpace(in.StartTime) == "" {
		errs.Add("start_time", "This field is required.")
	} else if _, err := ParseStartTime(in.StartTime); err != nil {
		errs.Add("start_time", "Start time is invalid. Use the format: YYYY-MM-DD HH:MM:SS")
	}
	return errs
}

func Question(in QuestionInput) Errors {
	errs := Errors{}
	requireText(errs, "question", in.Question)
	requireText(errs, "answer", in.Answer)
	if in.CategoryID == 0 {
		errs.Add("category", "Choose a category.")
	}
	if in.Difficulty < 1 || in.Difficulty > 5 {
		errs.Add("difficulty", "Difficulty must be between 1 and 5.")
	}
	return errs
}

// ParseStartTime parses a submitted show time, accepting the form
// widget's layout as well as RFC 3339.
func ParseStartTime(s string) (time.Time, error) {
	var err error
	var t time.Time
	for _, layout := range startTimeLayouts {
		t, err = time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func requireText(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "This field is required.")
	}
}

func checkState(errs Errors, state string) {
	if strings.TrimSpace(state) == "" {
		errs.Add("state", "This field is required.")
		return
	}
	for _, s := range States {
		if s == state {
			return
		}
	}
	errs.Add("state", "State is not a valid US state.")
}

// checkPhone enforces both the character-class rule and the exact
// length of 10. The combination rejects fully dashed numbers like
// 555-123-4567 (12 characters); the rule is kept as specified rather
// than redefined.
func checkPhone(errs Errors, phone string) {
	if strings.TrimSpace(phone) == "" {
		errs.Add("phone", "Please input a phone number.")
		return
	}
	if !phonePattern.MatchString(phone) {
		errs.Add("phone", "Phone number is invalid. Use the format: XXX-XXX-XXXX")
	}
	if len(phone) != 10 {
		errs.Add("phone", "Phone number is invalid. Only 10 digits")
	}
}

func checkGenres(errs Errors, genres []string) {
	if len(genres) == 0 {
		errs.Add("genres", "Choose at least one genre.")
		return
	}
	for _, g := range genres {
		if !knownGenre(g) {
			errs.Add("genres", g+" is not a recognized genre.")
		}
	}
}

func knownGenre(g string) bool {
	for _, known := range Genres {
		if known == g {
			return true
		}
	}
	return false
}

// checkURL validates optional link fields: blank passes, anything else
// must parse as an absolute URL with a scheme and host.
func checkURL(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		errs.Add(field, "Link is invalid. Use the format: http://...")
	}
}

func checkID(errs Errors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.Add(field, "This field is required.")
		return
	}
	id, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
	if err != nil || id == 0 {
		errs.Add(field, "Must be a positive numeric id.")
	}
}
