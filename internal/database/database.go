package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/showhub/showhub-go/internal/config"
	"github.com/showhub/showhub-go/internal/models"
)

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := models.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database connected and migrated successfully")
	return db, nil
}

// Seed loads sample booking and trivia rows. It is idempotent: any
// existing venue or category row skips the corresponding data set.
func Seed(db *gorm.DB) error {
	if err := seedBooking(db); err != nil {
		return err
	}
	return seedTrivia(db)
}

func seedBooking(db *gorm.DB) error {
	var count int64
	db.Model(&models.Venue{}).Count(&count)
	if count > 0 {
		log.Println("Booking data already seeded, skipping...")
		return nil
	}

	venues := []models.Venue{
		{
			Name: "The Musical Hop", City: "San Francisco", State: "CA",
			Address: "1015 Folsom Street", Phone: "1231231234",
			Website:      "https://www.themusicalhop.com",
			FacebookLink: "https://www.facebook.com/TheMusicalHop",
			ImageLink:    "https://images.example.com/musical-hop.jpg",
			Genres:       models.JoinGenres([]string{"Jazz", "Reggae", "Classical", "Folk"}),
			SeekingTalent: true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name: "The Dueling Pianos Bar", City: "New York", State: "NY",
			Address: "335 Delancey Street", Phone: "9140031132",
			Website:      "https://www.theduelingpianos.com",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			ImageLink:    "https://images.example.com/dueling-pianos.jpg",
			Genres:       models.JoinGenres([]string{"Classical", "R&B", "Hip-Hop"}),
		},
		{
			Name: "Park Square Live Music & Coffee", City: "San Francisco", State: "CA",
			Address: "34 Whiskey Moore Ave", Phone: "4150002854",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			ImageLink:    "https://images.example.com/park-square.jpg",
			Genres:       models.JoinGenres([]string{"Rock n Roll", "Jazz", "Classical", "Folk"}),
		},
	}
	for i := range venues {
		if err := db.Create(&venues[i]).Error; err != nil {
			return fmt.Errorf("failed to create venue: %w", err)
		}
	}

	artists := []models.Artist{
		{
			Name: "Guns N Petals", City: "San Francisco", State: "CA",
			Phone:        "3261235000",
			Website:      "https://www.gunsnpetalsband.com",
			FacebookLink: "https://www.facebook.com/GunsNPetals",
			ImageLink:    "https://images.example.com/guns-n-petals.jpg",
			Genres:       models.JoinGenres([]string{"Rock n Roll"}),
			SeekingTalent: true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name: "Matt Quevedo", City: "New York", State: "NY",
			Phone:        "3004005000",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			ImageLink:    "https://images.example.com/matt-quevedo.jpg",
			Genres:       models.JoinGenres([]string{"Jazz"}),
		},
		{
			Name: "The Wild Sax Band", City: "San Francisco", State: "CA",
			Phone:     "4325540000",
			ImageLink: "https://images.example.com/wild-sax-band.jpg",
			Genres:    models.JoinGenres([]string{"Jazz", "Classical"}),
		},
	}
	for i := range artists {
		if err := db.Create(&artists[i]).Error; err != nil {
			return fmt.Errorf("failed to create artist: %w", err)
		}
	}

	shows := []models.Show{
		{VenueID: venues[0].ID, ArtistID: artists[0].ID, StartTime: parseDate("2019-05-21T21:30:00Z")},
		{VenueID: venues[2].ID, ArtistID: artists[1].ID, StartTime: parseDate("2019-06-15T23:00:00Z")},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-01T20:00:00Z")},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-08T20:00:00Z")},
		{VenueID: venues[2].ID, ArtistID: artists[2].ID, StartTime: parseDate("2035-04-15T20:00:00Z")},
	}
	for i := range shows {
		if err := db.Create(&shows[i]).Error; err != nil {
			return fmt.Errorf("failed to create show: %w", err)
		}
	}

	log.Println("Booking sample data seeded successfully")
	return nil
}

func seedTrivia(db *gorm.DB) error {
	var count int64
	db.Model(&models.Category{}).Count(&count)
	if count > 0 {
		log.Println("Trivia data already seeded, skipping...")
		return nil
	}

	categories := []models.Category{
		{Type: "Science"},
		{Type: "Art"},
		{Type: "Geography"},
		{Type: "History"},
		{Type: "Entertainment"},
		{Type: "Sports"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to create category: %w", err)
		}
	}

	questions := []models.Question{
		{Question: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: categories[0].ID, Difficulty: 4},
		{Question: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: categories[0].ID, Difficulty: 3},
		{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: categories[1].ID, Difficulty: 3},
		{Question: "Which Dutch graphic artist was initialed M.C.?", Answer: "Escher", CategoryID: categories[1].ID, Difficulty: 1},
		{Question: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: categories[2].ID, Difficulty: 2},
		{Question: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", CategoryID: categories[2].ID, Difficulty: 3},
		{Question: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: categories[3].ID, Difficulty: 2},
		{Question: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", CategoryID: categories[3].ID, Difficulty: 1},
		{Question: "Which movie's working title was 'The Lunch Date'?", Answer: "Apollo 13", CategoryID: categories[4].ID, Difficulty: 4},
		{Question: "Which team holds the record for most World Series titles?", Answer: "The New York Yankees", CategoryID: categories[5].ID, Difficulty: 2},
	}
	for i := range questions {
		if err := db.Create(&questions[i]).Error; err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}

	log.Println("Trivia sample data seeded successfully")
	return nil
}

func parseDate(dateStr string) time.Time {
	t, _ := time.Parse(time.RFC3339, dateStr)
	return t
}
