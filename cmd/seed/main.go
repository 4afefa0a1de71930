package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"confportal/internal/database"
	"confportal/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "confportal.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM abstract_authors")
	db.Exec("DELETE FROM abstracts")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM registrations")
	db.Exec("DELETE FROM announcements")
	db.Exec("DELETE FROM registration_categories")
	db.Exec("DELETE FROM events")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@confportal.example",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		FullName:     "Portal Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal(err)
	}

	attendeeHash, _ := bcrypt.GenerateFromPassword([]byte("attendee123"), bcrypt.DefaultCost)
	attendee := domain.User{
		Email:        "attendee@confportal.example",
		PasswordHash: string(attendeeHash),
		Role:         domain.RoleAttendee,
		FullName:     "Test Attendee",
		Country:      "India",
	}
	if err := db.Create(&attendee).Error; err != nil {
		log.Fatal(err)
	}

	log.Println("Creating event and categories...")
	event := domain.Event{
		Name:      "Annual Gastroenterology Summit 2026",
		Venue:     "Hyderabad International Convention Centre",
		StartDate: time.Date(2026, 11, 12, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 11, 15, 18, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	if err := db.Create(&event).Error; err != nil {
		log.Fatal(err)
	}

	categories := []domain.RegistrationCategory{
		{EventID: event.ID, Name: "Delegate", Price: 5000, Currency: "INR"},
		{EventID: event.ID, Name: "Postgraduate Student", Price: 2500, Currency: "INR"},
		{EventID: event.ID, Name: "International Delegate", Price: 12000, Currency: "INR"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatal(err)
		}
	}

	log.Println("Creating announcement...")
	db.Create(&domain.Announcement{
		Title:       "Registration open",
		Body:        "Early-bird registration is now open for the 2026 summit.",
		PublishedBy: admin.ID,
	})

	log.Println("Seed complete.")
}
