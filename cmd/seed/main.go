package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/sparkd-app/sparkd/internal/config"
	"github.com/sparkd-app/sparkd/internal/database"
	"github.com/sparkd-app/sparkd/internal/premium"
	"github.com/sparkd-app/sparkd/internal/user"
)

// Seeds the database with 200 generated accounts (all sharing the password
// "password123", the first reachable as user@email.com) and the two catalog
// packages.
func main() {
	if err := run(); err != nil {
		log.Fatalf("Seed error: %v", err)
	}
}

var (
	firstNames = []string{"Alex", "Sam", "Jordan", "Taylor", "Casey", "Riley", "Morgan", "Jamie", "Quinn", "Avery", "Dana", "Robin", "Lee", "Noa", "Kim"}
	lastNames  = []string{"Smith", "Jones", "Brown", "Miller", "Garcia", "Davis", "Martinez", "Lopez", "Wilson", "Anderson", "Novak", "Petrov", "Kovac", "Ito"}
	bios       = []string{
		"Coffee first, questions later.",
		"Weekend hiker, weekday napper.",
		"Looking for someone to share fries with.",
		"Amateur cook, professional eater.",
		"Dog person. Non-negotiable.",
		"Will beat you at board games.",
	}
	genders = []user.Gender{user.GenderMale, user.GenderFemale, user.GenderOther}
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	sqlDB, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	db := database.NewBunDB(sqlDB)
	ctx := context.Background()

	log.Println("Seeding database...")

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	rng := rand.New(rand.NewSource(42))

	users := make([]database.User, 0, 200)
	for i := 0; i < 200; i++ {
		name := fmt.Sprintf("%s %s", firstNames[rng.Intn(len(firstNames))], lastNames[rng.Intn(len(lastNames))])
		bio := bios[rng.Intn(len(bios))]
		picture := fmt.Sprintf("https://i.pravatar.cc/300?u=%d", i)

		users = append(users, database.User{
			Email:          fmt.Sprintf("user%03d@email.com", i),
			PasswordHash:   string(hash),
			Name:           name,
			DateOfBirth:    randomBirthDate(rng),
			Gender:         string(genders[rng.Intn(len(genders))]),
			Bio:            &bio,
			ProfilePicture: &picture,
		})
	}
	users[0].Email = "user@email.com"

	if _, err := db.NewInsert().Model(&users).Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	packages := []database.PremiumPackage{
		{
			Name:        "Premium Package 1",
			Price:       10,
			Code:        premium.CodePremium,
			Description: "This is a premium package",
		},
		{
			Name:        "Verification Package 1",
			Price:       12,
			Code:        premium.CodeVerification,
			Description: "This is a verification package",
		},
	}

	if _, err := db.NewInsert().Model(&packages).Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed premium packages: %w", err)
	}

	log.Println("Database seeded successfully!")
	return nil
}

func randomBirthDate(rng *rand.Rand) time.Time {
	return time.Date(1970+rng.Intn(35), time.Month(1+rng.Intn(12)), 1+rng.Intn(28), 0, 0, 0, 0, time.UTC)
}
