// Command seed loads development fixtures: a handful of users and articles.
package main

import (
	"fmt"
	"log"

	"github.com/jaydeepbariya/master-backend-app/internal/config"
	"github.com/jaydeepbariya/master-backend-app/internal/database"
	"github.com/jaydeepbariya/master-backend-app/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedUsers           = 5
	seedArticlesPerUser = 4
	seedPassword        = "password123"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	gofakeit.Seed(0)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	for i := 0; i < seedUsers; i++ {
		profile := gofakeit.ImageURL(200, 200)
		user := models.User{
			Name:     gofakeit.Name(),
			Email:    fmt.Sprintf("seed%d@example.com", i+1),
			Password: string(hash),
			Profile:  &profile,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create seed user: %v", err)
		}

		for j := 0; j < seedArticlesPerUser; j++ {
			news := models.News{
				Title:   gofakeit.Sentence(6),
				Content: gofakeit.Paragraph(2, 4, 12, " "),
				Image:   gofakeit.ImageURL(640, 480),
				UserID:  user.ID,
			}
			if err := db.Create(&news).Error; err != nil {
				log.Fatalf("Failed to create seed news: %v", err)
			}
		}
	}

	log.Printf("Seeded %d users with %d articles each (password %q)",
		seedUsers, seedArticlesPerUser, seedPassword)
}
