// Seeds the database with demo users and courses.
//
// Intended for local development and first-time setup; running it twice
// skips rows that already exist.
//
// Usage: go run scripts/seed.go
package main

import (
	"log"

	"kidlearn_backend/internal/config"
	"kidlearn_backend/internal/model"
	"kidlearn_backend/pkg/database"
	"kidlearn_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	seedUsers(db)
	seedCourses(db)

	log.Println("seeding complete")
}

func seedUsers(db *gorm.DB) {
	users := []struct {
		name     string
		email    string
		password string
		role     model.UserRole
	}{
		{"Admin", "admin@kidlearn.local", "admin-password-1", model.Admin},
		{"Mia", "mia@kidlearn.local", "demo-password-1", model.Student},
		{"Leo", "leo@kidlearn.local", "demo-password-2", model.Student},
		{"Pat", "pat@kidlearn.local", "demo-password-3", model.Parent},
	}

	for _, u := range users {
		var count int64
		db.Model(&model.User{}).Where("email = ?", u.email).Count(&count)
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}

		user := model.User{
			Name:     u.name,
			Email:    u.email,
			Password: string(hash),
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("failed to seed user %s: %v", u.email, err)
		}
	}
}

func seedCourses(db *gorm.DB) {
	courses := []model.Course{
		{Title: "Counting Adventures", Description: "Numbers from 1 to 100 with games.", Category: "Math", Level: model.Beginner, Lessons: 5, Status: model.Published, Icon: "abacus"},
		{Title: "Phonics Fun", Description: "Letter sounds and first words.", Category: "Reading", Level: model.Beginner, Lessons: 8, Status: model.Published, Icon: "book"},
		{Title: "Space Explorers", Description: "Planets, stars and rockets.", Category: "Science", Level: model.Intermediate, Lessons: 6, Status: model.Published, Icon: "rocket"},
		{Title: "Junior Coders", Description: "First steps in block programming.", Category: "Coding", Level: model.Advanced, Lessons: 10, Status: model.Draft, Icon: "robot"},
	}

	for _, c := range courses {
		var count int64
		db.Model(&model.Course{}).Where("title = ?", c.Title).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&c).Error; err != nil {
			log.Printf("failed to seed course %s: %v", c.Title, err)
		}
	}
}
