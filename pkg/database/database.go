package database

import (
	"fmt"

	"kidlearn_backend/internal/config"
	"kidlearn_backend/internal/model"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs auto-migration and seeds the achievement catalog on an
// empty database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.CourseRating{},
		&model.Enrollment{},
		&model.Achievement{},
	)
	if err != nil {
		return err
	}

	zap.L().Info("database migration completed")

	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		seedAchievements(db)
	}

	return nil
}

func seedAchievements(db *gorm.DB) {
	defaults := []model.Achievement{
		{Title: "First Steps", Icon: "footprints", Category: "lessons", Points: 10, RequiredLessons: 1},
		{Title: "Quick Learner", Icon: "rocket", Category: "lessons", Points: 25, RequiredLessons: 10},
		{Title: "Lesson Marathon", Icon: "medal", Category: "lessons", Points: 50, RequiredLessons: 50},
		{Title: "Course Finisher", Icon: "trophy", Category: "courses", Points: 30, RequiredCourses: 1},
		{Title: "Course Collector", Icon: "crown", Category: "courses", Points: 75, RequiredCourses: 5},
		{Title: "Daily Habit", Icon: "flame", Category: "streaks", Points: 20, RequiredStreakDays: 3},
		{Title: "Week of Wonder", Icon: "star", Category: "streaks", Points: 40, RequiredStreakDays: 7},
	}
	for _, a := range defaults {
		if err := db.Create(&a).Error; err != nil {
			zap.L().Warn("failed to seed achievement", zap.String("title", a.Title), zap.Error(err))
		}
	}
	zap.L().Info("seeded default achievements", zap.Int("count", len(defaults)))
}
