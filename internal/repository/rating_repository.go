package repository

import (
	"errors"

	"kidlearn_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) AllByCourse(courseID uint) ([]model.CourseRating, error) {
	var ratings []model.CourseRating
	err := r.DB.Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepository) ByUser(userEmail string) ([]model.CourseRating, error) {
	var ratings []model.CourseRating
	err := r.DB.Where("user_email = ?", userEmail).
		Order("created_at desc").
		Find(&ratings).Error
	return ratings, err
}

// ByUserAndCourse returns (nil, nil) when the user has not rated the course.
func (r *RatingRepository) ByUserAndCourse(userEmail string, courseID uint) (*model.CourseRating, error) {
	var rating model.CourseRating
	err := r.DB.Where("user_email = ? AND course_id = ?", userEmail, courseID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

// Commit writes the rating row and the recomputed course average in one
// transaction so a failed write never leaves the average half-updated.
func (r *RatingRepository) Commit(rating *model.CourseRating, courseAverage float64) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(rating).Error; err != nil {
			return err
		}
		return tx.Model(&model.Course{}).
			Where("id = ?", rating.CourseID).
			Update("rating", courseAverage).Error
	})
}
