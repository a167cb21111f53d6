package repository

import (
	"errors"
	"time"

	"kidlearn_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

// Upsert creates the enrollment row on first contact with a course and
// refreshes the derived progress fields afterwards.
func (r *EnrollmentRepository) Upsert(userID, courseID uint, progress int, completed bool, lessonsCompleted int) error {
	var enrollment model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		enrollment = model.Enrollment{
			UserID:           userID,
			CourseID:         courseID,
			Progress:         progress,
			Completed:        completed,
			LessonsCompleted: lessonsCompleted,
			EnrolledAt:       time.Now(),
		}
		return r.DB.Create(&enrollment).Error
	}
	if err != nil {
		return err
	}

	enrollment.Progress = progress
	enrollment.Completed = completed
	enrollment.LessonsCompleted = lessonsCompleted
	return r.DB.Save(&enrollment).Error
}

func (r *EnrollmentRepository) ByUser(userID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("user_id = ?", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	return enrollments, err
}

func (r *EnrollmentRepository) ByCourse(courseID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.DB.Where("course_id = ?", courseID).Find(&enrollments).Error
	return enrollments, err
}

// StatsByUser aggregates the numbers achievement thresholds compare against.
func (r *EnrollmentRepository) StatsByUser(userID uint) (coursesCompleted int, lessonsCompleted int, err error) {
	var completed int64
	if err = r.DB.Model(&model.Enrollment{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}

	var lessons int64
	if err = r.DB.Model(&model.Enrollment{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(lessons_completed), 0)").
		Scan(&lessons).Error; err != nil {
		return 0, 0, err
	}

	return int(completed), int(lessons), nil
}
