package service

import (
	"errors"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/repository"
	"kidlearn_backend/internal/util"

	"gorm.io/gorm"
)

type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

type CourseInput struct {
	Title       string
	Description string
	Category    string
	Level       model.CourseLevel
	Lessons     int
	Status      model.CourseStatus
	Icon        string
}

func (s *CourseService) Create(input CourseInput) (*model.Course, error) {
	if err := validateCourseInput(input); err != nil {
		return nil, err
	}

	course := &model.Course{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Level:       input.Level,
		Lessons:     input.Lessons,
		Status:      input.Status,
		Icon:        input.Icon,
	}
	if course.Level == "" {
		course.Level = model.Beginner
	}
	if course.Status == "" {
		course.Status = model.Draft
	}

	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Update(courseID uint, input CourseInput) (*model.Course, error) {
	if err := validateCourseInput(input); err != nil {
		return nil, err
	}

	course, err := s.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Category != "" {
		course.Category = input.Category
	}
	if input.Level != "" {
		course.Level = input.Level
	}
	if input.Lessons > 0 {
		course.Lessons = input.Lessons
	}
	if input.Status != "" {
		course.Status = input.Status
	}
	if input.Icon != "" {
		course.Icon = input.Icon
	}

	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) GetByID(courseID uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("course %d", courseID)
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(courseID uint) error {
	if _, err := s.GetByID(courseID); err != nil {
		return err
	}
	return s.CourseRepo.Delete(courseID)
}

func (s *CourseService) ListPublished(category, level string) ([]model.Course, error) {
	return s.CourseRepo.ListPublished(category, level)
}

func (s *CourseService) ListAll() ([]model.Course, error) {
	return s.CourseRepo.ListAll()
}

func validateCourseInput(input CourseInput) error {
	if input.Lessons < 0 {
		return util.Validationf("lesson count must not be negative")
	}
	switch input.Level {
	case "", model.Beginner, model.Intermediate, model.Advanced:
	default:
		return util.Validationf("unknown level %q", input.Level)
	}
	switch input.Status {
	case "", model.Published, model.Draft:
	default:
		return util.Validationf("unknown status %q", input.Status)
	}
	return nil
}
