package service

import (
	"context"
	"errors"
	"sort"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/util"

	"gorm.io/gorm"
)

// RatingStore is the persistence surface the aggregator needs. Commit must
// write the rating row and the course average atomically.
type RatingStore interface {
	AllByCourse(courseID uint) ([]model.CourseRating, error)
	ByUser(userEmail string) ([]model.CourseRating, error)
	ByUserAndCourse(userEmail string, courseID uint) (*model.CourseRating, error)
	Commit(rating *model.CourseRating, courseAverage float64) error
}

// CourseFinder resolves courses for validation and lesson counts.
type CourseFinder interface {
	FindByID(id uint) (*model.Course, error)
}

// CompletionChecker gates rating submission on course completion.
type CompletionChecker interface {
	GetProgress(ctx context.Context, userEmail string, courseID uint, totalLessons int) (Evaluation, error)
}

// RatingService maintains the invariant that Course.Rating equals the
// one-decimal mean of the course's rating rows.
type RatingService struct {
	Ratings  RatingStore
	Courses  CourseFinder
	Progress CompletionChecker
}

func NewRatingService(ratings RatingStore, courses CourseFinder, progress CompletionChecker) *RatingService {
	return &RatingService{
		Ratings:  ratings,
		Courses:  courses,
		Progress: progress,
	}
}

type SubmitRatingResult struct {
	Rating        *model.CourseRating `json:"rating"`
	AverageRating float64             `json:"averageRating"`
}

type CourseRatingsResult struct {
	Ratings       []model.CourseRating `json:"ratings"`
	AverageRating float64              `json:"averageRating"`
	TotalRatings  int                  `json:"totalRatings"`
	UserRating    *model.CourseRating  `json:"userRating,omitempty"`
}

// SubmitRating validates, gates on completion, then upserts the
// (userEmail, courseId) row and recomputes the course average. Validation
// and the permission gate run before any mutation; the upsert plus
// average write-back commit together or not at all.
func (s *RatingService) SubmitRating(ctx context.Context, userEmail string, courseID uint, value int, review string) (*SubmitRatingResult, error) {
	if value < 1 || value > 5 {
		return nil, util.Validationf("rating must be an integer between 1 and 5, got %d", value)
	}
	if len(review) > 500 {
		return nil, util.Validationf("review exceeds 500 characters")
	}

	course, err := s.Courses.FindByID(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("course %d", courseID)
		}
		return nil, err
	}

	eval, err := s.Progress.GetProgress(ctx, userEmail, courseID, course.Lessons)
	if err != nil {
		return nil, err
	}
	if !eval.Completed {
		return nil, util.ErrMustCompleteCourse
	}

	rating, err := s.Ratings.ByUserAndCourse(userEmail, courseID)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		rating = &model.CourseRating{
			UserEmail: userEmail,
			CourseID:  courseID,
		}
	}
	rating.Rating = value
	rating.Review = review

	average, err := s.recomputeAverage(courseID, rating)
	if err != nil {
		return nil, err
	}

	if err := s.Ratings.Commit(rating, average); err != nil {
		return nil, err
	}

	return &SubmitRatingResult{Rating: rating, AverageRating: average}, nil
}

// GetCourseRatings returns the latest page of ratings plus the average
// over all rows for the course — the average is never limited by the page
// size. When userEmail is set the caller's own rating rides along.
func (s *RatingService) GetCourseRatings(courseID uint, userEmail string, limit int) (*CourseRatingsResult, error) {
	if limit <= 0 {
		limit = 10
	}

	if _, err := s.Courses.FindByID(courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.NotFoundf("course %d", courseID)
		}
		return nil, err
	}

	all, err := s.Ratings.AllByCourse(courseID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	page := all
	if len(page) > limit {
		page = page[:limit]
	}

	result := &CourseRatingsResult{
		Ratings:       page,
		AverageRating: averageOf(all),
		TotalRatings:  len(all),
	}

	if userEmail != "" {
		for i := range all {
			if all[i].UserEmail == userEmail {
				result.UserRating = &all[i]
				break
			}
		}
	}

	return result, nil
}

func (s *RatingService) GetUserRatings(userEmail string) ([]model.CourseRating, error) {
	return s.Ratings.ByUser(userEmail)
}

// recomputeAverage derives the post-upsert mean by merging the submitted
// row into the current set. Concurrent submissions for the same course may
// compute from a slightly stale read; the next submission reconverges the
// stored value (eventual correctness, per the upsert-by-unique-key model).
func (s *RatingService) recomputeAverage(courseID uint, submitted *model.CourseRating) (float64, error) {
	all, err := s.Ratings.AllByCourse(courseID)
	if err != nil {
		return 0, err
	}

	merged := make([]model.CourseRating, 0, len(all)+1)
	for _, r := range all {
		if r.UserEmail == submitted.UserEmail {
			continue
		}
		merged = append(merged, r)
	}
	merged = append(merged, *submitted)

	return averageOf(merged), nil
}

// averageOf is the arithmetic mean rounded half away from zero to one
// decimal, 0 for an empty set.
func averageOf(ratings []model.CourseRating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return util.Round1(float64(sum) / float64(len(ratings)))
}
