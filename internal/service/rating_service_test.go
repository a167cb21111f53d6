package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRatingStore struct {
	rows            map[string]*model.CourseRating
	committedAvg    float64
	commits         int
	failCommit      bool
	failAllByCourse bool
}

func newFakeRatingStore() *fakeRatingStore {
	return &fakeRatingStore{rows: make(map[string]*model.CourseRating)}
}

func ratingKey(userEmail string, courseID uint) string {
	return fmt.Sprintf("%s|%d", userEmail, courseID)
}

func (f *fakeRatingStore) AllByCourse(courseID uint) ([]model.CourseRating, error) {
	if f.failAllByCourse {
		return nil, errors.New("db down")
	}
	var out []model.CourseRating
	for _, r := range f.rows {
		if r.CourseID == courseID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) ByUser(userEmail string) ([]model.CourseRating, error) {
	var out []model.CourseRating
	for _, r := range f.rows {
		if r.UserEmail == userEmail {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) ByUserAndCourse(userEmail string, courseID uint) (*model.CourseRating, error) {
	r, ok := f.rows[ratingKey(userEmail, courseID)]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRatingStore) Commit(rating *model.CourseRating, courseAverage float64) error {
	if f.failCommit {
		return errors.New("tx failed")
	}
	cp := *rating
	f.rows[ratingKey(rating.UserEmail, rating.CourseID)] = &cp
	f.committedAvg = courseAverage
	f.commits++
	return nil
}

type fakeCourseFinder struct {
	courses map[uint]*model.Course
}

func (f *fakeCourseFinder) FindByID(id uint) (*model.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

type fakeCompletion struct {
	completed map[string]bool
}

func (f *fakeCompletion) GetProgress(ctx context.Context, userEmail string, courseID uint, totalLessons int) (Evaluation, error) {
	return Evaluation{Completed: f.completed[userEmail]}, nil
}

func newRatingFixture() (*RatingService, *fakeRatingStore, *fakeCompletion) {
	ratings := newFakeRatingStore()
	course := &model.Course{Title: "Counting", Lessons: 5}
	course.ID = 7
	courses := &fakeCourseFinder{courses: map[uint]*model.Course{7: course}}
	completion := &fakeCompletion{completed: make(map[string]bool)}
	return NewRatingService(ratings, courses, completion), ratings, completion
}

func TestSubmitRatingValidation(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	completion.completed["mia@example.com"] = true

	for _, value := range []int{0, 6, -1} {
		_, err := svc.SubmitRating(ctx, "mia@example.com", 7, value, "")
		assert.ErrorIs(t, err, util.ErrValidation)
	}

	_, err := svc.SubmitRating(ctx, "mia@example.com", 7, 5, strings.Repeat("x", 501))
	assert.ErrorIs(t, err, util.ErrValidation)

	// Nothing was written along the way.
	assert.Equal(t, 0, ratings.commits)
}

func TestSubmitRatingUnknownCourse(t *testing.T) {
	svc, _, completion := newRatingFixture()
	completion.completed["mia@example.com"] = true

	_, err := svc.SubmitRating(context.Background(), "mia@example.com", 99, 5, "")
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestSubmitRatingRequiresCompletion(t *testing.T) {
	svc, ratings, _ := newRatingFixture()

	_, err := svc.SubmitRating(context.Background(), "mia@example.com", 7, 5, "great")
	assert.ErrorIs(t, err, util.ErrPermissionDenied)
	assert.Equal(t, 0, ratings.commits)
}

func TestSubmitRatingComputesAverage(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	completion.completed["mia@example.com"] = true
	completion.completed["leo@example.com"] = true

	_, err := svc.SubmitRating(ctx, "mia@example.com", 7, 5, "")
	assert.NoError(t, err)
	assert.Equal(t, 5.0, ratings.committedAvg)

	result, err := svc.SubmitRating(ctx, "leo@example.com", 7, 4, "")
	assert.NoError(t, err)
	assert.Equal(t, 4.5, result.AverageRating)
	assert.Equal(t, 4.5, ratings.committedAvg)
}

func TestSubmitRatingAverageAcrossUsers(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com", "d@x.com"} {
		completion.completed[email] = true
	}

	svc.SubmitRating(ctx, "a@x.com", 7, 5, "")
	svc.SubmitRating(ctx, "b@x.com", 7, 4, "")
	svc.SubmitRating(ctx, "c@x.com", 7, 3, "")
	assert.Equal(t, 4.0, ratings.committedAvg)

	svc.SubmitRating(ctx, "d@x.com", 7, 2, "")
	assert.Equal(t, 3.5, ratings.committedAvg)
}

func TestSubmitRatingAverageRoundsToOneDecimal(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		completion.completed[email] = true
	}

	svc.SubmitRating(ctx, "a@x.com", 7, 5, "")
	svc.SubmitRating(ctx, "b@x.com", 7, 4, "")
	svc.SubmitRating(ctx, "c@x.com", 7, 4, "")

	// 13/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, ratings.committedAvg)
}

func TestSubmitRatingUpsertsExistingRow(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	completion.completed["mia@example.com"] = true

	first, err := svc.SubmitRating(ctx, "mia@example.com", 7, 2, "meh")
	assert.NoError(t, err)

	second, err := svc.SubmitRating(ctx, "mia@example.com", 7, 5, "grew on me")
	assert.NoError(t, err)

	// Still one row for the pair, with the newer values and average.
	all, _ := ratings.AllByCourse(7)
	assert.Len(t, all, 1)
	assert.Equal(t, 5, second.Rating.Rating)
	assert.Equal(t, "grew on me", second.Rating.Review)
	assert.Equal(t, 5.0, ratings.committedAvg)
	assert.Equal(t, first.Rating.UserEmail, second.Rating.UserEmail)
}

func TestGetCourseRatingsAverageCoversAllRows(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		email := string(rune('a'+i)) + "@x.com"
		completion.completed[email] = true
		_, err := svc.SubmitRating(ctx, email, 7, 1+i%5, "")
		assert.NoError(t, err)
		row := ratings.rows[ratingKey(email, 7)]
		row.CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}

	result, err := svc.GetCourseRatings(7, "", 10)
	assert.NoError(t, err)
	assert.Len(t, result.Ratings, 10)
	assert.Equal(t, 15, result.TotalRatings)

	// Page is newest-first.
	for i := 1; i < len(result.Ratings); i++ {
		assert.False(t, result.Ratings[i].CreatedAt.After(result.Ratings[i-1].CreatedAt))
	}

	// Average over all 15 rows: three full cycles of 1..5.
	assert.Equal(t, 3.0, result.AverageRating)
}

func TestGetCourseRatingsIncludesUserRating(t *testing.T) {
	svc, _, completion := newRatingFixture()
	ctx := context.Background()
	completion.completed["mia@example.com"] = true
	completion.completed["leo@example.com"] = true

	svc.SubmitRating(ctx, "mia@example.com", 7, 5, "")
	svc.SubmitRating(ctx, "leo@example.com", 7, 3, "")

	result, err := svc.GetCourseRatings(7, "leo@example.com", 10)
	assert.NoError(t, err)
	assert.NotNil(t, result.UserRating)
	assert.Equal(t, 3, result.UserRating.Rating)

	anon, err := svc.GetCourseRatings(7, "", 10)
	assert.NoError(t, err)
	assert.Nil(t, anon.UserRating)
}

func TestGetCourseRatingsUnknownCourse(t *testing.T) {
	svc, _, _ := newRatingFixture()
	_, err := svc.GetCourseRatings(99, "", 10)
	assert.ErrorIs(t, err, util.ErrNotFound)
}

func TestSubmitRatingCommitFailureLeavesNoPartialState(t *testing.T) {
	svc, ratings, completion := newRatingFixture()
	ctx := context.Background()
	completion.completed["mia@example.com"] = true
	ratings.failCommit = true

	_, err := svc.SubmitRating(ctx, "mia@example.com", 7, 5, "")
	assert.Error(t, err)
	assert.Empty(t, ratings.rows)
}
