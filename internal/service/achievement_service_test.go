package service

import (
	"testing"

	"kidlearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

type fakeAchievementStore struct {
	catalog []model.Achievement
}

func (f *fakeAchievementStore) ListAll() ([]model.Achievement, error) {
	return f.catalog, nil
}

type fakeStats struct {
	courses int
	lessons int
}

func (f *fakeStats) StatsByUser(userID uint) (int, int, error) {
	return f.courses, f.lessons, nil
}

func TestGetUserAchievements(t *testing.T) {
	catalog := []model.Achievement{
		{Title: "First Steps", Points: 10, RequiredLessons: 1},
		{Title: "Course Finisher", Points: 30, RequiredCourses: 1},
		{Title: "Week of Wonder", Points: 40, RequiredStreakDays: 7},
	}
	svc := NewAchievementService(
		&fakeAchievementStore{catalog: catalog},
		&fakeStats{courses: 1, lessons: 5},
	)

	user := &model.User{Email: "mia@example.com", LoginStreak: 3}
	user.ID = 1

	result, err := svc.GetUserAchievements(user)
	assert.NoError(t, err)
	assert.Len(t, result.Achievements, 3)

	assert.True(t, result.Achievements[0].Earned)
	assert.True(t, result.Achievements[1].Earned)
	assert.False(t, result.Achievements[2].Earned)
	assert.Equal(t, 40, result.EarnedPoints)

	assert.Equal(t, 1, result.Stats.CoursesCompleted)
	assert.Equal(t, 5, result.Stats.LessonsCompleted)
	assert.Equal(t, 3, result.Stats.StreakDays)
}

func TestEarnedByRequiresEveryThreshold(t *testing.T) {
	badge := model.Achievement{RequiredCourses: 2, RequiredLessons: 10}

	assert.False(t, badge.EarnedBy(model.AchievementStats{CoursesCompleted: 2, LessonsCompleted: 9}))
	assert.False(t, badge.EarnedBy(model.AchievementStats{CoursesCompleted: 1, LessonsCompleted: 10}))
	assert.True(t, badge.EarnedBy(model.AchievementStats{CoursesCompleted: 2, LessonsCompleted: 10}))
}

func TestZeroThresholdBadgeIsAlwaysEarned(t *testing.T) {
	badge := model.Achievement{Title: "Welcome"}
	assert.True(t, badge.EarnedBy(model.AchievementStats{}))
}
