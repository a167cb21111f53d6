package service

import (
	"kidlearn_backend/internal/model"
)

// AchievementStore lists the badge catalog.
type AchievementStore interface {
	ListAll() ([]model.Achievement, error)
}

// EnrollmentStats aggregates course/lesson completion counts per user.
type EnrollmentStats interface {
	StatsByUser(userID uint) (coursesCompleted int, lessonsCompleted int, err error)
}

// AchievementService derives which badges a user has earned. Earned-state
// is a view over aggregate stats, never a stored fact, so it cannot drift
// between devices.
type AchievementService struct {
	Achievements AchievementStore
	Enrollments  EnrollmentStats
}

func NewAchievementService(achievements AchievementStore, enrollments EnrollmentStats) *AchievementService {
	return &AchievementService{
		Achievements: achievements,
		Enrollments:  enrollments,
	}
}

type EarnedAchievement struct {
	model.Achievement
	Earned bool `json:"earned"`
}

type UserAchievements struct {
	Stats        model.AchievementStats `json:"stats"`
	Achievements []EarnedAchievement    `json:"achievements"`
	EarnedPoints int                    `json:"earnedPoints"`
}

// GetUserAchievements evaluates every catalog badge against the user's
// aggregate stats.
func (s *AchievementService) GetUserAchievements(user *model.User) (*UserAchievements, error) {
	courses, lessons, err := s.Enrollments.StatsByUser(user.ID)
	if err != nil {
		return nil, err
	}

	stats := model.AchievementStats{
		CoursesCompleted: courses,
		LessonsCompleted: lessons,
		StreakDays:       user.LoginStreak,
	}

	catalog, err := s.Achievements.ListAll()
	if err != nil {
		return nil, err
	}

	result := &UserAchievements{
		Stats:        stats,
		Achievements: make([]EarnedAchievement, 0, len(catalog)),
	}
	for _, a := range catalog {
		earned := a.EarnedBy(stats)
		if earned {
			result.EarnedPoints += a.Points
		}
		result.Achievements = append(result.Achievements, EarnedAchievement{
			Achievement: a,
			Earned:      earned,
		})
	}

	return result, nil
}
