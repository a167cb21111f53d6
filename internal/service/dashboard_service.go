package service

import (
	"context"

	"kidlearn_backend/internal/model"
	"kidlearn_backend/internal/repository"
	"kidlearn_backend/internal/util"
)

// DashboardService assembles the per-user home view and the admin
// platform overview from the other modules' data.
type DashboardService struct {
	UserRepo       *repository.UserRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Achievements   *AchievementService
	Activity       *ActivityService
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	achievements *AchievementService,
	activity *ActivityService,
) *DashboardService {
	return &DashboardService{
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Achievements:   achievements,
		Activity:       activity,
	}
}

type UserDashboard struct {
	CoursesCompleted int                   `json:"coursesCompleted"`
	LessonsCompleted int                   `json:"lessonsCompleted"`
	LoginStreak      int                   `json:"loginStreak"`
	EarnedPoints     int                   `json:"earnedPoints"`
	Enrollments      []model.Enrollment    `json:"enrollments"`
	RecentActivity   []model.ActivityEntry `json:"recentActivity"`
}

type AdminOverview struct {
	TotalUsers     int64                 `json:"totalUsers"`
	TotalCourses   int64                 `json:"totalCourses"`
	AverageRating  float64               `json:"averageRating"`
	RecentActivity []model.ActivityEntry `json:"recentActivity"`
}

func (s *DashboardService) GetUserDashboard(ctx context.Context, user *model.User) (*UserDashboard, error) {
	courses, lessons, err := s.EnrollmentRepo.StatsByUser(user.ID)
	if err != nil {
		return nil, err
	}

	enrollments, err := s.EnrollmentRepo.ByUser(user.ID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.Achievements.GetUserAchievements(user)
	if err != nil {
		return nil, err
	}

	recent, err := s.Activity.QueryByUser(ctx, user.Email, 10)
	if err != nil {
		return nil, err
	}

	return &UserDashboard{
		CoursesCompleted: courses,
		LessonsCompleted: lessons,
		LoginStreak:      user.LoginStreak,
		EarnedPoints:     achievements.EarnedPoints,
		Enrollments:      enrollments,
		RecentActivity:   recent,
	}, nil
}

func (s *DashboardService) GetAdminOverview(ctx context.Context) (*AdminOverview, error) {
	users, err := s.UserRepo.Count()
	if err != nil {
		return nil, err
	}

	courses, err := s.CourseRepo.Count()
	if err != nil {
		return nil, err
	}

	avg, err := s.CourseRepo.AverageRating()
	if err != nil {
		return nil, err
	}

	recent, err := s.Activity.QueryAll(ctx, 20)
	if err != nil {
		return nil, err
	}

	return &AdminOverview{
		TotalUsers:     users,
		TotalCourses:   courses,
		AverageRating:  util.Round1(avg),
		RecentActivity: recent,
	}, nil
}
