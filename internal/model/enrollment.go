package model

import "time"

// Enrollment mirrors a user's standing in one course: progress percent,
// completion flag and how many lessons they have finished. Kept in sync by
// the progress service whenever a lesson completion is recorded.
// swagger:model Enrollment
type Enrollment struct {
	BaseModel
	UserID           uint      `gorm:"not null;index:idx_user_course_enrollment,unique" json:"userId"`
	CourseID         uint      `gorm:"not null;index:idx_user_course_enrollment,unique" json:"courseId"`
	Progress         int       `gorm:"default:0" json:"progress"`
	Completed        bool      `gorm:"default:false" json:"completed"`
	LessonsCompleted int       `gorm:"default:0" json:"lessonsCompleted"`
	EnrolledAt       time.Time `json:"enrolledAt"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}
