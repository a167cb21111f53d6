package model

import "time"

type ActivityAction string

const (
	ActionLogin           ActivityAction = "login"
	ActionLessonCompleted ActivityAction = "lesson_completed"
)

// ActivityEntry is one line of the recent-activity feed. Entries live in
// the key-value store under a single capped list, not in MySQL.
type ActivityEntry struct {
	ID          string         `json:"id"`
	UserEmail   string         `json:"userEmail"`
	UserName    string         `json:"userName"`
	Role        UserRole       `json:"role"`
	Action      ActivityAction `json:"action"`
	CourseID    uint           `json:"courseId,omitempty"`
	LessonID    int            `json:"lessonId,omitempty"`
	LessonTitle string         `json:"lessonTitle,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}
