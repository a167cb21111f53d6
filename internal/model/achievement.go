package model

// Achievement is a catalog row; whether a user has earned it is never
// persisted. Earned-state is a view computed from AchievementStats so it
// cannot drift between devices.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	Title    string `gorm:"size:100;not null" json:"title"`
	Icon     string `gorm:"size:255" json:"icon"`
	Category string `gorm:"size:100" json:"category"`
	Points   int    `gorm:"default:0" json:"points"`

	// Requirement thresholds; zero means the dimension is not required.
	RequiredCourses       int `gorm:"default:0" json:"requiredCourses"`
	RequiredLessons       int `gorm:"default:0" json:"requiredLessons"`
	RequiredPerfectScores int `gorm:"default:0" json:"requiredPerfectScores"`
	RequiredStreakDays    int `gorm:"default:0" json:"requiredStreakDays"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// AchievementStats aggregates the numbers requirements are checked against.
type AchievementStats struct {
	CoursesCompleted int `json:"coursesCompleted"`
	LessonsCompleted int `json:"lessonsCompleted"`
	PerfectScores    int `json:"perfectScores"`
	StreakDays       int `json:"streakDays"`
}

// EarnedBy reports whether every declared threshold is met.
func (a Achievement) EarnedBy(stats AchievementStats) bool {
	return stats.CoursesCompleted >= a.RequiredCourses &&
		stats.LessonsCompleted >= a.RequiredLessons &&
		stats.PerfectScores >= a.RequiredPerfectScores &&
		stats.StreakDays >= a.RequiredStreakDays
}
