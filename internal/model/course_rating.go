package model

// CourseRating holds one row per (userEmail, courseId) pair; resubmission
// mutates the row in place and keeps the original CreatedAt.
// swagger:model CourseRating
type CourseRating struct {
	BaseModel
	UserEmail string `gorm:"size:100;not null;index:idx_user_course_rating,unique" json:"userEmail"`
	CourseID  uint   `gorm:"not null;index:idx_user_course_rating,unique" json:"courseId"`
	Rating    int    `gorm:"not null;check:rating>=1 AND rating<=5" json:"rating"`
	Review    string `gorm:"size:500" json:"review"`
}

func (CourseRating) TableName() string {
	return "course_ratings"
}
