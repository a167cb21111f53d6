package model

type CourseLevel string

const (
	Beginner     CourseLevel = "Beginner"
	Intermediate CourseLevel = "Intermediate"
	Advanced     CourseLevel = "Advanced"
)

type CourseStatus string

const (
	Published CourseStatus = "Published"
	Draft     CourseStatus = "Draft"
)

// Course carries the catalog entry. Rating is derived: it always equals
// the one-decimal mean of the course's rating rows, 0 when there are none.
// swagger:model Course
type Course struct {
	BaseModel
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	Category    string       `gorm:"size:100;index" json:"category"`
	Level       CourseLevel  `gorm:"type:enum('Beginner','Intermediate','Advanced');default:'Beginner'" json:"level"`
	Lessons     int          `gorm:"default:0" json:"lessons"`
	Rating      float64      `gorm:"default:0" json:"rating"`
	Status      CourseStatus `gorm:"type:enum('Published','Draft');default:'Draft';index" json:"status"`
	Icon        string       `gorm:"size:255" json:"icon"`
}

func (Course) TableName() string {
	return "courses"
}
