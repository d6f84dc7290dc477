package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultCourseThumbnail = "https://via.placeholder.com/300x200"

// Course categories
var CourseCategories = []string{"programming", "design", "business", "marketing", "photography", "music", "other"}

// Course difficulties
var CourseDifficulties = []string{"beginner", "intermediate", "advanced"}

// Course statuses
var CourseStatuses = []string{"draft", "published", "archived"}

// Course is an offering record. InstructorID is a weak reference to a User:
// no FK constraint is created and deleting the user leaves it dangling.
// EnrollmentCount is persisted for compatibility but no code path maintains
// it (known gap carried over from the original system).
type Course struct {
	ID              uint                        `gorm:"primarykey" json:"id"`
	Title           string                      `gorm:"not null" json:"title"`
	Description     string                      `gorm:"size:2000;not null" json:"description"`
	InstructorID    uint                        `gorm:"index;not null" json:"instructor_id"`
	Instructor      *User                       `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Category        string                      `gorm:"not null" json:"category"`
	Difficulty      string                      `gorm:"not null" json:"difficulty"`
	DurationHours   float64                     `json:"duration_hours"`
	Price           float64                     `gorm:"default:0" json:"price"`
	Syllabus        datatypes.JSONSlice[string] `json:"syllabus"`
	Requirements    datatypes.JSONSlice[string] `json:"requirements"`
	ThumbnailURL    string                      `json:"thumbnail_url"`
	EnrollmentCount int                         `gorm:"default:0" json:"enrollment_count"`
	Rating          float64                     `gorm:"default:0" json:"rating"`
	Status          string                      `gorm:"default:'draft'" json:"status"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}
