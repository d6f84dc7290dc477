package models

import (
	"time"

	"gorm.io/datatypes"
)

// LessonResource is a supplementary material attached to a lesson.
type LessonResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// QuizQuestion is an inline quiz item on a lesson.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Lesson is a content unit belonging to exactly one Course. Order drives
// display sequencing within a course; uniqueness per course is not enforced.
// Deleting the owning course does not cascade here.
type Lesson struct {
	ID              uint                                `gorm:"primarykey" json:"id"`
	CourseID        uint                                `gorm:"index;not null" json:"course_id"`
	Course          *Course                             `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Title           string                              `gorm:"not null" json:"title"`
	Description     string                              `gorm:"size:1000;not null" json:"description"`
	Content         string                              `gorm:"type:text;not null" json:"content"`
	VideoURL        string                              `json:"video_url"`
	DurationMinutes int                                 `gorm:"not null" json:"duration_minutes"`
	Order           int                                 `gorm:"column:sort_order;not null" json:"order"`
	Resources       datatypes.JSONSlice[LessonResource] `json:"resources"`
	QuizQuestions   datatypes.JSONSlice[QuizQuestion]   `json:"quiz_questions"`
	CreatedAt       time.Time                           `json:"created_at"`
	UpdatedAt       time.Time                           `json:"updated_at"`
}
