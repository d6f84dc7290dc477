package models

import (
	"time"

	"gorm.io/datatypes"
)

const DefaultProfilePicture = "https://via.placeholder.com/150"

// User roles
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Certification records a certificate issued to a user for a course.
type Certification struct {
	CourseID       uint       `json:"course_id"`
	IssuedDate     *time.Time `json:"issued_date,omitempty"`
	CertificateURL string     `json:"certificate_url"`
}

// User is an identity record. Emails are stored lowercased and the store
// enforces uniqueness; course references are weak ID sets kept as JSON.
type User struct {
	ID               uint                               `gorm:"primarykey" json:"id"`
	Name             string                             `gorm:"not null" json:"name"`
	Email            string                             `gorm:"uniqueIndex;not null" json:"email"`
	Role             string                             `gorm:"default:'student'" json:"role"`
	EnrolledCourses  datatypes.JSONSlice[uint]          `json:"enrolled_courses"`
	CompletedCourses datatypes.JSONSlice[uint]          `json:"completed_courses"`
	Certifications   datatypes.JSONSlice[Certification] `json:"certifications"`
	ProfilePicture   string                             `json:"profile_picture"`
	Bio              string                             `gorm:"size:500" json:"bio"`
	JoinDate         time.Time                          `json:"join_date"`
	LastLogin        time.Time                          `json:"last_login"`
	CreatedAt        time.Time                          `json:"created_at"`
	UpdatedAt        time.Time                          `json:"updated_at"`
}
