package models

import (
	"time"

	"gorm.io/datatypes"
)

// Enrollment payment statuses
var PaymentStatuses = []string{"pending", "completed", "refunded"}

// Enrollment joins exactly one User and one Course. The composite unique
// index prevents duplicate enrollments; a violation surfaces as
// gorm.ErrDuplicatedKey and must fail the create with no partial write.
type Enrollment struct {
	ID                 uint                      `gorm:"primarykey" json:"id"`
	UserID             uint                      `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"user_id"`
	CourseID           uint                      `gorm:"not null;uniqueIndex:idx_enrollments_user_course" json:"course_id"`
	User               *User                     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Course             *Course                   `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	EnrollmentDate     time.Time                 `json:"enrollment_date"`
	ProgressPercentage float64                   `gorm:"default:0" json:"progress_percentage"`
	CompletedLessons   datatypes.JSONSlice[uint] `json:"completed_lessons"`
	LastAccessed       time.Time                 `json:"last_accessed"`
	CompletionDate     *time.Time                `json:"completion_date,omitempty"`
	Grade              *float64                  `json:"grade,omitempty"`
	CertificateIssued  bool                      `gorm:"default:false" json:"certificate_issued"`
	PaymentStatus      string                    `gorm:"default:'pending'" json:"payment_status"`
	Notes              string                    `gorm:"size:500" json:"notes"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}
