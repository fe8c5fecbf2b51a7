package model

import (
	"time"

	"github.com/google/uuid"
)

type EnrollmentStatus string

const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "enrolled"
	EnrollmentStatusDropped   EnrollmentStatus = "dropped"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
	EnrollmentStatusWithdrawn EnrollmentStatus = "withdrawn"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusEnrolled, EnrollmentStatusDropped, EnrollmentStatusCompleted, EnrollmentStatusWithdrawn:
		return true
	default:
		return false
	}
}

// EnrollmentModel links (student, course, semester); the triple is the
// natural key and carries a unique index, which is what makes concurrent
// enroll calls for the same triple resolve to one surviving row.
type EnrollmentModel struct {
	EnrollmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:enrollment_id" json:"enrollment_id"`

	EnrollmentStudentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course_semester;column:enrollment_student_id" json:"enrollment_student_id"`
	EnrollmentCourseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course_semester;column:enrollment_course_id" json:"enrollment_course_id"`
	EnrollmentSemesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_enrollments_student_course_semester;column:enrollment_semester_id" json:"enrollment_semester_id"`

	EnrollmentStatus EnrollmentStatus `gorm:"size:20;not null;default:'enrolled';column:enrollment_status" json:"enrollment_status"`

	// Denormalized rollups, maintained by the attendance ledger and the
	// grading engine on every relevant write.
	EnrollmentAttendancePercent float64 `gorm:"not null;default:0;column:enrollment_attendance_percent" json:"enrollment_attendance_percent"`
	EnrollmentInternalMarks     float64 `gorm:"not null;default:0;column:enrollment_internal_marks" json:"enrollment_internal_marks"`
	EnrollmentExternalMarks     float64 `gorm:"not null;default:0;column:enrollment_external_marks" json:"enrollment_external_marks"`
	EnrollmentTotalMarks        float64 `gorm:"not null;default:0;column:enrollment_total_marks" json:"enrollment_total_marks"`
	EnrollmentGrade             string  `gorm:"size:4;column:enrollment_grade" json:"enrollment_grade"`
	EnrollmentGradePoints       float64 `gorm:"not null;default:0;column:enrollment_grade_points" json:"enrollment_grade_points"`

	EnrollmentCreatedAt time.Time  `gorm:"column:enrollment_created_at;autoCreateTime" json:"enrollment_created_at"`
	EnrollmentUpdatedAt *time.Time `gorm:"column:enrollment_updated_at;autoUpdateTime" json:"enrollment_updated_at,omitempty"`
}

func (EnrollmentModel) TableName() string { return "enrollments" }
