package model

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate, AttendanceStatusExcused:
		return true
	default:
		return false
	}
}

// CountsAsAttended reports whether the status contributes to the
// attendance percentage (present and late both do).
func (s AttendanceStatus) CountsAsAttended() bool {
	return s == AttendanceStatusPresent || s == AttendanceStatusLate
}

// AttendanceModel is one fact per (student, course, date, session).
// Re-marking the same session overwrites status and marked_by in place,
// enforced by the unique index rather than an application-side lookup.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_natural_key;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceCourseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_natural_key;column:attendance_course_id" json:"attendance_course_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_natural_key;column:attendance_date" json:"attendance_date"`
	AttendanceSession   string    `gorm:"size:30;not null;uniqueIndex:uq_attendance_natural_key;column:attendance_session" json:"attendance_session"`

	AttendanceStatus   AttendanceStatus `gorm:"size:20;not null;column:attendance_status" json:"attendance_status"`
	AttendanceMarkedBy uuid.UUID        `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`

	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendance_records" }
