package model

import (
	"time"

	"github.com/google/uuid"
)

// MarkModel is one fact per (student, exam). Percentage, grade and
// is_passed are derived on every save, never taken from the request.
type MarkModel struct {
	MarkID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:mark_id" json:"mark_id"`

	MarkStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_marks_student_exam;column:mark_student_id" json:"mark_student_id"`
	MarkExamID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_marks_student_exam;column:mark_exam_id" json:"mark_exam_id"`

	MarkCourseID uuid.UUID `gorm:"type:uuid;not null;column:mark_course_id" json:"mark_course_id"`

	MarkObtained float64 `gorm:"not null;column:mark_obtained" json:"mark_obtained"`
	// Copied from the exam at write time so the row stays self-describing.
	MarkMaxMarks float64 `gorm:"not null;column:mark_max_marks" json:"mark_max_marks"`

	MarkPercentage float64 `gorm:"not null;column:mark_percentage" json:"mark_percentage"`
	MarkGrade      string  `gorm:"size:4;not null;column:mark_grade" json:"mark_grade"`
	// Nil when the exam could not be resolved at write time.
	MarkIsPassed *bool `gorm:"column:mark_is_passed" json:"mark_is_passed,omitempty"`

	MarkIsPublished bool      `gorm:"not null;default:false;column:mark_is_published" json:"mark_is_published"`
	MarkEnteredBy   uuid.UUID `gorm:"type:uuid;not null;column:mark_entered_by" json:"mark_entered_by"`

	MarkCreatedAt time.Time  `gorm:"column:mark_created_at;autoCreateTime" json:"mark_created_at"`
	MarkUpdatedAt *time.Time `gorm:"column:mark_updated_at;autoUpdateTime" json:"mark_updated_at,omitempty"`
}

func (MarkModel) TableName() string { return "marks" }
