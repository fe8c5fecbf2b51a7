package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExamType string

const (
	ExamTypeQuiz       ExamType = "quiz"
	ExamTypeAssignment ExamType = "assignment"
	ExamTypeMidTerm    ExamType = "midterm"
	ExamTypeEndTerm    ExamType = "endterm"
	ExamTypeLab        ExamType = "lab"
	ExamTypeProject    ExamType = "project"
	ExamTypeViva       ExamType = "viva"
	ExamTypePractical  ExamType = "practical"
)

func (t ExamType) Valid() bool {
	switch t {
	case ExamTypeQuiz, ExamTypeAssignment, ExamTypeMidTerm, ExamTypeEndTerm,
		ExamTypeLab, ExamTypeProject, ExamTypeViva, ExamTypePractical:
		return true
	default:
		return false
	}
}

type ExamCategory string

const (
	ExamCategoryInternal ExamCategory = "internal"
	ExamCategoryExternal ExamCategory = "external"
)

func (c ExamCategory) Valid() bool {
	return c == ExamCategoryInternal || c == ExamCategoryExternal
}

type ExamStatus string

const (
	ExamStatusScheduled ExamStatus = "scheduled"
	ExamStatusOngoing   ExamStatus = "ongoing"
	ExamStatusCompleted ExamStatus = "completed"
	ExamStatusCancelled ExamStatus = "cancelled"
)

func (s ExamStatus) Valid() bool {
	switch s {
	case ExamStatusScheduled, ExamStatusOngoing, ExamStatusCompleted, ExamStatusCancelled:
		return true
	default:
		return false
	}
}

type ExamModel struct {
	ExamID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_id" json:"exam_id"`

	ExamCourseID   uuid.UUID `gorm:"type:uuid;not null;column:exam_course_id" json:"exam_course_id"`
	ExamSemesterID uuid.UUID `gorm:"type:uuid;not null;column:exam_semester_id" json:"exam_semester_id"`

	ExamTitle    string       `gorm:"size:120;not null;column:exam_title" json:"exam_title"`
	ExamType     ExamType     `gorm:"size:20;not null;column:exam_type" json:"exam_type"`
	ExamCategory ExamCategory `gorm:"size:20;not null;column:exam_category" json:"exam_category"`

	// Invariant: passing <= max, rejected at write time before persistence.
	ExamMaxMarks     float64 `gorm:"not null;column:exam_max_marks" json:"exam_max_marks"`
	ExamPassingMarks float64 `gorm:"not null;column:exam_passing_marks" json:"exam_passing_marks"`

	ExamDate   *time.Time `gorm:"type:date;column:exam_date" json:"exam_date,omitempty"`
	ExamStatus ExamStatus `gorm:"size:20;not null;default:'scheduled';column:exam_status" json:"exam_status"`

	// Student visibility gate for the exam's marks.
	ExamIsPublished bool `gorm:"not null;default:false;column:exam_is_published" json:"exam_is_published"`

	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
	ExamUpdatedAt *time.Time     `gorm:"column:exam_updated_at;autoUpdateTime" json:"exam_updated_at,omitempty"`
	ExamDeletedAt gorm.DeletedAt `gorm:"column:exam_deleted_at;index" json:"exam_deleted_at,omitempty"`
}

func (ExamModel) TableName() string { return "exams" }
