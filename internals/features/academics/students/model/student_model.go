package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusGraduated StudentStatus = "graduated"
	StudentStatusDropped   StudentStatus = "dropped"
	StudentStatusSuspended StudentStatus = "suspended"
)

func (s StudentStatus) Valid() bool {
	switch s {
	case StudentStatusActive, StudentStatusGraduated, StudentStatusDropped, StudentStatusSuspended:
		return true
	default:
		return false
	}
}

type StudentModel struct {
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	StudentRollNumber string `gorm:"size:30;not null;uniqueIndex:uq_students_roll_number;column:student_roll_number" json:"student_roll_number"`
	StudentName       string `gorm:"size:120;not null;column:student_name" json:"student_name"`

	StudentProgramID    uuid.UUID `gorm:"type:uuid;not null;column:student_program_id" json:"student_program_id"`
	StudentDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:student_department_id" json:"student_department_id"`

	StudentCurrentSemester int           `gorm:"not null;default:1;column:student_current_semester" json:"student_current_semester"`
	StudentCGPA            float64       `gorm:"not null;default:0;column:student_cgpa" json:"student_cgpa"`
	StudentStatus          StudentStatus `gorm:"size:20;not null;default:'active';column:student_status" json:"student_status"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time     `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
