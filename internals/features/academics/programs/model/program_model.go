package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramModel struct {
	ProgramID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:program_id" json:"program_id"`

	ProgramCode         string    `gorm:"size:20;not null;uniqueIndex:uq_programs_code;column:program_code" json:"program_code"`
	ProgramName         string    `gorm:"size:120;not null;column:program_name" json:"program_name"`
	ProgramDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:program_department_id" json:"program_department_id"`

	// Length of the program in semesters.
	ProgramDurationSemesters int `gorm:"not null;default:8;column:program_duration_semesters" json:"program_duration_semesters"`

	ProgramCreatedAt time.Time      `gorm:"column:program_created_at;autoCreateTime" json:"program_created_at"`
	ProgramUpdatedAt *time.Time     `gorm:"column:program_updated_at;autoUpdateTime" json:"program_updated_at,omitempty"`
	ProgramDeletedAt gorm.DeletedAt `gorm:"column:program_deleted_at;index" json:"program_deleted_at,omitempty"`
}

func (ProgramModel) TableName() string { return "programs" }
