package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SemesterModel struct {
	SemesterID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:semester_id" json:"semester_id"`

	SemesterProgramID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_semesters_program_number;column:semester_program_id" json:"semester_program_id"`
	SemesterNumber    int       `gorm:"not null;uniqueIndex:uq_semesters_program_number;column:semester_number" json:"semester_number"`

	SemesterStartDate *time.Time `gorm:"type:date;column:semester_start_date" json:"semester_start_date,omitempty"`
	SemesterEndDate   *time.Time `gorm:"type:date;column:semester_end_date" json:"semester_end_date,omitempty"`
	SemesterIsCurrent bool       `gorm:"not null;default:false;column:semester_is_current" json:"semester_is_current"`

	SemesterCreatedAt time.Time      `gorm:"column:semester_created_at;autoCreateTime" json:"semester_created_at"`
	SemesterUpdatedAt *time.Time     `gorm:"column:semester_updated_at;autoUpdateTime" json:"semester_updated_at,omitempty"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"semester_deleted_at,omitempty"`
}

func (SemesterModel) TableName() string { return "semesters" }
