package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`

	DepartmentCode string `gorm:"size:20;not null;uniqueIndex:uq_departments_code;column:department_code" json:"department_code"`
	DepartmentName string `gorm:"size:120;not null;column:department_name" json:"department_name"`

	DepartmentCreatedAt time.Time      `gorm:"column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt *time.Time     `gorm:"column:department_updated_at;autoUpdateTime" json:"department_updated_at,omitempty"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
