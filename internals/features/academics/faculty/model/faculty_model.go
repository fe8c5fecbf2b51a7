package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FacultyModel struct {
	FacultyID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:faculty_id" json:"faculty_id"`

	FacultyEmployeeNumber string    `gorm:"size:30;not null;uniqueIndex:uq_faculty_employee_number;column:faculty_employee_number" json:"faculty_employee_number"`
	FacultyName           string    `gorm:"size:120;not null;column:faculty_name" json:"faculty_name"`
	FacultyDepartmentID   uuid.UUID `gorm:"type:uuid;not null;column:faculty_department_id" json:"faculty_department_id"`
	FacultyDesignation    string    `gorm:"size:60;column:faculty_designation" json:"faculty_designation"`

	FacultyCreatedAt time.Time      `gorm:"column:faculty_created_at;autoCreateTime" json:"faculty_created_at"`
	FacultyUpdatedAt *time.Time     `gorm:"column:faculty_updated_at;autoUpdateTime" json:"faculty_updated_at,omitempty"`
	FacultyDeletedAt gorm.DeletedAt `gorm:"column:faculty_deleted_at;index" json:"faculty_deleted_at,omitempty"`
}

func (FacultyModel) TableName() string { return "faculty" }
