package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	UserEmail    string `gorm:"size:120;not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`
	UserPassword string `gorm:"size:100;not null;column:user_password" json:"-"`
	UserRole     string `gorm:"size:20;not null;column:user_role" json:"user_role"`

	// Profile link for faculty / student roles.
	UserFacultyID *uuid.UUID `gorm:"type:uuid;column:user_faculty_id" json:"user_faculty_id,omitempty"`
	UserStudentID *uuid.UUID `gorm:"type:uuid;column:user_student_id" json:"user_student_id,omitempty"`

	UserIsActive bool `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time     `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string { return "users" }
