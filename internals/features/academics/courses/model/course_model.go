package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	// Code is unique per semester offering, not globally.
	CourseCode       string    `gorm:"size:20;not null;uniqueIndex:uq_courses_code_semester;column:course_code" json:"course_code"`
	CourseSemesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_courses_code_semester;column:course_semester_id" json:"course_semester_id"`

	CourseName         string    `gorm:"size:120;not null;column:course_name" json:"course_name"`
	CourseDepartmentID uuid.UUID `gorm:"type:uuid;not null;column:course_department_id" json:"course_department_id"`
	CourseProgramID    uuid.UUID `gorm:"type:uuid;not null;column:course_program_id" json:"course_program_id"`
	CourseCredits      int       `gorm:"not null;default:3;column:course_credits" json:"course_credits"`

	// Current owner; sole basis for write authorization on the course's
	// attendance, exams and marks. Nullable and reassignable.
	CourseFacultyID *uuid.UUID `gorm:"type:uuid;column:course_faculty_id" json:"course_faculty_id,omitempty"`

	CourseMaxCapacity   int `gorm:"not null;default:60;column:course_max_capacity" json:"course_max_capacity"`
	CourseEnrolledCount int `gorm:"not null;default:0;column:course_enrolled_count" json:"course_enrolled_count"`

	CourseCreatedAt time.Time      `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	CourseUpdatedAt *time.Time     `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at,omitempty"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }
