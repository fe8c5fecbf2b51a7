package dto

import "github.com/google/uuid"

type CreateCourseRequest struct {
	Code         string     `json:"code" validate:"required,min=2,max=20"`
	Name         string     `json:"name" validate:"required,min=3,max=120"`
	DepartmentID uuid.UUID  `json:"department_id" validate:"required"`
	ProgramID    uuid.UUID  `json:"program_id" validate:"required"`
	SemesterID   uuid.UUID  `json:"semester_id" validate:"required"`
	Credits      int        `json:"credits" validate:"required,min=1,max=10"`
	FacultyID    *uuid.UUID `json:"faculty_id,omitempty"`
	MaxCapacity  int        `json:"max_capacity" validate:"omitempty,min=1,max=500"`
}

type UpdateCourseRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	Credits     *int    `json:"credits,omitempty" validate:"omitempty,min=1,max=10"`
	MaxCapacity *int    `json:"max_capacity,omitempty" validate:"omitempty,min=1,max=500"`
}

type AssignFacultyRequest struct {
	// Nil clears the assignment and leaves the course unowned.
	FacultyID *uuid.UUID `json:"faculty_id"`
}
