package dto

import (
	"github.com/google/uuid"

	"campushub_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	RollNumber   string    `json:"roll_number" validate:"required,min=2,max=30"`
	Name         string    `json:"name" validate:"required,min=3,max=120"`
	ProgramID    uuid.UUID `json:"program_id" validate:"required"`
	DepartmentID uuid.UUID `json:"department_id" validate:"required"`
}

type UpdateStudentRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	CurrentSemester *int    `json:"current_semester,omitempty" validate:"omitempty,min=1,max=16"`
}

type UpdateStudentStatusRequest struct {
	Status model.StudentStatus `json:"status" validate:"required"`
}
