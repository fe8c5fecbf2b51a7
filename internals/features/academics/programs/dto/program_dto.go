package dto

import "github.com/google/uuid"

type CreateProgramRequest struct {
	Code              string    `json:"code" validate:"required,min=2,max=20"`
	Name              string    `json:"name" validate:"required,min=3,max=120"`
	DepartmentID      uuid.UUID `json:"department_id" validate:"required"`
	DurationSemesters int       `json:"duration_semesters" validate:"required,min=1,max=16"`
}

type UpdateProgramRequest struct {
	Code              *string    `json:"code,omitempty" validate:"omitempty,min=2,max=20"`
	Name              *string    `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	DepartmentID      *uuid.UUID `json:"department_id,omitempty"`
	DurationSemesters *int       `json:"duration_semesters,omitempty" validate:"omitempty,min=1,max=16"`
}
