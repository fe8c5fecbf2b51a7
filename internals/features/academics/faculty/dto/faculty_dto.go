package dto

import "github.com/google/uuid"

type CreateFacultyRequest struct {
	EmployeeNumber string    `json:"employee_number" validate:"required,min=2,max=30"`
	Name           string    `json:"name" validate:"required,min=3,max=120"`
	DepartmentID   uuid.UUID `json:"department_id" validate:"required"`
	Designation    string    `json:"designation" validate:"omitempty,max=60"`
}

type UpdateFacultyRequest struct {
	Name         *string    `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	Designation  *string    `json:"designation,omitempty" validate:"omitempty,max=60"`
}
