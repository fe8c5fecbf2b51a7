package dto

type CreateDepartmentRequest struct {
	Code string `json:"code" validate:"required,min=2,max=20"`
	Name string `json:"name" validate:"required,min=3,max=120"`
}

type UpdateDepartmentRequest struct {
	Code *string `json:"code,omitempty" validate:"omitempty,min=2,max=20"`
	Name *string `json:"name,omitempty" validate:"omitempty,min=3,max=120"`
}
