package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSemesterRequest struct {
	ProgramID uuid.UUID  `json:"program_id" validate:"required"`
	Number    int        `json:"number" validate:"required,min=1,max=16"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent bool       `json:"is_current"`
}

type UpdateSemesterRequest struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	IsCurrent *bool      `json:"is_current,omitempty"`
}
