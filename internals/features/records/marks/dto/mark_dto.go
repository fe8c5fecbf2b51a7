package dto

import (
	"github.com/google/uuid"
)

type EnterMarkRequest struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	ExamID        uuid.UUID `json:"exam_id" validate:"required"`
	MarksObtained float64   `json:"marks_obtained" validate:"gte=0"`
}

type BulkMarkEntry struct {
	StudentID     uuid.UUID `json:"student_id" validate:"required"`
	MarksObtained float64   `json:"marks_obtained" validate:"gte=0"`
}

type BulkMarksRequest struct {
	ExamID  uuid.UUID       `json:"exam_id" validate:"required"`
	Entries []BulkMarkEntry `json:"entries" validate:"required,min=1,dive"`
}
