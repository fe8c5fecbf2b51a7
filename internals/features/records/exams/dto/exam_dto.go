package dto

import (
	"github.com/google/uuid"

	model "campushub_backend/internals/features/records/exams/model"
)

type CreateExamRequest struct {
	CourseID     uuid.UUID          `json:"course_id" validate:"required"`
	SemesterID   uuid.UUID          `json:"semester_id" validate:"required"`
	Title        string             `json:"title" validate:"required,max=120"`
	Type         model.ExamType     `json:"type" validate:"required"`
	Category     model.ExamCategory `json:"category" validate:"required"`
	MaxMarks     float64            `json:"max_marks" validate:"required,gt=0"`
	PassingMarks float64            `json:"passing_marks" validate:"gte=0"`
	Date         *string            `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateExamRequest struct {
	Title        *string             `json:"title,omitempty" validate:"omitempty,max=120"`
	Type         *model.ExamType     `json:"type,omitempty"`
	Category     *model.ExamCategory `json:"category,omitempty"`
	MaxMarks     *float64            `json:"max_marks,omitempty" validate:"omitempty,gt=0"`
	PassingMarks *float64            `json:"passing_marks,omitempty" validate:"omitempty,gte=0"`
	Date         *string             `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status       *model.ExamStatus   `json:"status,omitempty"`
}

type PublishResultsResponse struct {
	ExamID         uuid.UUID `json:"exam_id"`
	MarksPublished int64     `json:"marks_published"`
	ExamStatus     string    `json:"exam_status"`
}
