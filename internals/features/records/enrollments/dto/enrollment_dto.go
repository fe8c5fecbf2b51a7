package dto

import (
	"github.com/google/uuid"

	model "campushub_backend/internals/features/records/enrollments/model"
)

type EnrollRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	SemesterID uuid.UUID `json:"semester_id" validate:"required"`
}

type BulkEnrollRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1"`
	CourseID   uuid.UUID   `json:"course_id" validate:"required"`
	SemesterID uuid.UUID   `json:"semester_id" validate:"required"`
}

type UpdateEnrollmentStatusRequest struct {
	Status model.EnrollmentStatus `json:"status" validate:"required"`
}
