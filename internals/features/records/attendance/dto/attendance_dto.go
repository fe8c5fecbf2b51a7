package dto

import (
	"github.com/google/uuid"

	model "campushub_backend/internals/features/records/attendance/model"
)

type MarkAttendanceRequest struct {
	StudentID uuid.UUID              `json:"student_id" validate:"required"`
	CourseID  uuid.UUID              `json:"course_id" validate:"required"`
	Date      string                 `json:"date" validate:"required,datetime=2006-01-02"`
	Session   string                 `json:"session" validate:"required,max=30"`
	Status    model.AttendanceStatus `json:"status" validate:"required"`
}

type BulkAttendanceEntry struct {
	StudentID uuid.UUID              `json:"student_id" validate:"required"`
	Status    model.AttendanceStatus `json:"status" validate:"required"`
}

type BulkAttendanceRequest struct {
	CourseID uuid.UUID             `json:"course_id" validate:"required"`
	Date     string                `json:"date" validate:"required,datetime=2006-01-02"`
	Session  string                `json:"session" validate:"required,max=30"`
	Records  []BulkAttendanceEntry `json:"records" validate:"required,min=1,dive"`
}

type AttendancePercentageResponse struct {
	StudentID  uuid.UUID `json:"student_id"`
	CourseID   uuid.UUID `json:"course_id"`
	Attended   int64     `json:"attended"`
	Total      int64     `json:"total"`
	Percentage int       `json:"percentage"`
}
