package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CreateAnnouncementRequest struct {
	Title    string         `json:"title" validate:"required,min=3,max=200"`
	Body     string         `json:"body" validate:"required"`
	Audience []string       `json:"audience" validate:"required,min=1,dive,oneof=admin faculty student"`
	CourseID *uuid.UUID     `json:"course_id,omitempty"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
	Publish  bool           `json:"publish"`
}

type UpdateAnnouncementRequest struct {
	Title    *string        `json:"title,omitempty" validate:"omitempty,min=3,max=200"`
	Body     *string        `json:"body,omitempty"`
	Audience []string       `json:"audience,omitempty" validate:"omitempty,min=1,dive,oneof=admin faculty student"`
	Metadata datatypes.JSON `json:"metadata,omitempty"`
	Publish  *bool          `json:"publish,omitempty"`
}
