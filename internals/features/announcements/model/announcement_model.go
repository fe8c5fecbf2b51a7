package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AnnouncementModel struct {
	AnnouncementID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`

	AnnouncementTitle string `gorm:"size:200;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody  string `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`

	// Roles the announcement is visible to (admin/faculty/student).
	AnnouncementAudience pq.StringArray `gorm:"type:text[];column:announcement_audience" json:"announcement_audience"`

	// Optional course scoping; nil means campus-wide.
	AnnouncementCourseID *uuid.UUID `gorm:"type:uuid;column:announcement_course_id" json:"announcement_course_id,omitempty"`

	AnnouncementMetadata datatypes.JSON `gorm:"column:announcement_metadata" json:"announcement_metadata,omitempty"`

	AnnouncementIsPublished bool      `gorm:"not null;default:false;column:announcement_is_published" json:"announcement_is_published"`
	AnnouncementCreatedBy   uuid.UUID `gorm:"type:uuid;not null;column:announcement_created_by" json:"announcement_created_by"`

	AnnouncementCreatedAt time.Time      `gorm:"column:announcement_created_at;autoCreateTime" json:"announcement_created_at"`
	AnnouncementUpdatedAt *time.Time     `gorm:"column:announcement_updated_at;autoUpdateTime" json:"announcement_updated_at,omitempty"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
