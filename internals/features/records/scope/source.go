package scope

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCourseSource reads course ownership straight from the store.
type gormCourseSource struct {
	db *gorm.DB
}

func NewGormSource(db *gorm.DB) CourseSource {
	return &gormCourseSource{db: db}
}

func (s *gormCourseSource) OwnedCourseIDs(ctx context.Context, facultyID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.WithContext(ctx).
		Table("courses").
		Where("course_faculty_id = ? AND course_deleted_at IS NULL", facultyID).
		Pluck("course_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (s *gormCourseSource) CourseFacultyID(ctx context.Context, courseID uuid.UUID) (*uuid.UUID, error) {
	var row struct {
		CourseFacultyID *uuid.UUID `gorm:"column:course_faculty_id"`
	}
	err := s.db.WithContext(ctx).
		Table("courses").
		Select("course_faculty_id").
		Where("course_id = ? AND course_deleted_at IS NULL", courseID).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return row.CourseFacultyID, nil
}

func (s *gormCourseSource) ExamCourseID(ctx context.Context, examID uuid.UUID) (uuid.UUID, error) {
	var row struct {
		ExamCourseID uuid.UUID `gorm:"column:exam_course_id"`
	}
	err := s.db.WithContext(ctx).
		Table("exams").
		Select("exam_course_id").
		Where("exam_id = ? AND exam_deleted_at IS NULL", examID).
		Take(&row).Error
	if err != nil {
		return uuid.Nil, err
	}
	return row.ExamCourseID, nil
}
