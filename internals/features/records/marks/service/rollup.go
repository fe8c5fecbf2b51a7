package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "campushub_backend/internals/features/records/marks/model"
)

type markTotals struct {
	Internal float64 `gorm:"column:internal_obtained"`
	External float64 `gorm:"column:external_obtained"`
	Obtained float64 `gorm:"column:total_obtained"`
	Max      float64 `gorm:"column:total_max"`
}

// RollupEnrollment refreshes the denormalized mark fields on the student's
// enrollment rows for the course: internal/external/total marks, letter
// grade and grade points, all derived from the live marks.
func RollupEnrollment(db *gorm.DB, ctx context.Context, studentID, courseID uuid.UUID) error {
	var t markTotals
	err := db.WithContext(ctx).Table("marks").
		Select(`
			COALESCE(SUM(mark_obtained) FILTER (WHERE exam_category = 'internal'), 0) AS internal_obtained,
			COALESCE(SUM(mark_obtained) FILTER (WHERE exam_category = 'external'), 0) AS external_obtained,
			COALESCE(SUM(mark_obtained), 0) AS total_obtained,
			COALESCE(SUM(mark_max_marks), 0) AS total_max`).
		Joins("JOIN exams ON exams.exam_id = marks.mark_exam_id").
		Where("mark_student_id = ? AND mark_course_id = ?", studentID, courseID).
		Take(&t).Error
	if err != nil {
		return err
	}

	var rawPct float64
	if t.Max > 0 {
		rawPct = t.Obtained / t.Max * 100
	}
	grade := model.GradeFor(rawPct)

	return db.WithContext(ctx).Table("enrollments").
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		Updates(map[string]interface{}{
			"enrollment_internal_marks": t.Internal,
			"enrollment_external_marks": t.External,
			"enrollment_total_marks":    t.Obtained,
			"enrollment_grade":          grade,
			"enrollment_grade_points":   model.GradePointsFor(grade),
		}).Error
}
