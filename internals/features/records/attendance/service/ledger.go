package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "campushub_backend/internals/features/records/attendance/model"
	batch "campushub_backend/internals/features/records/batch"
)

var attendedStatuses = []model.AttendanceStatus{
	model.AttendanceStatusPresent,
	model.AttendanceStatusLate,
}

// Upsert writes one attendance fact. The insert resolves against the unique
// (student, course, date, session) index in a single statement, so re-marking
// a session corrects the row instead of duplicating it even under concurrent
// requests. The returned outcome is informational (created vs corrected).
func Upsert(db *gorm.DB, ctx context.Context, rec *model.AttendanceModel) (batch.Outcome, error) {
	var existing int64
	err := db.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_course_id = ? AND attendance_date = ? AND attendance_session = ?",
			rec.AttendanceStudentID, rec.AttendanceCourseID, rec.AttendanceDate, rec.AttendanceSession).
		Count(&existing).Error
	if err != nil {
		return batch.OutcomeCreated, err
	}

	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "attendance_student_id"},
			{Name: "attendance_course_id"},
			{Name: "attendance_date"},
			{Name: "attendance_session"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_status",
			"attendance_marked_by",
			"attendance_updated_at",
		}),
	}).Create(rec).Error
	if err != nil {
		return batch.OutcomeCreated, err
	}

	if existing > 0 {
		return batch.OutcomeUpdated, nil
	}
	return batch.OutcomeCreated, nil
}

// Counts returns (attended, total) for a (student, course) pair; present and
// late both count as attended.
func Counts(db *gorm.DB, ctx context.Context, studentID, courseID uuid.UUID) (int64, int64, error) {
	base := db.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_course_id = ?", studentID, courseID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	var attended int64
	err := db.WithContext(ctx).Model(&model.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_course_id = ?", studentID, courseID).
		Where("attendance_status IN ?", attendedStatuses).
		Count(&attended).Error
	if err != nil {
		return 0, 0, err
	}
	return attended, total, nil
}

// PercentageFor computes the live ledger percentage for a (student, course).
func PercentageFor(db *gorm.DB, ctx context.Context, studentID, courseID uuid.UUID) (int, error) {
	attended, total, err := Counts(db, ctx, studentID, courseID)
	if err != nil {
		return 0, err
	}
	return model.Percentage(attended, total), nil
}

// RollupEnrollment refreshes the denormalized attendance percentage on the
// student's enrollment rows for the course.
func RollupEnrollment(db *gorm.DB, ctx context.Context, studentID, courseID uuid.UUID) error {
	pct, err := PercentageFor(db, ctx, studentID, courseID)
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Table("enrollments").
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		UpdateColumn("enrollment_attendance_percent", pct).Error
}
