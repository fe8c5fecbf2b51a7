//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	model "campushub_backend/internals/features/records/attendance/model"
	batch "campushub_backend/internals/features/records/batch"
	testdb "campushub_backend/internals/testutil/testdb"
)

// Re-marking the same (student, course, date, session) must correct the row
// in place: one surviving row, carrying the last status, resolved by the
// unique index rather than a find-then-write.
func TestUpsertSameSessionLeavesOneRow(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	studentID := uuid.New()
	courseID := uuid.New()
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	first := model.AttendanceModel{
		AttendanceStudentID: studentID,
		AttendanceCourseID:  courseID,
		AttendanceDate:      date,
		AttendanceSession:   "morning",
		AttendanceStatus:    model.AttendanceStatusAbsent,
		AttendanceMarkedBy:  uuid.New(),
	}
	outcome, err := Upsert(h.DB, ctx, &first)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if outcome != batch.OutcomeCreated {
		t.Fatalf("first outcome = %v, want created", outcome)
	}

	second := model.AttendanceModel{
		AttendanceStudentID: studentID,
		AttendanceCourseID:  courseID,
		AttendanceDate:      date,
		AttendanceSession:   "morning",
		AttendanceStatus:    model.AttendanceStatusPresent,
		AttendanceMarkedBy:  uuid.New(),
	}
	outcome, err = Upsert(h.DB, ctx, &second)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if outcome != batch.OutcomeUpdated {
		t.Fatalf("second outcome = %v, want updated", outcome)
	}

	var rows []model.AttendanceModel
	if err := h.DB.WithContext(ctx).
		Where("attendance_student_id = ? AND attendance_course_id = ?", studentID, courseID).
		Find(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows for the session = %d, want 1", len(rows))
	}
	if rows[0].AttendanceStatus != model.AttendanceStatusPresent {
		t.Fatalf("status = %s, want the corrected value %s", rows[0].AttendanceStatus, model.AttendanceStatusPresent)
	}

	// The correction flows through to the counts: absent became present.
	attended, total, err := Counts(h.DB, ctx, studentID, courseID)
	if err != nil {
		t.Fatal(err)
	}
	if attended != 1 || total != 1 {
		t.Fatalf("counts = (%d, %d), want (1, 1)", attended, total)
	}
}
