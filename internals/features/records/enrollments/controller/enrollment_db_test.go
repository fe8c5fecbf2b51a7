//go:build testutil
// +build testutil

package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	courseModel "campushub_backend/internals/features/academics/courses/model"
	batch "campushub_backend/internals/features/records/batch"
	model "campushub_backend/internals/features/records/enrollments/model"
	testdb "campushub_backend/internals/testutil/testdb"
)

// A bulk enrollment holding one already-enrolled student must yield N-1
// successes and exactly one duplicate failure, with the unique triple index
// deciding the duplicate, and the capacity counter reflecting only the rows
// that actually landed.
func TestBulkEnrollReportsDuplicatesPerRow(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	semesterID := uuid.New()
	course := courseModel.CourseModel{
		CourseCode:         "CS101",
		CourseSemesterID:   semesterID,
		CourseName:         "Intro to Programming",
		CourseDepartmentID: uuid.New(),
		CourseProgramID:    uuid.New(),
	}
	if err := h.DB.WithContext(ctx).Create(&course).Error; err != nil {
		t.Fatal(err)
	}

	students := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	if _, err := insertEnrollment(h.DB, ctx, students[0], course.CourseID, semesterID); err != nil {
		t.Fatalf("seed enrollment: %v", err)
	}

	res := batch.Run(students,
		func(id uuid.UUID) string { return id.String() },
		func(id uuid.UUID) (*model.EnrollmentModel, batch.Outcome, error) {
			row, err := insertEnrollment(h.DB, ctx, id, course.CourseID, semesterID)
			return row, batch.OutcomeCreated, err
		})

	if got := len(res.Successful); got != 3 {
		t.Fatalf("successful = %d, want 3", got)
	}
	if got := len(res.Failures); got != 1 {
		t.Fatalf("failures = %d, want 1", got)
	}
	if res.Failures[0].Key != students[0].String() {
		t.Fatalf("failed key = %s, want the pre-enrolled student %s", res.Failures[0].Key, students[0])
	}
	if res.Failures[0].Reason != ErrDuplicateEnrollment.Error() {
		t.Fatalf("failure reason = %q, want %q", res.Failures[0].Reason, ErrDuplicateEnrollment.Error())
	}

	var rows int64
	if err := h.DB.WithContext(ctx).Model(&model.EnrollmentModel{}).
		Where("enrollment_course_id = ?", course.CourseID).
		Count(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if rows != 4 {
		t.Fatalf("enrollment rows = %d, want 4 (the duplicate must leave no extra row)", rows)
	}

	var got courseModel.CourseModel
	if err := h.DB.WithContext(ctx).First(&got, "course_id = ?", course.CourseID).Error; err != nil {
		t.Fatal(err)
	}
	if got.CourseEnrolledCount != 4 {
		t.Fatalf("enrolled count = %d, want 4", got.CourseEnrolledCount)
	}
}

// Two single enrolls for the same triple: second one is ErrDuplicateEnrollment.
func TestInsertEnrollmentDuplicateTriple(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	studentID, courseID, semesterID := uuid.New(), uuid.New(), uuid.New()

	if _, err := insertEnrollment(h.DB, ctx, studentID, courseID, semesterID); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	_, err = insertEnrollment(h.DB, ctx, studentID, courseID, semesterID)
	if !errors.Is(err, ErrDuplicateEnrollment) {
		t.Fatalf("second enroll err = %v, want ErrDuplicateEnrollment", err)
	}
}
