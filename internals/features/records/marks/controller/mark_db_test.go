//go:build testutil
// +build testutil

package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/constants"
	enrollmentModel "campushub_backend/internals/features/records/enrollments/model"
	examModel "campushub_backend/internals/features/records/exams/model"
	model "campushub_backend/internals/features/records/marks/model"
	testdb "campushub_backend/internals/testutil/testdb"
)

// A bulk entry whose enrollment rollup fails must be reported as failed AND
// leave no mark behind: the upsert and the rollup commit together.
func TestBulkMarksFailedRowLeavesNoTrace(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	studentID := uuid.New()

	exam := examModel.ExamModel{
		ExamCourseID:     uuid.New(),
		ExamSemesterID:   uuid.New(),
		ExamTitle:        "Quiz 1",
		ExamType:         examModel.ExamTypeQuiz,
		ExamCategory:     examModel.ExamCategoryInternal,
		ExamMaxMarks:     20,
		ExamPassingMarks: 8,
		ExamStatus:       examModel.ExamStatusScheduled,
	}
	if err := h.DB.WithContext(ctx).Create(&exam).Error; err != nil {
		t.Fatal(err)
	}
	enrollment := enrollmentModel.EnrollmentModel{
		EnrollmentStudentID:  studentID,
		EnrollmentCourseID:   exam.ExamCourseID,
		EnrollmentSemesterID: exam.ExamSemesterID,
		EnrollmentStatus:     enrollmentModel.EnrollmentStatusEnrolled,
	}
	if err := h.DB.WithContext(ctx).Create(&enrollment).Error; err != nil {
		t.Fatal(err)
	}

	// Break the rollup step: every UPDATE on enrollments fails at the store.
	if err := h.DB.WithContext(ctx).Exec(
		`CREATE FUNCTION reject_enrollment_updates() RETURNS trigger LANGUAGE plpgsql AS
		 $$ BEGIN RAISE EXCEPTION 'enrollment updates rejected'; END $$`).Error; err != nil {
		t.Fatal(err)
	}
	if err := h.DB.WithContext(ctx).Exec(
		`CREATE TRIGGER reject_enrollment_updates BEFORE UPDATE ON enrollments
		 FOR EACH ROW EXECUTE FUNCTION reject_enrollment_updates()`).Error; err != nil {
		t.Fatal(err)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("user_role", constants.RoleAdmin)
		return c.Next()
	})
	ctl := NewMarkController(h.DB)
	app.Post("/marks/bulk", ctl.BulkMarks)

	body, _ := json.Marshal(fiber.Map{
		"exam_id": exam.ExamID,
		"entries": []fiber.Map{
			{"student_id": studentID, "marks_obtained": 15},
		},
	})
	req := httptest.NewRequest(fiber.MethodPost, "/marks/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 (row failures never abort the batch)", resp.StatusCode)
	}

	var envelope struct {
		Data struct {
			Successful int `json:"successful"`
			Updated    int `json:"updated"`
			Failed     []struct {
				Key    string `json:"key"`
				Reason string `json:"reason"`
			} `json:"failed"`
		} `json:"data"`
	}
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
	if envelope.Data.Successful != 0 || len(envelope.Data.Failed) != 1 {
		t.Fatalf("report = %+v, want the single entry failed", envelope.Data)
	}

	var rows int64
	if err := h.DB.WithContext(ctx).Model(&model.MarkModel{}).
		Where("mark_exam_id = ?", exam.ExamID).
		Count(&rows).Error; err != nil {
		t.Fatal(err)
	}
	if rows != 0 {
		t.Fatalf("mark rows after failed bulk entry = %d, want 0", rows)
	}

	// With the fault removed the same request lands and rolls up.
	if err := h.DB.WithContext(ctx).Exec(`DROP TRIGGER reject_enrollment_updates ON enrollments`).Error; err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(fiber.MethodPost, "/marks/bulk", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	raw, _ = io.ReadAll(resp.Body)
	envelope.Data.Failed = nil
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("decode response %s: %v", raw, err)
	}
	if envelope.Data.Successful != 1 || len(envelope.Data.Failed) != 0 {
		t.Fatalf("report after removing the fault = %+v, want 1 successful", envelope.Data)
	}
	var got enrollmentModel.EnrollmentModel
	if err := h.DB.WithContext(ctx).First(&got, "enrollment_id = ?", enrollment.EnrollmentID).Error; err != nil {
		t.Fatal(err)
	}
	if got.EnrollmentInternalMarks != 15 {
		t.Fatalf("internal marks after rollup = %v, want 15", got.EnrollmentInternalMarks)
	}
}
