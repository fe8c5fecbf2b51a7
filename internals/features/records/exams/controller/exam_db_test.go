//go:build testutil
// +build testutil

package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/constants"
	model "campushub_backend/internals/features/records/exams/model"
	markModel "campushub_backend/internals/features/records/marks/model"
	testdb "campushub_backend/internals/testutil/testdb"
)

func seedExamWithMarks(t *testing.T, h *testdb.DBHandle, n int) model.ExamModel {
	t.Helper()
	ctx := context.Background()

	exam := model.ExamModel{
		ExamCourseID:     uuid.New(),
		ExamSemesterID:   uuid.New(),
		ExamTitle:        "Midterm",
		ExamType:         model.ExamTypeMidTerm,
		ExamCategory:     model.ExamCategoryInternal,
		ExamMaxMarks:     50,
		ExamPassingMarks: 20,
		ExamStatus:       model.ExamStatusScheduled,
	}
	if err := h.DB.WithContext(ctx).Create(&exam).Error; err != nil {
		t.Fatal(err)
	}
	for i := 0; i < n; i++ {
		passed := true
		mark := markModel.MarkModel{
			MarkStudentID:  uuid.New(),
			MarkExamID:     exam.ExamID,
			MarkCourseID:   exam.ExamCourseID,
			MarkObtained:   40,
			MarkMaxMarks:   50,
			MarkPercentage: 80,
			MarkGrade:      "A",
			MarkIsPassed:   &passed,
			MarkEnteredBy:  uuid.New(),
		}
		if err := h.DB.WithContext(ctx).Create(&mark).Error; err != nil {
			t.Fatal(err)
		}
	}
	return exam
}

// When the mark update fails mid-publish, the whole operation must roll
// back: the exam stays scheduled and unpublished, no mark is published.
func TestPublishResultsRollsBackOnMarkFailure(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	exam := seedExamWithMarks(t, h, 2)

	// Make every UPDATE on marks fail at the store, as a dropped connection
	// or a constraint would.
	if err := h.DB.WithContext(ctx).Exec(
		`CREATE FUNCTION reject_mark_updates() RETURNS trigger LANGUAGE plpgsql AS
		 $$ BEGIN RAISE EXCEPTION 'mark updates rejected'; END $$`).Error; err != nil {
		t.Fatal(err)
	}
	if err := h.DB.WithContext(ctx).Exec(
		`CREATE TRIGGER reject_mark_updates BEFORE UPDATE ON marks
		 FOR EACH ROW EXECUTE FUNCTION reject_mark_updates()`).Error; err != nil {
		t.Fatal(err)
	}

	if _, err := publishExamResults(h.DB, ctx, exam.ExamID); err == nil {
		t.Fatal("publish succeeded despite failing mark update")
	}

	var got model.ExamModel
	if err := h.DB.WithContext(ctx).First(&got, "exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatal(err)
	}
	if got.ExamIsPublished || got.ExamStatus != model.ExamStatusScheduled {
		t.Fatalf("exam after failed publish: status=%s published=%v, want scheduled/unpublished",
			got.ExamStatus, got.ExamIsPublished)
	}
	var publishedMarks int64
	if err := h.DB.WithContext(ctx).Model(&markModel.MarkModel{}).
		Where("mark_exam_id = ? AND mark_is_published = true", exam.ExamID).
		Count(&publishedMarks).Error; err != nil {
		t.Fatal(err)
	}
	if publishedMarks != 0 {
		t.Fatalf("published marks after rollback = %d, want 0", publishedMarks)
	}

	// With the fault removed the same call publishes everything.
	if err := h.DB.WithContext(ctx).Exec(`DROP TRIGGER reject_mark_updates ON marks`).Error; err != nil {
		t.Fatal(err)
	}
	published, err := publishExamResults(h.DB, ctx, exam.ExamID)
	if err != nil {
		t.Fatalf("publish after removing the fault: %v", err)
	}
	if published != 2 {
		t.Fatalf("marks published = %d, want 2", published)
	}
	if err := h.DB.WithContext(ctx).First(&got, "exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatal(err)
	}
	if !got.ExamIsPublished || got.ExamStatus != model.ExamStatusCompleted {
		t.Fatalf("exam after publish: status=%s published=%v, want completed/published",
			got.ExamStatus, got.ExamIsPublished)
	}
}

// The marks guard on delete must fail closed: when the dependent-row count
// itself errors, the request fails and the exam survives, rather than the
// guard silently passing.
func TestDeleteGuardFailsClosedOnStoreError(t *testing.T) {
	h, err := testdb.Start(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer h.Close()

	ctx := context.Background()
	exam := seedExamWithMarks(t, h, 0)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("user_role", constants.RoleAdmin)
		return c.Next()
	})
	ctl := NewExamController(h.DB)
	app.Delete("/exams/:id", ctl.Delete)

	// Take the marks table away so the guard's count errors.
	if err := h.DB.WithContext(ctx).Exec(`ALTER TABLE marks RENAME TO marks_hidden`).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(fiber.MethodDelete, "/exams/"+exam.ExamID.String(), nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 when the guard cannot be evaluated", resp.StatusCode)
	}
	var got model.ExamModel
	if err := h.DB.WithContext(ctx).First(&got, "exam_id = ?", exam.ExamID).Error; err != nil {
		t.Fatalf("exam must survive a failed guard: %v", err)
	}

	// With the table back the delete goes through (no marks reference it).
	if err := h.DB.WithContext(ctx).Exec(`ALTER TABLE marks_hidden RENAME TO marks`).Error; err != nil {
		t.Fatal(err)
	}
	req = httptest.NewRequest(fiber.MethodDelete, "/exams/"+exam.ExamID.String(), nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200 once the guard can run", resp.StatusCode)
	}
}
