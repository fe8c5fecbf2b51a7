package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	batch "campushub_backend/internals/features/records/batch"
	examModel "campushub_backend/internals/features/records/exams/model"
	dto "campushub_backend/internals/features/records/marks/dto"
	model "campushub_backend/internals/features/records/marks/model"
	service "campushub_backend/internals/features/records/marks/service"
	scope "campushub_backend/internals/features/records/scope"
	helper "campushub_backend/internals/helpers"
)

type MarkController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scope.Resolver
}

func NewMarkController(db *gorm.DB) *MarkController {
	return &MarkController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scope.NewResolver(scope.NewGormSource(db)),
	}
}

/* =========================
   Handlers
   ========================= */

// POST /marks
// The single-entry path rejects duplicates outright; only the bulk path
// re-grades existing marks. That asymmetry is intentional (bulk is the
// re-grading workflow).
func (ctl *MarkController) EnterMark(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EnterMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()
	if err := ctl.Scope.ExamOwnedBy(ctx, p, req.ExamID); err != nil {
		return ctl.scopeError(c, err)
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(ctx).First(&exam, "exam_id = ?", req.ExamID).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	if req.MarksObtained > exam.ExamMaxMarks {
		return helper.JsonError(c, fiber.StatusBadRequest,
			fmt.Sprintf("marks obtained (%v) exceed the exam's max marks (%v)", req.MarksObtained, exam.ExamMaxMarks))
	}

	row := buildMark(req.StudentID, &exam, req.MarksObtained, enteredBy(p))
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		return service.RollupEnrollment(tx, ctx, req.StudentID, exam.ExamCourseID)
	})
	if err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "duplicate mark: this student already has a mark for this exam")
		}
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "mark entered", row)
}

// POST /marks/bulk
// Exam resolution and ownership are the wholesale preconditions; each entry
// then upserts by (student, exam), recomputing the derived fields.
func (ctl *MarkController) BulkMarks(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.BulkMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()
	if err := ctl.Scope.ExamOwnedBy(ctx, p, req.ExamID); err != nil {
		return ctl.scopeError(c, err)
	}

	var exam examModel.ExamModel
	if err := ctl.DB.WithContext(ctx).First(&exam, "exam_id = ?", req.ExamID).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}

	by := enteredBy(p)
	res := batch.Run(req.Entries,
		func(e dto.BulkMarkEntry) string { return e.StudentID.String() },
		func(e dto.BulkMarkEntry) (*model.MarkModel, batch.Outcome, error) {
			if e.MarksObtained < 0 || e.MarksObtained > exam.ExamMaxMarks {
				return nil, batch.OutcomeCreated,
					fmt.Errorf("marks obtained (%v) outside 0..%v", e.MarksObtained, exam.ExamMaxMarks)
			}
			row := buildMark(e.StudentID, &exam, e.MarksObtained, by)
			// Upsert and rollup commit together: a row reported as
			// failed must leave no trace in the store.
			var outcome batch.Outcome
			err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				var err error
				if outcome, err = upsertMark(tx, ctx, &row); err != nil {
					return err
				}
				return service.RollupEnrollment(tx, ctx, e.StudentID, exam.ExamCourseID)
			})
			if err != nil {
				return nil, outcome, err
			}
			return &row, outcome, nil
		})

	return helper.JsonOK(c, "bulk marks processed", res.Report())
}

// GET /marks?exam_id=&course_id=&student_id=
func (ctl *MarkController) List(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ctx := c.UserContext()
	sc, err := ctl.Scope.CourseScope(ctx, p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	paging := helper.ResolvePaging(c, 50, 200)
	if sc.IsEmpty() && !p.IsStudent() {
		return helper.JsonList(c, "", []model.MarkModel{}, helper.BuildPagination(0, paging.Page, paging.PerPage, 0))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.MarkModel{})
	if p.IsStudent() {
		// students see their own marks only once published
		q = q.Where("mark_student_id = ? AND mark_is_published = true", p.StudentID)
	} else if !sc.IsUnrestricted() {
		q = q.Where("mark_course_id IN ?", sc.CourseIDs())
	}
	if v := c.Query("exam_id"); v != "" {
		q = q.Where("mark_exam_id = ?", v)
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("mark_course_id = ?", v)
	}
	if v := c.Query("student_id"); v != "" && !p.IsStudent() {
		q = q.Where("mark_student_id = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.MarkModel
	if err := q.Order("mark_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

/* =========================
   Internals
   ========================= */

func enteredBy(p helper.Principal) uuid.UUID {
	if p.FacultyID != nil {
		return *p.FacultyID
	}
	return p.UserID
}

// buildMark derives percentage/grade/is_passed and copies max marks from the
// exam; derived fields are never taken from the request.
func buildMark(studentID uuid.UUID, exam *examModel.ExamModel, obtained float64, by uuid.UUID) model.MarkModel {
	d := model.ComputeDerived(obtained, exam.ExamMaxMarks, exam)
	return model.MarkModel{
		MarkStudentID:  studentID,
		MarkExamID:     exam.ExamID,
		MarkCourseID:   exam.ExamCourseID,
		MarkObtained:   obtained,
		MarkMaxMarks:   exam.ExamMaxMarks,
		MarkPercentage: d.Percentage,
		MarkGrade:      d.Grade,
		MarkIsPassed:   d.IsPassed,
		MarkEnteredBy:  by,
	}
}

// upsertMark resolves against the unique (student, exam) index in a single
// statement; the pre-count only decides created-vs-updated for the report.
func upsertMark(db *gorm.DB, ctx context.Context, row *model.MarkModel) (batch.Outcome, error) {
	var existing int64
	err := db.WithContext(ctx).Model(&model.MarkModel{}).
		Where("mark_student_id = ? AND mark_exam_id = ?", row.MarkStudentID, row.MarkExamID).
		Count(&existing).Error
	if err != nil {
		return batch.OutcomeCreated, err
	}

	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "mark_student_id"},
			{Name: "mark_exam_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"mark_obtained",
			"mark_max_marks",
			"mark_percentage",
			"mark_grade",
			"mark_is_passed",
			"mark_entered_by",
			"mark_updated_at",
		}),
	}).Create(row).Error
	if err != nil {
		return batch.OutcomeCreated, err
	}

	if existing > 0 {
		return batch.OutcomeUpdated, nil
	}
	return batch.OutcomeCreated, nil
}

func (ctl *MarkController) scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scope.ErrNotOwned) {
		return helper.JsonError(c, fiber.StatusForbidden, "you do not own this course")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "exam or course not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
