package controller

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/records/exams/dto"
	model "campushub_backend/internals/features/records/exams/model"
	scope "campushub_backend/internals/features/records/scope"
	helper "campushub_backend/internals/helpers"
)

type ExamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scope.Resolver
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scope.NewResolver(scope.NewGormSource(db)),
	}
}

/* =========================
   Single-row operation
   ========================= */

// publishExamResults publishes every mark of the exam and flips the exam to
// completed+published, all-or-nothing. If the mark update fails the
// transaction rolls back and the exam stays unpublished.
func publishExamResults(db *gorm.DB, ctx context.Context, id uuid.UUID) (int64, error) {
	var published int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Table("marks").
			Where("mark_exam_id = ?", id).
			Update("mark_is_published", true)
		if res.Error != nil {
			return res.Error
		}
		published = res.RowsAffected

		return tx.Model(&model.ExamModel{}).
			Where("exam_id = ?", id).
			Updates(map[string]interface{}{
				"exam_status":       model.ExamStatusCompleted,
				"exam_is_published": true,
			}).Error
	})
	return published, err
}

/* =========================
   Handlers
   ========================= */

// POST /exams
func (ctl *ExamController) Create(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.CreateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.Type.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam type")
	}
	if !req.Category.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam category")
	}
	if err := model.ValidateMarksConfig(req.MaxMarks, req.PassingMarks); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, req.CourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	exam := model.ExamModel{
		ExamCourseID:     req.CourseID,
		ExamSemesterID:   req.SemesterID,
		ExamTitle:        req.Title,
		ExamType:         req.Type,
		ExamCategory:     req.Category,
		ExamMaxMarks:     req.MaxMarks,
		ExamPassingMarks: req.PassingMarks,
		ExamStatus:       model.ExamStatusScheduled,
	}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		exam.ExamDate = &d
	}

	if err := ctl.DB.WithContext(ctx).Create(&exam).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "exam created", exam)
}

// PATCH /exams/:id
// The passing <= max invariant is re-checked against the effective values
// after applying the patch, before anything is persisted.
func (ctl *ExamController) Update(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam id")
	}

	var req dto.UpdateExamRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()
	if err := ctl.Scope.ExamOwnedBy(ctx, p, id); err != nil {
		return ctl.scopeError(c, err)
	}

	var exam model.ExamModel
	if err := ctl.DB.WithContext(ctx).First(&exam, "exam_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}

	if req.Title != nil {
		exam.ExamTitle = *req.Title
	}
	if req.Type != nil {
		if !req.Type.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam type")
		}
		exam.ExamType = *req.Type
	}
	if req.Category != nil {
		if !req.Category.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam category")
		}
		exam.ExamCategory = *req.Category
	}
	if req.MaxMarks != nil {
		exam.ExamMaxMarks = *req.MaxMarks
	}
	if req.PassingMarks != nil {
		exam.ExamPassingMarks = *req.PassingMarks
	}
	if err := model.ValidateMarksConfig(exam.ExamMaxMarks, exam.ExamPassingMarks); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Date != nil {
		d, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
		}
		exam.ExamDate = &d
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam status")
		}
		exam.ExamStatus = *req.Status
	}

	if err := ctl.DB.WithContext(ctx).Save(&exam).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonUpdated(c, "exam updated", exam)
}

// GET /exams?course_id=&semester_id=&type=&status=
func (ctl *ExamController) List(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ctx := c.UserContext()
	sc, err := ctl.Scope.CourseScope(ctx, p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	paging := helper.ResolvePaging(c, 20, 100)
	if sc.IsEmpty() && !p.IsStudent() {
		return helper.JsonList(c, "", []model.ExamModel{}, helper.BuildPagination(0, paging.Page, paging.PerPage, 0))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.ExamModel{})
	if p.IsStudent() {
		// students only see published exams for courses they are enrolled in
		q = q.Where("exam_is_published = true").
			Where("exam_course_id IN (?)", ctl.DB.Table("enrollments").
				Select("enrollment_course_id").
				Where("enrollment_student_id = ?", p.StudentID))
	} else if !sc.IsUnrestricted() {
		q = q.Where("exam_course_id IN ?", sc.CourseIDs())
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("exam_course_id = ?", v)
	}
	if v := c.Query("semester_id"); v != "" {
		q = q.Where("exam_semester_id = ?", v)
	}
	if v := c.Query("type"); v != "" {
		q = q.Where("exam_type = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("exam_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.ExamModel
	if err := q.Order("exam_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /exams/:id
func (ctl *ExamController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam id")
	}

	var exam model.ExamModel
	if err := ctl.DB.WithContext(c.UserContext()).First(&exam, "exam_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonOK(c, "", exam)
}

// DELETE /exams/:id, allowed only while no marks reference it.
func (ctl *ExamController) Delete(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam id")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.ExamOwnedBy(ctx, p, id); err != nil {
		return ctl.scopeError(c, err)
	}

	var markCount int64
	if err := ctl.DB.WithContext(ctx).Table("marks").
		Where("mark_exam_id = ?", id).
		Count(&markCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if markCount > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "exam has marks; it can no longer be deleted")
	}

	res := ctl.DB.WithContext(ctx).Delete(&model.ExamModel{}, "exam_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "exam not found")
	}
	return helper.JsonDeleted(c, "exam deleted", fiber.Map{"exam_id": id})
}

// POST /exams/:id/publish
// Two steps, all-or-nothing: publish every mark of the exam, then flip the
// exam to completed+published. If the mark update fails the transaction
// rolls back and the exam stays unpublished. Unlike the row-level bulk
// operations, this one tolerates no partial state.
func (ctl *ExamController) PublishResults(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid exam id")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.ExamOwnedBy(ctx, p, id); err != nil {
		return ctl.scopeError(c, err)
	}

	var exam model.ExamModel
	if err := ctl.DB.WithContext(ctx).First(&exam, "exam_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}

	published, err := publishExamResults(ctl.DB, ctx, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "publishing failed, nothing was published: "+err.Error())
	}

	return helper.JsonOK(c, "exam results published", dto.PublishResultsResponse{
		ExamID:         id,
		MarksPublished: published,
		ExamStatus:     string(model.ExamStatusCompleted),
	})
}

func (ctl *ExamController) scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scope.ErrNotOwned) {
		return helper.JsonError(c, fiber.StatusForbidden, "you do not own this course")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "exam or course not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
