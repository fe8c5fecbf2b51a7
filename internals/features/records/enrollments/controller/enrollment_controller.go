package controller

import (
	"context"
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "campushub_backend/internals/features/academics/courses/model"
	batch "campushub_backend/internals/features/records/batch"
	dto "campushub_backend/internals/features/records/enrollments/dto"
	model "campushub_backend/internals/features/records/enrollments/model"
	scope "campushub_backend/internals/features/records/scope"
	helper "campushub_backend/internals/helpers"
)

// ErrDuplicateEnrollment: the (student, course, semester) triple already exists.
var ErrDuplicateEnrollment = errors.New("student is already enrolled in this course for this semester")

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scope.Resolver
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scope.NewResolver(scope.NewGormSource(db)),
	}
}

/* =========================
   Single-row operation
   ========================= */

// insertEnrollment is the single-item operation both Enroll and BulkEnroll
// run. The insert races on the unique triple, not on a find-then-write, so
// two concurrent calls for the same triple leave exactly one row.
func insertEnrollment(db *gorm.DB, ctx context.Context, studentID, courseID, semesterID uuid.UUID) (*model.EnrollmentModel, error) {
	row := model.EnrollmentModel{
		EnrollmentStudentID:  studentID,
		EnrollmentCourseID:   courseID,
		EnrollmentSemesterID: semesterID,
		EnrollmentStatus:     model.EnrollmentStatusEnrolled,
	}
	res := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "enrollment_student_id"},
			{Name: "enrollment_course_id"},
			{Name: "enrollment_semester_id"},
		},
		DoNothing: true,
	}).Create(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrDuplicateEnrollment
	}

	// Keep the capacity counter in step with the new row. The enrollment
	// itself is already committed, so a counter failure is logged, not
	// surfaced.
	if err := db.WithContext(ctx).Model(&courseModel.CourseModel{}).
		Where("course_id = ?", courseID).
		UpdateColumn("course_enrolled_count", gorm.Expr("course_enrolled_count + 1")).Error; err != nil {
		log.Printf("[WARN] enrolled_count increment failed for course %s: %v", courseID, err)
	}

	return &row, nil
}

/* =========================
   Handlers
   ========================= */

// POST /enrollments
func (ctl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, req.CourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	row, err := insertEnrollment(ctl.DB, ctx, req.StudentID, req.CourseID, req.SemesterID)
	if err != nil {
		if errors.Is(err, ErrDuplicateEnrollment) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	return helper.JsonCreated(c, "student enrolled", row)
}

// POST /enrollments/bulk
// Ownership is the wholesale precondition, checked once before the loop;
// a duplicate triple is a per-row failure, never an abort.
func (ctl *EnrollmentController) BulkEnroll(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.BulkEnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, req.CourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	res := batch.Run(req.StudentIDs,
		func(id uuid.UUID) string { return id.String() },
		func(id uuid.UUID) (*model.EnrollmentModel, batch.Outcome, error) {
			row, err := insertEnrollment(ctl.DB, ctx, id, req.CourseID, req.SemesterID)
			return row, batch.OutcomeCreated, err
		})

	return helper.JsonOK(c, "bulk enrollment processed", res.Report())
}

// GET /enrollments?course_id=&student_id=&semester_id=&status=
func (ctl *EnrollmentController) List(c *fiber.Ctx) error {
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
		// faculty with no courses: empty page, no store round-trip
		return helper.JsonList(c, "", []model.EnrollmentModel{}, helper.BuildPagination(0, paging.Page, paging.PerPage, 0))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.EnrollmentModel{})
	if p.IsStudent() {
		// students only ever see their own rows
		q = q.Where("enrollment_student_id = ?", p.StudentID)
	} else if !sc.IsUnrestricted() {
		q = q.Where("enrollment_course_id IN ?", sc.CourseIDs())
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("enrollment_course_id = ?", v)
	}
	if v := c.Query("student_id"); v != "" && !p.IsStudent() {
		q = q.Where("enrollment_student_id = ?", v)
	}
	if v := c.Query("semester_id"); v != "" {
		q = q.Where("enrollment_semester_id = ?", v)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("enrollment_status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.EnrollmentModel
	if err := q.Order("enrollment_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /enrollments/:id
func (ctl *EnrollmentController) GetByID(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	ctx := c.UserContext()
	var row model.EnrollmentModel
	if err := ctl.DB.WithContext(ctx).First(&row, "enrollment_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}

	if p.IsStudent() {
		if p.StudentID == nil || *p.StudentID != row.EnrollmentStudentID {
			return helper.JsonError(c, fiber.StatusForbidden, "not your enrollment")
		}
	} else if err := ctl.Scope.CourseOwnedBy(ctx, p, row.EnrollmentCourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	return helper.JsonOK(c, "", row)
}

// PATCH /enrollments/:id/status
// Any status may move to any other; there is no enforced ordering.
func (ctl *EnrollmentController) UpdateStatus(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	var req dto.UpdateEnrollmentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if !req.Status.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment status")
	}

	ctx := c.UserContext()
	var row model.EnrollmentModel
	if err := ctl.DB.WithContext(ctx).First(&row, "enrollment_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	if err := ctl.Scope.CourseOwnedBy(ctx, p, row.EnrollmentCourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	if err := ctl.DB.WithContext(ctx).Model(&row).
		UpdateColumn("enrollment_status", req.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	row.EnrollmentStatus = req.Status
	return helper.JsonUpdated(c, "enrollment status updated", row)
}

// DELETE /enrollments/:id
// Hard delete is permitted only when no attendance or marks depend on the
// (student, course) pair; otherwise transition the status instead.
func (ctl *EnrollmentController) Delete(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid enrollment id")
	}

	ctx := c.UserContext()
	var row model.EnrollmentModel
	if err := ctl.DB.WithContext(ctx).First(&row, "enrollment_id = ?", id).Error; err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}
	if err := ctl.Scope.CourseOwnedBy(ctx, p, row.EnrollmentCourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	var attendanceCount, markCount int64
	if err := ctl.DB.WithContext(ctx).Table("attendance_records").
		Where("attendance_student_id = ? AND attendance_course_id = ?", row.EnrollmentStudentID, row.EnrollmentCourseID).
		Count(&attendanceCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.WithContext(ctx).Table("marks").
		Where("mark_student_id = ? AND mark_course_id = ?", row.EnrollmentStudentID, row.EnrollmentCourseID).
		Count(&markCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if attendanceCount > 0 || markCount > 0 {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"enrollment has dependent attendance or marks; change its status instead of deleting")
	}

	if err := ctl.DB.WithContext(ctx).Delete(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if err := ctl.DB.WithContext(ctx).Model(&courseModel.CourseModel{}).
		Where("course_id = ? AND course_enrolled_count > 0", row.EnrollmentCourseID).
		UpdateColumn("course_enrolled_count", gorm.Expr("course_enrolled_count - 1")).Error; err != nil {
		log.Printf("[WARN] enrolled_count decrement failed for course %s: %v", row.EnrollmentCourseID, err)
	}

	return helper.JsonDeleted(c, "enrollment deleted", row)
}

func (ctl *EnrollmentController) scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scope.ErrNotOwned) {
		return helper.JsonError(c, fiber.StatusForbidden, "you do not own this course")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
