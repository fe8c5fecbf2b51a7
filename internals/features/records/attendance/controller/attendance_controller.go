package controller

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "campushub_backend/internals/features/records/attendance/dto"
	model "campushub_backend/internals/features/records/attendance/model"
	service "campushub_backend/internals/features/records/attendance/service"
	batch "campushub_backend/internals/features/records/batch"
	scope "campushub_backend/internals/features/records/scope"
	helper "campushub_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Scope     *scope.Resolver
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:        db,
		Validator: validator.New(),
		Scope:     scope.NewResolver(scope.NewGormSource(db)),
	}
}

// markedBy identifies the faculty recording the fact; admins fall back to
// their user id.
func markedBy(p helper.Principal) uuid.UUID {
	if p.FacultyID != nil {
		return *p.FacultyID
	}
	return p.UserID
}

/* =========================
   Handlers
   ========================= */

// POST /attendance
// Re-marking the same (student, course, date, session) overwrites status and
// marked_by in place; it never creates a second row.
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.Status.Valid() {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid attendance status")
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, req.CourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	rec := model.AttendanceModel{
		AttendanceStudentID: req.StudentID,
		AttendanceCourseID:  req.CourseID,
		AttendanceDate:      date,
		AttendanceSession:   req.Session,
		AttendanceStatus:    req.Status,
		AttendanceMarkedBy:  markedBy(p),
	}
	var outcome batch.Outcome
	err = ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if outcome, err = service.Upsert(tx, ctx, &rec); err != nil {
			return err
		}
		return service.RollupEnrollment(tx, ctx, req.StudentID, req.CourseID)
	})
	if err != nil {
		code, msg := helper.MapPGError(err, "")
		return helper.JsonError(c, code, msg)
	}

	if outcome == batch.OutcomeUpdated {
		return helper.JsonUpdated(c, "attendance corrected", rec)
	}
	return helper.JsonCreated(c, "attendance marked", rec)
}

// POST /attendance/bulk
// Course ownership is checked once before the loop; each record then
// succeeds or fails on its own.
func (ctl *AttendanceController) BulkMark(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	var req dto.BulkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := ctl.Validator.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid date, want YYYY-MM-DD")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, req.CourseID); err != nil {
		return ctl.scopeError(c, err)
	}

	by := markedBy(p)
	res := batch.Run(req.Records,
		func(e dto.BulkAttendanceEntry) string { return e.StudentID.String() },
		func(e dto.BulkAttendanceEntry) (*model.AttendanceModel, batch.Outcome, error) {
			if !e.Status.Valid() {
				return nil, batch.OutcomeCreated, fmt.Errorf("invalid attendance status %q", e.Status)
			}
			rec := model.AttendanceModel{
				AttendanceStudentID: e.StudentID,
				AttendanceCourseID:  req.CourseID,
				AttendanceDate:      date,
				AttendanceSession:   req.Session,
				AttendanceStatus:    e.Status,
				AttendanceMarkedBy:  by,
			}
			// Upsert and rollup commit together: a row reported as
			// failed must leave no trace in the store.
			var outcome batch.Outcome
			err := ctl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				var err error
				if outcome, err = service.Upsert(tx, ctx, &rec); err != nil {
					return err
				}
				return service.RollupEnrollment(tx, ctx, e.StudentID, req.CourseID)
			})
			if err != nil {
				return nil, outcome, err
			}
			return &rec, outcome, nil
		})

	return helper.JsonOK(c, "bulk attendance processed", res.Report())
}

// GET /attendance?course_id=&student_id=&date=&session=
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
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
		return helper.JsonList(c, "", []model.AttendanceModel{}, helper.BuildPagination(0, paging.Page, paging.PerPage, 0))
	}

	q := ctl.DB.WithContext(ctx).Model(&model.AttendanceModel{})
	if p.IsStudent() {
		q = q.Where("attendance_student_id = ?", p.StudentID)
	} else if !sc.IsUnrestricted() {
		q = q.Where("attendance_course_id IN ?", sc.CourseIDs())
	}
	if v := c.Query("course_id"); v != "" {
		q = q.Where("attendance_course_id = ?", v)
	}
	if v := c.Query("student_id"); v != "" && !p.IsStudent() {
		q = q.Where("attendance_student_id = ?", v)
	}
	if v := c.Query("date"); v != "" {
		q = q.Where("attendance_date = ?", v)
	}
	if v := c.Query("session"); v != "" {
		q = q.Where("attendance_session = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_session ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(total, paging.Page, paging.PerPage, len(rows)))
}

// GET /attendance/percentage?student_id=&course_id=
func (ctl *AttendanceController) Percentage(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	studentID, err := uuid.Parse(c.Query("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student_id")
	}
	courseID, err := uuid.Parse(c.Query("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course_id")
	}

	ctx := c.UserContext()
	if p.IsStudent() {
		if p.StudentID == nil || *p.StudentID != studentID {
			return helper.JsonError(c, fiber.StatusForbidden, "not your attendance record")
		}
	} else if err := ctl.Scope.CourseOwnedBy(ctx, p, courseID); err != nil {
		return ctl.scopeError(c, err)
	}

	attended, total, err := service.Counts(ctl.DB, ctx, studentID, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "", dto.AttendancePercentageResponse{
		StudentID:  studentID,
		CourseID:   courseID,
		Attended:   attended,
		Total:      total,
		Percentage: model.Percentage(attended, total),
	})
}

func (ctl *AttendanceController) scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scope.ErrNotOwned) {
		return helper.JsonError(c, fiber.StatusForbidden, "you do not own this course")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}
