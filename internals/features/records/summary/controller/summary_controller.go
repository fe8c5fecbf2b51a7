package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attendanceModel "campushub_backend/internals/features/records/attendance/model"
	attendanceService "campushub_backend/internals/features/records/attendance/service"
	enrollmentModel "campushub_backend/internals/features/records/enrollments/model"
	markModel "campushub_backend/internals/features/records/marks/model"
	scope "campushub_backend/internals/features/records/scope"
	helper "campushub_backend/internals/helpers"
)

// SummaryController is purely read-side: everything is composed from the
// current enrolled-status rows and the live attendance/marks derivations,
// never from a separately maintained cache.
type SummaryController struct {
	DB    *gorm.DB
	Scope *scope.Resolver
}

func NewSummaryController(db *gorm.DB) *SummaryController {
	return &SummaryController{
		DB:    db,
		Scope: scope.NewResolver(scope.NewGormSource(db)),
	}
}

type courseAttendanceRow struct {
	StudentID  uuid.UUID `gorm:"column:student_id" json:"student_id"`
	RollNumber string    `gorm:"column:roll_number" json:"roll_number"`
	Name       string    `gorm:"column:name" json:"name"`
	Attended   int64     `gorm:"column:attended" json:"attended"`
	Total      int64     `gorm:"column:total" json:"total"`
	Percentage int       `gorm:"-" json:"percentage"`
}

type studentCourseSummary struct {
	CourseID          uuid.UUID `json:"course_id"`
	CourseName        string    `json:"course_name"`
	AttendancePercent int       `json:"attendance_percent"`
	InternalMarks     float64   `json:"internal_marks"`
	ExternalMarks     float64   `json:"external_marks"`
	TotalMarks        float64   `json:"total_marks"`
	Grade             string    `json:"grade"`
	GradePoints       float64   `json:"grade_points"`
}

type courseGradeSummary struct {
	CourseID          uuid.UUID `json:"course_id"`
	MarkCount         int64     `json:"mark_count"`
	TotalObtained     float64   `json:"total_obtained"`
	TotalMax          float64   `json:"total_max"`
	OverallPercentage float64   `json:"overall_percentage"`
}

/* =========================
   Handlers
   ========================= */

// GET /summaries/courses/:course_id/attendance
func (ctl *SummaryController) CourseAttendance(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, courseID); err != nil {
		return ctl.scopeError(c, err)
	}

	rows, err := ctl.courseAttendanceRows(c, courseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", rows)
}

// GET /summaries/courses/:course_id/grades
func (ctl *SummaryController) CourseGrades(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid course id")
	}

	ctx := c.UserContext()
	if err := ctl.Scope.CourseOwnedBy(ctx, p, courseID); err != nil {
		return ctl.scopeError(c, err)
	}

	var agg struct {
		MarkCount int64   `gorm:"column:mark_count"`
		Obtained  float64 `gorm:"column:total_obtained"`
		Max       float64 `gorm:"column:total_max"`
	}
	err = ctl.DB.WithContext(ctx).Model(&markModel.MarkModel{}).
		Select("COUNT(*) AS mark_count, COALESCE(SUM(mark_obtained),0) AS total_obtained, COALESCE(SUM(mark_max_marks),0) AS total_max").
		Where("mark_course_id = ?", courseID).
		Take(&agg).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var overall float64
	if agg.Max > 0 {
		overall = markModel.Round2(agg.Obtained / agg.Max * 100)
	}
	return helper.JsonOK(c, "", courseGradeSummary{
		CourseID:          courseID,
		MarkCount:         agg.MarkCount,
		TotalObtained:     agg.Obtained,
		TotalMax:          agg.Max,
		OverallPercentage: overall,
	})
}

// GET /summaries/students/:student_id
// Composes attendance % and mark rollups per course, drawn from the
// student's current enrolled-status rows.
func (ctl *SummaryController) StudentSummary(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid student id")
	}
	if p.IsStudent() && (p.StudentID == nil || *p.StudentID != studentID) {
		return helper.JsonError(c, fiber.StatusForbidden, "not your summary")
	}

	ctx := c.UserContext()
	var enrollments []enrollmentModel.EnrollmentModel
	err = ctl.DB.WithContext(ctx).
		Where("enrollment_student_id = ? AND enrollment_status = ?", studentID, enrollmentModel.EnrollmentStatusEnrolled).
		Find(&enrollments).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	summaries := make([]studentCourseSummary, 0, len(enrollments))
	for _, e := range enrollments {
		pct, err := attendanceService.PercentageFor(ctl.DB, ctx, studentID, e.EnrollmentCourseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		var courseName string
		ctl.DB.WithContext(ctx).Table("courses").
			Select("course_name").
			Where("course_id = ?", e.EnrollmentCourseID).
			Scan(&courseName)

		summaries = append(summaries, studentCourseSummary{
			CourseID:          e.EnrollmentCourseID,
			CourseName:        courseName,
			AttendancePercent: pct,
			InternalMarks:     e.EnrollmentInternalMarks,
			ExternalMarks:     e.EnrollmentExternalMarks,
			TotalMarks:        e.EnrollmentTotalMarks,
			Grade:             e.EnrollmentGrade,
			GradePoints:       e.EnrollmentGradePoints,
		})
	}

	return helper.JsonOK(c, "", fiber.Map{
		"student_id": studentID,
		"courses":    summaries,
	})
}

// GET /summaries/dashboard
func (ctl *SummaryController) Dashboard(c *fiber.Ctx) error {
	p, err := helper.GetPrincipal(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	ctx := c.UserContext()
	sc, err := ctl.Scope.CourseScope(ctx, p)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	counts := fiber.Map{}
	count := func(table, where string, args ...interface{}) int64 {
		var n int64
		q := ctl.DB.WithContext(ctx).Table(table)
		if where != "" {
			q = q.Where(where, args...)
		}
		q.Count(&n)
		return n
	}

	if sc.IsUnrestricted() {
		counts["students"] = count("students", "student_deleted_at IS NULL")
		counts["faculty"] = count("faculty", "faculty_deleted_at IS NULL")
		counts["courses"] = count("courses", "course_deleted_at IS NULL")
		counts["departments"] = count("departments", "department_deleted_at IS NULL")
		counts["enrollments"] = count("enrollments", "enrollment_status = ?", enrollmentModel.EnrollmentStatusEnrolled)
	} else if sc.IsEmpty() {
		counts["courses"] = 0
		counts["enrollments"] = 0
		counts["exams"] = 0
	} else {
		ids := sc.CourseIDs()
		counts["courses"] = int64(len(ids))
		counts["enrollments"] = count("enrollments", "enrollment_course_id IN ? AND enrollment_status = ?", ids, enrollmentModel.EnrollmentStatusEnrolled)
		counts["exams"] = count("exams", "exam_course_id IN ? AND exam_deleted_at IS NULL", ids)
	}

	return helper.JsonOK(c, "", counts)
}

/* =========================
   Internals
   ========================= */

// courseAttendanceRows builds the per-student rollup for a course roster
// (current enrolled-status rows only) with one grouped ledger query.
func (ctl *SummaryController) courseAttendanceRows(c *fiber.Ctx, courseID uuid.UUID) ([]courseAttendanceRow, error) {
	ctx := c.UserContext()

	var rows []courseAttendanceRow
	err := ctl.DB.WithContext(ctx).Table("enrollments").
		Select(`
			students.student_id AS student_id,
			students.student_roll_number AS roll_number,
			students.student_name AS name,
			COUNT(ar.attendance_id) AS total,
			COUNT(ar.attendance_id) FILTER (WHERE ar.attendance_status IN ?) AS attended`,
			[]attendanceModel.AttendanceStatus{
				attendanceModel.AttendanceStatusPresent,
				attendanceModel.AttendanceStatusLate,
			}).
		Joins("JOIN students ON students.student_id = enrollments.enrollment_student_id").
		Joins("LEFT JOIN attendance_records ar ON ar.attendance_student_id = enrollments.enrollment_student_id AND ar.attendance_course_id = enrollments.enrollment_course_id").
		Where("enrollment_course_id = ? AND enrollment_status = ?", courseID, enrollmentModel.EnrollmentStatusEnrolled).
		Group("students.student_id, students.student_roll_number, students.student_name").
		Order("students.student_roll_number").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Percentage = attendanceModel.Percentage(rows[i].Attended, rows[i].Total)
	}
	return rows, nil
}

func (ctl *SummaryController) scopeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, scope.ErrNotOwned) {
		return helper.JsonError(c, fiber.StatusForbidden, "you do not own this course")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, "course not found")
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
}

func attendanceSheetFilename(courseID uuid.UUID) string {
	return fmt.Sprintf("attendance-%s.xlsx", courseID)
}
