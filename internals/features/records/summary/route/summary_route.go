package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/records/summary/controller"
)

// SummaryRoutes registers the read-side aggregation endpoints for
// admin and faculty callers.
func SummaryRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSummaryController(db)

	grp := r.Group("/summaries")
	grp.Get("/dashboard", ctl.Dashboard)
	grp.Get("/courses/:course_id/attendance", ctl.CourseAttendance)
	grp.Get("/courses/:course_id/attendance/export", ctl.ExportCourseAttendance)
	grp.Get("/courses/:course_id/grades", ctl.CourseGrades)
	grp.Get("/students/:student_id", ctl.StudentSummary)
}

// SummaryStudentRoutes: students may only read their own summary.
func SummaryStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSummaryController(db)

	grp := r.Group("/summaries")
	grp.Get("/students/:student_id", ctl.StudentSummary)
}
