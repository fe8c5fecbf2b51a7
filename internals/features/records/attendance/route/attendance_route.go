package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/records/attendance/controller"
)

func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAttendanceController(db)

	grp := r.Group("/attendance")
	grp.Get("/", ctl.List)
	grp.Get("/percentage", ctl.Percentage)
	grp.Post("/", ctl.Mark)
	grp.Post("/bulk", ctl.BulkMark)
}

// AttendanceStudentRoutes: read-only, own rows only.
func AttendanceStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAttendanceController(db)

	grp := r.Group("/attendance")
	grp.Get("/", ctl.List)
	grp.Get("/percentage", ctl.Percentage)
}
