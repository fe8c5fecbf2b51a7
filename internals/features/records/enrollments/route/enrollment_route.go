package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/records/enrollments/controller"
)

// EnrollmentRoutes: writes are admin/faculty (ownership enforced in the
// controller); reads are role-aware inside the handlers.
func EnrollmentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewEnrollmentController(db)

	grp := r.Group("/enrollments")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Enroll)
	grp.Post("/bulk", ctl.BulkEnroll)
	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Delete("/:id", ctl.Delete)
}

// EnrollmentStudentRoutes: read-only, own rows only.
func EnrollmentStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewEnrollmentController(db)

	grp := r.Group("/enrollments")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
