package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/academics/courses/controller"
)

func CourseAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewCourseController(db)

	grp := r.Group("/courses")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Patch("/:id/faculty", ctl.AssignFaculty)
	grp.Delete("/:id", ctl.Delete)
}

// CourseRoutes: read-only catalog for faculty and students.
func CourseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewCourseController(db)

	grp := r.Group("/courses")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
