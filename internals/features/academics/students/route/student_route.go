package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/academics/students/controller"
)

func StudentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewStudentController(db)

	grp := r.Group("/students")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Patch("/:id/status", ctl.UpdateStatus)
	grp.Delete("/:id", ctl.Delete)
}
