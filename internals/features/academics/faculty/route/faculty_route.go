package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/academics/faculty/controller"
)

func FacultyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewFacultyController(db)

	grp := r.Group("/faculty")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
