package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/academics/semesters/controller"
)

func SemesterAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewSemesterController(db)

	grp := r.Group("/semesters")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
