package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/academics/departments/controller"
)

func DepartmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewDepartmentController(db)

	grp := r.Group("/departments")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
