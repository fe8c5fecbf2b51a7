package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/announcements/controller"
)

// AnnouncementAdminRoutes: full CRUD for admins.
func AnnouncementAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAnnouncementController(db)

	grp := r.Group("/announcements")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}

// AnnouncementRoutes: read-only feed for faculty and students.
func AnnouncementRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAnnouncementController(db)

	grp := r.Group("/announcements")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
