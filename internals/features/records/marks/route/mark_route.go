package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/records/marks/controller"
)

func MarkRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewMarkController(db)

	grp := r.Group("/marks")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.EnterMark)
	grp.Post("/bulk", ctl.BulkMarks)
}

// MarkStudentRoutes: read-only, own published marks only.
func MarkStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewMarkController(db)

	grp := r.Group("/marks")
	grp.Get("/", ctl.List)
}
