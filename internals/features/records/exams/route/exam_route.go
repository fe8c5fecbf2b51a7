package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/records/exams/controller"
)

func ExamRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewExamController(db)

	grp := r.Group("/exams")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Patch("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Post("/:id/publish", ctl.PublishResults)
}

// ExamStudentRoutes: read-only; the handler limits rows to published exams
// of the student's enrolled courses.
func ExamStudentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewExamController(db)

	grp := r.Group("/exams")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
}
