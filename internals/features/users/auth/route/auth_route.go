package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctr "campushub_backend/internals/features/users/auth/controller"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAuthController(db)

	grp := r.Group("/auth")
	grp.Post("/login", ctl.Login)
}

// AuthAdminRoutes mounts user administration under an admin-guarded group.
func AuthAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := ctr.NewAuthController(db)

	grp := r.Group("/users")
	grp.Post("/", ctl.Register)
}
