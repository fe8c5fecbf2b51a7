package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"campushub_backend/internals/constants"
)

// Principal is the authenticated identity the auth middleware resolved from
// the bearer token. FacultyID / StudentID are set only for the matching role.
type Principal struct {
	UserID    uuid.UUID
	Role      string
	FacultyID *uuid.UUID
	StudentID *uuid.UUID
}

func (p Principal) IsAdmin() bool   { return p.Role == constants.RoleAdmin }
func (p Principal) IsFaculty() bool { return p.Role == constants.RoleFaculty }
func (p Principal) IsStudent() bool { return p.Role == constants.RoleStudent }

var ErrNoPrincipal = errors.New("no authenticated principal in request context")

// GetPrincipal reads the identity the auth middleware stored in Locals.
func GetPrincipal(c *fiber.Ctx) (Principal, error) {
	idStr, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("user_role").(string)
	if idStr == "" || role == "" {
		return Principal{}, ErrNoPrincipal
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return Principal{}, ErrNoPrincipal
	}

	p := Principal{UserID: userID, Role: role}
	if s, _ := c.Locals("faculty_id").(string); s != "" {
		if u, err := uuid.Parse(s); err == nil {
			p.FacultyID = &u
		}
	}
	if s, _ := c.Locals("student_id").(string); s != "" {
		if u, err := uuid.Parse(s); err == nil {
			p.StudentID = &u
		}
	}
	return p, nil
}
