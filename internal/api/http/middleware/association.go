package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/internal/repo"
	entuser "github.com/orienta-pe/orienta_backend/internal/repo/user"
	pasetotoken "github.com/orienta-pe/orienta_backend/pkg/paseto"
)

const (
	LocalsInstitutionID = "institution_id"
	LocalsGroupID       = "group_id"
	LocalsUserRole      = "user_role"
)

// AssociationContext loads the authenticated user's institution or group link
// and stores it in Locals for downstream handlers and RBAC. Users without an
// association pass through with nothing set; routes that need a scope decide
// for themselves.
func AssociationContext(db *repo.Client) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Query().
			Where(entuser.ID(claims.UserID), entuser.DeletedAtIsNil()).
			Only(c.Context())
		if err != nil {
			if repo.IsNotFound(err) {
				return fiber.ErrUnauthorized
			}
			return err
		}

		if u.InstitutionID != nil {
			c.Locals(LocalsInstitutionID, u.InstitutionID.String())
		}
		if u.GroupID != nil {
			c.Locals(LocalsGroupID, u.GroupID.String())
		}
		if u.Role != nil {
			c.Locals(LocalsUserRole, string(*u.Role))
		}

		return c.Next()
	}
}

// RoleFromLocals returns the profile role set by AssociationContext.
func RoleFromLocals(c fiber.Ctx) (string, bool) {
	v, ok := c.Locals(LocalsUserRole).(string)
	return v, ok && v != ""
}
