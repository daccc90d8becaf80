package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/orienta-pe/orienta_backend/pkg/authorize"
	pasetotoken "github.com/orienta-pe/orienta_backend/pkg/paseto"
)

// RequirePermission checks if the authenticated user has the given permission
// in the current association domain (set by AssociationContext), falling back
// to the user's own domain when no association is present. Platform admins
// hold their grants in the sys domain, which the policy model resolves
// through the domain hierarchy.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		var domain authorize.Domain
		switch {
		case localsString(c, LocalsInstitutionID) != "":
			domain = authorize.InstitutionDomain(localsString(c, LocalsInstitutionID))
		case localsString(c, LocalsGroupID) != "":
			domain = authorize.GroupDomain(localsString(c, LocalsGroupID))
		default:
			domain = authorize.UserDomain(claims.UserID.String())
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, domain, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

// RequireSysPermission enforces a permission in the sys domain regardless of
// the caller's association. Admin-only routes use this.
func RequireSysPermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.UserID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}

func localsString(c fiber.Ctx, key string) string {
	v, _ := c.Locals(key).(string)
	return v
}
