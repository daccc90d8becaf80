package authorize

import (
	"context"
	"log/slog"
)

// SeedDefaultPolicies sets up the baseline RBAC policies for the system.
func SeedDefaultPolicies(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	// System-level policies (domain: sys)
	sysPolicies := []PermissionPolicy{
		// Platform admin: god mode
		{RolePlatformAdmin, DomainSys, WildcardResource, WildcardAction, EffectAllow},
	}

	// Association-level policies (domain: institution:* / group:*)
	assocPolicies := []PermissionPolicy{
		// Tutor: sees the roster and guidance results of the association
		{RoleAssocTutor, WildcardDomain, ResourceInstitution, ActionRead, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceRoster, ActionRead, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourcePsychPrediction, ActionRead, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceAcademicPrediction, ActionRead, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceForumPost, ActionManage, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceForumComment, ActionManage, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceConversation, ActionManage, EffectAllow},
		{RoleAssocTutor, WildcardDomain, ResourceMessage, ActionManage, EffectAllow},

		// Student: participates in the forum and chat of the association
		{RoleAssocStudent, WildcardDomain, ResourceInstitution, ActionRead, EffectAllow},
		// Deletes pass RBAC here; authorship is enforced by the services.
		{RoleAssocStudent, WildcardDomain, ResourceForumPost, ActionCreate, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceForumPost, ActionRead, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceForumPost, ActionDelete, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceForumComment, ActionCreate, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceForumComment, ActionRead, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceForumComment, ActionDelete, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceConversation, ActionCreate, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceConversation, ActionRead, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceMessage, ActionCreate, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceMessage, ActionRead, EffectAllow},
		{RoleAssocStudent, WildcardDomain, ResourceMessage, ActionDelete, EffectAllow},
	}

	// User-level policies (domain: user:*)
	userPolicies := []PermissionPolicy{
		// UserSelf: full control over own resources
		{RoleUserSelf, WildcardDomain, ResourceUser, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAuthSession, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceRefreshToken, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourcePsychPrediction, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceAcademicPrediction, ActionManage, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceTutorRequest, ActionCreate, EffectAllow},
		{RoleUserSelf, WildcardDomain, ResourceNotification, ActionManage, EffectAllow},
	}

	allPolicies := append(append(sysPolicies, assocPolicies...), userPolicies...)

	for _, p := range allPolicies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded default RBAC policies", "count", len(allPolicies))
	return nil
}

// AssignUserSelfRole assigns the user:self role in the user's private domain.
// Call this when creating a new user.
func AssignUserSelfRole(ctx context.Context, auth IAuthorization, userID string) error {
	domain := UserDomain(userID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, RoleUserSelf, domain)
	return err
}

// AssignInstitutionRole assigns an association role to a user for a specific
// institution. Call this when a join code resolves to an institution.
func AssignInstitutionRole(ctx context.Context, auth IAuthorization, userID, institutionID string, role Role) error {
	switch role {
	case RoleAssocStudent, RoleAssocTutor:
		// valid association roles
	default:
		return ErrInvalidArgs
	}

	domain := InstitutionDomain(institutionID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// AssignGroupRole assigns an association role to a user for a specific tutor
// group. Call this on join-by-code or tutor-request approval.
func AssignGroupRole(ctx context.Context, auth IAuthorization, userID, groupID string, role Role) error {
	switch role {
	case RoleAssocStudent, RoleAssocTutor:
		// valid association roles
	default:
		return ErrInvalidArgs
	}

	domain := GroupDomain(groupID)
	subject := GroupSubject(userID)

	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, domain)
	return err
}

// GetAssociationRoles returns all roles a user has in a domain.
func GetAssociationRoles(ctx context.Context, auth IAuthorization, userID string, domain Domain) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, domain)
}

// AssignPlatformAdminRole grants the platform admin role.
// Assign with caution; it bypasses every other check.
func AssignPlatformAdminRole(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, RolePlatformAdmin, DomainSys)
	return err
}

// RemoveAllRoles drops every grant a user holds across every domain. Used
// when an admin removes the account.
func RemoveAllRoles(ctx context.Context, auth IAuthorization, userID string) error {
	subject := GroupSubject(userID)

	// Personal domain
	if _, err := auth.RemoveRoleForUserInDomain(ctx, subject, RoleUserSelf, UserDomain(userID)); err != nil {
		return err
	}
	// System domain (no-op unless the user was an admin)
	if _, err := auth.RemoveRoleForUserInDomain(ctx, subject, RolePlatformAdmin, DomainSys); err != nil {
		return err
	}
	return nil
}
