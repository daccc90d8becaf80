package authorize

import (
	"fmt"
	"regexp"
)

type Action string
type Resource string
type Role string
type Domain string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"

	// Power actions
	ActionManage  Action = "manage"  // CRUD + list
	ActionExecute Action = "execute" // run, trigger, start, stop, etc.

	// Workflow actions
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"

	// RBAC-specific actions
	ActionGrant  Action = "grant"
	ActionRevoke Action = "revoke"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
	ActionManage: {}, ActionExecute: {},
	ActionApprove: {}, ActionReject: {},
	ActionGrant: {}, ActionRevoke: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	// Identity / auth
	ResourceUser         Resource = "user"
	ResourceAuthSession  Resource = "auth_session"
	ResourceRefreshToken Resource = "refresh_token"
	ResourceOTP          Resource = "otp"

	// Organizational entities
	ResourceInstitution Resource = "institution"
	ResourceTutorGroup  Resource = "tutor_group"
	ResourceRoster      Resource = "roster"

	// Guidance
	ResourceHollandQuestion    Resource = "holland_question"
	ResourcePsychPrediction    Resource = "psych_prediction"
	ResourceAcademicPrediction Resource = "academic_prediction"

	// Onboarding
	ResourceTutorRequest Resource = "tutor_request"

	// Communication
	ResourceForumPost    Resource = "forum_post"
	ResourceForumComment Resource = "forum_comment"
	ResourceConversation Resource = "conversation"
	ResourceMessage      Resource = "message"
	ResourceNotification Resource = "notification"

	// System / platform admin
	ResourceSystem Resource = "system"
	ResourceAudit  Resource = "audit"
	ResourceRBAC   Resource = "rbac"
)

var KnownResources = map[Resource]struct{}{
	ResourceUser: {}, ResourceAuthSession: {}, ResourceRefreshToken: {}, ResourceOTP: {},
	ResourceInstitution: {}, ResourceTutorGroup: {}, ResourceRoster: {},
	ResourceHollandQuestion: {}, ResourcePsychPrediction: {}, ResourceAcademicPrediction: {},
	ResourceTutorRequest: {},
	ResourceForumPost: {}, ResourceForumComment: {}, ResourceConversation: {}, ResourceMessage: {}, ResourceNotification: {},
	ResourceSystem: {}, ResourceAudit: {}, ResourceRBAC: {},
}

// ----------------------------
// Roles
// ----------------------------
//
// These are the "policy subjects" we assign to users via grouping policies.

const (
	WildcardRole Role = "*"

	// Platform role (domain = sys)
	RolePlatformAdmin Role = "role:platform:admin"

	// Association roles (domain = institution:<uuid> or group:<uuid>)
	RoleAssocTutor   Role = "role:assoc:tutor"
	RoleAssocStudent Role = "role:assoc:student"

	// Private user scope (domain = user:<uuid>)
	RoleUserSelf Role = "role:user:self"
)

var KnownRoles = map[Role]struct{}{
	RolePlatformAdmin: {},
	RoleAssocTutor:    {},
	RoleAssocStudent:  {},
	RoleUserSelf:      {},
}

// Spanish display names
var RoleDisplayNamesES = map[Role]string{
	RolePlatformAdmin: "administrador de la plataforma",
	RoleAssocTutor:    "tutor",
	RoleAssocStudent:  "estudiante",
	RoleUserSelf:      "el propio usuario",
}

// Profile role strings (stored in DB users.role column)
const (
	ProfileRoleStudent = "student"
	ProfileRoleTutor   = "tutor"
	ProfileRoleAdmin   = "admin"
)

// ProfileRoleToRBACRole maps DB role values to Casbin roles
var ProfileRoleToRBACRole = map[string]Role{
	ProfileRoleStudent: RoleAssocStudent,
	ProfileRoleTutor:   RoleAssocTutor,
	ProfileRoleAdmin:   RolePlatformAdmin,
}

// ----------------------------
// Domains
// ----------------------------

const (
	DomainSys Domain = "sys"
)

// Domain prefixes (for exact domains we generate per entity)
const (
	DomainPrefixInstitution Domain = "institution:"
	DomainPrefixGroup       Domain = "group:"
	DomainPrefixUser        Domain = "user:"
)

const (
	WildcardDomain Domain = "*"
)

var (
	reUUID = regexp.MustCompile(`^[0-9a-fA-F-]{36}$`)
)

// Domain builders (typed, safe)
func InstitutionDomain(institutionID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixInstitution, institutionID))
}

func GroupDomain(groupID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixGroup, groupID))
}

func UserDomain(userID string) Domain {
	return Domain(fmt.Sprintf("%s%s", DomainPrefixUser, userID))
}

// IsValidDomain checks whether d is a recognised domain string.
func IsValidDomain(d Domain) bool {
	if d == DomainSys || d == WildcardDomain {
		return true
	}

	s := string(d)
	switch {
	case len(s) > len(DomainPrefixInstitution) && s[:len(DomainPrefixInstitution)] == string(DomainPrefixInstitution):
		return reUUID.MatchString(s[len(DomainPrefixInstitution):])
	case len(s) > len(DomainPrefixGroup) && s[:len(DomainPrefixGroup)] == string(DomainPrefixGroup):
		return reUUID.MatchString(s[len(DomainPrefixGroup):])
	case len(s) > len(DomainPrefixUser) && s[:len(DomainPrefixUser)] == string(DomainPrefixUser):
		return reUUID.MatchString(s[len(DomainPrefixUser):])
	default:
		return false
	}
}

// ----------------------------
// Casbin tuple helpers
// ----------------------------

type PolicyEffect string

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)

// PolicySubject is the p.sub in Casbin: either a role (preferred) or a user/service id.
type PolicySubject string

// GroupSubject is the g.sub in Casbin: a concrete principal id (user_id or service_id).
type GroupSubject string

// Grouping rows: g, user_id, role, domain
type GroupingPolicy struct {
	Subject GroupSubject
	Role    Role
	Domain  Domain
}

// Permission rows: p, role, domain, resource, action, eft
type PermissionPolicy struct {
	Subject Role
	Domain  Domain
	Object  Resource
	Action  Action
	Effect  PolicyEffect
}
