package authorize

import (
	"testing"
)

func TestIsValidDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   Domain
		expected bool
	}{
		// Valid domains
		{"sys domain", DomainSys, true},
		{"wildcard domain", WildcardDomain, true},
		{"valid institution domain", Domain("institution:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid group domain", Domain("group:550e8400-e29b-41d4-a716-446655440000"), true},
		{"valid user domain", Domain("user:550e8400-e29b-41d4-a716-446655440000"), true},

		// Invalid domains
		{"empty domain", Domain(""), false},
		{"random string", Domain("random"), false},
		{"institution without uuid", Domain("institution:"), false},
		{"institution with invalid uuid", Domain("institution:invalid-uuid"), false},
		{"group without uuid", Domain("group:"), false},
		{"user without uuid", Domain("user:"), false},
		{"user with invalid uuid", Domain("user:not-a-uuid"), false},
		{"unknown prefix", Domain("school:550e8400-e29b-41d4-a716-446655440000"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValidDomain(tt.domain)
			if result != tt.expected {
				t.Errorf("IsValidDomain(%q) = %v, want %v", tt.domain, result, tt.expected)
			}
		})
	}
}

func TestInstitutionDomain(t *testing.T) {
	institutionID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("institution:550e8400-e29b-41d4-a716-446655440000")

	result := InstitutionDomain(institutionID)
	if result != expected {
		t.Errorf("InstitutionDomain(%q) = %q, want %q", institutionID, result, expected)
	}
}

func TestGroupDomain(t *testing.T) {
	groupID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("group:550e8400-e29b-41d4-a716-446655440000")

	result := GroupDomain(groupID)
	if result != expected {
		t.Errorf("GroupDomain(%q) = %q, want %q", groupID, result, expected)
	}
}

func TestUserDomain(t *testing.T) {
	userID := "550e8400-e29b-41d4-a716-446655440000"
	expected := Domain("user:550e8400-e29b-41d4-a716-446655440000")

	result := UserDomain(userID)
	if result != expected {
		t.Errorf("UserDomain(%q) = %q, want %q", userID, result, expected)
	}
}

func TestKnownActions(t *testing.T) {
	// Verify all expected actions are in the known map
	expectedActions := []Action{
		ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionList,
		ActionManage, ActionExecute, ActionApprove, ActionReject,
		ActionGrant, ActionRevoke,
	}

	for _, action := range expectedActions {
		if _, ok := KnownActions[action]; !ok {
			t.Errorf("Expected action %q to be in KnownActions", action)
		}
	}
}

func TestKnownResources(t *testing.T) {
	// Verify all expected resources are in the known map
	expectedResources := []Resource{
		ResourceUser, ResourceAuthSession, ResourceRefreshToken, ResourceOTP,
		ResourceInstitution, ResourceTutorGroup, ResourceRoster,
		ResourceHollandQuestion, ResourcePsychPrediction, ResourceAcademicPrediction,
		ResourceTutorRequest,
		ResourceForumPost, ResourceForumComment, ResourceConversation,
		ResourceMessage, ResourceNotification,
		ResourceSystem, ResourceAudit, ResourceRBAC,
	}

	for _, resource := range expectedResources {
		if _, ok := KnownResources[resource]; !ok {
			t.Errorf("Expected resource %q to be in KnownResources", resource)
		}
	}
}

func TestKnownRoles(t *testing.T) {
	// Verify all expected roles are in the known map
	expectedRoles := []Role{
		RolePlatformAdmin,
		RoleAssocTutor, RoleAssocStudent,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if _, ok := KnownRoles[role]; !ok {
			t.Errorf("Expected role %q to be in KnownRoles", role)
		}
	}
}

func TestProfileRoleToRBACRole(t *testing.T) {
	tests := []struct {
		profileRole string
		want        Role
	}{
		{ProfileRoleStudent, RoleAssocStudent},
		{ProfileRoleTutor, RoleAssocTutor},
		{ProfileRoleAdmin, RolePlatformAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.profileRole, func(t *testing.T) {
			got, ok := ProfileRoleToRBACRole[tt.profileRole]
			if !ok {
				t.Fatalf("Expected profile role %q to have an RBAC mapping", tt.profileRole)
			}
			if got != tt.want {
				t.Errorf("ProfileRoleToRBACRole[%q] = %q, want %q", tt.profileRole, got, tt.want)
			}
		})
	}
}

func TestRoleDisplayNamesES(t *testing.T) {
	// Verify all roles have Spanish display names
	expectedRoles := []Role{
		RolePlatformAdmin,
		RoleAssocTutor, RoleAssocStudent,
		RoleUserSelf,
	}

	for _, role := range expectedRoles {
		if name, ok := RoleDisplayNamesES[role]; !ok || name == "" {
			t.Errorf("Expected role %q to have a Spanish display name", role)
		}
	}
}
