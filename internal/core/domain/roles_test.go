package domain

import "testing"

func TestValidRole(t *testing.T) {
	for _, role := range Roles {
		if !ValidRole(role) {
			t.Fatalf("%q must be a valid role", role)
		}
	}
	for _, role := range []string{"", "superuser", "Admin", "R&D", "user"} {
		if ValidRole(role) {
			t.Fatalf("%q must not be a valid role", role)
		}
	}
}

func TestAuthorize_FlatMembership(t *testing.T) {
	if !Authorize(RoleService, RoleService, RoleFactory) {
		t.Fatalf("role in set must be authorized")
	}
	if Authorize(RoleDealer, RoleService, RoleFactory) {
		t.Fatalf("role outside set must not be authorized")
	}
	// No hierarchy: admin passes only where explicitly listed.
	if Authorize(RoleAdmin, RoleService) {
		t.Fatalf("admin must not bypass a set it is not in")
	}
	if !Authorize(RoleAdmin, RoleService, RoleAdmin) {
		t.Fatalf("admin must pass where listed")
	}
	if Authorize(RoleDealer) {
		t.Fatalf("empty set must authorize nobody")
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin(RoleAdmin) {
		t.Fatalf("admin must be admin")
	}
	for _, role := range []string{RoleDealer, RoleFactory, RoleService, RoleManagement, RoleRnD, ""} {
		if IsAdmin(role) {
			t.Fatalf("%q must not be admin", role)
		}
	}
}
