package domain

// The closed role enumeration. Roles are flat labels, not a hierarchy:
// admin grants nothing implicitly — every protected operation declares the
// set of roles it accepts.
const (
	RoleDealer     = "dealer"
	RoleFactory    = "factory"
	RoleService    = "service"
	RoleManagement = "management"
	RoleRnD        = "r&d"
	RoleAdmin      = "admin"
)

// DefaultRole is assigned to every registration. Callers can never pick a
// role for themselves; elevation goes through the admin reassignment flow.
const DefaultRole = RoleDealer

// Roles lists the enumeration in a stable order.
var Roles = []string{RoleDealer, RoleFactory, RoleService, RoleManagement, RoleRnD, RoleAdmin}

// ValidRole reports whether role belongs to the closed enumeration.
// Comparison is case-sensitive, matching username handling.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize is the single authorization primitive: membership of role in the
// allowed set. No special-casing of admin.
func Authorize(role string, allowed ...string) bool {
	for _, a := range allowed {
		if role == a {
			return true
		}
	}
	return false
}

// IsAdmin guards operations reserved for the one privileged role, such as
// role reassignment.
func IsAdmin(role string) bool {
	return role == RoleAdmin
}
