package models

// Role identifies what a user is allowed to do. Stored as plain text on the
// user row and carried in the JWT claims.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RolePatient      Role = "patient"
)

// StaffRoles are the roles allowed to manage appointments on behalf of others.
var StaffRoles = []Role{RoleAdmin, RoleReceptionist, RoleDoctor}

// OneOf reports whether r is contained in the allowed set.
func (r Role) OneOf(allowed ...Role) bool {
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r.OneOf(RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient)
}
