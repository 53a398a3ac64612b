package models

import "testing"

func TestRoleOneOf(t *testing.T) {
	if !RoleDoctor.OneOf(StaffRoles...) {
		t.Error("doctor not in staff set")
	}
	if !RoleReceptionist.OneOf(StaffRoles...) {
		t.Error("receptionist not in staff set")
	}
	if RolePatient.OneOf(StaffRoles...) {
		t.Error("patient in staff set")
	}
	if RoleNurse.OneOf(StaffRoles...) {
		t.Error("nurse in staff set")
	}
	if RoleAdmin.OneOf() {
		t.Error("empty allowed set matched")
	}
}

func TestRoleIsValid(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RolePatient} {
		if !r.IsValid() {
			t.Errorf("%s reported invalid", r)
		}
	}
	if Role("janitor").IsValid() {
		t.Error("janitor reported valid")
	}
}
