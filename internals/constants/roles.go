package constants

import "fmt"

// Canonical role names as projected by the identity sources.
const (
	RoleAdministrator = "Administrator"
	RoleStaff         = "Staff"
	RoleSchool        = "School"
	RoleTeacher       = "Teacher"
)

// Role error message templates
const (
	ErrOnlyAdminsCanAccess   = "Only administrators may access %s."
	ErrOnlyStaffCanAccess    = "Only administrators or staff may access %s."
	ErrOnlySchoolsCanAccess  = "Only schools or administrators may access %s."
	ErrOnlyTeachersCanAccess = "Only teachers may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

func RoleErrorSchool(feature string) string {
	return fmt.Sprintf(ErrOnlySchoolsCanAccess, feature)
}

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdministrator,
		RoleStaff,
		RoleSchool,
		RoleTeacher,
	}

	StaffAndAbove = []string{
		RoleAdministrator,
		RoleStaff,
	}

	SchoolAndAbove = []string{
		RoleAdministrator,
		RoleStaff,
		RoleSchool,
	}

	AdminOnly = []string{
		RoleAdministrator,
	}
)
