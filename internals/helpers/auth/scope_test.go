package helper

import (
	"testing"

	"currimon_backend/internals/constants"
)

func TestResolveScopePinsSchool(t *testing.T) {
	s := ResolveScope(constants.RoleSchool, "1-SCH")
	if s.SchoolCode != "1-SCH" || s.TeacherCode != "" {
		t.Fatalf("unexpected scope %+v", s)
	}
	if s.Unscoped() || s.ReadOnly() {
		t.Fatal("school scope must be scoped and writable")
	}
}

func TestResolveScopeTeacherReadOnly(t *testing.T) {
	s := ResolveScope(constants.RoleTeacher, "4-TCH")
	if s.TeacherCode != "4-TCH" {
		t.Fatalf("unexpected scope %+v", s)
	}
	if !s.ReadOnly() {
		t.Fatal("teacher scope must be read-only")
	}
}

func TestResolveScopeAdminUnscoped(t *testing.T) {
	for _, role := range []string{constants.RoleAdministrator, constants.RoleStaff} {
		s := ResolveScope(role, "u1")
		if !s.Unscoped() {
			t.Fatalf("role %s must be unscoped", role)
		}
		if s.SchoolCode != "" || s.TeacherCode != "" {
			t.Fatalf("role %s must carry no codes: %+v", role, s)
		}
	}
}

func TestEffectiveSchoolCodeOverride(t *testing.T) {
	school := ResolveScope(constants.RoleSchool, "1-SCH")

	// a School caller asking for another school still gets its own
	if got := school.EffectiveSchoolCode("2-SCH", false); got != "1-SCH" {
		t.Fatalf("expected pinned 1-SCH, got %s", got)
	}
	// legacy trust policy lets the client value through
	if got := school.EffectiveSchoolCode("2-SCH", true); got != "2-SCH" {
		t.Fatalf("expected trusted 2-SCH, got %s", got)
	}

	admin := ResolveScope(constants.RoleAdministrator, "u1")
	if got := admin.EffectiveSchoolCode("2-SCH", false); got != "2-SCH" {
		t.Fatalf("unscoped caller must pass through, got %s", got)
	}
	if got := admin.EffectiveSchoolCode("  ", false); got != "" {
		t.Fatalf("blank client value must normalize to empty, got %q", got)
	}
}
