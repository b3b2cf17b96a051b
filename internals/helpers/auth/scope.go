// file: internals/helpers/auth/scope.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"currimon_backend/internals/constants"
	jsonhelper "currimon_backend/internals/helpers"
	authmw "currimon_backend/internals/middlewares/auth"
)

/* =========================================================
   Access scope derived from a verified identity
   ========================================================= */

// Scope narrows what a resolved identity may read or mutate. Administrator
// and Staff are unscoped; School is pinned to its own school code; Teacher is
// read-only and limited to curricula reachable through its assignments.
type Scope struct {
	Role        string
	UserID      string
	SchoolCode  string
	TeacherCode string
}

// ResolveScope derives a scope from the canonical identity. For School and
// Teacher identities the source row code doubles as the identity id.
func ResolveScope(role, userID string) Scope {
	s := Scope{Role: role, UserID: userID}
	switch role {
	case constants.RoleSchool:
		s.SchoolCode = userID
	case constants.RoleTeacher:
		s.TeacherCode = userID
	}
	return s
}

// ScopeFromLocals reads the identity injected by the auth middleware.
func ScopeFromLocals(c *fiber.Ctx) (Scope, error) {
	role, _ := c.Locals(authmw.LocUserRole).(string)
	id, _ := c.Locals(authmw.LocUserID).(string)
	if role == "" || id == "" {
		return Scope{}, jsonhelper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized - Missing identity")
	}
	return ResolveScope(role, id), nil
}

// Unscoped reports full taxonomy visibility (Administrator/Staff).
func (s Scope) Unscoped() bool {
	return s.Role == constants.RoleAdministrator || s.Role == constants.RoleStaff
}

// ReadOnly reports whether the scope forbids taxonomy/assignment writes.
func (s Scope) ReadOnly() bool {
	return s.Role == constants.RoleTeacher
}

// EffectiveSchoolCode decides which school code a request is served for.
// School-role callers always get their own resolved code; the client-supplied
// value is ignored unless the legacy trustClient policy is switched on.
// Unscoped callers may pass any school code through.
func (s Scope) EffectiveSchoolCode(clientValue string, trustClient bool) string {
	clientValue = strings.TrimSpace(clientValue)
	if s.Role == constants.RoleSchool && !trustClient {
		return s.SchoolCode
	}
	return clientValue
}
