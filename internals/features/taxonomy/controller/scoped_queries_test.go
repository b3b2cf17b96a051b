package controller

import (
	"strings"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"currimon_backend/internals/features/taxonomy/model"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func mustContain(t *testing.T, sql string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(sql, frag) {
			t.Errorf("generated SQL misses %q:\n%s", frag, sql)
		}
	}
}

// A scoped read must stay inside the caller's section set AND inside the
// active subset of every hierarchy level, exactly like the unscoped reads.
func TestScopedEducationTypesQueryFiltersInactive(t *testing.T) {
	db := newDryRunDB(t)
	var rows []model.EducationTypeModel
	stmt := scopedEducationTypesQuery(db, []string{"A", "B"}).Find(&rows).Statement

	mustContain(t, stmt.SQL.String(),
		"education_types.active = TRUE",
		"lt.active = TRUE",
		"st.active = TRUE",
		"st.code IN",
	)
}

func TestScopedLevelTypesQueryFiltersInactive(t *testing.T) {
	db := newDryRunDB(t)
	var rows []model.LevelTypeModel
	stmt := scopedLevelTypesQuery(db, "GEN", []string{"A"}).Find(&rows).Statement

	mustContain(t, stmt.SQL.String(),
		"level_types.active = TRUE",
		"st.active = TRUE",
		"level_types.education_type_code = ?",
	)
}

func TestSchoolChainQueryFiltersInactive(t *testing.T) {
	db := newDryRunDB(t)
	var rows []chainRow
	stmt := schoolChainQuery(db, []string{"A"}).Scan(&rows).Statement

	mustContain(t, stmt.SQL.String(),
		"st.active = TRUE",
		"lt.active = TRUE",
		"et.active = TRUE",
		"st.code IN",
	)
}

func TestTeacherChainQueryFiltersInactive(t *testing.T) {
	db := newDryRunDB(t)
	var rows []chainRow
	stmt := teacherChainQuery(db, []string{"MATH_1"}).Scan(&rows).Statement

	mustContain(t, stmt.SQL.String(),
		"st.active = TRUE",
		"lt.active = TRUE",
		"et.active = TRUE",
		"cu.code IN",
	)
}
