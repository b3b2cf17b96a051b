// internals/features/taxonomy/controller/departments_controller.go
package controller

import (
	"encoding/json"
	"log"

	"github.com/gofiber/fiber/v2"

	"currimon_backend/internals/constants"
	"currimon_backend/internals/features/taxonomy/dto"
	"currimon_backend/internals/features/taxonomy/model"
	"currimon_backend/internals/features/taxonomy/service"
	helper "currimon_backend/internals/helpers"
	authhelper "currimon_backend/internals/helpers/auth"
)

// GetDepartments returns the taxonomy as a hierarchy shaped by the caller's
// role: Administrator and Staff see the full active tree, a School sees only
// the branches reachable from its registered sections, a Teacher only the
// branches reachable from its assigned curricula.
func (ctrl *TaxonomyController) GetDepartments(c *fiber.Ctx) error {
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}

	var (
		tree []dto.DepartmentEducationType
		err  error
	)
	switch scope.Role {
	case constants.RoleAdministrator, constants.RoleStaff:
		tree, err = ctrl.fullDepartmentTree(c)
	case constants.RoleSchool:
		tree, err = ctrl.schoolDepartmentTree(c, scope.SchoolCode)
	case constants.RoleTeacher:
		tree, err = ctrl.teacherDepartmentTree(c, scope.TeacherCode)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Invalid user role")
	}
	if err != nil {
		return jsonFromErr(c, err, "Failed to fetch departments")
	}
	if len(tree) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No departments found for this user")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"departments": tree})
}

func (ctrl *TaxonomyController) fullDepartmentTree(c *fiber.Ctx) ([]dto.DepartmentEducationType, error) {
	ctx := c.Context()

	var eduTypes []model.EducationTypeModel
	if err := ctrl.DB.WithContext(ctx).
		Where("active = TRUE").Order("name ASC").
		Find(&eduTypes).Error; err != nil {
		return nil, err
	}

	out := make([]dto.DepartmentEducationType, 0, len(eduTypes))
	for i := range eduTypes {
		et := &eduTypes[i]

		var levels []model.LevelTypeModel
		if err := ctrl.DB.WithContext(ctx).
			Where("education_type_code = ? AND active = TRUE", et.EducationTypeCode).
			Order("name ASC").
			Find(&levels).Error; err != nil {
			return nil, err
		}

		node := dto.DepartmentEducationType{
			Code:   et.EducationTypeCode,
			Name:   et.EducationTypeName,
			Levels: make([]dto.DepartmentLevel, 0, len(levels)),
		}
		for j := range levels {
			lt := &levels[j]

			var sections []model.SectionTypeModel
			if err := ctrl.DB.WithContext(ctx).
				Where("level_type_code = ? AND active = TRUE", lt.LevelTypeCode).
				Order("name ASC").
				Find(&sections).Error; err != nil {
				return nil, err
			}

			levelNode := dto.DepartmentLevel{
				Code:     lt.LevelTypeCode,
				Name:     lt.LevelTypeName,
				Classes:  []string{},
				Sections: make([]dto.DepartmentSection, 0, len(sections)),
			}
			for k := range sections {
				st := &sections[k]
				levelNode.Classes = service.MergeClassLabels(
					levelNode.Classes, service.SplitClassLabels(st.SectionTypeClasses))
				levelNode.Sections = append(levelNode.Sections, dto.DepartmentSection{
					Code: st.SectionTypeCode,
					Name: st.SectionTypeName,
				})
			}
			node.Levels = append(node.Levels, levelNode)
		}
		out = append(out, node)
	}
	return out, nil
}

// chainRow is the flat join row the scoped trees are folded from.
type chainRow struct {
	SectionCode string `gorm:"column:section_code"`
	SectionName string `gorm:"column:section_name"`
	Classes     string `gorm:"column:classes"`
	LevelCode   string `gorm:"column:level_code"`
	LevelName   string `gorm:"column:level_name"`
	EduCode     string `gorm:"column:edu_code"`
	EduName     string `gorm:"column:edu_name"`
	CourseCode  string `gorm:"column:course_code"`
	CourseName  string `gorm:"column:course_name"`
}

func (ctrl *TaxonomyController) schoolDepartmentTree(c *fiber.Ctx, schoolCode string) ([]dto.DepartmentEducationType, error) {
	sectionCodes, err := ctrl.schoolSectionCodes(c, schoolCode)
	if err != nil {
		return nil, err
	}

	var rows []chainRow
	err = schoolChainQuery(ctrl.DB.WithContext(c.Context()), sectionCodes).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldChainRows(rows, false), nil
}

func (ctrl *TaxonomyController) teacherDepartmentTree(c *fiber.Ctx, teacherCode string) ([]dto.DepartmentEducationType, error) {
	ctx := c.Context()

	// assignment rows store the curriculum set as a JSON array of codes
	var sets [][]byte
	if err := ctrl.DB.WithContext(ctx).
		Table("courses").
		Where("teacher_code = ?", teacherCode).
		Pluck("curriculum_codes", &sets).Error; err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "Teacher not found")
	}

	curriculumCodes := []string{}
	for _, raw := range sets {
		var codes []string
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, &codes); err != nil {
			log.Println("[WARN] malformed curriculum code set for teacher", teacherCode, ":", err)
			continue
		}
		curriculumCodes = append(curriculumCodes, codes...)
	}
	if len(curriculumCodes) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No courses assigned to this teacher")
	}

	var rows []chainRow
	err := teacherChainQuery(ctrl.DB.WithContext(ctx), curriculumCodes).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return foldChainRows(rows, true), nil
}

// foldChainRows groups the flat join rows into the nested tree, deduplicating
// every layer while preserving row order.
func foldChainRows(rows []chainRow, withCourses bool) []dto.DepartmentEducationType {
	out := []dto.DepartmentEducationType{}
	eduIdx := map[string]int{}

	for _, r := range rows {
		ei, ok := eduIdx[r.EduCode]
		if !ok {
			out = append(out, dto.DepartmentEducationType{Code: r.EduCode, Name: r.EduName})
			ei = len(out) - 1
			eduIdx[r.EduCode] = ei
		}
		edu := &out[ei]

		var level *dto.DepartmentLevel
		for li := range edu.Levels {
			if edu.Levels[li].Code == r.LevelCode {
				level = &edu.Levels[li]
				break
			}
		}
		if level == nil {
			edu.Levels = append(edu.Levels, dto.DepartmentLevel{
				Code:    r.LevelCode,
				Name:    r.LevelName,
				Classes: []string{},
			})
			level = &edu.Levels[len(edu.Levels)-1]
		}
		level.Classes = service.MergeClassLabels(level.Classes, service.SplitClassLabels(r.Classes))

		var section *dto.DepartmentSection
		for si := range level.Sections {
			if level.Sections[si].Code == r.SectionCode {
				section = &level.Sections[si]
				break
			}
		}
		if section == nil {
			level.Sections = append(level.Sections, dto.DepartmentSection{
				Code: r.SectionCode,
				Name: r.SectionName,
			})
			section = &level.Sections[len(level.Sections)-1]
		}

		if withCourses && r.CourseCode != "" {
			dup := false
			for _, course := range section.Courses {
				if course.Code == r.CourseCode {
					dup = true
					break
				}
			}
			if !dup {
				section.Courses = append(section.Courses, dto.DepartmentCourse{
					Code: r.CourseCode,
					Name: r.CourseName,
				})
			}
		}
	}
	return out
}
