// internals/features/taxonomy/controller/scoped_queries.go
package controller

import (
	"gorm.io/gorm"

	"currimon_backend/internals/features/taxonomy/model"
)

/* =======================================================
   Scoped query builders

   A scope narrows what the caller can reach; it never widens it. Every
   scoped read therefore carries the same active = TRUE filters the
   unscoped reads apply, on every joined level of the hierarchy.
======================================================= */

// scopedEducationTypesQuery selects the active education types reachable from
// the given section-type codes through active intermediate levels.
func scopedEducationTypesQuery(db *gorm.DB, sectionCodes []string) *gorm.DB {
	return db.
		Distinct("education_types.*").
		Model(&model.EducationTypeModel{}).
		Joins("JOIN level_types lt ON lt.education_type_code = education_types.code AND lt.active = TRUE").
		Joins("JOIN section_types st ON st.level_type_code = lt.code AND st.active = TRUE").
		Where("education_types.active = TRUE AND st.code IN ?", sectionCodes).
		Order("education_types.name ASC")
}

// scopedLevelTypesQuery selects the active levels under one education type
// reachable from the given section-type codes.
func scopedLevelTypesQuery(db *gorm.DB, educationType string, sectionCodes []string) *gorm.DB {
	return db.
		Distinct("level_types.*").
		Model(&model.LevelTypeModel{}).
		Joins("JOIN section_types st ON st.level_type_code = level_types.code AND st.active = TRUE").
		Where("level_types.active = TRUE AND level_types.education_type_code = ? AND st.code IN ?",
			educationType, sectionCodes).
		Order("level_types.name ASC")
}

// schoolChainQuery flattens the active chains above the given section-type
// codes into the rows the school tree is folded from.
func schoolChainQuery(db *gorm.DB, sectionCodes []string) *gorm.DB {
	return db.
		Table("section_types st").
		Select(`st.code AS section_code, st.name AS section_name, st.classes,
			lt.code AS level_code, lt.name AS level_name,
			et.code AS edu_code, et.name AS edu_name`).
		Joins("JOIN level_types lt ON st.level_type_code = lt.code AND lt.active = TRUE").
		Joins("JOIN education_types et ON lt.education_type_code = et.code AND et.active = TRUE").
		Where("st.active = TRUE AND st.code IN ?", sectionCodes).
		Order("et.name ASC, lt.name ASC, st.name ASC")
}

// teacherChainQuery flattens the active chains of the given curriculum codes
// into the rows the teacher tree is folded from, courses included.
func teacherChainQuery(db *gorm.DB, curriculumCodes []string) *gorm.DB {
	return db.
		Table("curricula cu").
		Select(`cu.code AS course_code, cu.name AS course_name,
			st.code AS section_code, st.name AS section_name, st.classes,
			lt.code AS level_code, lt.name AS level_name,
			et.code AS edu_code, et.name AS edu_name`).
		Joins("JOIN section_types st ON cu.section_type_code = st.code AND st.active = TRUE").
		Joins("JOIN level_types lt ON cu.level_type_code = lt.code AND lt.active = TRUE").
		Joins("JOIN education_types et ON cu.education_type_code = et.code AND et.active = TRUE").
		Where("cu.code IN ?", curriculumCodes).
		Order("et.name ASC, lt.name ASC, st.name ASC, cu.name ASC")
}
