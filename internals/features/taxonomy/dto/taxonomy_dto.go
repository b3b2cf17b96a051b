// internals/features/taxonomy/dto/taxonomy_dto.go
package dto

import "currimon_backend/internals/features/taxonomy/model"

/* ===== Requests ===== */

type CreateEducationTypeRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Code        string `json:"code" validate:"required,min=2,max=40"`
	Description string `json:"description" validate:"required"`
}

type CreateLevelTypeRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=120"`
	Code          string `json:"code" validate:"required,min=2,max=40"`
	EducationType string `json:"education_type" validate:"required"`
	Description   string `json:"description" validate:"required"`
}

type CreateSectionTypeRequest struct {
	Name          string `json:"name" validate:"required,min=2,max=120"`
	Code          string `json:"code" validate:"required,min=2,max=40"`
	EducationType string `json:"education_type" validate:"required"`
	LevelType     string `json:"level_type" validate:"required"`
	Classes       string `json:"classes" validate:"required"`
	Description   string `json:"description" validate:"required"`
}

/* ===== Responses ===== */

type EducationTypeResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
}

func ToEducationTypeResponse(m *model.EducationTypeModel) EducationTypeResponse {
	return EducationTypeResponse{
		Code:        m.EducationTypeCode,
		Name:        m.EducationTypeName,
		Description: m.EducationTypeDescription,
		Active:      m.EducationTypeActive,
	}
}

type LevelTypeResponse struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	EducationType string `json:"education_type"`
	Description   string `json:"description"`
	Active        bool   `json:"active"`
}

func ToLevelTypeResponse(m *model.LevelTypeModel) LevelTypeResponse {
	return LevelTypeResponse{
		Code:          m.LevelTypeCode,
		Name:          m.LevelTypeName,
		EducationType: m.LevelTypeEducationTypeCode,
		Description:   m.LevelTypeDescription,
		Active:        m.LevelTypeActive,
	}
}

type SectionTypeResponse struct {
	Code          string   `json:"code"`
	Name          string   `json:"name"`
	EducationType string   `json:"education_type"`
	LevelType     string   `json:"level_type"`
	Classes       []string `json:"classes"`
	Description   string   `json:"description"`
	Active        bool     `json:"active"`
}

/* ===== Department tree (role-shaped) ===== */

type DepartmentSection struct {
	Code    string             `json:"code"`
	Name    string             `json:"name"`
	Courses []DepartmentCourse `json:"courses,omitempty"`
}

type DepartmentCourse struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type DepartmentLevel struct {
	Code     string              `json:"code"`
	Name     string              `json:"name"`
	Classes  []string            `json:"classes"`
	Sections []DepartmentSection `json:"sections"`
}

type DepartmentEducationType struct {
	Code   string            `json:"code"`
	Name   string            `json:"name"`
	Levels []DepartmentLevel `json:"levels"`
}
