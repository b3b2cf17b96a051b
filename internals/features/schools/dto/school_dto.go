// internals/features/schools/dto/school_dto.go
package dto

import (
	"encoding/json"

	"currimon_backend/internals/features/schools/model"
)

// CreateSchoolRequest is parsed from multipart form fields; the logo arrives
// as the file part. section_types is optional and accepts either a JSON array
// or a comma-separated list of section codes.
type CreateSchoolRequest struct {
	Name         string `form:"name" json:"name" validate:"required,min=2,max=160"`
	Phone        string `form:"phone" json:"phone" validate:"required,min=5,max=32"`
	Email        string `form:"email" json:"email" validate:"required,email"`
	Address      string `form:"address" json:"address" validate:"required"`
	SectionTypes string `form:"section_types" json:"section_types"`
}

type SchoolResponse struct {
	SchoolCode   string   `json:"school_code"`
	SchoolName   string   `json:"school_name"`
	Telephone    string   `json:"telephone"`
	Email        string   `json:"email"`
	Address      string   `json:"address"`
	Logo         string   `json:"logo"`
	SectionTypes []string `json:"section_types"`
	Active       bool     `json:"active"`
}

func ToSchoolResponse(m *model.SchoolModel) SchoolResponse {
	sections := []string{}
	if len(m.SectionTypes) > 0 {
		_ = json.Unmarshal(m.SectionTypes, &sections)
	}
	return SchoolResponse{
		SchoolCode:   m.SchoolCode,
		SchoolName:   m.SchoolName,
		Telephone:    m.Telephone,
		Email:        m.Email,
		Address:      m.Address,
		Logo:         m.Logo,
		SectionTypes: sections,
		Active:       m.Active,
	}
}

// CreatedSchoolResponse carries the generated credential exactly once, in the
// create response; it is never readable again.
type CreatedSchoolResponse struct {
	SchoolResponse
	GeneratedPassword string `json:"generated_password"`
}
