// internals/features/teachers/dto/teacher_dto.go
package dto

import "currimon_backend/internals/features/teachers/model"

type CreateTeacherRequest struct {
	FirstName string `form:"firstname" json:"firstname" validate:"required,min=2,max=80"`
	LastName  string `form:"lastname" json:"lastname" validate:"required,min=2,max=80"`
	Phone     string `form:"phone" json:"phone" validate:"required,min=5,max=32"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	School    string `form:"school" json:"school" validate:"required"`
}

type TeacherResponse struct {
	TeacherCode string `json:"teacher_code"`
	FirstName   string `json:"firstname"`
	LastName    string `json:"lastname"`
	SchoolCode  string `json:"school_code"`
	Telephone   string `json:"telephone"`
	Email       string `json:"email"`
	Photo       string `json:"photo"`
	Active      bool   `json:"active"`
}

func ToTeacherResponse(m *model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherCode: m.TeacherCode,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		SchoolCode:  m.SchoolCode,
		Telephone:   m.Telephone,
		Email:       m.Email,
		Photo:       m.Photo,
		Active:      m.Active,
	}
}
