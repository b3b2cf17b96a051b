// internals/features/curricula/dto/curriculum_dto.go
package dto

import (
	"time"

	"currimon_backend/internals/features/curricula/model"
)

/* ===== Structure tree (Manual input) =====
   Ordered Chapter → SubChapter → Unit; array order is meaningful and must
   survive a store/load round trip unchanged. */

type Unit struct {
	Title string `json:"title" validate:"required"`
}

type SubChapter struct {
	Title string `json:"title" validate:"required"`
	Units []Unit `json:"units" validate:"dive"`
}

type Chapter struct {
	Title       string       `json:"title" validate:"required"`
	SubChapters []SubChapter `json:"sub_chapters" validate:"dive"`
}

/* ===== Requests ===== */

// CreateCurriculumRequest arrives as multipart form fields plus one document
// file part. structure is the JSON chapter tree, required for Manual input
// and ignored for Auto.
type CreateCurriculumRequest struct {
	Name          string `form:"name" json:"name" validate:"required,min=2,max=160"`
	Code          string `form:"code" json:"code" validate:"required,min=2,max=40"`
	EducationType string `form:"education_type" json:"education_type" validate:"required"`
	LevelType     string `form:"level_type" json:"level_type" validate:"required"`
	SectionType   string `form:"section_type" json:"section_type" validate:"required"`
	ClassType     string `form:"class_type" json:"class_type" validate:"required"`
	Description   string `form:"description" json:"description"`
	Duration      string `form:"duration" json:"duration" validate:"required"`
	IssuedOn      string `form:"issued_on" json:"issued_on" validate:"required"`
	InputMethod   string `form:"input_method" json:"input_method" validate:"required,oneof=Manual Auto"`
	Structure     string `form:"structure" json:"structure"`
}

type AssignedCourse struct {
	Code string `json:"code" validate:"required"`
}

type AssignCurriculaRequest struct {
	TeacherCode string           `json:"teacher_code" validate:"required"`
	Courses     []AssignedCourse `json:"courses" validate:"required,min=1,dive"`
	// honored only for unscoped callers; School callers are pinned to their
	// own code
	School string `json:"school"`
}

/* ===== Responses ===== */

type CurriculumResponse struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Duration      string    `json:"duration"`
	EducationType string    `json:"education_type"`
	LevelType     string    `json:"level_type"`
	SectionType   string    `json:"section_type"`
	ClassType     string    `json:"class_type"`
	Description   string    `json:"description"`
	Details       []Chapter `json:"details,omitempty"`
	DocumentPath  string    `json:"document_path"`
	IssuedOn      time.Time `json:"issued_on"`
}

// CoursePair is the minimal {code, name} view a teacher's assignment set
// resolves to.
type CoursePair struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func ToCurriculumResponse(m *model.CurriculumModel, details []Chapter) CurriculumResponse {
	return CurriculumResponse{
		Code:          m.Code,
		Name:          m.Name,
		Duration:      m.Duration,
		EducationType: m.EducationTypeCode,
		LevelType:     m.LevelTypeCode,
		SectionType:   m.SectionTypeCode,
		ClassType:     m.ClassTypeCode,
		Description:   m.Description,
		Details:       details,
		DocumentPath:  m.DocumentPath,
		IssuedOn:      m.IssuedOn,
	}
}
