// internals/features/curricula/model/curriculum_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CurriculumModel is the leaf of the taxonomy chain. Every row pins the full
// ancestor chain it was validated against at registration time; the chapter
// structure is stored as an ordered JSON tree.
type CurriculumModel struct {
	CurriculumID      uuid.UUID      `gorm:"column:curriculum_id;type:uuid;default:gen_random_uuid();primaryKey" json:"curriculum_id"`
	Code              string         `gorm:"column:code;type:varchar(80);not null;uniqueIndex" json:"code"`
	Name              string         `gorm:"column:name;type:varchar(160);not null" json:"name"`
	Duration          string         `gorm:"column:duration;type:varchar(40);not null;default:''" json:"duration"`
	EducationTypeCode string         `gorm:"column:education_type_code;type:varchar(40);not null;index" json:"education_type_code"`
	LevelTypeCode     string         `gorm:"column:level_type_code;type:varchar(40);not null;index" json:"level_type_code"`
	SectionTypeCode   string         `gorm:"column:section_type_code;type:varchar(40);not null;index" json:"section_type_code"`
	ClassTypeCode     string         `gorm:"column:class_type_code;type:varchar(40);not null;default:''" json:"class_type_code"`
	Details           datatypes.JSON `gorm:"column:details;type:jsonb" json:"details"`
	Description       string         `gorm:"column:description;type:text;not null;default:''" json:"description"`
	DocumentPath      string         `gorm:"column:document_path;type:text;not null;default:''" json:"document_path"`
	IssuedOn          time.Time      `gorm:"column:issued_on;not null" json:"issued_on"`
	CreatedAt         time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CurriculumModel) TableName() string { return "curricula" }

// AssignmentModel holds one row per (teacher, school) pair; the assigned
// curriculum set is replaced wholesale on every assignment, stored as a JSON
// array of curriculum codes.
type AssignmentModel struct {
	AssignmentID    uint           `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TeacherCode     string         `gorm:"column:teacher_code;type:varchar(24);not null;uniqueIndex:idx_courses_teacher_school" json:"teacher_code"`
	SchoolCode      string         `gorm:"column:school_code;type:varchar(24);not null;uniqueIndex:idx_courses_teacher_school" json:"school_code"`
	CurriculumCodes datatypes.JSON `gorm:"column:curriculum_codes;type:jsonb;not null" json:"curriculum_codes"`
	CreatedAt       time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"column:updated_at;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AssignmentModel) TableName() string { return "courses" }
