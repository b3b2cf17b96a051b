// internals/features/taxonomy/model/taxonomy_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// The taxonomy is the ordered chain
// EducationType → LevelType → SectionType → class labels → Curriculum.
// Rows are administrator-authored, rarely mutated, and soft-deactivated via
// the active flag; nothing here is ever hard-deleted.

type EducationTypeModel struct {
	EducationTypeID          uuid.UUID `gorm:"column:education_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"education_type_id"`
	EducationTypeCode        string    `gorm:"column:code;type:varchar(40);not null;uniqueIndex" json:"code"`
	EducationTypeName        string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	EducationTypeDescription string    `gorm:"column:description;type:text;not null" json:"description"`
	EducationTypeActive      bool      `gorm:"column:active;not null;default:true" json:"active"`
	EducationTypeCreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (EducationTypeModel) TableName() string { return "education_types" }

type LevelTypeModel struct {
	LevelTypeID                uuid.UUID `gorm:"column:level_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"level_type_id"`
	LevelTypeCode              string    `gorm:"column:code;type:varchar(40);not null;uniqueIndex" json:"code"`
	LevelTypeName              string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	LevelTypeEducationTypeCode string    `gorm:"column:education_type_code;type:varchar(40);not null;index" json:"education_type_code"`
	LevelTypeDescription       string    `gorm:"column:description;type:text;not null" json:"description"`
	LevelTypeActive            bool      `gorm:"column:active;not null;default:true" json:"active"`
	LevelTypeCreatedAt         time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LevelTypeModel) TableName() string { return "level_types" }

type SectionTypeModel struct {
	SectionTypeID                uuid.UUID `gorm:"column:section_type_id;type:uuid;default:gen_random_uuid();primaryKey" json:"section_type_id"`
	SectionTypeCode              string    `gorm:"column:code;type:varchar(40);not null;uniqueIndex" json:"code"`
	SectionTypeName              string    `gorm:"column:name;type:varchar(120);not null;uniqueIndex" json:"name"`
	SectionTypeEducationTypeCode string    `gorm:"column:education_type_code;type:varchar(40);not null;index" json:"education_type_code"`
	SectionTypeLevelTypeCode     string    `gorm:"column:level_type_code;type:varchar(40);not null;index" json:"level_type_code"`
	// Comma-separated class labels; parsed into ordered, deduplicated class
	// types at read time. Derived values, not a child table.
	SectionTypeClasses     string    `gorm:"column:classes;type:text;not null;default:''" json:"classes"`
	SectionTypeDescription string    `gorm:"column:description;type:text;not null" json:"description"`
	SectionTypeActive      bool      `gorm:"column:active;not null;default:true" json:"active"`
	SectionTypeCreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SectionTypeModel) TableName() string { return "section_types" }
