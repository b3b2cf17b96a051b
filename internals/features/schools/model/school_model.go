// internals/features/schools/model/school_model.go
package model

import (
	"time"

	"gorm.io/datatypes"
)

// SchoolModel rows double as identity records: the school logs in with its
// email and the generated credential, and its school_code is the scope every
// school-role request is pinned to.
type SchoolModel struct {
	SchoolID   uint   `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	SchoolCode string `gorm:"column:school_code;type:varchar(24);not null;uniqueIndex" json:"school_code"`
	SchoolName string `gorm:"column:school_name;type:varchar(160);not null" json:"school_name"`
	Telephone  string `gorm:"column:telephone;type:varchar(32);not null" json:"telephone"`
	Email      string `gorm:"column:email;type:varchar(160);not null;uniqueIndex" json:"email"`
	Address    string `gorm:"column:address;type:text;not null" json:"address"`
	Password   string `gorm:"column:password;type:text;not null" json:"-"`
	Logo       string `gorm:"column:logo;type:text;not null;default:''" json:"logo"`
	// Section-type codes the school is registered for, stored as a JSON array.
	// Scoped taxonomy reads intersect against this set.
	SectionTypes datatypes.JSON `gorm:"column:section_types;type:jsonb" json:"section_types"`
	Active       bool           `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt    time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SchoolModel) TableName() string { return "schools" }
