// internals/features/teachers/model/teacher_model.go
package model

import "time"

// TeacherModel rows are identity records for the Teacher role; the
// teacher_code is both the login scope and the key assignment rows point at.
type TeacherModel struct {
	TeacherID   uint      `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	TeacherCode string    `gorm:"column:teacher_code;type:varchar(24);not null;uniqueIndex" json:"teacher_code"`
	FirstName   string    `gorm:"column:firstname;type:varchar(80);not null" json:"firstname"`
	LastName    string    `gorm:"column:lastname;type:varchar(80);not null" json:"lastname"`
	SchoolCode  string    `gorm:"column:school_code;type:varchar(24);not null;index" json:"school_code"`
	Telephone   string    `gorm:"column:telephone;type:varchar(32);not null" json:"telephone"`
	Email       string    `gorm:"column:email;type:varchar(160);not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"column:password;type:text;not null" json:"-"`
	Photo       string    `gorm:"column:photo;type:text;not null;default:''" json:"photo"`
	Active      bool      `gorm:"column:active;not null;default:true" json:"active"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (TeacherModel) TableName() string { return "teachers" }
