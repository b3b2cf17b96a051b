// internals/features/identity/model/staff_model.go
package model

import "github.com/google/uuid"

// StaffModel represents the "staff" table. Staff rows are provisioned by an
// external back-office flow; this service only ever reads them.
type StaffModel struct {
	StaffID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StaffFirstName string    `gorm:"column:firstname;type:varchar(80);not null" json:"firstname"`
	StaffLastName  string    `gorm:"column:lastname;type:varchar(80);not null" json:"lastname"`
	StaffEmail     string    `gorm:"column:email;type:varchar(160);not null;uniqueIndex" json:"email"`
	StaffPassword  string    `gorm:"column:password;type:text;not null" json:"-"`
	StaffRole      string    `gorm:"column:role;type:varchar(40);not null" json:"role"`
}

func (StaffModel) TableName() string { return "staff" }
