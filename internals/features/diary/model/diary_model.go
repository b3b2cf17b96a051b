// internals/features/diary/model/diary_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DiaryModel is a teacher's per-lesson log entry, keyed to the assigned
// curriculum it was taught from.
type DiaryModel struct {
	DiaryID          uuid.UUID      `gorm:"column:diary_id;type:uuid;default:gen_random_uuid();primaryKey" json:"diary_id"`
	TeacherCode      string         `gorm:"column:teacher_code;type:varchar(24);not null;index" json:"teacher_code"`
	CurriculumCode   string         `gorm:"column:curriculum_code;type:varchar(80);not null;index" json:"curriculum_code"`
	LearningOutcomes datatypes.JSON `gorm:"column:learning_outcomes;type:jsonb" json:"learning_outcomes"`
	Activities       string         `gorm:"column:activities;type:text;not null;default:''" json:"activities"`
	Homework         string         `gorm:"column:homework;type:text;not null;default:''" json:"homework"`
	AdditionalNotes  string         `gorm:"column:additional_notes;type:text;not null;default:''" json:"additional_notes"`
	Periods          string         `gorm:"column:periods;type:varchar(40);not null;default:''" json:"periods"`
	Date             time.Time      `gorm:"column:date;not null" json:"date"`
	Observation      string         `gorm:"column:observation;type:text;not null;default:'-'" json:"observation"`
	Status           string         `gorm:"column:status;type:varchar(40);not null;default:''" json:"status"`
	CreatedAt        time.Time      `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (DiaryModel) TableName() string { return "diaries" }
