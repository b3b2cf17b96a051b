// internals/features/curricula/service/assignment.go
package service

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"currimon_backend/internals/features/curricula/dto"
	"currimon_backend/internals/features/curricula/model"
)

/* =======================================================================
   Assignment engine

   One row per (teacher, school); assigning replaces the whole curriculum
   set for that pair. Every code is checked against the curricula table and
   the teacher must belong to the caller's school before anything is
   written.
======================================================================= */

// ErrNothingWritten is the zero-rows-affected persistence failure; the caller
// maps it to a 500.
var ErrNothingWritten = errors.New("assignment row was not written")

type AssignmentService struct {
	DB *gorm.DB
}

func NewAssignmentService(db *gorm.DB) *AssignmentService {
	return &AssignmentService{DB: db}
}

// Assign replaces the curriculum set of (teacherCode, schoolCode).
func (s *AssignmentService) Assign(ctx context.Context, teacherCode, schoolCode string, curriculumCodes []string) error {
	codes := dedupeCodes(curriculumCodes)
	if teacherCode == "" {
		return &RejectionError{Field: "teacher_code", Message: "Teacher code is required."}
	}
	if schoolCode == "" {
		return &RejectionError{Field: "school", Message: "School code is required."}
	}
	if len(codes) == 0 {
		return &RejectionError{Field: "courses", Message: "At least one course is required."}
	}

	var teacher struct {
		SchoolCode string `gorm:"column:school_code"`
	}
	err := s.DB.WithContext(ctx).
		Table("teachers").
		Select("school_code").
		Where("teacher_code = ? AND active = TRUE", teacherCode).
		Take(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &RejectionError{Field: "teacher_code", Message: "Teacher not found."}
		}
		return err
	}
	if teacher.SchoolCode != schoolCode {
		return &RejectionError{Field: "teacher_code", Message: "Teacher does not belong to this school."}
	}

	var known int64
	if err := s.DB.WithContext(ctx).Model(&model.CurriculumModel{}).
		Where("code IN ?", codes).Count(&known).Error; err != nil {
		return err
	}
	if known != int64(len(codes)) {
		return &RejectionError{Field: "courses", Message: "One or more curriculum codes do not exist."}
	}

	raw, err := json.Marshal(codes)
	if err != nil {
		return err
	}
	row := model.AssignmentModel{
		TeacherCode:     teacherCode,
		SchoolCode:      schoolCode,
		CurriculumCodes: datatypes.JSON(raw),
	}
	res := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "teacher_code"}, {Name: "school_code"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"curriculum_codes": datatypes.JSON(raw),
			"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNothingWritten
	}
	return nil
}

// CoursesForTeacher resolves a teacher's stored code set to {code, name}
// pairs, preserving the stored order.
func (s *AssignmentService) CoursesForTeacher(ctx context.Context, teacherCode string) ([]dto.CoursePair, error) {
	var row model.AssignmentModel
	err := s.DB.WithContext(ctx).
		Where("teacher_code = ?", teacherCode).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []dto.CoursePair{}, nil
		}
		return nil, err
	}

	var codes []string
	if len(row.CurriculumCodes) > 0 {
		if err := json.Unmarshal(row.CurriculumCodes, &codes); err != nil {
			return nil, err
		}
	}
	if len(codes) == 0 {
		return []dto.CoursePair{}, nil
	}

	var rows []dto.CoursePair
	if err := s.DB.WithContext(ctx).
		Table("curricula").
		Select("code, name").
		Where("code IN ?", codes).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	// re-order to match the stored set
	byCode := make(map[string]dto.CoursePair, len(rows))
	for _, r := range rows {
		byCode[r.Code] = r
	}
	out := make([]dto.CoursePair, 0, len(codes))
	for _, code := range codes {
		if pair, ok := byCode[code]; ok {
			out = append(out, pair)
		}
	}
	return out, nil
}

func dedupeCodes(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, code := range in {
		if code == "" {
			continue
		}
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}
