// internals/features/diary/controller/diary_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"currimon_backend/internals/constants"
	"currimon_backend/internals/features/diary/dto"
	"currimon_backend/internals/features/diary/model"
	helper "currimon_backend/internals/helpers"
	authhelper "currimon_backend/internals/helpers/auth"
)

type DiaryController struct {
	DB *gorm.DB
}

func NewDiaryController(db *gorm.DB) *DiaryController {
	return &DiaryController{DB: db}
}

var validate = helper.NewValidator()

// CreateDiaryEntry records a lesson log for the calling teacher. The course
// must be one of the teacher's assigned curricula.
func (ctrl *DiaryController) CreateDiaryEntry(c *fiber.Ctx) error {
	var req dto.CreateDiaryEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}
	if scope.TeacherCode == "" {
		return helper.JsonError(c, fiber.StatusForbidden, "Only teachers may write diary entries.")
	}

	date, err := parseDiaryDate(req.Date)
	if err != nil {
		return helper.JsonFieldError(c, "date", "date must be a valid date.")
	}

	assigned, err := ctrl.teacherHasCourse(c, scope.TeacherCode, req.CourseCode)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error adding diary entry")
	}
	if !assigned {
		return helper.JsonFieldError(c, "course_code", "You are not assigned this course.")
	}

	outcomes, _ := json.Marshal(req.LearningOutcomes)
	entry := model.DiaryModel{
		TeacherCode:      scope.TeacherCode,
		CurriculumCode:   req.CourseCode,
		LearningOutcomes: datatypes.JSON(outcomes),
		Activities:       req.Activities,
		Homework:         req.Homework,
		AdditionalNotes:  req.AdditionalNotes,
		Periods:          req.Period,
		Date:             date,
		Observation:      "-",
		Status:           req.Status,
	}
	if err := ctrl.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		log.Println("[ERROR] create diary entry:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add diary entry")
	}
	return helper.JsonCreated(c, "Diary entry added successfully", entry)
}

// ListDiaries returns the caller's diary entries joined with course and
// section names, newest first. Unscoped callers may pass ?teacher=.
func (ctrl *DiaryController) ListDiaries(c *fiber.Ctx) error {
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}

	teacherCode := c.Query("teacher")
	if scope.Role == constants.RoleTeacher {
		teacherCode = scope.TeacherCode
	}
	if teacherCode == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Teacher code is required")
	}

	var rows []struct {
		model.DiaryModel
		CourseName  string `gorm:"column:course_name" json:"course_name"`
		ClassName   string `gorm:"column:class_name" json:"class_name"`
		SectionName string `gorm:"column:section_name" json:"section_name"`
	}
	err := ctrl.DB.WithContext(c.Context()).
		Table("diaries di").
		Select(`di.*, cu.name AS course_name, cu.class_type_code AS class_name, st.name AS section_name`).
		Joins("JOIN curricula cu ON di.curriculum_code = cu.code").
		Joins("JOIN section_types st ON cu.section_type_code = st.code").
		Where("di.teacher_code = ?", teacherCode).
		Order("di.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		log.Println("[ERROR] list diaries:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error retrieving diary entries")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No diary entries found")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"diaries": rows})
}

func (ctrl *DiaryController) teacherHasCourse(c *fiber.Ctx, teacherCode, courseCode string) (bool, error) {
	var sets [][]byte
	if err := ctrl.DB.WithContext(c.Context()).
		Table("courses").
		Where("teacher_code = ?", teacherCode).
		Pluck("curriculum_codes", &sets).Error; err != nil {
		return false, err
	}
	for _, raw := range sets {
		var codes []string
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, &codes); err != nil {
			continue
		}
		for _, code := range codes {
			if code == courseCode {
				return true, nil
			}
		}
	}
	return false, nil
}

func parseDiaryDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fiber.ErrBadRequest
}
