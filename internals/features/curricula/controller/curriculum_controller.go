// internals/features/curricula/controller/curriculum_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	"currimon_backend/internals/constants"
	"currimon_backend/internals/features/curricula/dto"
	"currimon_backend/internals/features/curricula/model"
	"currimon_backend/internals/features/curricula/service"
	helper "currimon_backend/internals/helpers"
	authhelper "currimon_backend/internals/helpers/auth"
	"currimon_backend/internals/helpers/storage"
)

type CurriculumController struct {
	DB           *gorm.DB
	Store        storage.DocumentStore
	Registration *service.RegistrationService
	Assignments  *service.AssignmentService
	Cfg          *configs.Config
}

func NewCurriculumController(db *gorm.DB, store storage.DocumentStore, reg *service.RegistrationService, asg *service.AssignmentService, cfg *configs.Config) *CurriculumController {
	return &CurriculumController{DB: db, Store: store, Registration: reg, Assignments: asg, Cfg: cfg}
}

var validate = helper.NewValidator()

// CreateCurriculum accepts the multipart submission (metadata + one document)
// and runs it through the registration state machine. Manual submissions
// persist the supplied chapter tree; Auto ones are delegated to the
// extraction service and its verdict relayed.
func (ctrl *CurriculumController) CreateCurriculum(c *fiber.Ctx) error {
	var req dto.CreateCurriculumRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	docHeader, err := c.FormFile("document")
	if err != nil {
		return helper.JsonFieldError(c, "document", "Curriculum file is required")
	}
	docFile, err := docHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read the uploaded document.")
	}
	staged, err := ctrl.Store.Stage(docFile, docHeader.Filename)
	docFile.Close()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store the uploaded document.")
	}

	outcome, err := ctrl.Registration.Register(c.Context(), service.Input{Req: req, Staged: staged})
	switch outcome.State {
	case service.StateStored:
		var details []dto.Chapter
		if outcome.Curriculum != nil && len(outcome.Curriculum.Details) > 0 {
			_ = json.Unmarshal(outcome.Curriculum.Details, &details)
		}
		if outcome.Curriculum != nil {
			return helper.JsonCreated(c, outcome.Message, dto.ToCurriculumResponse(outcome.Curriculum, details))
		}
		return helper.JsonCreated(c, outcome.Message, nil)
	case service.StateRejected:
		var re *service.RejectionError
		if errors.As(err, &re) {
			return helper.JsonFieldError(c, re.Field, re.Message)
		}
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, outcome.Message)
	default:
		if err != nil {
			log.Println("[ERROR] curriculum registration:", err)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, outcome.Message)
	}
}

// ListCurriculumTypes returns the curricula registered under the exact chain
// supplied via query parameters. School and above only; a Teacher sees
// curricula exclusively through its own assignment set.
func (ctrl *CurriculumController) ListCurriculumTypes(c *fiber.Ctx) error {
	educationType := c.Query("education_type")
	levelType := c.Query("level_type")
	sectionType := c.Query("section_type")
	classType := c.Query("class_type")
	if educationType == "" || levelType == "" || sectionType == "" || classType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"education_type, level_type, section_type and class_type are required as query parameters")
	}

	var rows []model.CurriculumModel
	err := ctrl.DB.WithContext(c.Context()).
		Where("education_type_code = ? AND level_type_code = ? AND section_type_code = ? AND class_type_code = ?",
			educationType, levelType, sectionType, classType).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch curricula")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No Curriculum - Course found")
	}

	out := make([]dto.CurriculumResponse, 0, len(rows))
	for i := range rows {
		var details []dto.Chapter
		if len(rows[i].Details) > 0 {
			_ = json.Unmarshal(rows[i].Details, &details)
		}
		out = append(out, dto.ToCurriculumResponse(&rows[i], details))
	}
	return helper.JsonOK(c, "OK", fiber.Map{"curriculum_types": out})
}

// GetCurriculumSelected returns one curriculum with its chain names resolved.
// School and above only, like ListCurriculumTypes.
func (ctrl *CurriculumController) GetCurriculumSelected(c *fiber.Ctx) error {
	course := c.Query("course")
	if course == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Course code is required")
	}

	var row struct {
		model.CurriculumModel
		LevelTypeName     string `gorm:"column:level_type_name" json:"level_type_name"`
		SectionTypeName   string `gorm:"column:section_type_name" json:"section_type_name"`
		EducationTypeName string `gorm:"column:education_type_name" json:"education_type_name"`
	}
	err := ctrl.DB.WithContext(c.Context()).
		Table("curricula cu").
		Select(`cu.*, lt.name AS level_type_name, st.name AS section_type_name, et.name AS education_type_name`).
		Joins("LEFT JOIN level_types lt ON cu.level_type_code = lt.code").
		Joins("LEFT JOIN section_types st ON cu.section_type_code = st.code").
		Joins("LEFT JOIN education_types et ON cu.education_type_code = et.code").
		Where("cu.code = ?", course).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course details not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch course details")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"course_selected": row})
}

// AssignCurricula replaces a teacher's curriculum set. The school is always
// the caller's own for School-role requests.
func (ctrl *CurriculumController) AssignCurricula(c *fiber.Ctx) error {
	var req dto.AssignCurriculaRequest
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
	schoolCode := scope.EffectiveSchoolCode(req.School, ctrl.Cfg.TrustClientScope)

	codes := make([]string, 0, len(req.Courses))
	for _, course := range req.Courses {
		codes = append(codes, course.Code)
	}

	if err := ctrl.Assignments.Assign(c.Context(), req.TeacherCode, schoolCode, codes); err != nil {
		var re *service.RejectionError
		if errors.As(err, &re) {
			return helper.JsonFieldError(c, re.Field, re.Message)
		}
		log.Println("[ERROR] assign curricula:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign courses")
	}
	return helper.JsonOK(c, "Courses assigned successfully", nil)
}

// ListCoursesPerTeacher resolves the caller's (or ?teacher=, for unscoped
// callers) assignment set to {code, name} pairs.
func (ctrl *CurriculumController) ListCoursesPerTeacher(c *fiber.Ctx) error {
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

	courses, err := ctrl.Assignments.CoursesForTeacher(c.Context(), teacherCode)
	if err != nil {
		log.Println("[ERROR] courses per teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch assigned courses")
	}
	if len(courses) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "You are not assigned any course")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"courses": courses})
}
