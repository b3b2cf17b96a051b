// internals/features/taxonomy/controller/taxonomy_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/features/taxonomy/dto"
	"currimon_backend/internals/features/taxonomy/model"
	"currimon_backend/internals/features/taxonomy/service"
	helper "currimon_backend/internals/helpers"
	authhelper "currimon_backend/internals/helpers/auth"
)

type TaxonomyController struct {
	DB *gorm.DB
}

func NewTaxonomyController(db *gorm.DB) *TaxonomyController {
	return &TaxonomyController{DB: db}
}

var validate = helper.NewValidator()

/* =======================================================
   Writes (Administrator / Staff only, gated at the route)
======================================================= */

// CreateEducationType inserts a hierarchy root. Name and code are checked
// independently so the caller learns exactly which one collided.
func (ctrl *TaxonomyController) CreateEducationType(c *fiber.Ctx) error {
	var req dto.CreateEducationTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	ctx := c.Context()

	var nameCount int64
	if err := ctrl.DB.WithContext(ctx).Model(&model.EducationTypeModel{}).
		Where("name = ?", req.Name).Count(&nameCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, education type not recorded.")
	}
	if nameCount > 0 {
		return helper.JsonFieldError(c, "name", "Education type with this name already exists.")
	}

	var codeCount int64
	if err := ctrl.DB.WithContext(ctx).Model(&model.EducationTypeModel{}).
		Where("code = ?", req.Code).Count(&codeCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, education type not recorded.")
	}
	if codeCount > 0 {
		return helper.JsonFieldError(c, "code", "Education type with this code already exists.")
	}

	et := model.EducationTypeModel{
		EducationTypeCode:        req.Code,
		EducationTypeName:        req.Name,
		EducationTypeDescription: req.Description,
		EducationTypeActive:      true,
	}
	if err := ctrl.DB.WithContext(ctx).Create(&et).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// lost the race to a concurrent insert with the same name or code
			return helper.JsonFieldError(c, "code", "Education type with this name or code already exists.")
		}
		log.Println("[ERROR] create education type:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, education type not recorded.")
	}

	return helper.JsonCreated(c, "Education type added successfully.", dto.ToEducationTypeResponse(&et))
}

// CreateLevelType inserts a second-level node under an existing, active
// education type. Name and code share one combined duplicate check.
func (ctrl *TaxonomyController) CreateLevelType(c *fiber.Ctx) error {
	var req dto.CreateLevelTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	ctx := c.Context()

	var existing model.LevelTypeModel
	err := ctrl.DB.WithContext(ctx).
		Where("name = ? OR code = ?", req.Name, req.Code).
		First(&existing).Error
	switch {
	case err == nil:
		field := "code"
		if existing.LevelTypeName == req.Name {
			field = "name"
		}
		return helper.JsonFieldError(c, field, "Level type with this "+field+" already exists.")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, level type not recorded.")
	}

	if err := service.ValidateLevelParent(ctx, ctrl.DB, req.EducationType); err != nil {
		var ce *service.ChainError
		if errors.As(err, &ce) {
			return helper.JsonFieldError(c, ce.Field, ce.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, level type not recorded.")
	}

	lt := model.LevelTypeModel{
		LevelTypeCode:              req.Code,
		LevelTypeName:              req.Name,
		LevelTypeEducationTypeCode: req.EducationType,
		LevelTypeDescription:       req.Description,
		LevelTypeActive:            true,
	}
	if err := ctrl.DB.WithContext(ctx).Create(&lt).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonFieldError(c, "code", "Level type with this name or code already exists.")
		}
		log.Println("[ERROR] create level type:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, level type not recorded.")
	}

	return helper.JsonCreated(c, "Level type added successfully.", dto.ToLevelTypeResponse(&lt))
}

// CreateSectionType inserts a leaf node. The supplied ancestor chain is
// re-validated transitively: the level must be active and must belong to the
// named education type, never just "both exist".
func (ctrl *TaxonomyController) CreateSectionType(c *fiber.Ctx) error {
	var req dto.CreateSectionTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	ctx := c.Context()

	var existing model.SectionTypeModel
	err := ctrl.DB.WithContext(ctx).
		Where("name = ? OR code = ?", req.Name, req.Code).
		First(&existing).Error
	switch {
	case err == nil:
		field := "code"
		if existing.SectionTypeName == req.Name {
			field = "name"
		}
		return helper.JsonFieldError(c, field, "Section type with this "+field+" already exists.")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, section type not recorded.")
	}

	if err := service.ValidateSectionParent(ctx, ctrl.DB, req.EducationType, req.LevelType); err != nil {
		var ce *service.ChainError
		if errors.As(err, &ce) {
			return helper.JsonFieldError(c, ce.Field, ce.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, section type not recorded.")
	}

	st := model.SectionTypeModel{
		SectionTypeCode:              req.Code,
		SectionTypeName:              req.Name,
		SectionTypeEducationTypeCode: req.EducationType,
		SectionTypeLevelTypeCode:     req.LevelType,
		SectionTypeClasses:           req.Classes,
		SectionTypeDescription:       req.Description,
		SectionTypeActive:            true,
	}
	if err := ctrl.DB.WithContext(ctx).Create(&st).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonFieldError(c, "code", "Section type with this name or code already exists.")
		}
		log.Println("[ERROR] create section type:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, section type not recorded.")
	}

	return helper.JsonCreated(c, "Section type added successfully.", dto.SectionTypeResponse{
		Code:          st.SectionTypeCode,
		Name:          st.SectionTypeName,
		EducationType: st.SectionTypeEducationTypeCode,
		LevelType:     st.SectionTypeLevelTypeCode,
		Classes:       service.SplitClassLabels(st.SectionTypeClasses),
		Description:   st.SectionTypeDescription,
		Active:        st.SectionTypeActive,
	})
}

/* =======================================================
   Scoped reads
======================================================= */

// schoolSectionCodes loads the section-type code set a school is registered
// for. The set is stored as a JSON array on the school row.
func (ctrl *TaxonomyController) schoolSectionCodes(c *fiber.Ctx, schoolCode string) ([]string, error) {
	var row struct {
		SectionTypes []byte `gorm:"column:section_types"`
	}
	err := ctrl.DB.WithContext(c.Context()).
		Table("schools").
		Select("section_types").
		Where("school_code = ?", schoolCode).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "School not found or school has no sections registered.")
		}
		return nil, err
	}
	var codes []string
	if len(row.SectionTypes) > 0 {
		if err := json.Unmarshal(row.SectionTypes, &codes); err != nil {
			return nil, err
		}
	}
	if len(codes) == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "No sections found for this school.")
	}
	return codes, nil
}

// ListEducationTypes returns active roots. A School caller only sees the
// education types reachable from its own registered sections; the scope comes
// from the verified token, never from a query parameter.
func (ctrl *TaxonomyController) ListEducationTypes(c *fiber.Ctx) error {
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}

	if scope.SchoolCode == "" {
		var rows []model.EducationTypeModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("active = TRUE").
			Order("name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education types")
		}
		out := make([]dto.EducationTypeResponse, 0, len(rows))
		for i := range rows {
			out = append(out, dto.ToEducationTypeResponse(&rows[i]))
		}
		return helper.JsonOK(c, "OK", fiber.Map{"education_types": out})
	}

	sectionCodes, err := ctrl.schoolSectionCodes(c, scope.SchoolCode)
	if err != nil {
		return jsonFromErr(c, err, "Failed to fetch education types")
	}

	var rows []model.EducationTypeModel
	err = scopedEducationTypesQuery(ctrl.DB.WithContext(c.Context()), sectionCodes).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch education types")
	}
	out := make([]dto.EducationTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToEducationTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{"education_types": out})
}

// ListLevelTypes returns the levels under ?education_type=, intersected with
// the caller's section set when scoped.
func (ctrl *TaxonomyController) ListLevelTypes(c *fiber.Ctx) error {
	educationType := c.Query("education_type")
	if educationType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "education_type is required as a query parameter")
	}
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}

	if scope.SchoolCode == "" {
		var rows []model.LevelTypeModel
		if err := ctrl.DB.WithContext(c.Context()).
			Where("education_type_code = ? AND active = TRUE", educationType).
			Order("name ASC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level types")
		}
		out := make([]dto.LevelTypeResponse, 0, len(rows))
		for i := range rows {
			out = append(out, dto.ToLevelTypeResponse(&rows[i]))
		}
		return helper.JsonOK(c, "OK", fiber.Map{"level_types": out})
	}

	sectionCodes, err := ctrl.schoolSectionCodes(c, scope.SchoolCode)
	if err != nil {
		return jsonFromErr(c, err, "Failed to fetch level types")
	}

	var rows []model.LevelTypeModel
	err = scopedLevelTypesQuery(ctrl.DB.WithContext(c.Context()), educationType, sectionCodes).
		Find(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch level types")
	}
	out := make([]dto.LevelTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToLevelTypeResponse(&rows[i]))
	}
	return helper.JsonOK(c, "OK", fiber.Map{"level_types": out})
}

// ListSectionTypes returns the sections under ?level_type=.
func (ctrl *TaxonomyController) ListSectionTypes(c *fiber.Ctx) error {
	levelType := c.Query("level_type")
	if levelType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_type is required as a query parameter")
	}
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}

	q := ctrl.DB.WithContext(c.Context()).
		Where("level_type_code = ? AND active = TRUE", levelType).
		Order("name ASC")

	if scope.SchoolCode != "" {
		sectionCodes, err := ctrl.schoolSectionCodes(c, scope.SchoolCode)
		if err != nil {
			return jsonFromErr(c, err, "Failed to fetch section types")
		}
		q = q.Where("code IN ?", sectionCodes)
	}

	var rows []model.SectionTypeModel
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch section types")
	}
	out := make([]dto.SectionTypeResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.SectionTypeResponse{
			Code:          rows[i].SectionTypeCode,
			Name:          rows[i].SectionTypeName,
			EducationType: rows[i].SectionTypeEducationTypeCode,
			LevelType:     rows[i].SectionTypeLevelTypeCode,
			Classes:       service.SplitClassLabels(rows[i].SectionTypeClasses),
			Description:   rows[i].SectionTypeDescription,
			Active:        rows[i].SectionTypeActive,
		})
	}
	return helper.JsonOK(c, "OK", fiber.Map{"section_types": out})
}

// ListClassTypes derives the class labels offered under ?level_type= from the
// active sections of that level only. Labels are deduplicated in first-seen
// order across sections.
func (ctrl *TaxonomyController) ListClassTypes(c *fiber.Ctx) error {
	levelType := c.Query("level_type")
	if levelType == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "level_type is required as a query parameter")
	}

	var rows []model.SectionTypeModel
	if err := ctrl.DB.WithContext(c.Context()).
		Select("code", "classes").
		Where("level_type_code = ? AND active = TRUE", levelType).
		Order("name ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class types")
	}

	labels := []string{}
	for i := range rows {
		labels = service.MergeClassLabels(labels, service.SplitClassLabels(rows[i].SectionTypeClasses))
	}
	return helper.JsonOK(c, "OK", fiber.Map{"class_types": labels})
}

func jsonFromErr(c *fiber.Ctx, err error, fallback string) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, fallback)
}
