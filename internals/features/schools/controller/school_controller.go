// internals/features/schools/controller/school_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"currimon_backend/internals/features/schools/dto"
	"currimon_backend/internals/features/schools/model"
	taxonomyModel "currimon_backend/internals/features/taxonomy/model"
	helper "currimon_backend/internals/helpers"
	"currimon_backend/internals/helpers/storage"
)

type SchoolController struct {
	DB    *gorm.DB
	Store storage.DocumentStore
}

func NewSchoolController(db *gorm.DB, store storage.DocumentStore) *SchoolController {
	return &SchoolController{DB: db, Store: store}
}

var validate = helper.NewValidator()

// CreateSchool registers a school from a multipart form (metadata + logo).
// The credential is generated server-side, hashed before it touches the row,
// and returned exactly once. The "<n>-SCH" code comes from the serial row id
// inside the same transaction, so concurrent creates can never collide.
func (ctrl *SchoolController) CreateSchool(c *fiber.Ctx) error {
	var req dto.CreateSchoolRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	logoHeader, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonFieldError(c, "logo", "A logo file is required.")
	}

	ctx := c.Context()

	sectionCodes, err := parseSectionCodes(req.SectionTypes)
	if err != nil {
		return helper.JsonFieldError(c, "section_types", err.Error())
	}
	if len(sectionCodes) > 0 {
		var known int64
		if err := ctrl.DB.WithContext(ctx).Model(&taxonomyModel.SectionTypeModel{}).
			Where("code IN ? AND active = TRUE", sectionCodes).
			Count(&known).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, school not recorded.")
		}
		if known != int64(len(sectionCodes)) {
			return helper.JsonFieldError(c, "section_types", "One or more section type codes do not exist.")
		}
	}

	var emailCount int64
	if err := ctrl.DB.WithContext(ctx).Model(&model.SchoolModel{}).
		Where("email = ?", req.Email).Count(&emailCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, school not recorded.")
	}
	if emailCount > 0 {
		return helper.JsonFieldError(c, "email", "School with this email already exists.")
	}

	plainPassword, err := helper.GenerateRandomPassword(12)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, school not recorded.")
	}
	hashed, err := helper.HashPassword(plainPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, school not recorded.")
	}

	logoFile, err := logoHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read the uploaded logo.")
	}
	staged, err := ctrl.Store.Stage(logoFile, logoHeader.Filename)
	logoFile.Close()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store the uploaded logo.")
	}

	sectionJSON, _ := json.Marshal(sectionCodes)
	school := model.SchoolModel{
		// placeholder until the serial id exists; replaced below in the same tx
		SchoolCode:   helper.PendingCode(),
		SchoolName:   req.Name,
		Telephone:    req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Password:     hashed,
		SectionTypes: datatypes.JSON(sectionJSON),
		Active:       true,
	}

	var promotedRef string
	err = ctrl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&school).Error; err != nil {
			return err
		}
		school.SchoolCode = helper.SchoolCodeFor(school.SchoolID)
		logoRef, err := ctrl.Store.Promote(staged, "logo-"+school.SchoolCode)
		if err != nil {
			return err
		}
		promotedRef = logoRef
		school.Logo = logoRef
		return tx.Model(&school).
			Updates(map[string]interface{}{"school_code": school.SchoolCode, "logo": school.Logo}).Error
	})
	if err != nil {
		// a rolled-back row must not leave its logo behind either way
		if promotedRef != "" {
			if rerr := ctrl.Store.Remove(promotedRef); rerr != nil {
				log.Println("[WARN] remove promoted logo:", rerr)
			}
		} else if derr := ctrl.Store.Discard(staged); derr != nil {
			log.Println("[WARN] discard staged logo:", derr)
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonFieldError(c, "email", "School with this email already exists.")
		}
		log.Println("[ERROR] create school:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, school not recorded.")
	}

	return helper.JsonCreated(c, "School added successfully.", dto.CreatedSchoolResponse{
		SchoolResponse:    dto.ToSchoolResponse(&school),
		GeneratedPassword: plainPassword,
	})
}

// ListSchools returns every school ordered by name then address.
func (ctrl *SchoolController) ListSchools(c *fiber.Ctx) error {
	var rows []model.SchoolModel
	if err := ctrl.DB.WithContext(c.Context()).
		Order("school_name ASC, address ASC").
		Find(&rows).Error; err != nil {
		log.Println("[ERROR] list schools:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching schools")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No schools found")
	}
	out := make([]dto.SchoolResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToSchoolResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Schools found", fiber.Map{"schools": out})
}

func parseSectionCodes(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}
	if strings.HasPrefix(raw, "[") {
		var codes []string
		if err := json.Unmarshal([]byte(raw), &codes); err != nil {
			return nil, errors.New("section_types must be a JSON array or a comma-separated list of codes")
		}
		return codes, nil
	}
	parts := strings.Split(raw, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes, nil
}
