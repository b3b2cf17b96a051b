// internals/features/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	"currimon_backend/internals/constants"
	"currimon_backend/internals/features/teachers/dto"
	"currimon_backend/internals/features/teachers/model"
	helper "currimon_backend/internals/helpers"
	authhelper "currimon_backend/internals/helpers/auth"
	"currimon_backend/internals/helpers/mailer"
	"currimon_backend/internals/helpers/storage"
)

type TeacherController struct {
	DB     *gorm.DB
	Store  storage.DocumentStore
	Mailer mailer.Mailer
	Cfg    *configs.Config
}

func NewTeacherController(db *gorm.DB, store storage.DocumentStore, m mailer.Mailer, cfg *configs.Config) *TeacherController {
	return &TeacherController{DB: db, Store: store, Mailer: m, Cfg: cfg}
}

var validate = helper.NewValidator()

// CreateTeacher registers a teacher under an existing school from a multipart
// form (metadata + photo). The generated credential is e-mailed to the
// teacher; a failed send is logged and never fails the registration.
func (ctrl *TeacherController) CreateTeacher(c *fiber.Ctx) error {
	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidatorFieldErrors(err))
	}

	photoHeader, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonFieldError(c, "photo", "A photo file is required.")
	}

	ctx := c.Context()

	var school struct {
		SchoolCode string `gorm:"column:school_code"`
		SchoolName string `gorm:"column:school_name"`
	}
	err = ctrl.DB.WithContext(ctx).
		Table("schools").
		Select("school_code, school_name").
		Where("school_code = ? AND active = TRUE", req.School).
		Take(&school).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "School not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, teacher not recorded.")
	}

	var emailCount int64
	if err := ctrl.DB.WithContext(ctx).Model(&model.TeacherModel{}).
		Where("email = ?", req.Email).Count(&emailCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, teacher not recorded.")
	}
	if emailCount > 0 {
		return helper.JsonFieldError(c, "email", "Teacher with this email already exists.")
	}

	plainPassword, err := helper.GenerateRandomPassword(12)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, teacher not recorded.")
	}
	hashed, err := helper.HashPassword(plainPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, teacher not recorded.")
	}

	photoFile, err := photoHeader.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to read the uploaded photo.")
	}
	staged, err := ctrl.Store.Stage(photoFile, photoHeader.Filename)
	photoFile.Close()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store the uploaded photo.")
	}

	teacher := model.TeacherModel{
		TeacherCode: helper.PendingCode(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		SchoolCode:  school.SchoolCode,
		Telephone:   req.Phone,
		Email:       req.Email,
		Password:    hashed,
		Active:      true,
	}

	var promotedRef string
	err = ctrl.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		teacher.TeacherCode = helper.TeacherCodeFor(teacher.TeacherID)
		photoRef, err := ctrl.Store.Promote(staged, "photo-"+teacher.TeacherCode)
		if err != nil {
			return err
		}
		promotedRef = photoRef
		teacher.Photo = photoRef
		return tx.Model(&teacher).
			Updates(map[string]interface{}{"teacher_code": teacher.TeacherCode, "photo": teacher.Photo}).Error
	})
	if err != nil {
		// a rolled-back row must not leave its photo behind either way
		if promotedRef != "" {
			if rerr := ctrl.Store.Remove(promotedRef); rerr != nil {
				log.Println("[WARN] remove promoted photo:", rerr)
			}
		} else if derr := ctrl.Store.Discard(staged); derr != nil {
			log.Println("[WARN] discard staged photo:", derr)
		}
		if helper.IsUniqueViolation(err) {
			return helper.JsonFieldError(c, "email", "Teacher with this email already exists.")
		}
		log.Println("[ERROR] create teacher:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Something went wrong, teacher not recorded.")
	}

	// fire-and-forget credential mail
	go func(to, first, last, password, schoolName string) {
		body := credentialMail(first, last, to, password, schoolName)
		if err := ctrl.Mailer.Send(to, "Your credentials on Curriculum Monitoring App", body); err != nil {
			log.Println("[WARN] credential mail to", to, "failed:", err)
		}
	}(teacher.Email, teacher.FirstName, teacher.LastName, plainPassword, school.SchoolName)

	return helper.JsonCreated(c, "Teacher added successfully.", dto.ToTeacherResponse(&teacher))
}

// ListTeachers returns teachers, optionally filtered by ?school=. A
// School-role caller is always served its own school regardless of the query
// parameter.
func (ctrl *TeacherController) ListTeachers(c *fiber.Ctx) error {
	scope, scopeErr := authhelper.ScopeFromLocals(c)
	if scopeErr != nil {
		return scopeErr
	}
	schoolCode := scope.EffectiveSchoolCode(c.Query("school"), ctrl.Cfg.TrustClientScope)

	q := ctrl.DB.WithContext(c.Context()).
		Order("school_code ASC, firstname ASC, lastname ASC")
	if schoolCode != "" {
		q = q.Where("school_code = ?", schoolCode)
	}

	var rows []model.TeacherModel
	if err := q.Find(&rows).Error; err != nil {
		log.Println("[ERROR] list teachers:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "An error occurred while fetching teachers")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No teachers found")
	}
	out := make([]dto.TeacherResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTeacherResponse(&rows[i]))
	}
	return helper.JsonOK(c, "Teachers found", fiber.Map{"teachers": out})
}

func credentialMail(first, last, email, password, schoolName string) string {
	return fmt.Sprintf(`Dear %s %s,

Welcome to the Curriculum Monitoring App! Your account has been created successfully.

Credentials:
Username: %s
Password: %s
Role: %s
School: %s

Please log in to your account using the credentials above.

If you have any questions, feel free to reach out.

Best regards,

***Curriculum Monitoring App Team***`, first, last, email, password, constants.RoleTeacher, schoolName)
}
