// internals/features/curricula/route/curriculum_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	"currimon_backend/internals/constants"
	curriculumController "currimon_backend/internals/features/curricula/controller"
	"currimon_backend/internals/features/curricula/service"
	"currimon_backend/internals/helpers/extractor"
	"currimon_backend/internals/helpers/storage"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

func CurriculumRoutes(api fiber.Router, db *gorm.DB, store storage.DocumentStore, ex extractor.Client, cfg *configs.Config) {
	ctrl := curriculumController.NewCurriculumController(
		db, store,
		service.NewRegistrationService(db, store, ex),
		service.NewAssignmentService(db),
		cfg,
	)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("curriculum registration"),
		constants.StaffAndAbove...,
	)
	schoolAndAbove := authMiddleware.OnlyRoles(
		constants.RoleErrorSchool("curriculum assignment"),
		constants.SchoolAndAbove...,
	)
	// Teachers reach curricula through getDepartments and
	// getCurriculumPerTeacher only, never the raw catalogue.
	catalogueReads := authMiddleware.OnlyRoles(
		constants.RoleErrorSchool("the curriculum catalogue"),
		constants.SchoolAndAbove...,
	)

	api.Post("/addCurriculum", staffOnly, ctrl.CreateCurriculum)
	api.Get("/getCurriculumTypes", catalogueReads, ctrl.ListCurriculumTypes)
	api.Get("/getCurriculumSelected", catalogueReads, ctrl.GetCurriculumSelected)
	api.Post("/assignCurriculum", schoolAndAbove, ctrl.AssignCurricula)
	api.Get("/getCurriculumPerTeacher", ctrl.ListCoursesPerTeacher)
}
