// internals/features/teachers/route/teacher_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	"currimon_backend/internals/constants"
	teacherController "currimon_backend/internals/features/teachers/controller"
	"currimon_backend/internals/helpers/mailer"
	"currimon_backend/internals/helpers/storage"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

func TeacherRoutes(api fiber.Router, db *gorm.DB, store storage.DocumentStore, m mailer.Mailer, cfg *configs.Config) {
	ctrl := teacherController.NewTeacherController(db, store, m, cfg)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("teacher management"),
		constants.StaffAndAbove...,
	)
	schoolAndAbove := authMiddleware.OnlyRoles(
		constants.RoleErrorSchool("teacher listing"),
		constants.SchoolAndAbove...,
	)

	api.Post("/addTeacher", staffOnly, ctrl.CreateTeacher)
	api.Get("/allTeachers", schoolAndAbove, ctrl.ListTeachers)
}
