// internals/features/schools/route/school_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/constants"
	schoolController "currimon_backend/internals/features/schools/controller"
	"currimon_backend/internals/helpers/storage"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

func SchoolRoutes(api fiber.Router, db *gorm.DB, store storage.DocumentStore) {
	ctrl := schoolController.NewSchoolController(db, store)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("school management"),
		constants.StaffAndAbove...,
	)

	api.Post("/addSchool", staffOnly, ctrl.CreateSchool)
	api.Get("/allSchools", staffOnly, ctrl.ListSchools)
}
