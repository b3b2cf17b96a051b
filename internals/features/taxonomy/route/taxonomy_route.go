// internals/features/taxonomy/route/taxonomy_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/constants"
	taxonomyController "currimon_backend/internals/features/taxonomy/controller"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

// TaxonomyRoutes mounts the hierarchy endpoints on an already-authenticated
// router group. Writes are staff-and-above; reads are open to every verified
// role and scoped inside the controller.
func TaxonomyRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := taxonomyController.NewTaxonomyController(db)

	staffOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorStaff("taxonomy management"),
		constants.StaffAndAbove...,
	)

	api.Post("/addEducationType", staffOnly, ctrl.CreateEducationType)
	api.Post("/addLevelType", staffOnly, ctrl.CreateLevelType)
	api.Post("/addSectionType", staffOnly, ctrl.CreateSectionType)

	api.Get("/getEducationTypes", ctrl.ListEducationTypes)
	api.Get("/getLevelTypes", ctrl.ListLevelTypes)
	api.Get("/getSectionTypes", ctrl.ListSectionTypes)
	api.Get("/getClassTypes", ctrl.ListClassTypes)
	api.Get("/getDepartments", ctrl.GetDepartments)
}
