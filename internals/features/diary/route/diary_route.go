// internals/features/diary/route/diary_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/constants"
	diaryController "currimon_backend/internals/features/diary/controller"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

func DiaryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := diaryController.NewDiaryController(db)

	teacherOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTeacher("diary entries"),
		constants.RoleTeacher,
	)

	api.Post("/addDiaryEntry", teacherOnly, ctrl.CreateDiaryEntry)
	api.Get("/getDiaries", ctrl.ListDiaries)
}
