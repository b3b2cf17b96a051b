// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"currimon_backend/internals/configs"
	curriculumRoute "currimon_backend/internals/features/curricula/route"
	diaryRoute "currimon_backend/internals/features/diary/route"
	authRoute "currimon_backend/internals/features/identity/route"
	schoolRoute "currimon_backend/internals/features/schools/route"
	taxonomyRoute "currimon_backend/internals/features/taxonomy/route"
	teacherRoute "currimon_backend/internals/features/teachers/route"
	"currimon_backend/internals/helpers/extractor"
	"currimon_backend/internals/helpers/mailer"
	"currimon_backend/internals/helpers/storage"
	authMiddleware "currimon_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the public auth surface and the protected /api group.
// Everything under /api sits behind the JWT verifier; per-feature role gates
// live in the feature route files.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) error {
	store, err := storage.NewLocalDocumentStore(cfg.UploadDir)
	if err != nil {
		return err
	}
	mail := mailer.NewSMTPMailer(cfg)
	ex := extractor.NewHTTPClient(cfg)

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, cfg)

	log.Println("[INFO] Setting up protected /api group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(cfg.JWTSecret))

	taxonomyRoute.TaxonomyRoutes(api, db)
	schoolRoute.SchoolRoutes(api, db, store)
	teacherRoute.TeacherRoutes(api, db, store, mail, cfg)
	curriculumRoute.CurriculumRoutes(api, db, store, ex, cfg)
	diaryRoute.DiaryRoutes(api, db)

	return nil
}
