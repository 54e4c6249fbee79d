package routes

import (
	"academy/backend/config"
	"academy/backend/controllers"
	_ "academy/backend/docs"
	"academy/backend/mailer"
	"academy/backend/middleware"
	"academy/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"gorm.io/gorm"
)

// NewApp builds the fiber app with the shared error envelope and middleware.
func NewApp(cfg *config.Config, logger zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "academy",
		ErrorHandler: utils.ErrorHandler,
	})

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins(),
		AllowMethods:     "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, X-Request-ID",
		AllowCredentials: true,
	}))
	app.Use(middleware.LoggingMiddleware(logger))
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger zerolog.Logger, sender mailer.Sender) {
	adminOnly := middleware.AdminMiddleware(db, cfg)

	publicController := controllers.NewPublicController(db, cfg, logger)
	app.Get("/", publicController.Landing)
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")

	// Admin session
	authController := controllers.NewAuthController(db, cfg, logger)
	api.Post("/admin/login", authController.Login)
	api.Post("/admin/logout", authController.Logout)
	api.Get("/admin/me", adminOnly, authController.Me)

	// Courses
	coursesController := controllers.NewCoursesController(db, cfg, logger)
	api.Get("/courses", coursesController.ListCourses)
	api.Get("/courses/:id", coursesController.GetCourse)
	api.Post("/courses", adminOnly, coursesController.CreateCourse)
	api.Patch("/courses/:id", adminOnly, coursesController.UpdateCourse)
	api.Delete("/courses/:id", adminOnly, coursesController.DeleteCourse)

	// Registrations
	registrationsController := controllers.NewRegistrationsController(db, cfg, logger)
	api.Post("/registrations", registrationsController.CreateRegistration)
	api.Get("/registrations", adminOnly, registrationsController.ListRegistrations)
	api.Patch("/registrations/:id/status", adminOnly, registrationsController.UpdateRegistrationStatus)

	// Banners
	bannersController := controllers.NewBannersController(db, cfg, logger)
	api.Get("/banners", bannersController.ListBanners)
	api.Post("/banners", adminOnly, bannersController.CreateBanner)
	api.Patch("/banners/:id", adminOnly, bannersController.UpdateBanner)
	api.Delete("/banners/:id", adminOnly, bannersController.DeleteBanner)

	// Website settings
	settingsController := controllers.NewSettingsController(db, cfg, logger)
	api.Get("/website-settings", settingsController.ListSettings)
	api.Post("/website-settings", adminOnly, settingsController.CreateSetting)
	api.Patch("/website-settings/:key", adminOnly, settingsController.UpdateSetting)

	// Contact
	contactController := controllers.NewContactController(db, cfg, logger, sender)
	api.Post("/contact", contactController.SendMessage)

	// Dashboard
	analyticsController := controllers.NewAnalyticsController(db, cfg, logger)
	api.Get("/dashboard/stats", adminOnly, analyticsController.GetDashboardStats)
}
