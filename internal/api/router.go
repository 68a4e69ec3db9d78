package api

import (
	"hustleke/docs"
	"hustleke/internal/api/handlers"
	"hustleke/pkg/auth"
	"hustleke/pkg/config"
	"hustleke/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Help      *handlers.HelpHandler
	Fee       *handlers.FeeHandler
	Knowledge *handlers.KnowledgeHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "hustleke-help",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				appLogger.Error("Unhandled request error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Importing docs registers the generated swagger document.
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	help := api.Group("/help")
	help.Get("/search", h.Help.Search)
	help.Get("/categories", h.Help.Categories)
	help.Post("/ask", h.Help.Ask)

	fees := api.Group("/fees")
	fees.Get("/quote", h.Fee.Quote)
	fees.Get("/charge", h.Fee.Charge)
	fees.Get("/tariff", h.Fee.Tariff)

	admin := api.Group("/admin", middleware.RequireRole(jwtManager, cfg.JWT.AdminRole, appLogger))
	admin.Post("/knowledge", h.Knowledge.Create)
	admin.Post("/knowledge/reload", h.Knowledge.Reload)
	admin.Get("/knowledge/:id", h.Knowledge.Get)
	admin.Delete("/knowledge/:id", h.Knowledge.Deactivate)

	return app
}
