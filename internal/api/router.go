package api

import (
	"github.com/nubetechmdq-wq/crmcasino/docs"
	"github.com/nubetechmdq-wq/crmcasino/internal/api/handlers"
	"github.com/nubetechmdq-wq/crmcasino/pkg/auth"
	"github.com/nubetechmdq-wq/crmcasino/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Receipt     *handlers.ReceiptHandler
	Transaction *handlers.TransactionHandler
	User        *handlers.UserHandler
	Chat        *handlers.ChatHandler
	Broadcast   *handlers.BroadcastHandler
	Dashboard   *handlers.DashboardHandler
	Settings    *handlers.SettingsHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Swagger docs register themselves through the package init()
	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	receipts := protected.Group("/receipts")
	receipts.Post("/validate", h.Receipt.ValidateReceipt)
	receipts.Post("/approve", h.Receipt.ApproveReceipt)
	receipts.Post("/reject", h.Receipt.RejectReceipt)

	transactions := protected.Group("/transactions")
	transactions.Get("", h.Transaction.ListTransactions)
	transactions.Post("", middleware.AdminOnly(appLogger), h.Transaction.CreateTransaction)

	users := protected.Group("/users")
	users.Get("", h.User.ListUsers)
	users.Get("/:id", h.User.GetUser)
	users.Post("", middleware.AdminOnly(appLogger), h.User.CreateUser)
	users.Post("/import", middleware.AdminOnly(appLogger), h.User.ImportUsers)
	users.Post("/:id/autopilot", h.User.ToggleAutopilot)
	users.Put("/:id/status", middleware.AdminOnly(appLogger), h.User.UpdateUserStatus)

	chats := protected.Group("/chats")
	chats.Post("/send", h.Chat.SendMessage)
	chats.Get("/:phone", h.Chat.GetHistory)
	chats.Post("/:phone/suggest", h.Chat.SuggestReply)

	broadcasts := protected.Group("/broadcasts")
	broadcasts.Get("", h.Broadcast.ListBroadcasts)
	broadcasts.Post("", h.Broadcast.CreateBroadcast)

	protected.Get("/dashboard/stats", h.Dashboard.GetStats)

	settings := protected.Group("/settings", middleware.AdminOnly(appLogger))
	settings.Get("", h.Settings.GetSettings)
	settings.Put("", h.Settings.UpdateSettings)
	settings.Post("/test-ai", h.Settings.TestAI)

	return app
}
