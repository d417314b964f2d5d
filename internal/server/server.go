package server

import (
	"log"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberws "github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/bootstrap"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/config"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/pkg/serverutils"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/internal/websocket"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024, // 1MB, chat payloads are small
		ErrorHandler: serverutils.NewErrorHandler(container.Logger),
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.ChatController.RegisterRoutes(api)
	c.WellnessController.RegisterRoutes(api)

	registerAlertSocket(app, c)
}

// registerAlertSocket exposes the admin crisis-alert stream. The JWT and
// role checks run on the upgrade request before the connection is handed
// to the hub.
func registerAlertSocket(app *fiber.App, c *bootstrap.Container) {
	ws := app.Group("/ws")
	ws.Use(serverutils.JwtMiddleware, serverutils.AdminOnly)
	ws.Use(func(ctx *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(ctx) {
			return ctx.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	ws.Get("/alerts", fiberws.New(func(conn *fiberws.Conn) {
		userIdStr, _ := conn.Locals("user_id").(string)
		userId, err := uuid.Parse(userIdStr)
		if err != nil {
			conn.Close()
			return
		}
		websocket.ServeWs(c.WebSocketHub, conn, userId)
	}))
}
