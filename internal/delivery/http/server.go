package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/business-locator/internal/config"
	"github.com/business-locator/internal/delivery/http/handler"
	"github.com/business-locator/internal/delivery/http/middleware"
)

// Server wraps the Fiber app and the explicit routing table.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	businessHandler *handler.BusinessHandler
	spatialHandler  *handler.SpatialHandler
	categoryHandler *handler.CategoryHandler
	areaHandler     *handler.AreaHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	businessHandler *handler.BusinessHandler,
	spatialHandler *handler.SpatialHandler,
	categoryHandler *handler.CategoryHandler,
	areaHandler *handler.AreaHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Business Locator",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		businessHandler: businessHandler,
		spatialHandler:  spatialHandler,
		categoryHandler: categoryHandler,
		areaHandler:     areaHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Spatial search routes. Registered before :id so the literal paths
	// win the match.
	api.Get("/businesses/nearby", s.spatialHandler.Nearby)
	api.Get("/businesses/nearest", s.spatialHandler.Nearest)
	api.Get("/businesses/within-area", s.spatialHandler.WithinArea)

	// Business CRUD
	api.Get("/businesses", s.businessHandler.List)
	api.Post("/businesses", s.businessHandler.Create)
	api.Get("/businesses/:id", s.businessHandler.Get)
	api.Patch("/businesses/:id", s.businessHandler.Update)
	api.Delete("/businesses/:id", s.businessHandler.Delete)

	// Category CRUD
	api.Get("/categories", s.categoryHandler.List)
	api.Post("/categories", s.categoryHandler.Create)
	api.Get("/categories/:id", s.categoryHandler.Get)
	api.Patch("/categories/:id", s.categoryHandler.Update)
	api.Delete("/categories/:id", s.categoryHandler.Delete)

	// Service area CRUD
	api.Get("/areas", s.areaHandler.List)
	api.Post("/areas", s.areaHandler.Create)
	api.Get("/areas/:id", s.areaHandler.Get)
	api.Patch("/areas/:id", s.areaHandler.Update)
	api.Delete("/areas/:id", s.areaHandler.Delete)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
