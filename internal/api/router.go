package api

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	swagger "github.com/go-swagno/swagno-fiber/swagger"

	"github.com/gianca04/face-recognition/internal/api/docs"
	"github.com/gianca04/face-recognition/internal/api/handler"
	"github.com/gianca04/face-recognition/internal/api/middleware"
)

type Dependencies struct {
	RecognitionService handler.RecognitionService
	FaceRegistry       handler.FaceRegistry
	Readiness          handler.ReadinessChecker
}

type Router struct {
	app    *fiber.App
	logger *slog.Logger
	deps   *Dependencies
}

func NewRouter(logger *slog.Logger, deps *Dependencies) *Router {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(logger),
		AppName:      "Face Recognition API",
	})

	return &Router{
		app:    app,
		logger: logger,
		deps:   deps,
	}
}

func (r *Router) Setup() {
	// Global middlewares
	r.app.Use(requestid.New())
	r.app.Use(middleware.Recover(r.logger))
	r.app.Use(middleware.Logger(r.logger))
	r.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Swagger documentation
	sw := docs.NewSwagger()
	swagger.SwaggerHandler(r.app, sw.MustToJson())

	// Health check endpoints
	var readiness handler.ReadinessChecker
	if r.deps != nil {
		readiness = r.deps.Readiness
	}
	healthHandler := handler.NewHealthHandler(readiness)
	r.app.Get("/health", healthHandler.Health)
	r.app.Get("/ready", healthHandler.Ready)

	v1 := r.app.Group("/v1")

	if r.deps != nil {
		recognitionHandler := handler.NewRecognitionHandler(r.deps.RecognitionService, r.logger)
		v1.Post("/recognize", recognitionHandler.Recognize)
		v1.Post("/encoding", recognitionHandler.Encode)

		// Face maintenance routes are only exposed when the registry is mutable
		if r.deps.FaceRegistry != nil {
			facesHandler := handler.NewFacesHandler(r.deps.FaceRegistry, r.logger)
			v1.Get("/faces", facesHandler.List)
			v1.Post("/faces", facesHandler.Register)
			v1.Delete("/faces/:id", facesHandler.Delete)
		}
	}
}

func (r *Router) App() *fiber.App {
	return r.app
}

func (r *Router) Listen(addr string) error {
	return r.app.Listen(addr)
}

func (r *Router) Shutdown() error {
	return r.app.Shutdown()
}
