package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpu-scheduler-simulator/config"
)

// NewApp builds the fiber app with every route registered.
func NewApp(config *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler-simulator",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())

	RegisterRoutes(app, NewSchedulerHandlerImpl(config))
	return app
}

func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Get("/algorithms", handler.Algorithms)

		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/mlfq", handler.MultilevelFeedbackQueue)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/schedule/:algorithm", handler.Schedule)
	}
}
