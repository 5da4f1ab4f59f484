package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"process-scheduler/internal/metrics"
)

func NewApp(handler SchedulerHandler, recorder *metrics.Recorder) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/metrics", adaptor.HTTPHandler(recorder.Handler()))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	return app
}
