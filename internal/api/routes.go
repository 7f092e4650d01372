package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bilgisen/dayboard/internal/news"
	"github.com/bilgisen/dayboard/internal/schedule"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(app *fiber.App, resolver *schedule.Resolver, aggregator *news.Aggregator) {
	handlers := NewHandlers(resolver, aggregator)

	api := app.Group("/api")

	api.Get("/health", handlers.HealthCheck)
	api.Get("/news", handlers.GetNews)

	sched := api.Group("/schedule")
	{
		sched.Get("/today", handlers.GetScheduleToday)
		sched.Post("", handlers.CreateSchedule)
	}

	// 404 Handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Endpoint not found",
		})
	})
}
