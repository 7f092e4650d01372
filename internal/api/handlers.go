package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bilgisen/dayboard/internal/errs"
	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
	"github.com/bilgisen/dayboard/internal/news"
	"github.com/bilgisen/dayboard/internal/schedule"
)

type Handlers struct {
	resolver   *schedule.Resolver
	aggregator *news.Aggregator
}

func NewHandlers(resolver *schedule.Resolver, aggregator *news.Aggregator) *Handlers {
	return &Handlers{
		resolver:   resolver,
		aggregator: aggregator,
	}
}

// HealthCheck handles GET /api/health
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// GetNews handles GET /api/news?category=ai|economy|ikehaya&force=true|false
func (h *Handlers) GetNews(c *fiber.Ctx) error {
	category, ok := models.ParseCategory(c.Query("category", string(models.CategoryAI)))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid category",
		})
	}
	force := c.Query("force") == "true"

	items := h.aggregator.GetNews(c.Context(), category, force)
	return c.JSON(items)
}

// GetScheduleToday handles GET /api/schedule/today?force=true|false
func (h *Handlers) GetScheduleToday(c *fiber.Ctx) error {
	force := c.Query("force") == "true"

	items := h.resolver.GetToday(c.Context(), force)
	return c.JSON(items)
}

// CreateSchedule handles POST /api/schedule
func (h *Handlers) CreateSchedule(c *fiber.Ctx) error {
	var req models.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body: " + err.Error(),
		})
	}

	item, err := h.resolver.CreateEvent(c.Context(), req)
	if err != nil {
		logger.Warn().Err(err).Str("title", req.Title).Msg("Event creation failed")
		return c.Status(statusForError(err)).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// statusForError maps the error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return fiber.StatusBadRequest
	case errors.Is(err, errs.ErrNotConfigured):
		return fiber.StatusNotImplemented
	case errors.Is(err, errs.ErrSourceUnavailable):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
