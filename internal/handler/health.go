package handler

import (
	"context"
	"time"

	"trivia-orb/internal/domain"
	"trivia-orb/internal/dto"
	"trivia-orb/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Health godoc
// @Summary Liveness probe
// @Description Reports the configured model and whether the session store answers.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /healthz [get]
func Health(store domain.Cache, modelID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{Status: "unavailable", Model: modelID})
		}
		return c.JSON(dto.HealthResponse{Status: "ok", Model: modelID})
	}
}
