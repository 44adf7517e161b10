package fiber

import (
	"context"
	"net/http"

	"problem-tracker-service/internal/stats/core/domain"

	"github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
)

type GetStatsUseCase interface {
	Execute(ctx context.Context) (*domain.Snapshot, error)
}

type StatsHandler struct {
	uc     GetStatsUseCase
	logger *log.Logger
}

func NewStatsHandler(uc GetStatsUseCase, logger *log.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, logger: logger}
}

// GetStats godoc
// @Summary Aggregate statistics
// @Description Returns totals, per-user, per-difficulty and per-tag counts, the current streak and today's count
// @Tags Stats
// @Produce json
// @Security PinToken
// @Success 200 {object} StatsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	snap, err := h.uc.Execute(c.UserContext())
	if err != nil {
		h.logger.Error("compute stats", "err", err)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(NewStatsResponse(snap))
}
