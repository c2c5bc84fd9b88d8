package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"lendcircle/internal/service"
)

// SeedHandler exposes demo-data seeding for development environments.
type SeedHandler struct {
	seedService service.SeedService
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(seedService service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedDemo godoc
// @Summary Seed sample lenders, borrowers and loan profiles
// @Tags seed
// @Produce json
// @Success 200 {object} service.SeedStats
// @Failure 500 {object} map[string]string
// @Router /seed/demo [get]
func (h *SeedHandler) SeedDemo(c echo.Context) error {
	stats, err := h.seedService.SeedDemoData(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}
