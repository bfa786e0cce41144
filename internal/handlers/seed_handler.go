package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nomix/internal/services"
)

// SeedHandler triggers synthetic market data generation.
type SeedHandler struct {
	seedService services.SeedServicer
	now         func() time.Time
}

// NewSeedHandler creates a new SeedHandler
func NewSeedHandler(seedService services.SeedServicer) *SeedHandler {
	return &SeedHandler{seedService: seedService, now: time.Now}
}

// SeedResponse reports how many rows a seeding call created.
type SeedResponse struct {
	Message string `json:"message"`
	services.SeedResult
}

// SeedFull generates the full window around today
// @Summary     Seed full window
// @Description Creates catalog companies and rows from 30 days ago through 10 days ahead. Existing rows are kept.
// @Tags        seed
// @Produce     json
// @Security    SeedKey
// @Success     200 {object} SeedResponse
// @Failure     401 {object} ErrorResponse "Missing or invalid seed key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /seed_full_data [post]
func (h *SeedHandler) SeedFull(c *gin.Context) {
	result, err := h.seedService.SeedFull(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, SeedResponse{Message: "Full market data seeded", SeedResult: *result})
}

// SeedWeek generates today and the following six days
// @Summary     Seed one week
// @Description Creates rows for today through six days ahead. Existing rows are kept.
// @Tags        seed
// @Produce     json
// @Security    SeedKey
// @Success     200 {object} SeedResponse
// @Failure     401 {object} ErrorResponse "Missing or invalid seed key"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /seed_week_data [post]
func (h *SeedHandler) SeedWeek(c *gin.Context) {
	result, err := h.seedService.SeedWeek(h.now())
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, SeedResponse{Message: "Weekly market data seeded", SeedResult: *result})
}
