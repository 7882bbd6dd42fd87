package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/middleware"
)

// StatsController serves dashboard figures
type StatsController struct {
	statsService services.StatsService
}

// NewStatsController creates a new StatsController
func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{
		statsService: statsService,
	}
}

// StudentStageCounts returns how many students sit in each stage
// @Summary Student counts per stage
// @Description Stages without students are omitted.
// @Tags stats
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=map[string]int} "Counts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/students/stage-counts [get]
func (c *StatsController) StudentStageCounts(ctx *gin.Context) {
	counts, err := c.statsService.StudentStageCounts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counts))
}

// ApplicationStageCounts returns how many applications sit in each stage
// @Summary Application counts per stage
// @Description Stages without applications are omitted.
// @Tags stats
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=map[string]int} "Counts retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/applications/stage-counts [get]
func (c *StatsController) ApplicationStageCounts(ctx *gin.Context) {
	counts, err := c.statsService.ApplicationStageCounts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(counts))
}

// Summary returns record totals for the dashboard
// @Summary Dashboard totals
// @Tags stats
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=dto.SummaryResponse} "Summary retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stats/summary [get]
func (c *StatsController) Summary(ctx *gin.Context) {
	summary, err := c.statsService.Summary(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}
