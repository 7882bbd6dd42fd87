package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/middleware"
	"github.com/intered/portal/internal/pkg/helpers"
)

// UniversityController handles university operations
type UniversityController struct {
	universityService services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService services.UniversityService) *UniversityController {
	return &UniversityController{
		universityService: universityService,
	}
}

// ListUniversities lists all universities
// @Summary List universities
// @Tags universities
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.University} "Universities retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [get]
func (c *UniversityController) ListUniversities(ctx *gin.Context) {
	universities, err := c.universityService.ListUniversities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(universities))
}

// GetUniversity retrieves a university
// @Summary Get university by ID
// @Tags universities
// @Produce json
// @Security SessionCookie
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.University} "University retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [get]
func (c *UniversityController) GetUniversity(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "university")
		return
	}

	university, err := c.universityService.GetUniversity(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university))
}

// CreateUniversity creates a university
// @Summary Create university
// @Tags universities
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateUniversityRequest true "University"
// @Success 201 {object} dto.APIResponse{data=models.University} "University created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities [post]
func (c *UniversityController) CreateUniversity(ctx *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	university, err := c.universityService.CreateUniversity(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(university))
}

// UpdateUniversity applies a partial update to a university
// @Summary Update university
// @Tags universities
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Param request body dto.UpdateUniversityRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.University} "University updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [put]
func (c *UniversityController) UpdateUniversity(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "university")
		return
	}

	var req dto.UpdateUniversityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	university, err := c.universityService.UpdateUniversity(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(university))
}

// DeleteUniversity deletes a university and, with it, its programs and applications
// @Summary Delete university
// @Tags universities
// @Security SessionCookie
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 204 "University deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id} [delete]
func (c *UniversityController) DeleteUniversity(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "university")
		return
	}

	if err := c.universityService.DeleteUniversity(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPrograms lists the programs a university offers
// @Summary List university programs
// @Tags universities
// @Produce json
// @Security SessionCookie
// @Param id path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /universities/{id}/programs [get]
func (c *UniversityController) ListPrograms(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "university")
		return
	}

	programs, err := c.universityService.ListPrograms(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(programs))
}
