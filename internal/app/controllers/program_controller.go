package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/middleware"
	"github.com/intered/portal/internal/pkg/helpers"
)

// ProgramController handles program operations
type ProgramController struct {
	programService services.ProgramService
}

// NewProgramController creates a new ProgramController
func NewProgramController(programService services.ProgramService) *ProgramController {
	return &ProgramController{
		programService: programService,
	}
}

// ListPrograms lists all programs
// @Summary List programs
// @Tags programs
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Program} "Programs retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [get]
func (c *ProgramController) ListPrograms(ctx *gin.Context) {
	programs, err := c.programService.ListPrograms(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(programs))
}

// GetProgram retrieves a program
// @Summary Get program by ID
// @Tags programs
// @Produce json
// @Security SessionCookie
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID format"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [get]
func (c *ProgramController) GetProgram(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "program")
		return
	}

	program, err := c.programService.GetProgram(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// CreateProgram creates a program at a university
// @Summary Create program
// @Tags programs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateProgramRequest true "Program"
// @Success 201 {object} dto.APIResponse{data=models.Program} "Program created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown university"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs [post]
func (c *ProgramController) CreateProgram(ctx *gin.Context) {
	var req dto.CreateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	program, err := c.programService.CreateProgram(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(program))
}

// UpdateProgram applies a partial update to a program
// @Summary Update program
// @Tags programs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Param request body dto.UpdateProgramRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Program} "Program updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown university"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [put]
func (c *ProgramController) UpdateProgram(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "program")
		return
	}

	var req dto.UpdateProgramRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	patch, cleared := req.ToPatch()
	if cleared != "" {
		middleware.RespondError(ctx, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, cleared+" cannot be cleared").WithField(cleared))
		return
	}

	program, err := c.programService.UpdateProgram(ctx.Request.Context(), id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(program))
}

// DeleteProgram deletes a program and its applications
// @Summary Delete program
// @Tags programs
// @Security SessionCookie
// @Param id path int true "Program ID" Format(int64) minimum(1)
// @Success 204 "Program deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID format"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Program not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /programs/{id} [delete]
func (c *ProgramController) DeleteProgram(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "program")
		return
	}

	if err := c.programService.DeleteProgram(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
