package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/middleware"
	"github.com/intered/portal/internal/pkg/helpers"
)

// ApplicationController handles application operations
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// ListApplications lists all applications
// @Summary List applications
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [get]
func (c *ApplicationController) ListApplications(ctx *gin.Context) {
	applications, err := c.applicationService.ListApplications(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// GetApplication retrieves an application with the names of its references
// @Summary Get application by ID
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.ApplicationDetails} "Application retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID format"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [get]
func (c *ApplicationController) GetApplication(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "application")
		return
	}

	details, err := c.applicationService.GetApplicationDetails(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(details))
}

// CreateApplication creates an application
// @Summary Create application
// @Description studentId, universityId and programId are required; the program must belong to the university.
// @Tags applications
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=models.Application} "Application created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown reference"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications [post]
func (c *ApplicationController) CreateApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	application, err := c.applicationService.CreateApplication(ctx.Request.Context(), req.ToModel(time.Now()))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(application))
}

// UpdateApplication applies a partial update to an application
// @Summary Update application
// @Tags applications
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Param request body dto.UpdateApplicationRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown reference"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [put]
func (c *ApplicationController) UpdateApplication(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "application")
		return
	}

	var req dto.UpdateApplicationRequest
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

	application, err := c.applicationService.UpdateApplication(ctx.Request.Context(), id, patch)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(application))
}

// DeleteApplication deletes an application
// @Summary Delete application
// @Tags applications
// @Security SessionCookie
// @Param id path int true "Application ID" Format(int64) minimum(1)
// @Success 204 "Application deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid application ID format"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/{id} [delete]
func (c *ApplicationController) DeleteApplication(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "application")
		return
	}

	if err := c.applicationService.DeleteApplication(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ApplicationsByStage lists applications in a stage
// @Summary Filter applications by stage
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param stage path string true "Stage" Enums(document_collection, under_review, submitted_to_university, conditional_offer, unconditional_offer, rejected)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Unknown stage"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/filter/stage/{stage} [get]
func (c *ApplicationController) ApplicationsByStage(ctx *gin.Context) {
	stage := models.ApplicationStage(ctx.Param("stage"))
	applications, err := c.applicationService.ApplicationsByStage(ctx.Request.Context(), stage)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// ListByStudent lists a student's applications with display names
// @Summary List applications of a student
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param studentId path int true "Student ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.ApplicationDetails} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/student/{studentId} [get]
func (c *ApplicationController) ListByStudent(ctx *gin.Context) {
	studentID, ok := helpers.IDParam(ctx, "studentId")
	if !ok {
		middleware.InvalidIDError(ctx, "student")
		return
	}

	applications, err := c.applicationService.ListByStudent(ctx.Request.Context(), studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// ListByUniversity lists the applications to a university
// @Summary List applications to a university
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param universityId path int true "University ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid university ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/university/{universityId} [get]
func (c *ApplicationController) ListByUniversity(ctx *gin.Context) {
	universityID, ok := helpers.IDParam(ctx, "universityId")
	if !ok {
		middleware.InvalidIDError(ctx, "university")
		return
	}

	applications, err := c.applicationService.ListByUniversity(ctx.Request.Context(), universityID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}

// ListByProgram lists the applications to a program
// @Summary List applications to a program
// @Tags applications
// @Produce json
// @Security SessionCookie
// @Param programId path int true "Program ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=[]models.Application} "Applications retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid program ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /applications/program/{programId} [get]
func (c *ApplicationController) ListByProgram(ctx *gin.Context) {
	programID, ok := helpers.IDParam(ctx, "programId")
	if !ok {
		middleware.InvalidIDError(ctx, "program")
		return
	}

	applications, err := c.applicationService.ListByProgram(ctx.Request.Context(), programID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(applications))
}
