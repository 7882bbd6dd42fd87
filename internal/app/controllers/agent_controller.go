package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/services"
	"github.com/intered/portal/internal/middleware"
	"github.com/intered/portal/internal/pkg/helpers"
)

// AgentController handles agent operations
type AgentController struct {
	agentService services.AgentService
}

// NewAgentController creates a new AgentController
func NewAgentController(agentService services.AgentService) *AgentController {
	return &AgentController{
		agentService: agentService,
	}
}

// ListAgents lists all agents
// @Summary List agents
// @Tags agents
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Agent} "Agents retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Not authenticated"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents [get]
func (c *AgentController) ListAgents(ctx *gin.Context) {
	agents, err := c.agentService.ListAgents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(agents))
}

// GetAgent retrieves an agent
// @Summary Get agent by ID
// @Tags agents
// @Produce json
// @Security SessionCookie
// @Param id path int true "Agent ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=models.Agent} "Agent retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid agent ID format"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents/{id} [get]
func (c *AgentController) GetAgent(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "agent")
		return
	}

	agent, err := c.agentService.GetAgent(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(agent))
}

// CreateAgent creates an agent
// @Summary Create agent
// @Tags agents
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.CreateAgentRequest true "Agent"
// @Success 201 {object} dto.APIResponse{data=models.Agent} "Agent created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents [post]
func (c *AgentController) CreateAgent(ctx *gin.Context) {
	var req dto.CreateAgentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	agent, err := c.agentService.CreateAgent(ctx.Request.Context(), req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(agent))
}

// UpdateAgent applies a partial update to an agent
// @Summary Update agent
// @Tags agents
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path int true "Agent ID" Format(int64) minimum(1)
// @Param request body dto.UpdateAgentRequest true "Fields to change"
// @Success 200 {object} dto.APIResponse{data=models.Agent} "Agent updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents/{id} [put]
func (c *AgentController) UpdateAgent(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "agent")
		return
	}

	var req dto.UpdateAgentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	agent, err := c.agentService.UpdateAgent(ctx.Request.Context(), id, req.ToPatch())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(agent))
}

// DeleteAgent deletes an agent; students and applications keep no agent
// @Summary Delete agent
// @Tags agents
// @Security SessionCookie
// @Param id path int true "Agent ID" Format(int64) minimum(1)
// @Success 204 "Agent deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid agent ID format"
// @Failure 403 {object} dto.ErrorResponse "Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Agent not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /agents/{id} [delete]
func (c *AgentController) DeleteAgent(ctx *gin.Context) {
	id, ok := helpers.IDParam(ctx, "id")
	if !ok {
		middleware.InvalidIDError(ctx, "agent")
		return
	}

	if err := c.agentService.DeleteAgent(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
