package dto

import (
	"github.com/intered/portal/internal/app/models"
)

// CreateAgentRequest is the payload for creating an agent.
type CreateAgentRequest struct {
	Name           string             `json:"name" binding:"required,max=255" example:"Priya Shah"`
	Company        string             `json:"company" binding:"max=255" example:"Global Pathways Ltd"`
	Country        string             `json:"country" binding:"max=100" example:"India"`
	Email          string             `json:"email" binding:"omitempty,email" example:"priya@globalpathways.example"`
	Phone          string             `json:"phone" binding:"max=50"`
	Status         models.AgentStatus `json:"status" binding:"omitempty,oneof=active inactive pending suspended" example:"active"`
	CommissionRate float64            `json:"commissionRate" binding:"gte=0,lte=100" example:"10"`
	IsFeatured     bool               `json:"isFeatured"`
	Notes          string             `json:"notes"`
}

// ToModel builds the agent to persist, filling defaults.
func (r *CreateAgentRequest) ToModel() *models.Agent {
	a := &models.Agent{
		Name:           r.Name,
		Company:        r.Company,
		Country:        r.Country,
		Email:          r.Email,
		Phone:          r.Phone,
		Status:         r.Status,
		CommissionRate: r.CommissionRate,
		IsFeatured:     r.IsFeatured,
		Notes:          r.Notes,
	}
	if a.Status == "" {
		a.Status = models.AgentPending
	}
	return a
}

// UpdateAgentRequest is a partial update; only supplied keys change.
type UpdateAgentRequest struct {
	Name           *string             `json:"name" binding:"omitempty,min=1,max=255"`
	Company        *string             `json:"company" binding:"omitempty,max=255"`
	Country        *string             `json:"country" binding:"omitempty,max=100"`
	Email          *string             `json:"email" binding:"omitempty,email"`
	Phone          *string             `json:"phone" binding:"omitempty,max=50"`
	Status         *models.AgentStatus `json:"status" binding:"omitempty,oneof=active inactive pending suspended"`
	CommissionRate *float64            `json:"commissionRate" binding:"omitempty,gte=0,lte=100"`
	IsFeatured     *bool               `json:"isFeatured"`
	Notes          *string             `json:"notes"`
}

// ToPatch converts the request into a store patch.
func (r *UpdateAgentRequest) ToPatch() models.AgentPatch {
	return models.AgentPatch{
		Name:           r.Name,
		Company:        r.Company,
		Country:        r.Country,
		Email:          r.Email,
		Phone:          r.Phone,
		Status:         r.Status,
		CommissionRate: r.CommissionRate,
		IsFeatured:     r.IsFeatured,
		Notes:          r.Notes,
	}
}
