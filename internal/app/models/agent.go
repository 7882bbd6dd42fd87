package models

import "time"

// Agent is an external recruitment partner.
type Agent struct {
	ID             int64       `json:"id" db:"id" example:"1"`
	Name           string      `json:"name" db:"name" example:"Priya Shah"`
	Company        string      `json:"company" db:"company" example:"Global Pathways Ltd"`
	Country        string      `json:"country" db:"country" example:"India"`
	Email          string      `json:"email" db:"email" example:"priya@globalpathways.example"`
	Phone          string      `json:"phone" db:"phone"`
	Status         AgentStatus `json:"status" db:"status" example:"active"`
	CommissionRate float64     `json:"commissionRate" db:"commission_rate" example:"10"`
	IsFeatured     bool        `json:"isFeatured" db:"is_featured"`
	Notes          string      `json:"notes" db:"notes"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time   `json:"updatedAt" db:"updated_at"`
}

// AgentPatch is a partial update of an agent.
type AgentPatch struct {
	Name           *string
	Company        *string
	Country        *string
	Email          *string
	Phone          *string
	Status         *AgentStatus
	CommissionRate *float64
	IsFeatured     *bool
	Notes          *string
}
