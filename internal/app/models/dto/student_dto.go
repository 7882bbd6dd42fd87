package dto

import (
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/reference"
)

// CreateStudentRequest is the payload for creating a student. Reference
// fields accept an ID, a numeric string, or "none"/null.
type CreateStudentRequest struct {
	FirstName      string                `json:"firstName" binding:"required,max=100" example:"Ada"`
	LastName       string                `json:"lastName" binding:"max=100" example:"Lovelace"`
	Email          string                `json:"email" binding:"omitempty,email" example:"ada@example.com"`
	Phone          string                `json:"phone" binding:"max=50"`
	Nationality    string                `json:"nationality" binding:"max=100" example:"British"`
	DateOfBirth    *Date                 `json:"dateOfBirth" swaggertype:"string" example:"2001-05-17"`
	Stage          models.StudentStage   `json:"stage" binding:"omitempty,oneof=inquiry application offer visa enrollment alumni" example:"inquiry"`
	Status         models.ActivityStatus `json:"status" binding:"omitempty,oneof=active inactive" example:"active"`
	AgentID        reference.Ref         `json:"agentId" swaggertype:"integer" example:"3"`
	UniversityID   reference.Ref         `json:"universityId" swaggertype:"integer"`
	ProgramID      reference.Ref         `json:"programId" swaggertype:"integer"`
	IsHighPriority bool                  `json:"isHighPriority"`
	Notes          string                `json:"notes"`
}

// ToModel builds the student to persist, filling defaults.
func (r *CreateStudentRequest) ToModel() *models.Student {
	s := &models.Student{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Nationality:    r.Nationality,
		DateOfBirth:    r.DateOfBirth.Ptr(),
		Stage:          r.Stage,
		Status:         r.Status,
		AgentID:        r.AgentID.Ptr(),
		UniversityID:   r.UniversityID.Ptr(),
		ProgramID:      r.ProgramID.Ptr(),
		IsHighPriority: r.IsHighPriority,
		Notes:          r.Notes,
	}
	if s.Stage == "" {
		s.Stage = models.StudentStageInquiry
	}
	if s.Status == "" {
		s.Status = models.StatusActive
	}
	return s
}

// UpdateStudentRequest is a partial update; only supplied keys change.
type UpdateStudentRequest struct {
	FirstName      *string                `json:"firstName" binding:"omitempty,min=1,max=100"`
	LastName       *string                `json:"lastName" binding:"omitempty,max=100"`
	Email          *string                `json:"email" binding:"omitempty,email"`
	Phone          *string                `json:"phone" binding:"omitempty,max=50"`
	Nationality    *string                `json:"nationality" binding:"omitempty,max=100"`
	DateOfBirth    OptionalDate           `json:"dateOfBirth" swaggertype:"string"`
	Stage          *models.StudentStage   `json:"stage" binding:"omitempty,oneof=inquiry application offer visa enrollment alumni"`
	Status         *models.ActivityStatus `json:"status" binding:"omitempty,oneof=active inactive"`
	AgentID        reference.Optional     `json:"agentId" swaggertype:"integer"`
	UniversityID   reference.Optional     `json:"universityId" swaggertype:"integer"`
	ProgramID      reference.Optional     `json:"programId" swaggertype:"integer"`
	IsHighPriority *bool                  `json:"isHighPriority"`
	Notes          *string                `json:"notes"`
}

// ToPatch converts the request into a store patch.
func (r *UpdateStudentRequest) ToPatch() models.StudentPatch {
	return models.StudentPatch{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Phone:          r.Phone,
		Nationality:    r.Nationality,
		DateOfBirth:    r.DateOfBirth.Patch(),
		Stage:          r.Stage,
		Status:         r.Status,
		AgentID:        r.AgentID.Patch(),
		UniversityID:   r.UniversityID.Patch(),
		ProgramID:      r.ProgramID.Patch(),
		IsHighPriority: r.IsHighPriority,
		Notes:          r.Notes,
	}
}
