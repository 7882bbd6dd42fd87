package dto

import (
	"time"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/reference"
)

// CreateApplicationRequest is the payload for creating an application. An
// agentId of "none" or null records a direct application.
type CreateApplicationRequest struct {
	StudentID       reference.Ref            `json:"studentId" binding:"required" swaggertype:"integer" example:"5"`
	UniversityID    reference.Ref            `json:"universityId" binding:"required" swaggertype:"integer" example:"2"`
	ProgramID       reference.Ref            `json:"programId" binding:"required" swaggertype:"integer" example:"3"`
	AgentID         reference.Ref            `json:"agentId" swaggertype:"integer"`
	Stage           models.ApplicationStage  `json:"stage" binding:"omitempty,oneof=document_collection under_review submitted_to_university conditional_offer unconditional_offer rejected" example:"document_collection"`
	Status          models.ApplicationStatus `json:"status" binding:"omitempty,oneof=in_progress submitted under_review accepted rejected deferred withdrawn" example:"in_progress"`
	ApplicationDate *Date                    `json:"applicationDate" swaggertype:"string" example:"2025-02-01"`
	DecisionDate    *Date                    `json:"decisionDate" swaggertype:"string"`
	IntakeDate      *Date                    `json:"intakeDate" swaggertype:"string" example:"2025-09-22"`
	IsHighPriority  bool                     `json:"isHighPriority"`
	Notes           string                   `json:"notes"`
}

// ToModel builds the application to persist, filling defaults. now supplies
// the application date when none was given.
func (r *CreateApplicationRequest) ToModel(now time.Time) *models.Application {
	studentID, _ := r.StudentID.Int64()
	universityID, _ := r.UniversityID.Int64()
	programID, _ := r.ProgramID.Int64()

	a := &models.Application{
		StudentID:      studentID,
		UniversityID:   universityID,
		ProgramID:      programID,
		AgentID:        r.AgentID.Ptr(),
		Stage:          r.Stage,
		Status:         r.Status,
		DecisionDate:   r.DecisionDate.Ptr(),
		IntakeDate:     r.IntakeDate.Ptr(),
		IsHighPriority: r.IsHighPriority,
		Notes:          r.Notes,
	}
	if d := r.ApplicationDate.Ptr(); d != nil {
		a.ApplicationDate = *d
	} else {
		y, m, day := now.Date()
		a.ApplicationDate = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	if a.Stage == "" {
		a.Stage = models.ApplicationStageDocumentCollection
	}
	if a.Status == "" {
		a.Status = models.ApplicationInProgress
	}
	return a
}

// UpdateApplicationRequest is a partial update; only supplied keys change.
// Student, university, program and application date may be changed but not
// cleared.
type UpdateApplicationRequest struct {
	StudentID       reference.Optional        `json:"studentId" swaggertype:"integer"`
	UniversityID    reference.Optional        `json:"universityId" swaggertype:"integer"`
	ProgramID       reference.Optional        `json:"programId" swaggertype:"integer"`
	AgentID         reference.Optional        `json:"agentId" swaggertype:"integer"`
	Stage           *models.ApplicationStage  `json:"stage" binding:"omitempty,oneof=document_collection under_review submitted_to_university conditional_offer unconditional_offer rejected"`
	Status          *models.ApplicationStatus `json:"status" binding:"omitempty,oneof=in_progress submitted under_review accepted rejected deferred withdrawn"`
	ApplicationDate OptionalDate              `json:"applicationDate" swaggertype:"string"`
	DecisionDate    OptionalDate              `json:"decisionDate" swaggertype:"string"`
	IntakeDate      OptionalDate              `json:"intakeDate" swaggertype:"string"`
	IsHighPriority  *bool                     `json:"isHighPriority"`
	Notes           *string                   `json:"notes"`
}

// ToPatch converts the request into a store patch. The second result names
// the first required field the request tried to clear.
func (r *UpdateApplicationRequest) ToPatch() (models.ApplicationPatch, string) {
	patch := models.ApplicationPatch{
		AgentID:         r.AgentID.Patch(),
		Stage:           r.Stage,
		Status:          r.Status,
		ApplicationDate: r.ApplicationDate.Ptr(),
		DecisionDate:    r.DecisionDate.Patch(),
		IntakeDate:      r.IntakeDate.Patch(),
		IsHighPriority:  r.IsHighPriority,
		Notes:           r.Notes,
	}

	required := []struct {
		field string
		ref   reference.Optional
		dst   **int64
	}{
		{"studentId", r.StudentID, &patch.StudentID},
		{"universityId", r.UniversityID, &patch.UniversityID},
		{"programId", r.ProgramID, &patch.ProgramID},
	}
	for _, req := range required {
		ref := req.ref.Patch()
		if ref == nil {
			continue
		}
		if ref.IsNull() {
			return patch, req.field
		}
		*req.dst = ref.Ptr()
	}
	if r.ApplicationDate.IsNull() {
		return patch, "applicationDate"
	}
	return patch, ""
}
