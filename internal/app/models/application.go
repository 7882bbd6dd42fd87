package models

import (
	"time"

	"github.com/intered/portal/internal/pkg/reference"
)

// Application is a student's application to a program. A nil AgentID means a
// direct application.
type Application struct {
	ID              int64             `json:"id" db:"id" example:"1"`
	StudentID       int64             `json:"studentId" db:"student_id" example:"5"`
	UniversityID    int64             `json:"universityId" db:"university_id" example:"2"`
	ProgramID       int64             `json:"programId" db:"program_id" example:"3"`
	AgentID         *int64            `json:"agentId" db:"agent_id"`
	Stage           ApplicationStage  `json:"stage" db:"stage" example:"document_collection"`
	Status          ApplicationStatus `json:"status" db:"status" example:"in_progress"`
	ApplicationDate time.Time         `json:"applicationDate" db:"application_date"`
	DecisionDate    *time.Time        `json:"decisionDate" db:"decision_date"`
	IntakeDate      *time.Time        `json:"intakeDate" db:"intake_date"`
	IsHighPriority  bool              `json:"isHighPriority" db:"is_high_priority"`
	Notes           string            `json:"notes" db:"notes"`
	CreatedAt       time.Time         `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time         `json:"updatedAt" db:"updated_at"`
}

// ApplicationPatch is a partial update of an application.
type ApplicationPatch struct {
	StudentID       *int64
	UniversityID    *int64
	ProgramID       *int64
	AgentID         *reference.Ref
	Stage           *ApplicationStage
	Status          *ApplicationStatus
	ApplicationDate *time.Time
	DecisionDate    *NullableDate
	IntakeDate      *NullableDate
	IsHighPriority  *bool
	Notes           *string
}

// ApplicationDetails is an application enriched with display names.
type ApplicationDetails struct {
	Application
	StudentName    *string `json:"studentName"`
	UniversityName *string `json:"universityName"`
	ProgramName    *string `json:"programName"`
	AgentName      *string `json:"agentName"`
}
