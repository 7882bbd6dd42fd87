package models

import (
	"time"

	"github.com/intered/portal/internal/pkg/reference"
)

// Student is a prospective or enrolled student tracked by the agency.
type Student struct {
	ID             int64          `json:"id" db:"id" example:"1"`
	FirstName      string         `json:"firstName" db:"first_name" example:"Ada"`
	LastName       string         `json:"lastName" db:"last_name" example:"Lovelace"`
	Email          string         `json:"email" db:"email" example:"ada@example.com"`
	Phone          string         `json:"phone" db:"phone" example:"+44 20 7946 0000"`
	Nationality    string         `json:"nationality" db:"nationality" example:"British"`
	DateOfBirth    *time.Time     `json:"dateOfBirth" db:"date_of_birth"`
	Stage          StudentStage   `json:"stage" db:"stage" example:"inquiry"`
	Status         ActivityStatus `json:"status" db:"status" example:"active"`
	AgentID        *int64         `json:"agentId" db:"agent_id"`
	UniversityID   *int64         `json:"universityId" db:"university_id"`
	ProgramID      *int64         `json:"programId" db:"program_id"`
	IsHighPriority bool           `json:"isHighPriority" db:"is_high_priority"`
	Notes          string         `json:"notes" db:"notes"`
	CreatedAt      time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time      `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last name.
func (s *Student) FullName() string {
	if s.LastName == "" {
		return s.FirstName
	}
	return s.FirstName + " " + s.LastName
}

// StudentPatch is a partial update. Reference fields use *reference.Ref and
// dates use *NullableDate so a patch can distinguish "leave alone" (nil) from
// "clear".
type StudentPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Phone          *string
	Nationality    *string
	DateOfBirth    *NullableDate
	Stage          *StudentStage
	Status         *ActivityStatus
	AgentID        *reference.Ref
	UniversityID   *reference.Ref
	ProgramID      *reference.Ref
	IsHighPriority *bool
	Notes          *string
}

// StudentDetails is a student enriched with the display names of its references.
type StudentDetails struct {
	Student
	AgentName      *string `json:"agentName"`
	UniversityName *string `json:"universityName"`
	ProgramName    *string `json:"programName"`
}
