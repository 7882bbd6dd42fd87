package dto

import (
	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/reference"
)

// CreateProgramRequest is the payload for creating a program.
type CreateProgramRequest struct {
	Name         string              `json:"name" binding:"required,max=255" example:"MSc Data Science"`
	Level        models.ProgramLevel `json:"level" binding:"required,oneof=foundation diploma bachelor master phd certificate" example:"master"`
	Duration     string              `json:"duration" binding:"max=50" example:"12 months"`
	TuitionFee   float64             `json:"tuitionFee" binding:"gte=0" example:"24500"`
	Currency     string              `json:"currency" binding:"omitempty,len=3" example:"GBP"`
	UniversityID reference.Ref       `json:"universityId" binding:"required" swaggertype:"integer" example:"1"`
	StartDate    *Date               `json:"startDate" swaggertype:"string" example:"2025-09-22"`
}

// ToModel builds the program to persist, filling defaults.
func (r *CreateProgramRequest) ToModel() *models.Program {
	universityID, _ := r.UniversityID.Int64()
	p := &models.Program{
		Name:         r.Name,
		Level:        r.Level,
		Duration:     r.Duration,
		TuitionFee:   r.TuitionFee,
		Currency:     r.Currency,
		UniversityID: universityID,
		StartDate:    r.StartDate.Ptr(),
	}
	if p.Currency == "" {
		p.Currency = "USD"
	}
	return p
}

// UpdateProgramRequest is a partial update; only supplied keys change. The
// university may be changed but not cleared.
type UpdateProgramRequest struct {
	Name         *string              `json:"name" binding:"omitempty,min=1,max=255"`
	Level        *models.ProgramLevel `json:"level" binding:"omitempty,oneof=foundation diploma bachelor master phd certificate"`
	Duration     *string              `json:"duration" binding:"omitempty,max=50"`
	TuitionFee   *float64             `json:"tuitionFee" binding:"omitempty,gte=0"`
	Currency     *string              `json:"currency" binding:"omitempty,len=3"`
	UniversityID reference.Optional   `json:"universityId" swaggertype:"integer"`
	StartDate    OptionalDate         `json:"startDate" swaggertype:"string"`
}

// ToPatch converts the request into a store patch. The second result names
// the offending field when a required reference is cleared.
func (r *UpdateProgramRequest) ToPatch() (models.ProgramPatch, string) {
	patch := models.ProgramPatch{
		Name:       r.Name,
		Level:      r.Level,
		Duration:   r.Duration,
		TuitionFee: r.TuitionFee,
		Currency:   r.Currency,
		StartDate:  r.StartDate.Patch(),
	}
	if ref := r.UniversityID.Patch(); ref != nil {
		if ref.IsNull() {
			return patch, "universityId"
		}
		patch.UniversityID = ref.Ptr()
	}
	return patch, ""
}
