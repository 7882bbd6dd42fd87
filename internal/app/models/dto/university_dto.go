package dto

import (
	"github.com/intered/portal/internal/app/models"
)

// CreateUniversityRequest is the payload for creating a university.
type CreateUniversityRequest struct {
	Name            string                 `json:"name" binding:"required,max=255" example:"University of Leeds"`
	Country         string                 `json:"country" binding:"max=100" example:"United Kingdom"`
	City            string                 `json:"city" binding:"max=100" example:"Leeds"`
	Website         string                 `json:"website" binding:"omitempty,url" example:"https://www.leeds.ac.uk"`
	Tier            models.UniversityTier  `json:"tier" binding:"omitempty,oneof=tier1 tier2 tier3 tier4" example:"tier1"`
	Status          models.ActivityStatus  `json:"status" binding:"omitempty,oneof=active inactive" example:"active"`
	AgreementStatus models.AgreementStatus `json:"agreementStatus" binding:"omitempty,oneof=none pending active expired renewal" example:"active"`
	AgreementDate   *Date                  `json:"agreementDate" swaggertype:"string" example:"2024-01-15"`
	AgreementExpiry *Date                  `json:"agreementExpiry" swaggertype:"string" example:"2027-01-15"`
	CommissionRate  float64                `json:"commissionRate" binding:"gte=0,lte=100" example:"12.5"`
	ContactName     string                 `json:"contactName" binding:"max=255"`
	ContactEmail    string                 `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    string                 `json:"contactPhone" binding:"max=50"`
	Notes           string                 `json:"notes"`
}

// ToModel builds the university to persist, filling defaults.
func (r *CreateUniversityRequest) ToModel() *models.University {
	u := &models.University{
		Name:            r.Name,
		Country:         r.Country,
		City:            r.City,
		Website:         r.Website,
		Tier:            r.Tier,
		Status:          r.Status,
		AgreementStatus: r.AgreementStatus,
		AgreementDate:   r.AgreementDate.Ptr(),
		AgreementExpiry: r.AgreementExpiry.Ptr(),
		CommissionRate:  r.CommissionRate,
		ContactName:     r.ContactName,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		Notes:           r.Notes,
	}
	if u.Tier == "" {
		u.Tier = models.Tier3
	}
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	if u.AgreementStatus == "" {
		u.AgreementStatus = models.AgreementNone
	}
	return u
}

// UpdateUniversityRequest is a partial update; only supplied keys change.
type UpdateUniversityRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,min=1,max=255"`
	Country         *string                 `json:"country" binding:"omitempty,max=100"`
	City            *string                 `json:"city" binding:"omitempty,max=100"`
	Website         *string                 `json:"website" binding:"omitempty,url"`
	Tier            *models.UniversityTier  `json:"tier" binding:"omitempty,oneof=tier1 tier2 tier3 tier4"`
	Status          *models.ActivityStatus  `json:"status" binding:"omitempty,oneof=active inactive"`
	AgreementStatus *models.AgreementStatus `json:"agreementStatus" binding:"omitempty,oneof=none pending active expired renewal"`
	AgreementDate   OptionalDate            `json:"agreementDate" swaggertype:"string"`
	AgreementExpiry OptionalDate            `json:"agreementExpiry" swaggertype:"string"`
	CommissionRate  *float64                `json:"commissionRate" binding:"omitempty,gte=0,lte=100"`
	ContactName     *string                 `json:"contactName" binding:"omitempty,max=255"`
	ContactEmail    *string                 `json:"contactEmail" binding:"omitempty,email"`
	ContactPhone    *string                 `json:"contactPhone" binding:"omitempty,max=50"`
	Notes           *string                 `json:"notes"`
}

// ToPatch converts the request into a store patch.
func (r *UpdateUniversityRequest) ToPatch() models.UniversityPatch {
	return models.UniversityPatch{
		Name:            r.Name,
		Country:         r.Country,
		City:            r.City,
		Website:         r.Website,
		Tier:            r.Tier,
		Status:          r.Status,
		AgreementStatus: r.AgreementStatus,
		AgreementDate:   r.AgreementDate.Patch(),
		AgreementExpiry: r.AgreementExpiry.Patch(),
		CommissionRate:  r.CommissionRate,
		ContactName:     r.ContactName,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		Notes:           r.Notes,
	}
}
