package models

import "time"

// University is a partner institution.
type University struct {
	ID              int64           `json:"id" db:"id" example:"1"`
	Name            string          `json:"name" db:"name" example:"University of Leeds"`
	Country         string          `json:"country" db:"country" example:"United Kingdom"`
	City            string          `json:"city" db:"city" example:"Leeds"`
	Website         string          `json:"website" db:"website" example:"https://www.leeds.ac.uk"`
	Tier            UniversityTier  `json:"tier" db:"tier" example:"tier1"`
	Status          ActivityStatus  `json:"status" db:"status" example:"active"`
	AgreementStatus AgreementStatus `json:"agreementStatus" db:"agreement_status" example:"active"`
	AgreementDate   *time.Time      `json:"agreementDate" db:"agreement_date"`
	AgreementExpiry *time.Time      `json:"agreementExpiry" db:"agreement_expiry"`
	CommissionRate  float64         `json:"commissionRate" db:"commission_rate" example:"12.5"`
	ContactName     string          `json:"contactName" db:"contact_name"`
	ContactEmail    string          `json:"contactEmail" db:"contact_email"`
	ContactPhone    string          `json:"contactPhone" db:"contact_phone"`
	Notes           string          `json:"notes" db:"notes"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// UniversityPatch is a partial update of a university.
type UniversityPatch struct {
	Name            *string
	Country         *string
	City            *string
	Website         *string
	Tier            *UniversityTier
	Status          *ActivityStatus
	AgreementStatus *AgreementStatus
	AgreementDate   *NullableDate
	AgreementExpiry *NullableDate
	CommissionRate  *float64
	ContactName     *string
	ContactEmail    *string
	ContactPhone    *string
	Notes           *string
}
