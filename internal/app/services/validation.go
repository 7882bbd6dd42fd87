package services

import (
	"time"

	"github.com/intered/portal/internal/pkg/apperrors"
)

// validateAgreementWindow rejects an agreement that expires before it starts.
func validateAgreementWindow(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return apperrors.NewValidationError("agreementExpiry", "agreementExpiry must not be before agreementDate")
	}
	return nil
}

// validateDecisionDate rejects a decision recorded before the application.
func validateDecisionDate(applied time.Time, decided *time.Time) error {
	if decided != nil && decided.Before(applied) {
		return apperrors.NewValidationError("decisionDate", "decisionDate must not be before applicationDate")
	}
	return nil
}
