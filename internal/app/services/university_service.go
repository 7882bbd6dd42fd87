package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// UniversityService defines the interface for university operations
type UniversityService interface {
	ListUniversities(ctx context.Context) ([]*models.University, error)
	GetUniversity(ctx context.Context, id int64) (*models.University, error)
	CreateUniversity(ctx context.Context, university *models.University) (*models.University, error)
	UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.University, error)
	DeleteUniversity(ctx context.Context, id int64) error
	ListPrograms(ctx context.Context, universityID int64) ([]*models.Program, error)
}

// universityServiceImpl implements UniversityService
type universityServiceImpl struct {
	store  repositories.Storage
	logger zerolog.Logger
}

// NewUniversityService creates a new UniversityService
func NewUniversityService(store repositories.Storage, logger zerolog.Logger) UniversityService {
	return &universityServiceImpl{
		store:  store,
		logger: logger,
	}
}

func universityNotFound() error {
	return apperrors.NewResourceNotFoundError("University not found")
}

// ListUniversities retrieves every university
func (s *universityServiceImpl) ListUniversities(ctx context.Context) ([]*models.University, error) {
	universities, err := s.store.ListUniversities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving universities: %w", err)
	}
	return universities, nil
}

// GetUniversity retrieves a university by ID
func (s *universityServiceImpl) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	university, err := s.store.GetUniversity(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving university: %w", err)
	}
	if university == nil {
		return nil, universityNotFound()
	}
	return university, nil
}

// CreateUniversity stores a new university
func (s *universityServiceImpl) CreateUniversity(ctx context.Context, university *models.University) (*models.University, error) {
	// Validate agreement window
	if err := validateAgreementWindow(university.AgreementDate, university.AgreementExpiry); err != nil {
		return nil, err
	}
	created, err := s.store.CreateUniversity(ctx, university)
	if err != nil {
		return nil, fmt.Errorf("error creating university: %w", err)
	}
	s.logger.Info().Int64("universityID", created.ID).Msg("University created")
	return created, nil
}

// UpdateUniversity applies a partial update
func (s *universityServiceImpl) UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.University, error) {
	if patch.AgreementDate != nil || patch.AgreementExpiry != nil {
		current, err := s.GetUniversity(ctx, id)
		if err != nil {
			return nil, err
		}
		// Merge the patch over the stored window
		start, end := current.AgreementDate, current.AgreementExpiry
		if patch.AgreementDate != nil {
			start = patch.AgreementDate.Value
		}
		if patch.AgreementExpiry != nil {
			end = patch.AgreementExpiry.Value
		}
		if err := validateAgreementWindow(start, end); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateUniversity(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating university: %w", err)
	}
	if updated == nil {
		return nil, universityNotFound()
	}
	return updated, nil
}

// DeleteUniversity removes a university together with its programs and applications
func (s *universityServiceImpl) DeleteUniversity(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteUniversity(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting university: %w", err)
	}
	if !removed {
		return universityNotFound()
	}
	s.logger.Info().Int64("universityID", id).Msg("University deleted")
	return nil
}

// ListPrograms retrieves the programs offered by a university
func (s *universityServiceImpl) ListPrograms(ctx context.Context, universityID int64) ([]*models.Program, error) {
	programs, err := s.store.ProgramsByUniversity(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}
