package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// ProgramService defines the interface for program operations
type ProgramService interface {
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	GetProgram(ctx context.Context, id int64) (*models.Program, error)
	CreateProgram(ctx context.Context, program *models.Program) (*models.Program, error)
	UpdateProgram(ctx context.Context, id int64, patch models.ProgramPatch) (*models.Program, error)
	DeleteProgram(ctx context.Context, id int64) error
}

// programServiceImpl implements ProgramService
type programServiceImpl struct {
	store  repositories.Storage
	refs   referenceChecker
	logger zerolog.Logger
}

// NewProgramService creates a new ProgramService
func NewProgramService(store repositories.Storage, logger zerolog.Logger) ProgramService {
	return &programServiceImpl{
		store:  store,
		refs:   referenceChecker{store: store},
		logger: logger,
	}
}

func programNotFound() error {
	return apperrors.NewResourceNotFoundError("Program not found")
}

// ListPrograms retrieves every program
func (s *programServiceImpl) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	programs, err := s.store.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving programs: %w", err)
	}
	return programs, nil
}

// GetProgram retrieves a program by ID
func (s *programServiceImpl) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	program, err := s.store.GetProgram(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}
	if program == nil {
		return nil, programNotFound()
	}
	return program, nil
}

// CreateProgram stores a new program under an existing university
func (s *programServiceImpl) CreateProgram(ctx context.Context, program *models.Program) (*models.Program, error) {
	if _, err := s.refs.university(ctx, "universityId", &program.UniversityID); err != nil {
		return nil, err
	}
	created, err := s.store.CreateProgram(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("error creating program: %w", err)
	}
	s.logger.Info().Int64("programID", created.ID).Int64("universityID", created.UniversityID).Msg("Program created")
	return created, nil
}

// UpdateProgram applies a partial update
func (s *programServiceImpl) UpdateProgram(ctx context.Context, id int64, patch models.ProgramPatch) (*models.Program, error) {
	if _, err := s.refs.university(ctx, "universityId", patch.UniversityID); err != nil {
		return nil, err
	}
	updated, err := s.store.UpdateProgram(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating program: %w", err)
	}
	if updated == nil {
		return nil, programNotFound()
	}
	return updated, nil
}

// DeleteProgram removes a program
func (s *programServiceImpl) DeleteProgram(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteProgram(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting program: %w", err)
	}
	if !removed {
		return programNotFound()
	}
	s.logger.Info().Int64("programID", id).Msg("Program deleted")
	return nil
}
