package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// ApplicationService defines the interface for application operations
type ApplicationService interface {
	ListApplications(ctx context.Context) ([]*models.Application, error)
	GetApplication(ctx context.Context, id int64) (*models.Application, error)
	GetApplicationDetails(ctx context.Context, id int64) (*models.ApplicationDetails, error)
	CreateApplication(ctx context.Context, application *models.Application) (*models.Application, error)
	UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error)
	DeleteApplication(ctx context.Context, id int64) error
	ApplicationsByStage(ctx context.Context, stage models.ApplicationStage) ([]*models.Application, error)
	ListByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationDetails, error)
	ListByUniversity(ctx context.Context, universityID int64) ([]*models.Application, error)
	ListByProgram(ctx context.Context, programID int64) ([]*models.Application, error)
}

// applicationServiceImpl implements ApplicationService
type applicationServiceImpl struct {
	store  repositories.Storage
	refs   referenceChecker
	logger zerolog.Logger
}

// NewApplicationService creates a new ApplicationService
func NewApplicationService(store repositories.Storage, logger zerolog.Logger) ApplicationService {
	return &applicationServiceImpl{
		store:  store,
		refs:   referenceChecker{store: store},
		logger: logger,
	}
}

func applicationNotFound() error {
	return apperrors.NewResourceNotFoundError("Application not found")
}

// ListApplications retrieves every application
func (s *applicationServiceImpl) ListApplications(ctx context.Context) ([]*models.Application, error) {
	applications, err := s.store.ListApplications(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	return applications, nil
}

// GetApplication retrieves an application by ID
func (s *applicationServiceImpl) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	application, err := s.store.GetApplication(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	if application == nil {
		return nil, applicationNotFound()
	}
	return application, nil
}

// GetApplicationDetails retrieves an application with display names
func (s *applicationServiceImpl) GetApplicationDetails(ctx context.Context, id int64) (*models.ApplicationDetails, error) {
	application, err := s.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := newNameResolver(s.store).applicationDetails(ctx, application)
	if err != nil {
		s.logger.Error().Err(err).Int64("applicationID", id).Msg("Error enriching application")
		return nil, err
	}
	return details, nil
}

// checkReferences validates the references an application will hold after a write.
func (s *applicationServiceImpl) checkReferences(ctx context.Context, a *models.Application) error {
	if err := s.refs.student(ctx, "studentId", &a.StudentID); err != nil {
		return err
	}
	if _, err := s.refs.university(ctx, "universityId", &a.UniversityID); err != nil {
		return err
	}
	program, err := s.refs.program(ctx, "programId", &a.ProgramID)
	if err != nil {
		return err
	}
	if err := programAtUniversity(program, &a.UniversityID); err != nil {
		return err
	}
	return s.refs.agent(ctx, "agentId", a.AgentID)
}

// CreateApplication validates references and stores a new application
func (s *applicationServiceImpl) CreateApplication(ctx context.Context, application *models.Application) (*models.Application, error) {
	// Validate dates
	if err := validateDecisionDate(application.ApplicationDate, application.DecisionDate); err != nil {
		return nil, err
	}

	// Validate referenced student, university, program and agent
	if err := s.checkReferences(ctx, application); err != nil {
		return nil, err
	}

	created, err := s.store.CreateApplication(ctx, application)
	if err != nil {
		return nil, fmt.Errorf("error creating application: %w", err)
	}

	s.logger.Info().
		Int64("applicationID", created.ID).
		Int64("studentID", created.StudentID).
		Int64("programID", created.ProgramID).
		Msg("Application created")
	return created, nil
}

// UpdateApplication applies a partial update. Reference and date rules are
// checked against the merged result.
func (s *applicationServiceImpl) UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error) {
	needsCheck := patch.StudentID != nil || patch.UniversityID != nil || patch.ProgramID != nil ||
		patch.AgentID != nil || patch.ApplicationDate != nil || patch.DecisionDate != nil
	if needsCheck {
		current, err := s.GetApplication(ctx, id)
		if err != nil {
			return nil, err
		}
		// Check the row as it will look after the update
		merged := mergeApplication(*current, patch)
		if err := validateDecisionDate(merged.ApplicationDate, merged.DecisionDate); err != nil {
			return nil, err
		}
		if err := s.checkReferences(ctx, &merged); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateApplication(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating application: %w", err)
	}
	if updated == nil {
		return nil, applicationNotFound()
	}
	return updated, nil
}

// mergeApplication returns a with the reference and date fields of patch applied.
func mergeApplication(a models.Application, patch models.ApplicationPatch) models.Application {
	if patch.StudentID != nil {
		a.StudentID = *patch.StudentID
	}
	if patch.UniversityID != nil {
		a.UniversityID = *patch.UniversityID
	}
	if patch.ProgramID != nil {
		a.ProgramID = *patch.ProgramID
	}
	if patch.AgentID != nil {
		a.AgentID = patch.AgentID.Ptr()
	}
	if patch.ApplicationDate != nil {
		a.ApplicationDate = *patch.ApplicationDate
	}
	if patch.DecisionDate != nil {
		a.DecisionDate = patch.DecisionDate.Value
	}
	return a
}

// DeleteApplication removes an application
func (s *applicationServiceImpl) DeleteApplication(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteApplication(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if !removed {
		return applicationNotFound()
	}
	s.logger.Info().Int64("applicationID", id).Msg("Application deleted")
	return nil
}

// ApplicationsByStage retrieves the applications at a pipeline stage
func (s *applicationServiceImpl) ApplicationsByStage(ctx context.Context, stage models.ApplicationStage) ([]*models.Application, error) {
	// Validate stage
	if !stage.Valid() {
		return nil, apperrors.NewValidationError("stage", fmt.Sprintf("unknown application stage %q", stage))
	}
	applications, err := s.store.ApplicationsByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications by stage: %w", err)
	}
	return applications, nil
}

// ListByStudent retrieves a student's applications with display names
func (s *applicationServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.ApplicationDetails, error) {
	applications, err := s.store.ApplicationsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications by student: %w", err)
	}

	// Attach display names
	resolver := newNameResolver(s.store)
	out := make([]*models.ApplicationDetails, 0, len(applications))
	for _, a := range applications {
		details, err := resolver.applicationDetails(ctx, a)
		if err != nil {
			s.logger.Error().Err(err).Int64("studentID", studentID).Msg("Error enriching applications")
			return nil, err
		}
		out = append(out, details)
	}
	return out, nil
}

// ListByUniversity retrieves every application to a university
func (s *applicationServiceImpl) ListByUniversity(ctx context.Context, universityID int64) ([]*models.Application, error) {
	applications, err := s.store.ApplicationsByUniversity(ctx, universityID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications by university: %w", err)
	}
	return applications, nil
}

// ListByProgram retrieves every application to a program
func (s *applicationServiceImpl) ListByProgram(ctx context.Context, programID int64) ([]*models.Application, error) {
	applications, err := s.store.ApplicationsByProgram(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications by program: %w", err)
	}
	return applications, nil
}
