package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// StudentService defines the interface for student operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	GetStudentDetails(ctx context.Context, id int64) (*models.StudentDetails, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	StudentsByStage(ctx context.Context, stage models.StudentStage) ([]*models.Student, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	store  repositories.Storage
	refs   referenceChecker
	logger zerolog.Logger
}

// NewStudentService creates a new StudentService
func NewStudentService(store repositories.Storage, logger zerolog.Logger) StudentService {
	return &studentServiceImpl{
		store:  store,
		refs:   referenceChecker{store: store},
		logger: logger,
	}
}

func studentNotFound() error {
	return apperrors.NewResourceNotFoundError("Student not found")
}

// ListStudents retrieves every student
func (s *studentServiceImpl) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// GetStudent retrieves a student by ID
func (s *studentServiceImpl) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.store.GetStudent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	if student == nil {
		return nil, studentNotFound()
	}
	return student, nil
}

// GetStudentDetails retrieves a student with agent, university and program names
func (s *studentServiceImpl) GetStudentDetails(ctx context.Context, id int64) (*models.StudentDetails, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	details, err := newNameResolver(s.store).studentDetails(ctx, student)
	if err != nil {
		s.logger.Error().Err(err).Int64("studentID", id).Msg("Error enriching student")
		return nil, err
	}
	return details, nil
}

// checkReferences validates the references a student will hold after a write.
func (s *studentServiceImpl) checkReferences(ctx context.Context, agentID, universityID, programID *int64) error {
	if err := s.refs.agent(ctx, "agentId", agentID); err != nil {
		return err
	}
	if _, err := s.refs.university(ctx, "universityId", universityID); err != nil {
		return err
	}
	program, err := s.refs.program(ctx, "programId", programID)
	if err != nil {
		return err
	}
	return programAtUniversity(program, universityID)
}

// CreateStudent validates references and stores a new student
func (s *studentServiceImpl) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	// Validate referenced agent, university and program
	if err := s.checkReferences(ctx, student.AgentID, student.UniversityID, student.ProgramID); err != nil {
		return nil, err
	}

	created, err := s.store.CreateStudent(ctx, student)
	if err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	s.logger.Info().Int64("studentID", created.ID).Msg("Student created")
	return created, nil
}

// UpdateStudent applies a partial update
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	// Only reference changes need the current row
	if patch.AgentID != nil || patch.UniversityID != nil || patch.ProgramID != nil {
		current, err := s.GetStudent(ctx, id)
		if err != nil {
			return nil, err
		}
		// Merge the patch over the stored references
		agentID, universityID, programID := current.AgentID, current.UniversityID, current.ProgramID
		if patch.AgentID != nil {
			agentID = patch.AgentID.Ptr()
		}
		if patch.UniversityID != nil {
			universityID = patch.UniversityID.Ptr()
		}
		if patch.ProgramID != nil {
			programID = patch.ProgramID.Ptr()
		}
		if err := s.checkReferences(ctx, agentID, universityID, programID); err != nil {
			return nil, err
		}
	}

	updated, err := s.store.UpdateStudent(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating student: %w", err)
	}
	if updated == nil {
		return nil, studentNotFound()
	}
	return updated, nil
}

// DeleteStudent removes a student
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteStudent(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	if !removed {
		return studentNotFound()
	}
	s.logger.Info().Int64("studentID", id).Msg("Student deleted")
	return nil
}

// StudentsByStage retrieves the students at a pipeline stage
func (s *studentServiceImpl) StudentsByStage(ctx context.Context, stage models.StudentStage) ([]*models.Student, error) {
	// Validate stage
	if !stage.Valid() {
		return nil, apperrors.NewValidationError("stage", fmt.Sprintf("unknown student stage %q", stage))
	}
	students, err := s.store.StudentsByStage(ctx, stage)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students by stage: %w", err)
	}
	return students, nil
}
