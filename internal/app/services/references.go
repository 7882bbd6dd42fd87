package services

import (
	"context"
	"fmt"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// referenceChecker verifies that referenced rows exist before a write. A nil id
// is an absent reference and always passes.
type referenceChecker struct {
	store repositories.Storage
}

func missingReference(field, what string, id int64) error {
	return apperrors.NewValidationError(field, fmt.Sprintf("%s %d does not exist", what, id))
}

func (c referenceChecker) agent(ctx context.Context, field string, id *int64) error {
	if id == nil {
		return nil
	}
	agent, err := c.store.GetAgent(ctx, *id)
	if err != nil {
		return fmt.Errorf("error checking agent: %w", err)
	}
	if agent == nil {
		return missingReference(field, "agent", *id)
	}
	return nil
}

func (c referenceChecker) university(ctx context.Context, field string, id *int64) (*models.University, error) {
	if id == nil {
		return nil, nil
	}
	university, err := c.store.GetUniversity(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("error checking university: %w", err)
	}
	if university == nil {
		return nil, missingReference(field, "university", *id)
	}
	return university, nil
}

func (c referenceChecker) program(ctx context.Context, field string, id *int64) (*models.Program, error) {
	if id == nil {
		return nil, nil
	}
	program, err := c.store.GetProgram(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("error checking program: %w", err)
	}
	if program == nil {
		return nil, missingReference(field, "program", *id)
	}
	return program, nil
}

func (c referenceChecker) student(ctx context.Context, field string, id *int64) error {
	if id == nil {
		return nil
	}
	student, err := c.store.GetStudent(ctx, *id)
	if err != nil {
		return fmt.Errorf("error checking student: %w", err)
	}
	if student == nil {
		return missingReference(field, "student", *id)
	}
	return nil
}

// programAtUniversity rejects a program that is not offered by universityID.
func programAtUniversity(program *models.Program, universityID *int64) error {
	if program == nil || universityID == nil || program.UniversityID == *universityID {
		return nil
	}
	return apperrors.NewValidationError("programId",
		fmt.Sprintf("program %d is not offered by university %d", program.ID, *universityID))
}

// nameResolver looks up display names, caching each lookup for the lifetime
// of one request. A dangling reference resolves to nil; storage errors are
// returned.
type nameResolver struct {
	store        repositories.Storage
	students     map[int64]*string
	universities map[int64]*string
	programs     map[int64]*string
	agents       map[int64]*string
}

func newNameResolver(store repositories.Storage) *nameResolver {
	return &nameResolver{
		store:        store,
		students:     make(map[int64]*string),
		universities: make(map[int64]*string),
		programs:     make(map[int64]*string),
		agents:       make(map[int64]*string),
	}
}

func resolveName(ctx context.Context, cache map[int64]*string, id *int64, fetch func(context.Context, int64) (*string, error)) (*string, error) {
	if id == nil {
		return nil, nil
	}
	if name, ok := cache[*id]; ok {
		return name, nil
	}
	name, err := fetch(ctx, *id)
	if err != nil {
		return nil, err
	}
	cache[*id] = name
	return name, nil
}

func (r *nameResolver) student(ctx context.Context, id *int64) (*string, error) {
	return resolveName(ctx, r.students, id, func(ctx context.Context, id int64) (*string, error) {
		s, err := r.store.GetStudent(ctx, id)
		if err != nil || s == nil {
			return nil, err
		}
		name := s.FullName()
		return &name, nil
	})
}

func (r *nameResolver) university(ctx context.Context, id *int64) (*string, error) {
	return resolveName(ctx, r.universities, id, func(ctx context.Context, id int64) (*string, error) {
		u, err := r.store.GetUniversity(ctx, id)
		if err != nil || u == nil {
			return nil, err
		}
		return &u.Name, nil
	})
}

func (r *nameResolver) program(ctx context.Context, id *int64) (*string, error) {
	return resolveName(ctx, r.programs, id, func(ctx context.Context, id int64) (*string, error) {
		p, err := r.store.GetProgram(ctx, id)
		if err != nil || p == nil {
			return nil, err
		}
		return &p.Name, nil
	})
}

func (r *nameResolver) agent(ctx context.Context, id *int64) (*string, error) {
	return resolveName(ctx, r.agents, id, func(ctx context.Context, id int64) (*string, error) {
		a, err := r.store.GetAgent(ctx, id)
		if err != nil || a == nil {
			return nil, err
		}
		return &a.Name, nil
	})
}

func (r *nameResolver) studentDetails(ctx context.Context, s *models.Student) (*models.StudentDetails, error) {
	details := &models.StudentDetails{Student: *s}
	var err error
	if details.AgentName, err = r.agent(ctx, s.AgentID); err != nil {
		return nil, fmt.Errorf("error resolving agent name: %w", err)
	}
	if details.UniversityName, err = r.university(ctx, s.UniversityID); err != nil {
		return nil, fmt.Errorf("error resolving university name: %w", err)
	}
	if details.ProgramName, err = r.program(ctx, s.ProgramID); err != nil {
		return nil, fmt.Errorf("error resolving program name: %w", err)
	}
	return details, nil
}

func (r *nameResolver) applicationDetails(ctx context.Context, a *models.Application) (*models.ApplicationDetails, error) {
	details := &models.ApplicationDetails{Application: *a}
	var err error
	if details.StudentName, err = r.student(ctx, &a.StudentID); err != nil {
		return nil, fmt.Errorf("error resolving student name: %w", err)
	}
	if details.UniversityName, err = r.university(ctx, &a.UniversityID); err != nil {
		return nil, fmt.Errorf("error resolving university name: %w", err)
	}
	if details.ProgramName, err = r.program(ctx, &a.ProgramID); err != nil {
		return nil, fmt.Errorf("error resolving program name: %w", err)
	}
	if details.AgentName, err = r.agent(ctx, a.AgentID); err != nil {
		return nil, fmt.Errorf("error resolving agent name: %w", err)
	}
	return details, nil
}
