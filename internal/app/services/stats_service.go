package services

import (
	"context"
	"fmt"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/models/dto"
	"github.com/intered/portal/internal/app/repositories"
)

// StatsService defines the interface for dashboard aggregates
type StatsService interface {
	StudentStageCounts(ctx context.Context) (map[models.StudentStage]int, error)
	ApplicationStageCounts(ctx context.Context) (map[models.ApplicationStage]int, error)
	Summary(ctx context.Context) (*dto.SummaryResponse, error)
}

// statsServiceImpl implements StatsService
type statsServiceImpl struct {
	store repositories.Storage
}

// NewStatsService creates a new StatsService
func NewStatsService(store repositories.Storage) StatsService {
	return &statsServiceImpl{store: store}
}

// StudentStageCounts counts students per stage. Stages without students are absent.
func (s *statsServiceImpl) StudentStageCounts(ctx context.Context) (map[models.StudentStage]int, error) {
	counts, err := s.store.CountStudentsByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students by stage: %w", err)
	}
	return counts, nil
}

// ApplicationStageCounts counts applications per stage. Stages without applications are absent.
func (s *statsServiceImpl) ApplicationStageCounts(ctx context.Context) (map[models.ApplicationStage]int, error) {
	counts, err := s.store.CountApplicationsByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications by stage: %w", err)
	}
	return counts, nil
}

// Summary totals every entity
func (s *statsServiceImpl) Summary(ctx context.Context) (*dto.SummaryResponse, error) {
	var out dto.SummaryResponse

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	out.Users = len(users)

	students, err := s.store.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}
	out.Students = len(students)
	for _, st := range students {
		if st.IsHighPriority {
			out.HighPriorityStudents++
		}
	}

	universities, err := s.store.ListUniversities(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting universities: %w", err)
	}
	out.Universities = len(universities)

	programs, err := s.store.ListPrograms(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting programs: %w", err)
	}
	out.Programs = len(programs)

	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting agents: %w", err)
	}
	out.Agents = len(agents)

	applications, err := s.store.CountApplicationsByStage(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting applications: %w", err)
	}
	for _, n := range applications {
		out.Applications += n
	}

	return &out, nil
}
