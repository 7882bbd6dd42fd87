package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/apperrors"
)

// AgentService defines the interface for agent operations
type AgentService interface {
	ListAgents(ctx context.Context) ([]*models.Agent, error)
	GetAgent(ctx context.Context, id int64) (*models.Agent, error)
	CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	UpdateAgent(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error)
	DeleteAgent(ctx context.Context, id int64) error
}

// agentServiceImpl implements AgentService
type agentServiceImpl struct {
	store  repositories.AgentStore
	logger zerolog.Logger
}

// NewAgentService creates a new AgentService
func NewAgentService(store repositories.AgentStore, logger zerolog.Logger) AgentService {
	return &agentServiceImpl{
		store:  store,
		logger: logger,
	}
}

func agentNotFound() error {
	return apperrors.NewResourceNotFoundError("Agent not found")
}

// ListAgents retrieves every agent
func (s *agentServiceImpl) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	agents, err := s.store.ListAgents(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving agents: %w", err)
	}
	return agents, nil
}

// GetAgent retrieves an agent by ID
func (s *agentServiceImpl) GetAgent(ctx context.Context, id int64) (*models.Agent, error) {
	agent, err := s.store.GetAgent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving agent: %w", err)
	}
	if agent == nil {
		return nil, agentNotFound()
	}
	return agent, nil
}

// CreateAgent stores a new agent
func (s *agentServiceImpl) CreateAgent(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	created, err := s.store.CreateAgent(ctx, agent)
	if err != nil {
		return nil, fmt.Errorf("error creating agent: %w", err)
	}
	s.logger.Info().Int64("agentID", created.ID).Msg("Agent created")
	return created, nil
}

// UpdateAgent applies a partial update
func (s *agentServiceImpl) UpdateAgent(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error) {
	updated, err := s.store.UpdateAgent(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("error updating agent: %w", err)
	}
	if updated == nil {
		return nil, agentNotFound()
	}
	return updated, nil
}

// DeleteAgent removes an agent; students and applications keep their rows with the agent cleared
func (s *agentServiceImpl) DeleteAgent(ctx context.Context, id int64) error {
	removed, err := s.store.DeleteAgent(ctx, id)
	if err != nil {
		return fmt.Errorf("error deleting agent: %w", err)
	}
	if !removed {
		return agentNotFound()
	}
	s.logger.Info().Int64("agentID", id).Msg("Agent deleted")
	return nil
}
