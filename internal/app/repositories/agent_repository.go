package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var agentColumns = []string{
	"id", "name", "company", "country", "email", "phone", "status", "commission_rate",
	"is_featured", "notes", "created_at", "updated_at",
}

// AgentRepository handles database operations for agents
type AgentRepository struct {
	base
}

// NewAgentRepository creates a new AgentRepository
func NewAgentRepository(db DBTX) *AgentRepository {
	return &AgentRepository{base: newBase(db)}
}

func scanAgent(row rowScanner) (*models.Agent, error) {
	var a models.Agent
	var status string
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Company,
		&a.Country,
		&a.Email,
		&a.Phone,
		&status,
		&a.CommissionRate,
		&a.IsFeatured,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = models.AgentStatus(status)
	return &a, nil
}

// ListAgents retrieves all agents ordered by id
func (r *AgentRepository) ListAgents(ctx context.Context) ([]*models.Agent, error) {
	q := r.sb.Select(agentColumns...).From("agents").OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanAgent, "list agents")
}

// GetAgent retrieves an agent by ID
func (r *AgentRepository) GetAgent(ctx context.Context, id int64) (*models.Agent, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.sb.Select(agentColumns...).From("agents").Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanAgent, "get agent")
}

// CreateAgent inserts an agent and returns the stored row
func (r *AgentRepository) CreateAgent(ctx context.Context, a *models.Agent) (*models.Agent, error) {
	q := r.sb.Insert("agents").
		Columns("name", "company", "country", "email", "phone", "status", "commission_rate", "is_featured", "notes").
		Values(a.Name, a.Company, a.Country, a.Email, a.Phone, string(a.Status), a.CommissionRate, a.IsFeatured, a.Notes).
		Suffix("RETURNING " + strings.Join(agentColumns, ", "))
	return queryOne(ctx, r.db, q, scanAgent, "create agent")
}

// UpdateAgent applies the non-nil fields of patch
func (r *AgentRepository) UpdateAgent(ctx context.Context, id int64, patch models.AgentPatch) (*models.Agent, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := agentPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetAgent(ctx, id)
	}
	return queryOne(ctx, r.db, r.buildUpdate("agents", id, clauses, agentColumns), scanAgent, "update agent")
}

// DeleteAgent removes an agent
func (r *AgentRepository) DeleteAgent(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("agents").Where(squirrel.Eq{"id": id}), "delete agent")
}

func agentPatchClauses(p models.AgentPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	setIf(clauses, "name", p.Name)
	setIf(clauses, "company", p.Company)
	setIf(clauses, "country", p.Country)
	setIf(clauses, "email", p.Email)
	setIf(clauses, "phone", p.Phone)
	if p.Status != nil {
		clauses["status"] = string(*p.Status)
	}
	setIf(clauses, "commission_rate", p.CommissionRate)
	setIf(clauses, "is_featured", p.IsFeatured)
	setIf(clauses, "notes", p.Notes)
	return clauses
}
