package memory

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

func (s *Store) ListAgents(_ context.Context) ([]*models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agents.filter(nil), nil
}

func (s *Store) GetAgent(_ context.Context, id int64) (*models.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agents.get(id), nil
}

func (s *Store) CreateAgent(_ context.Context, agent *models.Agent) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *agent
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.agents.insert(row, func(a *models.Agent, id int64) { a.ID = id }), nil
}

func (s *Store) UpdateAgent(_ context.Context, id int64, p models.AgentPatch) (*models.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.agents.update(id, func(a *models.Agent) {
		var pc patcher
		set(&pc, &a.Name, p.Name)
		set(&pc, &a.Company, p.Company)
		set(&pc, &a.Country, p.Country)
		set(&pc, &a.Email, p.Email)
		set(&pc, &a.Phone, p.Phone)
		set(&pc, &a.Status, p.Status)
		set(&pc, &a.CommissionRate, p.CommissionRate)
		set(&pc, &a.IsFeatured, p.IsFeatured)
		set(&pc, &a.Notes, p.Notes)
		if pc.changed {
			a.UpdatedAt = s.now()
		}
	}), nil
}

// DeleteAgent clears the agent from students and applications.
func (s *Store) DeleteAgent(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.agents.remove(id) {
		return false, nil
	}
	for _, st := range s.students.rows {
		if st.AgentID != nil && *st.AgentID == id {
			st.AgentID = nil
		}
	}
	for _, a := range s.applications.rows {
		if a.AgentID != nil && *a.AgentID == id {
			a.AgentID = nil
		}
	}
	return true, nil
}
