package memory

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

func (s *Store) ListApplications(_ context.Context) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.filter(nil), nil
}

func (s *Store) GetApplication(_ context.Context, id int64) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.get(id), nil
}

func (s *Store) CreateApplication(_ context.Context, application *models.Application) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := firstErr(
		s.studentExists(&application.StudentID),
		s.universityExists(&application.UniversityID),
		s.programExists(&application.ProgramID),
		s.agentExists(application.AgentID),
	); err != nil {
		return nil, err
	}
	row := *application
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.applications.insert(row, func(a *models.Application, id int64) { a.ID = id }), nil
}

func (s *Store) UpdateApplication(_ context.Context, id int64, p models.ApplicationPatch) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var agentID *int64
	if p.AgentID != nil {
		agentID = p.AgentID.Ptr()
	}
	if err := firstErr(
		s.studentExists(p.StudentID),
		s.universityExists(p.UniversityID),
		s.programExists(p.ProgramID),
		s.agentExists(agentID),
	); err != nil {
		return nil, err
	}
	return s.applications.update(id, func(a *models.Application) {
		var pc patcher
		set(&pc, &a.StudentID, p.StudentID)
		set(&pc, &a.UniversityID, p.UniversityID)
		set(&pc, &a.ProgramID, p.ProgramID)
		setRef(&pc, &a.AgentID, p.AgentID)
		set(&pc, &a.Stage, p.Stage)
		set(&pc, &a.Status, p.Status)
		set(&pc, &a.ApplicationDate, p.ApplicationDate)
		setDate(&pc, &a.DecisionDate, p.DecisionDate)
		setDate(&pc, &a.IntakeDate, p.IntakeDate)
		set(&pc, &a.IsHighPriority, p.IsHighPriority)
		set(&pc, &a.Notes, p.Notes)
		if pc.changed {
			a.UpdatedAt = s.now()
		}
	}), nil
}

func (s *Store) DeleteApplication(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applications.remove(id), nil
}

func (s *Store) ApplicationsByStage(_ context.Context, stage models.ApplicationStage) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.filter(func(a *models.Application) bool { return a.Stage == stage }), nil
}

func (s *Store) CountApplicationsByStage(_ context.Context) (map[models.ApplicationStage]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.ApplicationStage]int)
	for _, a := range s.applications.rows {
		counts[a.Stage]++
	}
	return counts, nil
}

func (s *Store) ApplicationsByStudent(_ context.Context, studentID int64) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.filter(func(a *models.Application) bool { return a.StudentID == studentID }), nil
}

func (s *Store) ApplicationsByUniversity(_ context.Context, universityID int64) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.filter(func(a *models.Application) bool { return a.UniversityID == universityID }), nil
}

func (s *Store) ApplicationsByProgram(_ context.Context, programID int64) ([]*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.applications.filter(func(a *models.Application) bool { return a.ProgramID == programID }), nil
}

// removeApplications must be called with s.mu held.
func (s *Store) removeApplications(match func(*models.Application) bool) {
	for id, a := range s.applications.rows {
		if match(a) {
			delete(s.applications.rows, id)
		}
	}
}
