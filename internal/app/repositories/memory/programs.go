package memory

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

func (s *Store) ListPrograms(_ context.Context) ([]*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs.filter(nil), nil
}

func (s *Store) GetProgram(_ context.Context, id int64) (*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs.get(id), nil
}

func (s *Store) CreateProgram(_ context.Context, program *models.Program) (*models.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.universityExists(&program.UniversityID); err != nil {
		return nil, err
	}
	row := *program
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.programs.insert(row, func(p *models.Program, id int64) { p.ID = id }), nil
}

func (s *Store) UpdateProgram(_ context.Context, id int64, p models.ProgramPatch) (*models.Program, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.universityExists(p.UniversityID); err != nil {
		return nil, err
	}
	return s.programs.update(id, func(pr *models.Program) {
		var pc patcher
		set(&pc, &pr.Name, p.Name)
		set(&pc, &pr.Level, p.Level)
		set(&pc, &pr.Duration, p.Duration)
		set(&pc, &pr.TuitionFee, p.TuitionFee)
		set(&pc, &pr.Currency, p.Currency)
		set(&pc, &pr.UniversityID, p.UniversityID)
		setDate(&pc, &pr.StartDate, p.StartDate)
		if pc.changed {
			pr.UpdatedAt = s.now()
		}
	}), nil
}

func (s *Store) DeleteProgram(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.programs.rows[id] == nil {
		return false, nil
	}
	s.dropProgram(id)
	return true, nil
}

func (s *Store) ProgramsByUniversity(_ context.Context, universityID int64) ([]*models.Program, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.programs.filter(func(p *models.Program) bool { return p.UniversityID == universityID }), nil
}

// dropProgram removes a program, its applications, and student references to it.
func (s *Store) dropProgram(id int64) {
	s.programs.remove(id)
	s.removeApplications(func(a *models.Application) bool { return a.ProgramID == id })
	for _, st := range s.students.rows {
		if st.ProgramID != nil && *st.ProgramID == id {
			st.ProgramID = nil
		}
	}
}
