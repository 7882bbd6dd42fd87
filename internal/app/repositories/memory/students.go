package memory

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

func (s *Store) ListStudents(_ context.Context) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.filter(nil), nil
}

func (s *Store) GetStudent(_ context.Context, id int64) (*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.get(id), nil
}

func (s *Store) CreateStudent(_ context.Context, student *models.Student) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := firstErr(
		s.agentExists(student.AgentID),
		s.universityExists(student.UniversityID),
		s.programExists(student.ProgramID),
	); err != nil {
		return nil, err
	}
	row := *student
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.students.insert(row, func(st *models.Student, id int64) { st.ID = id }), nil
}

func (s *Store) UpdateStudent(_ context.Context, id int64, p models.StudentPatch) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.AgentID != nil || p.UniversityID != nil || p.ProgramID != nil {
		var agentID, universityID, programID *int64
		if p.AgentID != nil {
			agentID = p.AgentID.Ptr()
		}
		if p.UniversityID != nil {
			universityID = p.UniversityID.Ptr()
		}
		if p.ProgramID != nil {
			programID = p.ProgramID.Ptr()
		}
		if err := firstErr(s.agentExists(agentID), s.universityExists(universityID), s.programExists(programID)); err != nil {
			return nil, err
		}
	}
	return s.students.update(id, func(st *models.Student) {
		var pc patcher
		set(&pc, &st.FirstName, p.FirstName)
		set(&pc, &st.LastName, p.LastName)
		set(&pc, &st.Email, p.Email)
		set(&pc, &st.Phone, p.Phone)
		set(&pc, &st.Nationality, p.Nationality)
		setDate(&pc, &st.DateOfBirth, p.DateOfBirth)
		set(&pc, &st.Stage, p.Stage)
		set(&pc, &st.Status, p.Status)
		setRef(&pc, &st.AgentID, p.AgentID)
		setRef(&pc, &st.UniversityID, p.UniversityID)
		setRef(&pc, &st.ProgramID, p.ProgramID)
		set(&pc, &st.IsHighPriority, p.IsHighPriority)
		set(&pc, &st.Notes, p.Notes)
		if pc.changed {
			st.UpdatedAt = s.now()
		}
	}), nil
}

// DeleteStudent removes the student together with its applications.
func (s *Store) DeleteStudent(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.students.remove(id) {
		return false, nil
	}
	s.removeApplications(func(a *models.Application) bool { return a.StudentID == id })
	return true, nil
}

func (s *Store) StudentsByStage(_ context.Context, stage models.StudentStage) ([]*models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.students.filter(func(st *models.Student) bool { return st.Stage == stage }), nil
}

func (s *Store) CountStudentsByStage(_ context.Context) (map[models.StudentStage]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.StudentStage]int)
	for _, st := range s.students.rows {
		counts[st.Stage]++
	}
	return counts, nil
}
