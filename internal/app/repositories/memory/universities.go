package memory

import (
	"context"

	"github.com/intered/portal/internal/app/models"
)

func (s *Store) ListUniversities(_ context.Context) ([]*models.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.universities.filter(nil), nil
}

func (s *Store) GetUniversity(_ context.Context, id int64) (*models.University, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.universities.get(id), nil
}

func (s *Store) CreateUniversity(_ context.Context, university *models.University) (*models.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row := *university
	row.CreatedAt = s.now()
	row.UpdatedAt = row.CreatedAt
	return s.universities.insert(row, func(u *models.University, id int64) { u.ID = id }), nil
}

func (s *Store) UpdateUniversity(_ context.Context, id int64, p models.UniversityPatch) (*models.University, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.universities.update(id, func(u *models.University) {
		var pc patcher
		set(&pc, &u.Name, p.Name)
		set(&pc, &u.Country, p.Country)
		set(&pc, &u.City, p.City)
		set(&pc, &u.Website, p.Website)
		set(&pc, &u.Tier, p.Tier)
		set(&pc, &u.Status, p.Status)
		set(&pc, &u.AgreementStatus, p.AgreementStatus)
		setDate(&pc, &u.AgreementDate, p.AgreementDate)
		setDate(&pc, &u.AgreementExpiry, p.AgreementExpiry)
		set(&pc, &u.CommissionRate, p.CommissionRate)
		set(&pc, &u.ContactName, p.ContactName)
		set(&pc, &u.ContactEmail, p.ContactEmail)
		set(&pc, &u.ContactPhone, p.ContactPhone)
		set(&pc, &u.Notes, p.Notes)
		if pc.changed {
			u.UpdatedAt = s.now()
		}
	}), nil
}

// DeleteUniversity cascades to its programs and applications and clears
// student references, matching the foreign keys of the SQL schema.
func (s *Store) DeleteUniversity(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.universities.remove(id) {
		return false, nil
	}
	for pid, p := range s.programs.rows {
		if p.UniversityID == id {
			s.dropProgram(pid)
		}
	}
	s.removeApplications(func(a *models.Application) bool { return a.UniversityID == id })
	for _, st := range s.students.rows {
		if st.UniversityID != nil && *st.UniversityID == id {
			st.UniversityID = nil
		}
	}
	return true, nil
}
