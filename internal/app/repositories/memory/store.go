// Package memory is an in-process implementation of repositories.Storage.
package memory

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/app/repositories"
	"github.com/intered/portal/internal/pkg/reference"
)

// Store keeps every entity in mutex-guarded maps. Rows are deep-copied on the
// way in and on the way out, so callers never share memory with the store.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users        table[models.User]
	students     table[models.Student]
	universities table[models.University]
	programs     table[models.Program]
	agents       table[models.Agent]
	applications table[models.Application]
}

var _ repositories.Storage = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		now:          func() time.Time { return time.Now().UTC() },
		users:        newTable[models.User](nil),
		students:     newTable(cloneStudent),
		universities: newTable(cloneUniversity),
		programs:     newTable(cloneProgram),
		agents:       newTable[models.Agent](nil),
		applications: newTable(cloneApplication),
	}
}

type table[T any] struct {
	rows   map[int64]*T
	nextID int64
	// clone copies the pointer fields of a row; nil for types without any.
	clone func(T) T
}

func newTable[T any](clone func(T) T) table[T] {
	return table[T]{rows: make(map[int64]*T), clone: clone}
}

// copyOf returns a detached copy of row.
func (t *table[T]) copyOf(row *T) *T {
	out := *row
	if t.clone != nil {
		out = t.clone(out)
	}
	return &out
}

func (t *table[T]) insert(row T, setID func(*T, int64)) *T {
	t.nextID++
	setID(&row, t.nextID)
	stored := t.copyOf(&row)
	t.rows[t.nextID] = stored
	return t.copyOf(stored)
}

func (t *table[T]) get(id int64) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return t.copyOf(row)
}

func (t *table[T]) remove(id int64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// filter returns copies of the rows accepted by keep, ordered by id.
func (t *table[T]) filter(keep func(*T) bool) []*T {
	ids := make([]int64, 0, len(t.rows))
	for id, row := range t.rows {
		if keep == nil || keep(row) {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.copyOf(t.rows[id]))
	}
	return out
}

// update applies fn to the stored row in place and returns a copy.
func (t *table[T]) update(id int64, fn func(*T)) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	fn(row)
	return t.copyOf(row)
}

func missingRef(what string, id int64) error {
	return fmt.Errorf("%w: %s %d", repositories.ErrReferenceMissing, what, id)
}

// patcher records whether any field of a patch was applied.
type patcher struct {
	changed bool
}

func set[T any](p *patcher, dst *T, src *T) {
	if src != nil {
		*dst = *src
		p.changed = true
	}
}

func setDate(p *patcher, dst **time.Time, src *models.NullableDate) {
	if src != nil {
		*dst = clonePtr(src.Value)
		p.changed = true
	}
}

func setRef(p *patcher, dst **int64, src *reference.Ref) {
	if src != nil {
		*dst = src.Ptr()
		p.changed = true
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneStudent(s models.Student) models.Student {
	s.DateOfBirth = clonePtr(s.DateOfBirth)
	s.AgentID = clonePtr(s.AgentID)
	s.UniversityID = clonePtr(s.UniversityID)
	s.ProgramID = clonePtr(s.ProgramID)
	return s
}

func cloneUniversity(u models.University) models.University {
	u.AgreementDate = clonePtr(u.AgreementDate)
	u.AgreementExpiry = clonePtr(u.AgreementExpiry)
	return u
}

func cloneProgram(p models.Program) models.Program {
	p.StartDate = clonePtr(p.StartDate)
	return p
}

func cloneApplication(a models.Application) models.Application {
	a.AgentID = clonePtr(a.AgentID)
	a.DecisionDate = clonePtr(a.DecisionDate)
	a.IntakeDate = clonePtr(a.IntakeDate)
	return a
}

// The exists helpers must be called with s.mu held.

func (s *Store) agentExists(id *int64) error {
	if id != nil && s.agents.rows[*id] == nil {
		return missingRef("agent", *id)
	}
	return nil
}

func (s *Store) universityExists(id *int64) error {
	if id != nil && s.universities.rows[*id] == nil {
		return missingRef("university", *id)
	}
	return nil
}

func (s *Store) programExists(id *int64) error {
	if id != nil && s.programs.rows[*id] == nil {
		return missingRef("program", *id)
	}
	return nil
}

func (s *Store) studentExists(id *int64) error {
	if id != nil && s.students.rows[*id] == nil {
		return missingRef("student", *id)
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
