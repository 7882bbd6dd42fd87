package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var programColumns = []string{
	"id", "name", "level", "duration", "tuition_fee", "currency", "university_id", "start_date",
	"created_at", "updated_at",
}

// ProgramRepository handles database operations for programs
type ProgramRepository struct {
	base
}

// NewProgramRepository creates a new ProgramRepository
func NewProgramRepository(db DBTX) *ProgramRepository {
	return &ProgramRepository{base: newBase(db)}
}

func scanProgram(row rowScanner) (*models.Program, error) {
	var p models.Program
	var level string
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&level,
		&p.Duration,
		&p.TuitionFee,
		&p.Currency,
		&p.UniversityID,
		&p.StartDate,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Level = models.ProgramLevel(level)
	return &p, nil
}

// ListPrograms retrieves all programs ordered by id
func (r *ProgramRepository) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	q := r.sb.Select(programColumns...).From("programs").OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanProgram, "list programs")
}

// GetProgram retrieves a program by ID
func (r *ProgramRepository) GetProgram(ctx context.Context, id int64) (*models.Program, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.sb.Select(programColumns...).From("programs").Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanProgram, "get program")
}

// CreateProgram inserts a program and returns the stored row
func (r *ProgramRepository) CreateProgram(ctx context.Context, p *models.Program) (*models.Program, error) {
	q := r.sb.Insert("programs").
		Columns("name", "level", "duration", "tuition_fee", "currency", "university_id", "start_date").
		Values(p.Name, string(p.Level), p.Duration, p.TuitionFee, p.Currency, p.UniversityID, p.StartDate).
		Suffix("RETURNING " + strings.Join(programColumns, ", "))
	return queryOne(ctx, r.db, q, scanProgram, "create program")
}

// UpdateProgram applies the non-nil fields of patch
func (r *ProgramRepository) UpdateProgram(ctx context.Context, id int64, patch models.ProgramPatch) (*models.Program, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := programPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetProgram(ctx, id)
	}
	return queryOne(ctx, r.db, r.buildUpdate("programs", id, clauses, programColumns), scanProgram, "update program")
}

// DeleteProgram removes a program
func (r *ProgramRepository) DeleteProgram(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("programs").Where(squirrel.Eq{"id": id}), "delete program")
}

// ProgramsByUniversity retrieves the programs offered by a university
func (r *ProgramRepository) ProgramsByUniversity(ctx context.Context, universityID int64) ([]*models.Program, error) {
	q := r.sb.Select(programColumns...).From("programs").
		Where(squirrel.Eq{"university_id": universityID}).
		OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanProgram, "programs by university")
}

func programPatchClauses(p models.ProgramPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	setIf(clauses, "name", p.Name)
	if p.Level != nil {
		clauses["level"] = string(*p.Level)
	}
	setIf(clauses, "duration", p.Duration)
	setIf(clauses, "tuition_fee", p.TuitionFee)
	setIf(clauses, "currency", p.Currency)
	setIf(clauses, "university_id", p.UniversityID)
	setDate(clauses, "start_date", p.StartDate)
	return clauses
}
