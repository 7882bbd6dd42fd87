package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var studentColumns = []string{
	"id", "first_name", "last_name", "email", "phone", "nationality", "date_of_birth",
	"stage", "status", "agent_id", "university_id", "program_id", "is_high_priority", "notes",
	"created_at", "updated_at",
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	base
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db DBTX) *StudentRepository {
	return &StudentRepository{base: newBase(db)}
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var s models.Student
	var stage, status string
	if err := row.Scan(
		&s.ID,
		&s.FirstName,
		&s.LastName,
		&s.Email,
		&s.Phone,
		&s.Nationality,
		&s.DateOfBirth,
		&stage,
		&status,
		&s.AgentID,
		&s.UniversityID,
		&s.ProgramID,
		&s.IsHighPriority,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	s.Stage = models.StudentStage(stage)
	s.Status = models.ActivityStatus(status)
	return &s, nil
}

// ListStudents retrieves all students ordered by id
func (r *StudentRepository) ListStudents(ctx context.Context) ([]*models.Student, error) {
	q := r.sb.Select(studentColumns...).From("students").OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanStudent, "list students")
}

// GetStudent retrieves a student by ID
func (r *StudentRepository) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.sb.Select(studentColumns...).From("students").Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanStudent, "get student")
}

// CreateStudent inserts a student and returns the stored row
func (r *StudentRepository) CreateStudent(ctx context.Context, s *models.Student) (*models.Student, error) {
	q := r.sb.Insert("students").
		Columns(
			"first_name", "last_name", "email", "phone", "nationality", "date_of_birth",
			"stage", "status", "agent_id", "university_id", "program_id", "is_high_priority", "notes",
		).
		Values(
			s.FirstName, s.LastName, s.Email, s.Phone, s.Nationality, s.DateOfBirth,
			string(s.Stage), string(s.Status), s.AgentID, s.UniversityID, s.ProgramID, s.IsHighPriority, s.Notes,
		).
		Suffix("RETURNING " + strings.Join(studentColumns, ", "))
	return queryOne(ctx, r.db, q, scanStudent, "create student")
}

// UpdateStudent applies the non-nil fields of patch
func (r *StudentRepository) UpdateStudent(ctx context.Context, id int64, patch models.StudentPatch) (*models.Student, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := studentPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetStudent(ctx, id)
	}
	return queryOne(ctx, r.db, r.buildUpdate("students", id, clauses, studentColumns), scanStudent, "update student")
}

// DeleteStudent removes a student
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("students").Where(squirrel.Eq{"id": id}), "delete student")
}

// StudentsByStage retrieves the students currently at stage
func (r *StudentRepository) StudentsByStage(ctx context.Context, stage models.StudentStage) ([]*models.Student, error) {
	q := r.sb.Select(studentColumns...).From("students").
		Where(squirrel.Eq{"stage": string(stage)}).
		OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanStudent, "students by stage")
}

// CountStudentsByStage counts students per stage
func (r *StudentRepository) CountStudentsByStage(ctx context.Context) (map[models.StudentStage]int, error) {
	raw, err := countByColumn(ctx, r.db, r.sb, "students", "stage")
	if err != nil {
		return nil, err
	}
	counts := make(map[models.StudentStage]int, len(raw))
	for stage, n := range raw {
		counts[models.StudentStage(stage)] = n
	}
	return counts, nil
}

func studentPatchClauses(p models.StudentPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	setIf(clauses, "first_name", p.FirstName)
	setIf(clauses, "last_name", p.LastName)
	setIf(clauses, "email", p.Email)
	setIf(clauses, "phone", p.Phone)
	setIf(clauses, "nationality", p.Nationality)
	setDate(clauses, "date_of_birth", p.DateOfBirth)
	if p.Stage != nil {
		clauses["stage"] = string(*p.Stage)
	}
	if p.Status != nil {
		clauses["status"] = string(*p.Status)
	}
	if p.AgentID != nil {
		clauses["agent_id"] = p.AgentID.Ptr()
	}
	if p.UniversityID != nil {
		clauses["university_id"] = p.UniversityID.Ptr()
	}
	if p.ProgramID != nil {
		clauses["program_id"] = p.ProgramID.Ptr()
	}
	setIf(clauses, "is_high_priority", p.IsHighPriority)
	setIf(clauses, "notes", p.Notes)
	return clauses
}
