package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var applicationColumns = []string{
	"id", "student_id", "university_id", "program_id", "agent_id", "stage", "status",
	"application_date", "decision_date", "intake_date", "is_high_priority", "notes",
	"created_at", "updated_at",
}

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	base
}

// NewApplicationRepository creates a new ApplicationRepository
func NewApplicationRepository(db DBTX) *ApplicationRepository {
	return &ApplicationRepository{base: newBase(db)}
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var a models.Application
	var stage, status string
	if err := row.Scan(
		&a.ID,
		&a.StudentID,
		&a.UniversityID,
		&a.ProgramID,
		&a.AgentID,
		&stage,
		&status,
		&a.ApplicationDate,
		&a.DecisionDate,
		&a.IntakeDate,
		&a.IsHighPriority,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Stage = models.ApplicationStage(stage)
	a.Status = models.ApplicationStatus(status)
	return &a, nil
}

func (r *ApplicationRepository) selectApplications() squirrel.SelectBuilder {
	return r.sb.Select(applicationColumns...).From("applications")
}

// ListApplications retrieves all applications ordered by id
func (r *ApplicationRepository) ListApplications(ctx context.Context) ([]*models.Application, error) {
	return queryAll(ctx, r.db, r.selectApplications().OrderBy("id ASC"), scanApplication, "list applications")
}

// GetApplication retrieves an application by ID
func (r *ApplicationRepository) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.selectApplications().Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanApplication, "get application")
}

// CreateApplication inserts an application and returns the stored row
func (r *ApplicationRepository) CreateApplication(ctx context.Context, a *models.Application) (*models.Application, error) {
	q := r.sb.Insert("applications").
		Columns(
			"student_id", "university_id", "program_id", "agent_id", "stage", "status",
			"application_date", "decision_date", "intake_date", "is_high_priority", "notes",
		).
		Values(
			a.StudentID, a.UniversityID, a.ProgramID, a.AgentID, string(a.Stage), string(a.Status),
			a.ApplicationDate, a.DecisionDate, a.IntakeDate, a.IsHighPriority, a.Notes,
		).
		Suffix("RETURNING " + strings.Join(applicationColumns, ", "))
	return queryOne(ctx, r.db, q, scanApplication, "create application")
}

// UpdateApplication applies the non-nil fields of patch
func (r *ApplicationRepository) UpdateApplication(ctx context.Context, id int64, patch models.ApplicationPatch) (*models.Application, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := applicationPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetApplication(ctx, id)
	}
	q := r.buildUpdate("applications", id, clauses, applicationColumns)
	return queryOne(ctx, r.db, q, scanApplication, "update application")
}

// DeleteApplication removes an application
func (r *ApplicationRepository) DeleteApplication(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("applications").Where(squirrel.Eq{"id": id}), "delete application")
}

// ApplicationsByStage retrieves the applications currently at stage
func (r *ApplicationRepository) ApplicationsByStage(ctx context.Context, stage models.ApplicationStage) ([]*models.Application, error) {
	q := r.selectApplications().Where(squirrel.Eq{"stage": string(stage)}).OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanApplication, "applications by stage")
}

// CountApplicationsByStage counts applications per stage
func (r *ApplicationRepository) CountApplicationsByStage(ctx context.Context) (map[models.ApplicationStage]int, error) {
	raw, err := countByColumn(ctx, r.db, r.sb, "applications", "stage")
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ApplicationStage]int, len(raw))
	for stage, n := range raw {
		counts[models.ApplicationStage(stage)] = n
	}
	return counts, nil
}

// ApplicationsByStudent retrieves every application of a student
func (r *ApplicationRepository) ApplicationsByStudent(ctx context.Context, studentID int64) ([]*models.Application, error) {
	q := r.selectApplications().Where(squirrel.Eq{"student_id": studentID}).OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanApplication, "applications by student")
}

// ApplicationsByUniversity retrieves every application to a university
func (r *ApplicationRepository) ApplicationsByUniversity(ctx context.Context, universityID int64) ([]*models.Application, error) {
	q := r.selectApplications().Where(squirrel.Eq{"university_id": universityID}).OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanApplication, "applications by university")
}

// ApplicationsByProgram retrieves every application to a program
func (r *ApplicationRepository) ApplicationsByProgram(ctx context.Context, programID int64) ([]*models.Application, error) {
	q := r.selectApplications().Where(squirrel.Eq{"program_id": programID}).OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanApplication, "applications by program")
}

func applicationPatchClauses(p models.ApplicationPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	setIf(clauses, "student_id", p.StudentID)
	setIf(clauses, "university_id", p.UniversityID)
	setIf(clauses, "program_id", p.ProgramID)
	if p.AgentID != nil {
		clauses["agent_id"] = p.AgentID.Ptr()
	}
	if p.Stage != nil {
		clauses["stage"] = string(*p.Stage)
	}
	if p.Status != nil {
		clauses["status"] = string(*p.Status)
	}
	setIf(clauses, "application_date", p.ApplicationDate)
	setDate(clauses, "decision_date", p.DecisionDate)
	setDate(clauses, "intake_date", p.IntakeDate)
	setIf(clauses, "is_high_priority", p.IsHighPriority)
	setIf(clauses, "notes", p.Notes)
	return clauses
}
