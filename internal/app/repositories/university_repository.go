package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/intered/portal/internal/app/models"
)

var universityColumns = []string{
	"id", "name", "country", "city", "website", "tier", "status", "agreement_status",
	"agreement_date", "agreement_expiry", "commission_rate", "contact_name", "contact_email",
	"contact_phone", "notes", "created_at", "updated_at",
}

// UniversityRepository handles database operations for universities
type UniversityRepository struct {
	base
}

// NewUniversityRepository creates a new UniversityRepository
func NewUniversityRepository(db DBTX) *UniversityRepository {
	return &UniversityRepository{base: newBase(db)}
}

func scanUniversity(row rowScanner) (*models.University, error) {
	var u models.University
	var tier, status, agreement string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Country,
		&u.City,
		&u.Website,
		&tier,
		&status,
		&agreement,
		&u.AgreementDate,
		&u.AgreementExpiry,
		&u.CommissionRate,
		&u.ContactName,
		&u.ContactEmail,
		&u.ContactPhone,
		&u.Notes,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.Tier = models.UniversityTier(tier)
	u.Status = models.ActivityStatus(status)
	u.AgreementStatus = models.AgreementStatus(agreement)
	return &u, nil
}

// ListUniversities retrieves all universities ordered by id
func (r *UniversityRepository) ListUniversities(ctx context.Context) ([]*models.University, error) {
	q := r.sb.Select(universityColumns...).From("universities").OrderBy("id ASC")
	return queryAll(ctx, r.db, q, scanUniversity, "list universities")
}

// GetUniversity retrieves a university by ID
func (r *UniversityRepository) GetUniversity(ctx context.Context, id int64) (*models.University, error) {
	if id <= 0 {
		return nil, nil
	}
	q := r.sb.Select(universityColumns...).From("universities").Where(squirrel.Eq{"id": id})
	return queryOne(ctx, r.db, q, scanUniversity, "get university")
}

// CreateUniversity inserts a university and returns the stored row
func (r *UniversityRepository) CreateUniversity(ctx context.Context, u *models.University) (*models.University, error) {
	q := r.sb.Insert("universities").
		Columns(
			"name", "country", "city", "website", "tier", "status", "agreement_status",
			"agreement_date", "agreement_expiry", "commission_rate", "contact_name", "contact_email",
			"contact_phone", "notes",
		).
		Values(
			u.Name, u.Country, u.City, u.Website, string(u.Tier), string(u.Status), string(u.AgreementStatus),
			u.AgreementDate, u.AgreementExpiry, u.CommissionRate, u.ContactName, u.ContactEmail,
			u.ContactPhone, u.Notes,
		).
		Suffix("RETURNING " + strings.Join(universityColumns, ", "))
	return queryOne(ctx, r.db, q, scanUniversity, "create university")
}

// UpdateUniversity applies the non-nil fields of patch
func (r *UniversityRepository) UpdateUniversity(ctx context.Context, id int64, patch models.UniversityPatch) (*models.University, error) {
	if id <= 0 {
		return nil, nil
	}
	clauses := universityPatchClauses(patch)
	if len(clauses) == 0 {
		return r.GetUniversity(ctx, id)
	}
	q := r.buildUpdate("universities", id, clauses, universityColumns)
	return queryOne(ctx, r.db, q, scanUniversity, "update university")
}

// DeleteUniversity removes a university
func (r *UniversityRepository) DeleteUniversity(ctx context.Context, id int64) (bool, error) {
	return execDelete(ctx, r.db, r.sb.Delete("universities").Where(squirrel.Eq{"id": id}), "delete university")
}

func universityPatchClauses(p models.UniversityPatch) map[string]interface{} {
	clauses := map[string]interface{}{}
	setIf(clauses, "name", p.Name)
	setIf(clauses, "country", p.Country)
	setIf(clauses, "city", p.City)
	setIf(clauses, "website", p.Website)
	if p.Tier != nil {
		clauses["tier"] = string(*p.Tier)
	}
	if p.Status != nil {
		clauses["status"] = string(*p.Status)
	}
	if p.AgreementStatus != nil {
		clauses["agreement_status"] = string(*p.AgreementStatus)
	}
	setDate(clauses, "agreement_date", p.AgreementDate)
	setDate(clauses, "agreement_expiry", p.AgreementExpiry)
	setIf(clauses, "commission_rate", p.CommissionRate)
	setIf(clauses, "contact_name", p.ContactName)
	setIf(clauses, "contact_email", p.ContactEmail)
	setIf(clauses, "contact_phone", p.ContactPhone)
	setIf(clauses, "notes", p.Notes)
	return clauses
}
