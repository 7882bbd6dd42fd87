package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/intered/portal/internal/pkg/dberrors"
)

// Storage errors shared by every implementation.
var (
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenceMissing is returned when a write points at a row that does not exist.
	ErrReferenceMissing = errors.New("referenced row does not exist")
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories holds all the repository instances. Together they implement Storage.
type Repositories struct {
	*UserRepository
	*StudentRepository
	*UniversityRepository
	*ProgramRepository
	*AgentRepository
	*ApplicationRepository
}

var _ Storage = (*Repositories)(nil)

// NewRepositories initializes all repositories on a shared executor
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		StudentRepository:     NewStudentRepository(db),
		UniversityRepository:  NewUniversityRepository(db),
		ProgramRepository:     NewProgramRepository(db),
		AgentRepository:       NewAgentRepository(db),
		ApplicationRepository: NewApplicationRepository(db),
	}
}

// base carries what every repository needs.
type base struct {
	db DBTX
	// Use squirrel instance with placeholder format
	sb squirrel.StatementBuilderType
}

func newBase(db DBTX) base {
	return base{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// buildUpdate sets clauses on the row with the given id, bumps updated_at and
// returns the full row.
func (b base) buildUpdate(table string, id int64, clauses map[string]interface{}, columns []string) squirrel.UpdateBuilder {
	return b.sb.Update(table).
		SetMap(clauses).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
}

// classifyWriteError maps constraint violations onto storage errors.
func classifyWriteError(err error) error {
	if dberrors.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	if constraint, ok := dberrors.ForeignKeyViolation(err); ok {
		return fmt.Errorf("%w: %s", ErrReferenceMissing, constraint)
	}
	return err
}
