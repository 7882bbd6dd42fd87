package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/dberrors"
	"github.com/intered/portal/internal/pkg/reference"
)

// fakeDB records the last statement and answers with canned results.
type fakeDB struct {
	sql    string
	args   []any
	tag    string
	rowErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql, f.args = sql, args
	return pgconn.NewCommandTag(f.tag), nil
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.sql, f.args = sql, args
	return nil, errors.New("not supported")
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.sql, f.args = sql, args
	return fakeRow{err: f.rowErr}
}

type fakeRow struct{ err error }

func (r fakeRow) Scan(...any) error { return r.err }

func TestUpdateBuilderOnlySetsPatchedColumns(t *testing.T) {
	r := NewStudentRepository(&fakeDB{})
	stage := models.StudentStageVisa
	agent := reference.Null()

	q := r.buildUpdate("students", 7, studentPatchClauses(models.StudentPatch{Stage: &stage, AgentID: &agent}), []string{"id"})
	sql, args, err := q.ToSql()
	require.NoError(t, err)

	assert.Equal(t, "UPDATE students SET agent_id = $1, stage = $2, updated_at = NOW() WHERE id = $3 RETURNING id", sql)
	require.Len(t, args, 3)
	assert.Nil(t, args[0])
	assert.Equal(t, "visa", args[1])
	assert.Equal(t, int64(7), args[2])
}

func TestPatchClauses(t *testing.T) {
	t.Run("empty patches set nothing", func(t *testing.T) {
		assert.Empty(t, userPatchClauses(models.UserPatch{}))
		assert.Empty(t, studentPatchClauses(models.StudentPatch{}))
		assert.Empty(t, universityPatchClauses(models.UniversityPatch{}))
		assert.Empty(t, programPatchClauses(models.ProgramPatch{}))
		assert.Empty(t, agentPatchClauses(models.AgentPatch{}))
		assert.Empty(t, applicationPatchClauses(models.ApplicationPatch{}))
	})

	t.Run("application agent reference", func(t *testing.T) {
		agent := reference.ID(3)
		notes := "called twice"
		clauses := applicationPatchClauses(models.ApplicationPatch{AgentID: &agent, Notes: &notes})
		require.Len(t, clauses, 2)
		assert.Equal(t, int64(3), *clauses["agent_id"].(*int64))
		assert.Equal(t, "called twice", clauses["notes"])
	})

	t.Run("dates are set or cleared", func(t *testing.T) {
		intake := time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC)
		clauses := applicationPatchClauses(models.ApplicationPatch{
			DecisionDate: models.ClearDate(),
			IntakeDate:   models.SetDate(intake),
		})
		require.Len(t, clauses, 2)
		value, present := clauses["decision_date"]
		assert.True(t, present)
		assert.Nil(t, value)
		assert.Equal(t, intake, clauses["intake_date"])

		assert.Contains(t, studentPatchClauses(models.StudentPatch{DateOfBirth: models.ClearDate()}), "date_of_birth")
		assert.Contains(t, programPatchClauses(models.ProgramPatch{StartDate: models.ClearDate()}), "start_date")
		assert.Contains(t, universityPatchClauses(models.UniversityPatch{AgreementExpiry: models.ClearDate()}), "agreement_expiry")
	})

	t.Run("cleared date becomes a NULL parameter", func(t *testing.T) {
		r := NewApplicationRepository(&fakeDB{})
		q := r.buildUpdate("applications", 4, applicationPatchClauses(models.ApplicationPatch{DecisionDate: models.ClearDate()}), []string{"id"})
		sql, args, err := q.ToSql()
		require.NoError(t, err)
		assert.Equal(t, "UPDATE applications SET decision_date = $1, updated_at = NOW() WHERE id = $2 RETURNING id", sql)
		require.Len(t, args, 2)
		assert.Nil(t, args[0])
	})

	t.Run("password change bumps credential version", func(t *testing.T) {
		hash := "new-hash"
		r := NewUserRepository(&fakeDB{})
		q := r.buildUpdate("users", 2, userPatchClauses(models.UserPatch{Password: &hash}), []string{"id"})
		sql, args, err := q.ToSql()
		require.NoError(t, err)
		assert.Equal(t, "UPDATE users SET credential_version = credential_version + 1, password = $1, updated_at = NOW() WHERE id = $2 RETURNING id", sql)
		assert.Equal(t, []interface{}{"new-hash", int64(2)}, args)

		name := "Jane"
		assert.NotContains(t, userPatchClauses(models.UserPatch{FullName: &name}), "credential_version")
	})

	t.Run("university keeps every column", func(t *testing.T) {
		rate := 12.5
		contact := "Jane Smith"
		clauses := universityPatchClauses(models.UniversityPatch{CommissionRate: &rate, ContactName: &contact})
		assert.Equal(t, map[string]interface{}{"commission_rate": 12.5, "contact_name": "Jane Smith"}, clauses)
	})
}

func TestGetMissingRowReturnsNil(t *testing.T) {
	db := &fakeDB{rowErr: pgx.ErrNoRows}
	repos := NewRepositories(db)

	user, err := repos.GetUserByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.Equal(t, "SELECT id, username, password, full_name, email, role, created_at, updated_at FROM users WHERE username = $1", db.sql)

	db.sql = ""
	student, err := repos.GetStudent(context.Background(), 0)
	require.NoError(t, err)
	assert.Nil(t, student)
	assert.Empty(t, db.sql, "non-positive ids never reach the database")
}

func TestCreateMapsConstraintErrors(t *testing.T) {
	db := &fakeDB{rowErr: &pgconn.PgError{Code: dberrors.CodeUniqueViolation, ConstraintName: "users_username_key"}}
	repos := NewRepositories(db)

	_, err := repos.CreateUser(context.Background(), &models.User{Username: "jdoe", Role: models.RoleStaff})
	assert.ErrorIs(t, err, ErrDuplicate)

	db.rowErr = &pgconn.PgError{Code: dberrors.CodeForeignKeyViolation, ConstraintName: "programs_university_id_fkey"}
	_, err = repos.CreateProgram(context.Background(), &models.Program{Name: "MSc", UniversityID: 99})
	assert.ErrorIs(t, err, ErrReferenceMissing)
	assert.Contains(t, err.Error(), "programs_university_id_fkey")
}

func TestDeleteReportsRowsAffected(t *testing.T) {
	db := &fakeDB{tag: "DELETE 1"}
	repos := NewRepositories(db)

	removed, err := repos.DeleteAgent(context.Background(), 4)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "DELETE FROM agents WHERE id = $1", db.sql)

	db.tag = "DELETE 0"
	removed, err = repos.DeleteAgent(context.Background(), 4)
	require.NoError(t, err)
	assert.False(t, removed)
}
