package dberrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: CodeUniqueViolation, ConstraintName: "users_username_key"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert user: %w", dup)))
	assert.True(t, IsDuplicateConstraintError(dup, "users_username_key"))
	assert.False(t, IsDuplicateConstraintError(dup, "users_email_key"))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
}

func TestForeignKeyViolation(t *testing.T) {
	fk := &pgconn.PgError{Code: CodeForeignKeyViolation, ConstraintName: "applications_student_id_fkey"}

	name, ok := ForeignKeyViolation(fmt.Errorf("wrapped: %w", fk))
	assert.True(t, ok)
	assert.Equal(t, "applications_student_id_fkey", name)

	_, ok = ForeignKeyViolation(&pgconn.PgError{Code: CodeUniqueViolation})
	assert.False(t, ok)
}
