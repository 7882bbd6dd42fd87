package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/intered/portal/internal/app/models"
	"github.com/intered/portal/internal/pkg/logger"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// queryOne runs a single-row query. pgx.ErrNoRows becomes (nil, nil).
func queryOne[T any](ctx context.Context, db DBTX, q squirrel.Sqlizer, scan func(rowScanner) (*T, error), what string) (*T, error) {
	// Build SQL query
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	// Execute query
	item, err := scan(db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		err = classifyWriteError(err)
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	return item, nil
}

// queryAll runs a multi-row query and always returns a non-nil slice on success.
func queryAll[T any](ctx context.Context, db DBTX, q squirrel.Sqlizer, scan func(rowScanner) (*T, error), what string) ([]*T, error) {
	// Build SQL query
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return nil, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	// Execute query
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return nil, fmt.Errorf("error executing %s: %w", what, err)
	}
	defer rows.Close()

	// Iterate through rows
	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Msgf("Error scanning %s row", what)
			return nil, fmt.Errorf("error scanning %s row: %w", what, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msgf("Error iterating %s rows", what)
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}
	return items, nil
}

// execDelete reports whether the statement removed at least one row.
func execDelete(ctx context.Context, db DBTX, q squirrel.Sqlizer, what string) (bool, error) {
	// Build SQL query
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msgf("Error building %s SQL", what)
		return false, fmt.Errorf("failed to build %s query: %w", what, err)
	}

	// Execute query
	cmdTag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		err = classifyWriteError(err)
		logger.Error().Err(err).Msgf("Error executing %s query", what)
		return false, fmt.Errorf("error executing %s: %w", what, err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// countByColumn groups table rows by column. Values with no rows are absent
// from the result, never zero.
func countByColumn(ctx context.Context, db DBTX, sb squirrel.StatementBuilderType, table, column string) (map[string]int, error) {
	q := sb.Select(column, "COUNT(*)").From(table).GroupBy(column)
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s count query: %w", table, err)
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing count by stage query")
		return nil, fmt.Errorf("error counting %s by %s: %w", table, column, err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var key string
		var n int64
		if err := rows.Scan(&key, &n); err != nil {
			return nil, fmt.Errorf("error scanning %s count row: %w", table, err)
		}
		counts[key] = int(n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s count rows: %w", table, err)
	}
	return counts, nil
}

// setIf adds column=value to clauses when value is non-nil.
func setIf[T any](clauses map[string]interface{}, column string, value *T) {
	if value != nil {
		clauses[column] = *value
	}
}

// setDate adds a nullable date column to clauses when the patch carries it.
// A cleared date is written as NULL.
func setDate(clauses map[string]interface{}, column string, value *models.NullableDate) {
	if value == nil {
		return
	}
	if value.Value == nil {
		clauses[column] = nil
		return
	}
	clauses[column] = *value.Value
}
