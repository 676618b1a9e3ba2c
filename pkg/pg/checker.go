package pg

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5"
)

var identRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// QueryChecker answers lookup rules with SELECT EXISTS against one column.
// It satisfies validator.Checker.
type QueryChecker struct {
	db    Querier
	query string
}

// NewQueryChecker builds a checker for table.column. table may be
// schema-qualified ("auth.users").
func NewQueryChecker(db Querier, table, column string) (*QueryChecker, error) {
	parts := strings.Split(table, ".")
	for _, p := range append(parts, column) {
		if !identRegex.MatchString(p) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, p)
		}
	}
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)",
		pgx.Identifier(parts).Sanitize(),
		pgx.Identifier{column}.Sanitize(),
	)
	return &QueryChecker{db: db, query: query}, nil
}

// Query returns the statement issued by Exists.
func (c *QueryChecker) Query() string { return c.query }

func (c *QueryChecker) Exists(ctx context.Context, value string) (bool, error) {
	var exists bool
	if err := c.db.QueryRow(ctx, c.query, value).Scan(&exists); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		return false, errors.Join(ErrLookupFailed, err)
	}
	return exists, nil
}
