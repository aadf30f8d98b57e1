package core

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
)

type (
	// DBExecutor is satisfied by both *sqlx.DB and *sqlx.Tx.
	DBExecutor interface {
		sqlx.ExtContext
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	}

	DB interface {
		DBExecutor

		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	}
)

type DBOrdering struct {
	Field     string
	Ascending bool
	NullsLast bool
}

func (ord DBOrdering) String() string {
	direction := "DESC"
	if ord.Ascending {
		direction = "ASC"
	}
	if ord.NullsLast {
		// false < true on both postgres & sqlite
		return ord.Field + " IS NULL, " + ord.Field + " " + direction
	}
	return ord.Field + " " + direction
}

// OrderBy builds an ORDER BY clause out of the orderings whose fields are allowed,
// followed by the tie-breakers on columns not ordered yet.
// allowed maps an API field name to its column name; nullable columns sort their NULLs last.
func OrderBy(orderings []DBOrdering, allowed map[string]string, nullable map[string]bool, tieBreakers ...DBOrdering) string {
	clauses := make([]string, 0, len(orderings)+len(tieBreakers))
	seen := make(map[string]bool, len(orderings))
	for _, ord := range orderings {
		col, ok := allowed[ord.Field]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		clauses = append(clauses, DBOrdering{Field: col, Ascending: ord.Ascending, NullsLast: nullable[col]}.String())
	}
	for _, ord := range tieBreakers {
		if seen[ord.Field] {
			continue
		}
		seen[ord.Field] = true
		clauses = append(clauses, ord.String())
	}
	if len(clauses) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(clauses, ", ")
}
