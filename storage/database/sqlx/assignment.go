package sqlxrepos

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
)

const assignmentColumns = "id, title, description, type, class, subject, due_date, created_by, created_at"

type assignmentRepository struct {
	db core.DB
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db core.DB) assignment.Repository {
	return &assignmentRepository{db: db}
}

func (repo *assignmentRepository) Create(ctx context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	q := `INSERT INTO assignments (` + assignmentColumns + `)
		VALUES (:id, :title, :description, :type, :class, :subject, :due_date, :created_by, :created_at)`
	if _, err := repo.db.NamedExecContext(ctx, q, a); err != nil {
		return assignment.Assignment{}, errors.Wrap(err, "inserting assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) Get(ctx context.Context, id string) (assignment.Assignment, error) {
	var a assignment.Assignment
	q := repo.db.Rebind(`SELECT ` + assignmentColumns + ` FROM assignments WHERE id = ?`)
	if err := repo.db.GetContext(ctx, &a, q, id); err != nil {
		if errors.Cause(err) == sql.ErrNoRows {
			return assignment.Assignment{}, assignment.ErrNotFound
		}
		return assignment.Assignment{}, errors.Wrap(err, "selecting assignment")
	}
	return a, nil
}

func (repo *assignmentRepository) Query(ctx context.Context, f assignment.Filter) ([]assignment.Assignment, error) {
	var (
		conds []string
		args  []interface{}
	)
	if f.Class != "" {
		conds = append(conds, "class = ?")
		args = append(args, f.Class)
	}
	if f.Subject != "" {
		conds = append(conds, "subject = ?")
		args = append(args, f.Subject)
	}

	q := `SELECT ` + assignmentColumns + ` FROM assignments`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += core.OrderBy(f.Orderings, assignment.OrderingFields, assignment.NullableColumns,
		core.DBOrdering{Field: "created_at"}, core.DBOrdering{Field: "id", Ascending: true})

	res := make([]assignment.Assignment, 0)
	if err := repo.db.SelectContext(ctx, &res, repo.db.Rebind(q), args...); err != nil {
		return nil, errors.Wrap(err, "selecting assignments")
	}
	return res, nil
}
