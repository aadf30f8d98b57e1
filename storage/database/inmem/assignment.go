package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/smartschool/connect/core/assignment"
)

type assignmentRepository struct {
	db *assignmentTable
}

var _ assignment.Repository = (*assignmentRepository)(nil)

func NewAssignmentRepository(db *DB) assignment.Repository {
	return &assignmentRepository{db: db.assignment}
}

func (repo *assignmentRepository) Create(_ context.Context, a assignment.Assignment) (assignment.Assignment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[a.ID] = &a
	return a, nil
}

func (repo *assignmentRepository) Get(_ context.Context, id string) (assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if a, ok := repo.db.table[id]; ok {
		return *a, nil
	}
	return assignment.Assignment{}, assignment.ErrNotFound
}

func (repo *assignmentRepository) Query(_ context.Context, f assignment.Filter) ([]assignment.Assignment, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]assignment.Assignment, 0, len(repo.db.table))
	for _, a := range repo.db.table {
		if f.Class != "" && a.Class != f.Class {
			continue
		}
		if f.Subject != "" && a.Subject != f.Subject {
			continue
		}
		res = append(res, *a)
	}

	sort.SliceStable(res, func(i, j int) bool { return less(res[i], res[j], f) })
	return res, nil
}

// less orders by the filter's orderings, then newest first.
// Undated assignments sort last whatever the direction.
func less(a, b assignment.Assignment, f assignment.Filter) bool {
	for _, ord := range f.Orderings {
		var cmp int
		switch ord.Field {
		case "createdAt":
			cmp = a.CreatedAt.Compare(b.CreatedAt)
		case "dueDate":
			if a.DueDate.Valid != b.DueDate.Valid {
				return a.DueDate.Valid
			}
			cmp = a.DueDate.Time.Compare(b.DueDate.Time)
		case "title":
			cmp = strings.Compare(a.Title, b.Title)
		default:
			continue
		}
		if cmp == 0 {
			continue
		}
		if ord.Ascending {
			return cmp < 0
		}
		return cmp > 0
	}
	if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
		return c > 0
	}
	return a.ID < b.ID
}
