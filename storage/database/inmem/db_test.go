package inmemdb_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/attendance"
	inmemdb "github.com/smartschool/connect/storage/database/inmem"
	"github.com/smartschool/connect/tests"
)

func TestAttendanceRepository_isolation(t *testing.T) {
	repo := inmemdb.NewAttendanceRepository(inmemdb.Open())
	ctx := context.Background()

	r := attendance.Roster{
		Class:   "10A",
		Date:    "2024-03-11",
		Entries: []attendance.Entry{{StudentID: "STU001", Name: "Rahul Sharma", RollNo: "01", Present: true}},
	}
	require.NoError(t, repo.SaveRoster(ctx, r))

	// mutating the caller's copy does not touch the stored roster
	r.Entries[0].Present = false
	got, err := repo.GetRoster(ctx, "10A", "2024-03-11")
	require.NoError(t, err)
	assert.True(t, got.Entries[0].Present)

	got.Entries[0].Present = false
	got, err = repo.GetRoster(ctx, "10A", "2024-03-11")
	require.NoError(t, err)
	assert.True(t, got.Entries[0].Present)

	_, err = repo.GetRoster(ctx, "10A", "2024-03-12")
	assert.Equal(t, attendance.ErrNotFound, err)
}

func TestAssignmentRepository_Query(t *testing.T) {
	repo := inmemdb.NewAssignmentRepository(inmemdb.Open())
	now := time.Now().UTC()

	a1 := testutil.CreateAssignment(t, repo, "a1", "Kinematics", "10B", "Physics", now.Add(-2*time.Hour), now.Add(24*time.Hour))
	a2 := testutil.CreateAssignment(t, repo, "a2", "Algebra", "10A", "Mathematics", now.Add(-time.Hour), now.Add(72*time.Hour))
	a3 := testutil.CreateAssignment(t, repo, "a3", "Essay", "10A", "English", now, now.Add(48*time.Hour))
	a4 := testutil.CreateAssignment(t, repo, "a4", "Algebra", "9A", "Mathematics", now.Add(-3*time.Hour))

	tests := []struct {
		name   string
		filter assignment.Filter
		want   []assignment.Assignment
	}{
		{name: "all, newest first", want: []assignment.Assignment{a3, a2, a1, a4}},
		{name: "class", filter: assignment.Filter{Class: "10A"}, want: []assignment.Assignment{a3, a2}},
		{name: "subject", filter: assignment.Filter{Subject: "Physics"}, want: []assignment.Assignment{a1}},
		{name: "no match", filter: assignment.Filter{Class: "9B"}, want: []assignment.Assignment{}},
		{
			name:   "ordering=dueDate, undated last",
			filter: assignment.Filter{Orderings: []core.DBOrdering{{Field: "dueDate", Ascending: true}}},
			want:   []assignment.Assignment{a1, a3, a2, a4},
		},
		{
			name:   "ordering=-dueDate, undated last",
			filter: assignment.Filter{Orderings: []core.DBOrdering{{Field: "dueDate"}}},
			want:   []assignment.Assignment{a2, a3, a1, a4},
		},
		{
			name:   "ordering=title, equal titles newest first",
			filter: assignment.Filter{Orderings: []core.DBOrdering{{Field: "title", Ascending: true}}},
			want:   []assignment.Assignment{a2, a4, a3, a1},
		},
		{
			name:   "ordering=-title",
			filter: assignment.Filter{Orderings: []core.DBOrdering{{Field: "title"}}},
			want:   []assignment.Assignment{a1, a3, a2, a4},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.Query(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := repo.Get(context.Background(), "unknown")
	assert.Equal(t, assignment.ErrNotFound, err)
}
