package sqlxrepos

import (
	"context"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/attendance"
)

type attendanceRow struct {
	attendance.Entry
	SavedAt null.Time `db:"saved_at"`
}

type attendanceRepository struct {
	db core.DB
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db core.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) GetRoster(ctx context.Context, class, date string) (attendance.Roster, error) {
	q := repo.db.Rebind(`
		SELECT student_id, name, roll_no, present, saved_at
		FROM attendance
		WHERE class = ? AND day = ?
		ORDER BY position`)

	var rows []attendanceRow
	if err := repo.db.SelectContext(ctx, &rows, q, class, date); err != nil {
		return attendance.Roster{}, errors.Wrap(err, "selecting attendance")
	}
	if len(rows) == 0 {
		return attendance.Roster{}, attendance.ErrNotFound
	}

	r := attendance.Roster{Class: class, Date: date, Entries: make([]attendance.Entry, 0, len(rows))}
	for _, row := range rows {
		r.Entries = append(r.Entries, row.Entry)
		if row.SavedAt.Valid {
			r.SavedAt = row.SavedAt
		}
	}
	return r, nil
}

func (repo *attendanceRepository) SaveRoster(ctx context.Context, r attendance.Roster) (err error) {
	tx, err := repo.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	q := tx.Rebind(`
		INSERT INTO attendance (class, day, student_id, name, roll_no, present, position, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (class, day, student_id) DO UPDATE SET
			name = excluded.name,
			roll_no = excluded.roll_no,
			present = excluded.present,
			position = excluded.position,
			saved_at = excluded.saved_at`)

	for i, e := range r.Entries {
		if _, err = tx.ExecContext(ctx, q, r.Class, r.Date, e.StudentID, e.Name, e.RollNo, e.Present, i, r.SavedAt); err != nil {
			return errors.Wrapf(err, "upserting attendance of %s", e.StudentID)
		}
	}
	return errors.Wrap(tx.Commit(), "committing attendance")
}
