package inmemdb

import (
	"context"

	"github.com/smartschool/connect/core/attendance"
)

type attendanceRepository struct {
	db *attendanceTable
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db *DB) attendance.Repository {
	return &attendanceRepository{db: db.attendance}
}

func (repo *attendanceRepository) GetRoster(_ context.Context, class, date string) (attendance.Roster, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if r, ok := repo.db.table[rosterKey{class, date}]; ok {
		return r.Copy(), nil
	}
	return attendance.Roster{}, attendance.ErrNotFound
}

func (repo *attendanceRepository) SaveRoster(_ context.Context, r attendance.Roster) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.table[rosterKey{r.Class, r.Date}] = r.Copy()
	return nil
}
