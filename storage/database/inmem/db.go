package inmemdb

import (
	"sync"

	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/attendance"
)

type (
	// DB is a process-local database, used in development & tests.
	DB struct {
		attendance *attendanceTable
		assignment *assignmentTable
	}

	attendanceTable struct {
		table map[rosterKey]attendance.Roster
		mutex sync.RWMutex
	}

	assignmentTable struct {
		table map[string]*assignment.Assignment
		mutex sync.RWMutex
	}

	rosterKey struct {
		class string
		date  string
	}
)

func Open() *DB {
	return &DB{
		attendance: &attendanceTable{table: make(map[rosterKey]attendance.Roster)},
		assignment: &assignmentTable{table: make(map[string]*assignment.Assignment)},
	}
}
