package attendance

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// DateLayout is the layout of attendance days.
const DateLayout = "2006-01-02"

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidDate  = errors.New("invalid date, expected format " + DateLayout)
	ErrUnknownClass = errors.New("unknown class")
)

type (
	// Entry is a student's attendance on a roster.
	Entry struct {
		StudentID string `db:"student_id" json:"id" yaml:"id"`
		Name      string `db:"name" json:"name" yaml:"name"`
		RollNo    string `db:"roll_no" json:"rollNo" yaml:"roll_no"`
		Present   bool   `db:"present" json:"present" yaml:"present"`
	}

	// Roster is the attendance of a class for a day.
	Roster struct {
		Class   string    `json:"class"`
		Date    string    `json:"date"`
		Entries []Entry   `json:"students"`
		SavedAt null.Time `json:"savedAt"`
	}

	Summary struct {
		Class   string `json:"class"`
		Date    string `json:"date"`
		Total   int    `json:"total"`
		Present int    `json:"present"`
		Absent  int    `json:"absent"`
		Message string `json:"message"`
	}

	Repository interface {
		// GetRoster returns ErrNotFound when no roster was stored for the class & date.
		GetRoster(ctx context.Context, class, date string) (Roster, error)
		SaveRoster(ctx context.Context, r Roster) error
	}
)

func (r Roster) Summary() Summary {
	s := Summary{Class: r.Class, Date: r.Date, Total: len(r.Entries)}
	for _, e := range r.Entries {
		if e.Present {
			s.Present++
		}
	}
	s.Absent = s.Total - s.Present
	s.Message = fmt.Sprintf("%d present, %d absent students marked for today.", s.Present, s.Absent)
	return s
}

// Copy returns a deep copy of the roster.
func (r Roster) Copy() Roster {
	entries := make([]Entry, len(r.Entries))
	copy(entries, r.Entries)
	r.Entries = entries
	return r
}
