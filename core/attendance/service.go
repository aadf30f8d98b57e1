// Package attendance manages the daily class rosters teachers mark.
package attendance

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

var NowFunc = time.Now // mockable

type Service struct {
	repo     Repository
	defaults map[string][]Entry // {class: roster template}

	mu    sync.Mutex
	locks map[string]*sync.Mutex // {class/date: lock}
}

// NewService returns the attendance service. defaults seeds the roster of a
// class the first time it is requested for a day.
func NewService(repo Repository, defaults map[string][]Entry) *Service {
	return &Service{repo: repo, defaults: defaults, locks: make(map[string]*sync.Mutex)}
}

// lock serialises the updates of a roster.
func (svc *Service) lock(class, date string) func() {
	key := class + "/" + date
	svc.mu.Lock()
	l, ok := svc.locks[key]
	if !ok {
		l = new(sync.Mutex)
		svc.locks[key] = l
	}
	svc.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Today returns the current day in DateLayout.
func Today() string {
	return NowFunc().Format(DateLayout)
}

func normalizeDate(date string) (string, error) {
	if date == "" {
		return Today(), nil
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}

// Roster returns the roster of class for date (today when empty).
func (svc *Service) Roster(ctx context.Context, class, date string) (Roster, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return Roster{}, err
	}

	r, err := svc.repo.GetRoster(ctx, class, date)
	if err == nil {
		return r, nil
	}
	if errors.Cause(err) != ErrNotFound {
		return Roster{}, errors.Wrap(err, "getting roster")
	}

	tmpl, ok := svc.defaults[class]
	if !ok {
		return Roster{}, ErrUnknownClass
	}
	r = Roster{Class: class, Date: date, Entries: tmpl}
	return r.Copy(), nil
}

func (svc *Service) update(ctx context.Context, class, date string, fn func(r *Roster) error) (Roster, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return Roster{}, err
	}
	defer svc.lock(class, date)()

	r, err := svc.Roster(ctx, class, date)
	if err != nil {
		return Roster{}, err
	}
	if err = fn(&r); err != nil {
		return Roster{}, err
	}
	if err = svc.repo.SaveRoster(ctx, r); err != nil {
		return Roster{}, errors.Wrap(err, "saving roster")
	}
	return r, nil
}

// Toggle flips the presence of a student. Unknown students yield ErrNotFound.
func (svc *Service) Toggle(ctx context.Context, class, date, studentID string) (Roster, error) {
	return svc.update(ctx, class, date, func(r *Roster) error {
		for i := range r.Entries {
			if r.Entries[i].StudentID == studentID {
				r.Entries[i].Present = !r.Entries[i].Present
				return nil
			}
		}
		return ErrNotFound
	})
}

// MarkAllPresent marks every student of the roster present.
func (svc *Service) MarkAllPresent(ctx context.Context, class, date string) (Roster, error) {
	return svc.update(ctx, class, date, func(r *Roster) error {
		for i := range r.Entries {
			r.Entries[i].Present = true
		}
		return nil
	})
}

// Save records the roster as submitted and returns its summary.
func (svc *Service) Save(ctx context.Context, class, date string) (Summary, error) {
	r, err := svc.update(ctx, class, date, func(r *Roster) error {
		r.SavedAt = null.TimeFrom(NowFunc().UTC())
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return r.Summary(), nil
}
