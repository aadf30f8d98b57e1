package main

import (
	"context"
	"fmt"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/attendance"
)

// seed stores the roster template of every class for date, overwriting what was marked.
func (cli *commandLine) seed(date string) error {
	if date == "" {
		date = attendance.Today()
	}
	if _, err := time.Parse(attendance.DateLayout, date); err != nil {
		return attendance.ErrInvalidDate
	}
	templates := cli.fixture.RosterTemplates()

	classes := make([]string, 0, len(templates))
	for class := range templates {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	ctx := context.Background()
	for _, class := range classes {
		r := attendance.Roster{Class: class, Date: date, Entries: templates[class]}
		if err := cli.attendanceRepo.SaveRoster(ctx, r); err != nil {
			return errors.Wrapf(err, "seeding roster of %s", class)
		}
		_, _ = fmt.Fprintf(cli.out, "seeded %s: %d students on %s\n", class, len(r.Entries), date)
	}
	return nil
}

func (cli *commandLine) roster(class, date string) error {
	r, err := cli.attendanceSvc.Roster(context.Background(), class, date)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cli.out, "Class %s - %s\n", r.Class, r.Date)
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ROLL\tID\tNAME\tSTATUS")
	for _, e := range r.Entries {
		status := "absent"
		if e.Present {
			status = "present"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.RollNo, e.StudentID, e.Name, status)
	}
	if err = w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cli.out, r.Summary().Message)
	return nil
}
