package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/jmoiron/sqlx"

	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/storage/mockdata"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	db             *sqlx.DB
	out            io.Writer
	fixture        *mockdata.Fixture
	attendanceRepo attendance.Repository
	attendanceSvc  *attendance.Service
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS] - run a goose migration command (up, down, status, ...)")
	_, _ = fmt.Fprintln(cli.out, "  seed [-date YYYY-MM-DD] - store the demo roster of every class for the day")
	_, _ = fmt.Fprintln(cli.out, "  roster -class CLASS [-date YYYY-MM-DD] - print the attendance of a class")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ContinueOnError)
	seedDate := seedCmd.String("date", "", "The roster day, today when empty.")

	rosterCmd := flag.NewFlagSet("roster", flag.ContinueOnError)
	rosterClass := rosterCmd.String("class", "", "The class, e.g. 10A.")
	rosterDate := rosterCmd.String("date", "", "The roster day, today when empty.")

	for _, fs := range []*flag.FlagSet{seedCmd, rosterCmd} {
		fs.SetOutput(cli.out)
	}

	switch args[1] {
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.seed(*seedDate)
	case "roster":
		if err := rosterCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *rosterClass == "" {
			rosterCmd.Usage()
			return errHelp
		}
		return cli.roster(*rosterClass, *rosterDate)
	default:
		cli.printUsage()
		return errHelp
	}
}
