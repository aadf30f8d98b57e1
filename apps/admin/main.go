package main

import (
	"errors"
	"os"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/attendance"
	logsvc "github.com/smartschool/connect/services/logger"
	"github.com/smartschool/connect/storage/database"
	sqlxrepos "github.com/smartschool/connect/storage/database/sqlx"
	"github.com/smartschool/connect/storage/mockdata"
)

var logger *zap.Logger

func main() {
	conf := core.NewConfig()
	logger = logsvc.NewZap(conf, "admin")
	defer func() { _ = logger.Sync() }()

	// set up DB
	errAndDie(database.CreateIfNotExist(conf))
	db, err := database.Open(conf)
	if errors.Is(err, database.ErrNoDatabase) {
		logger.Fatal("admin commands need a SQL database: use the postgres or sqlite3 engine")
	}
	errAndDie(err)
	defer func() { _ = db.Close() }()
	errAndDie(db.Ping())

	fixture, err := mockdata.LoadDefault()
	errAndDie(err)

	// start CLI
	cli := newCommandLine(db, fixture)
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error("command failed", zap.Error(err))
		}
		_ = logger.Sync()
		os.Exit(1)
	}
}

func newCommandLine(db *sqlx.DB, fixture *mockdata.Fixture) *commandLine {
	repo := sqlxrepos.NewAttendanceRepository(db)
	return &commandLine{
		db:             db,
		out:            os.Stdout,
		fixture:        fixture,
		attendanceRepo: repo,
		attendanceSvc:  attendance.NewService(repo, fixture.RosterTemplates()),
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal("admin", zap.Error(err))
	}
}
