package main

import (
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/smartschool/connect/storage/database"
)

var gooseRunFunc = goose.Run // mockable

func (cli *commandLine) migrate(args []string) error {
	if err := database.SetUpMigrations(cli.db); err != nil {
		return errors.Wrap(err, "setting up migrations")
	}
	arguments := make([]string, 0)
	if len(args) > 1 {
		arguments = append(arguments, args[1:]...)
	}
	return gooseRunFunc(args[0], cli.db.DB, database.MigrationsDir, arguments...)
}
