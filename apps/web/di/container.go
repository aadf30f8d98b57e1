package di

import (
	"fmt"
	"log"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/dig"
	"go.uber.org/zap"

	echoapi "github.com/smartschool/connect/apps/web/echo"
	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/core/dashboard"
	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
	emailsvc "github.com/smartschool/connect/services/email"
	logsvc "github.com/smartschool/connect/services/logger"
	notifysvc "github.com/smartschool/connect/services/notify"
	"github.com/smartschool/connect/storage/database"
	inmemdb "github.com/smartschool/connect/storage/database/inmem"
	sqlxrepos "github.com/smartschool/connect/storage/database/sqlx"
	"github.com/smartschool/connect/storage/mockdata"
)

type (
	LoggerParam struct {
		dig.In
		Logger core.Logger `name:"appLogger"`
	}

	DBLoggerParam struct {
		dig.In
		Logger core.Logger `name:"dbLogger"`
	}

	// Storage is the database behind the repositories. DB is nil on the in-memory engine.
	Storage struct {
		DB    *sqlx.DB
		InMem *inmemdb.DB
	}

	serverParams struct {
		dig.In

		Conf          *core.Config
		Logger        core.Logger `name:"appLogger"`
		Validate      *validator.Validate
		Translator    ut.Translator
		Fixture       *mockdata.Fixture
		DashboardSvc  *dashboard.Service
		DirectorySvc  *directory.Service
		AttendanceSvc *attendance.Service
		AssignmentSvc *assignment.Service
		MessageSvc    *message.Service
		Hub           *notifysvc.Hub
	}
)

func newZap(conf *core.Config) *zap.Logger {
	return logsvc.NewZap(conf, "web")
}

func newLogger(conf *core.Config, zl *zap.Logger) core.Logger {
	logger := logsvc.NewRollbarLogger(zl.Named("app"), conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newDBLogger(conf *core.Config, zl *zap.Logger) core.Logger {
	logger := logsvc.NewRollbarLogger(zl.Named("db"), conf)
	logger.Enable(!conf.Debug)
	return logger
}

func newStorage(conf *core.Config, loggerParam DBLoggerParam) Storage {
	if conf.Database.Engine == database.EngineInMemory {
		return Storage{InMem: inmemdb.Open()}
	}

	setUp := func() (*sqlx.DB, error) {
		if err := database.CreateIfNotExist(conf); err != nil {
			return nil, err
		}

		db, err := database.Open(conf)
		if err != nil {
			return nil, err
		}

		if err = database.Migrate(db); err != nil {
			return nil, err
		}
		return db, nil
	}

	db, err := setUp()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	return Storage{DB: db}
}

func newAttendanceRepository(st Storage) attendance.Repository {
	if st.DB == nil {
		return inmemdb.NewAttendanceRepository(st.InMem)
	}
	return sqlxrepos.NewAttendanceRepository(st.DB)
}

func newAssignmentRepository(st Storage) assignment.Repository {
	if st.DB == nil {
		return inmemdb.NewAssignmentRepository(st.InMem)
	}
	return sqlxrepos.NewAssignmentRepository(st.DB)
}

func newFixture(loggerParam LoggerParam) *mockdata.Fixture {
	f, err := mockdata.LoadDefault()
	if err != nil {
		loggerParam.Logger.Fatal(fmt.Sprintf("loading mock data: %v", err), err)
	}
	return f
}

func newEmailService(conf *core.Config, loggerParam LoggerParam) core.EmailService {
	if conf.Debug || conf.SendgridApiKey == "" {
		return emailsvc.NewConsoleService(conf, loggerParam.Logger)
	}
	return emailsvc.NewSendgridService(conf, loggerParam.Logger)
}

func newHub(zl *zap.Logger) *notifysvc.Hub {
	return notifysvc.NewHub(zl.Named("notify"))
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

// newValidator registers the validation tags of every package.
func newValidator(translator ut.Translator, f *mockdata.Fixture) *validator.Validate {
	validate := validator.New()
	core.InitValidators(validate, translator)
	session.InitValidators(validate, translator)
	directory.InitValidators(validate, translator)
	message.InitValidators(validate, translator)
	assignment.InitValidators(validate, translator, f.Classes, f.Subjects)
	return validate
}

func newDashboardService(f *mockdata.Fixture) *dashboard.Service {
	return dashboard.NewService(f.Profiles, f.Dashboards)
}

func newDirectoryService(f *mockdata.Fixture) *directory.Service {
	return directory.NewService(f.Students, f.Teachers, f.Parents())
}

func newAttendanceService(repo attendance.Repository, f *mockdata.Fixture) *attendance.Service {
	return attendance.NewService(repo, f.RosterTemplates())
}

func newAssignmentService(
	repo assignment.Repository,
	dir *directory.Service,
	hub *notifysvc.Hub,
	mailSvc core.EmailService,
	loggerParam LoggerParam,
) *assignment.Service {
	return assignment.NewService(repo, dir, hub, mailSvc, loggerParam.Logger)
}

func newMessageService(f *mockdata.Fixture) *message.Service {
	return message.NewService(f.Messages, f.AbsentStudents)
}

func newServer(p serverParams) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:          p.Conf,
		Logger:        p.Logger,
		Validate:      p.Validate,
		Translator:    p.Translator,
		Landing:       p.Fixture.Landing,
		DashboardSvc:  p.DashboardSvc,
		DirectorySvc:  p.DirectorySvc,
		AttendanceSvc: p.AttendanceSvc,
		AssignmentSvc: p.AssignmentSvc,
		MessageSvc:    p.MessageSvc,
		Hub:           p.Hub,
	})
}

// New returns a new dependency injection dig.Container
func New() *dig.Container {
	c := dig.New()

	must(c.Provide(core.NewConfig))
	must(c.Provide(newZap))
	must(c.Provide(newLogger, dig.Name("appLogger")))
	must(c.Provide(newDBLogger, dig.Name("dbLogger")))
	must(c.Provide(newStorage))
	must(c.Provide(newAttendanceRepository))
	must(c.Provide(newAssignmentRepository))
	must(c.Provide(newFixture))
	must(c.Provide(newEmailService))
	must(c.Provide(newHub))
	must(c.Provide(newTranslator))
	must(c.Provide(newValidator))
	must(c.Provide(newDashboardService))
	must(c.Provide(newDirectoryService))
	must(c.Provide(newAttendanceService))
	must(c.Provide(newAssignmentService))
	must(c.Provide(newMessageService))
	must(c.Provide(newServer))

	return c
}

// must exits program if err happened
func must(err error) {
	if err != nil {
		log.Fatal(errors.Wrap(err, "failed to provide dependency").Error())
	}
}
