package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/core/dashboard"
	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/landing"
	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
	notifysvc "github.com/smartschool/connect/services/notify"
)

type (
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		Validate       *validator.Validate
		Translator     ut.Translator
		Landing        landing.Page
		DashboardSvc   *dashboard.Service
		DirectorySvc   *directory.Service
		AttendanceSvc  *attendance.Service
		AssignmentSvc  *assignment.Service
		MessageSvc     *message.Service
		Hub            *notifysvc.Hub
		DisableReqLogs bool
	}

	Server struct {
		deps     ServerDeps
		app      *echo.Echo
		codec    *session.Codec
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ http.Handler = (*Server)(nil)

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		codec:    session.NewCodec(deps.Conf.SecretKey, deps.Conf.AppName),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.deps.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	if conf.Debug {
		s.app.Logger.SetLevel(log.DEBUG)
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.contextSession, s.signalShutdown)
	s.app.Renderer = mustParsePages()

	registerPages(s.app, s)

	v1 := s.app.Group("/api/v1")
	registerSessionAPI(v1, s)
	registerDashboardAPI(v1, s)
	registerDirectoryAPI(v1, s)
	registerAttendanceAPI(v1, s)
	registerAssignmentAPI(v1, s)
	registerMessageAPI(v1, s)

	s.app.GET("/ws/notifications", s.notifications, s.sessionRequired)
}

// Start listens on the configured address until the server is shut down.
func (s *Server) Start() {
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.deps.Conf.Server.Address); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

// Errors receives the error that stopped the server.
func (s *Server) Errors() <-chan error { return s.errors }

// ShutdownSignal receives the signal asking the server to shut down.
func (s *Server) ShutdownSignal() <-chan os.Signal { return s.shutdown }

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default:
	}
}
