package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof" // Register the pprof handlers

	"go.uber.org/zap"

	"github.com/smartschool/connect/apps/web/di"
	echoapi "github.com/smartschool/connect/apps/web/echo"
	"github.com/smartschool/connect/core"
	notifysvc "github.com/smartschool/connect/services/notify"
)

func main() {
	c := di.New()

	must(c.Invoke(func(
		conf *core.Config,
		zl *zap.Logger,
		loggerParam di.LoggerParam,
		dbLoggerParam di.DBLoggerParam,
		storage di.Storage,
		hub *notifysvc.Hub,
		server *echoapi.Server,
	) {
		// =========================================================================
		// Initialize App

		appLogger := loggerParam.Logger
		appLogger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))

		core.ParseEmailTemplates(conf, appLogger)

		defer func() { _ = zl.Sync() }()
		if storage.DB != nil {
			defer func() {
				if err := storage.DB.Close(); err != nil {
					dbLoggerParam.Logger.Fatal("Failed to close", err)
				}
			}()
		}
		defer appLogger.Info("Application stopped")

		// =========================================================================
		// Start Debug Service
		//
		// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
		// /debug/vars - Added to the default mux by importing the expvar package.

		// Expose important info under /debug/vars.
		expvar.NewString("build").Set(conf.Build)
		expvar.NewString("env").Set(conf.Env)
		expvar.NewString("database").Set(conf.Database.Engine)
		expvar.Publish("notificationClients", expvar.Func(func() interface{} { return hub.Clients() }))

		go func() {
			if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
				appLogger.Error(fmt.Sprintf("debug server closed: %v", err), err)
			}
		}()

		// =========================================================================
		// Start Notification Hub & Web Service

		go hub.Run()
		defer hub.Close()

		go func() {
			server.Start()
		}()

		// =========================================================================
		// Shutdown

		select {
		case err := <-server.Errors():
			appLogger.Fatal(fmt.Sprintf("server error: %v", err), err)

		case sig := <-server.ShutdownSignal():
			appLogger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

			// give outstanding requests a deadline for completion
			ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
			defer cancel()

			// asking listener to shut down and shed load
			if err := server.Shutdown(ctx); err != nil {
				appLogger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

				if err = server.Close(); err != nil {
					appLogger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
				}
			}
		}
	}))
}

func must(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
