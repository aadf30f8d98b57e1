package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/session"
)

func registerDashboardAPI(g *echo.Group, s *Server) {
	g.GET("/dashboard", s.getDashboard, s.sessionRequired)
}

func registerDirectoryAPI(g *echo.Group, s *Server) {
	dg := g.Group("/directory", s.sessionRequired, s.roleRequired(session.RoleTeacher, session.RoleAdmin))
	dg.GET("/search", s.searchDirectory)
}

// Handlers

func (s *Server) getDashboard(ctx echo.Context) error {
	d, err := s.deps.DashboardSvc.Get(s.contextSession(ctx).Role)
	if err != nil {
		return errors.Wrap(err, "getting dashboard")
	}
	return ctx.JSON(http.StatusOK, d)
}

func (s *Server) searchDirectory(ctx echo.Context) error {
	var query directory.Query
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to directory.Query")
	}
	if err := query.Validate(s.deps.Validate); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, s.deps.DirectorySvc.Search(query.Search, query.Kind))
}
