package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/session"
)

func dashboardPath(role session.Role) string {
	return "/dashboard/" + string(role)
}

// signIn stores the chosen role as the request's session.
// The email & password are accepted as typed: no identity is checked.
func (s *Server) signIn(ctx echo.Context, data LoginRequest) (session.Role, error) {
	data.Role = core.CleanString(data.Role)
	if err := s.deps.Validate.Struct(data); err != nil {
		return "", err
	}

	role := session.Role(data.Role)
	if err := s.sessionStore(ctx).Set(role); err != nil {
		return "", errors.Wrap(err, "setting session role")
	}
	s.deps.Logger.Info("signed in", session.Session{Role: role})
	return role, nil
}

func (s *Server) signOut(ctx echo.Context) error {
	return errors.Wrap(s.sessionStore(ctx).Clear(), "clearing session")
}

func registerSessionAPI(g *echo.Group, s *Server) {
	g.GET("/session", s.getSession)
	g.POST("/session", s.createSession)
	g.DELETE("/session", s.deleteSession)
	g.GET("/roles", s.queryRoles)
	g.GET("/landing", s.getLanding)
}

// Handlers

func (s *Server) getSession(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, newSessionResponse(s.contextSession(ctx)))
}

func (s *Server) createSession(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	role, err := s.signIn(ctx, data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newSessionResponse(session.Session{Role: role}))
}

func (s *Server) deleteSession(ctx echo.Context) error {
	if err := s.signOut(ctx); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) queryRoles(ctx echo.Context) error {
	roles := make([]RoleResponse, 0, len(session.Roles))
	for _, r := range session.Roles {
		roles = append(roles, RoleResponse{Role: r, View: session.SelectView(r).String()})
	}
	return ctx.JSON(http.StatusOK, roles)
}

func (s *Server) getLanding(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.deps.Landing)
}
