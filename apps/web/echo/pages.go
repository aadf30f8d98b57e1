package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/session"
)

func registerPages(e *echo.Echo, s *Server) {
	e.GET("/", s.landingPage)
	e.GET(loginPath, s.loginPage)
	e.POST(loginPath, s.login)
	e.GET("/dashboard/:role", s.dashboardPage, s.roleGuard)
	e.POST("/logout", s.logout)
	e.GET("/logout", s.logout)
}

func (s *Server) landingPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, pageLanding, pageData{
		Role:    s.contextSession(ctx).Role,
		Landing: &s.deps.Landing,
	})
}

func (s *Server) loginPage(ctx echo.Context) error {
	return ctx.Render(http.StatusOK, pageLogin, pageData{
		Title: "Login",
		Role:  s.contextSession(ctx).Role,
		Roles: session.Roles,
	})
}

func (s *Server) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	role, err := s.signIn(ctx, data)
	if err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, dashboardPath(role))
}

// dashboardPage renders behind roleGuard: the session role is the requested one.
func (s *Server) dashboardPage(ctx echo.Context) error {
	role := s.contextSession(ctx).Role
	d, err := s.deps.DashboardSvc.Get(role)
	if err != nil {
		return errors.Wrap(err, "getting dashboard")
	}
	return ctx.Render(http.StatusOK, d.View.String(), pageData{
		Title:     d.Title,
		Role:      role,
		Dashboard: &d,
	})
}

func (s *Server) logout(ctx echo.Context) error {
	if err := s.signOut(ctx); err != nil {
		return err
	}
	return ctx.Redirect(http.StatusSeeOther, "/")
}
