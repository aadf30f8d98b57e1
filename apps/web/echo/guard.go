package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smartschool/connect/core/session"
)

const loginPath = "/login"

// roleGuard protects the "/dashboard/:role" views: the view only renders for
// a session holding that exact role, anyone else is sent to the login view.
func (s *Server) roleGuard(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if session.Check(ctx.Param("role"), s.contextSession(ctx)) != session.Allow {
			return ctx.Redirect(http.StatusFound, loginPath)
		}
		return next(ctx)
	}
}

func (s *Server) sessionRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !s.contextSession(ctx).Present() {
			return errUnauthorized
		}
		return next(ctx)
	}
}

// roleRequired must run after sessionRequired.
func (s *Server) roleRequired(roles ...session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess := s.contextSession(ctx)
			for _, role := range roles {
				if sess.Role == role {
					return next(ctx)
				}
			}
			return errHttpForbidden
		}
	}
}
