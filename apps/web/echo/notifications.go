package echoapi

import (
	"fmt"

	"github.com/labstack/echo/v4"

	notifysvc "github.com/smartschool/connect/services/notify"
)

// notifications streams the in-app notifications of the session's role over a websocket.
func (s *Server) notifications(ctx echo.Context) error {
	sess := s.contextSession(ctx)
	err := s.deps.Hub.ServeWs(ctx.Response(), ctx.Request(), sess.Role)
	if err == notifysvc.ErrHubClosed {
		// the connection is hijacked: nothing can be written back
		s.deps.Logger.Warn(fmt.Sprintf("notifications: %v", err), sess)
		return nil
	}
	return err
}
