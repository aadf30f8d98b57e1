package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
)

// MessageResponse is a parent's message along with how it is displayed.
type MessageResponse struct {
	message.Message
	Icon          string `json:"icon"`
	StatusVariant string `json:"statusVariant"`
}

func registerMessageAPI(g *echo.Group, s *Server) {
	mg := g.Group("/messages", s.sessionRequired, s.roleRequired(session.RoleTeacher))
	mg.GET("", s.queryMessages)
	mg.GET("/absent", s.queryAbsentStudents)
}

// Handlers

func (s *Server) queryMessages(ctx echo.Context) error {
	var filter message.Filter
	if err := ctx.Bind(&filter); err != nil {
		return errors.Wrap(err, "binding to message.Filter")
	}
	if err := filter.Validate(s.deps.Validate); err != nil {
		return err
	}

	msgs := s.deps.MessageSvc.Filter(filter)
	res := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		res = append(res, MessageResponse{
			Message:       m,
			Icon:          message.TypeIcon(m.Type),
			StatusVariant: message.StatusVariant(m.Status),
		})
	}
	return ctx.JSON(http.StatusOK, res)
}

func (s *Server) queryAbsentStudents(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.deps.MessageSvc.Absent())
}
