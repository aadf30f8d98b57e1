package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/session"
)

func registerAttendanceAPI(g *echo.Group, s *Server) {
	ag := g.Group("/attendance/:class", s.sessionRequired, s.roleRequired(session.RoleTeacher))
	ag.GET("", s.getRoster)
	ag.POST("/toggle", s.toggleAttendance)
	ag.POST("/mark-all", s.markAllPresent)
	ag.POST("/save", s.saveAttendance)
}

// bindAttendance reads the roster date from the body, falling back to the "date" query param.
func bindAttendance(ctx echo.Context) (AttendanceRequest, error) {
	var data AttendanceRequest
	if err := ctx.Bind(&data); err != nil {
		return data, errors.Wrap(err, "binding to AttendanceRequest")
	}
	if data.Date == "" {
		data.Date = ctx.QueryParam("date")
	}
	data.Date = core.CleanString(data.Date)
	data.StudentID = core.CleanString(data.StudentID)
	return data, nil
}

// Handlers

func (s *Server) getRoster(ctx echo.Context) error {
	data, err := bindAttendance(ctx)
	if err != nil {
		return err
	}
	r, err := s.deps.AttendanceSvc.Roster(ctx.Request().Context(), ctx.Param("class"), data.Date)
	if err != nil {
		return errors.Wrap(err, "getting roster")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (s *Server) toggleAttendance(ctx echo.Context) error {
	data, err := bindAttendance(ctx)
	if err != nil {
		return err
	}
	if data.StudentID == "" {
		return core.NewValidationError(nil, core.FieldError{Field: "studentId", Error: "this field is required"})
	}
	r, err := s.deps.AttendanceSvc.Toggle(ctx.Request().Context(), ctx.Param("class"), data.Date, data.StudentID)
	if err != nil {
		return errors.Wrap(err, "toggling attendance")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (s *Server) markAllPresent(ctx echo.Context) error {
	data, err := bindAttendance(ctx)
	if err != nil {
		return err
	}
	r, err := s.deps.AttendanceSvc.MarkAllPresent(ctx.Request().Context(), ctx.Param("class"), data.Date)
	if err != nil {
		return errors.Wrap(err, "marking all present")
	}
	return ctx.JSON(http.StatusOK, r)
}

func (s *Server) saveAttendance(ctx echo.Context) error {
	data, err := bindAttendance(ctx)
	if err != nil {
		return err
	}
	summary, err := s.deps.AttendanceSvc.Save(ctx.Request().Context(), ctx.Param("class"), data.Date)
	if err != nil {
		return errors.Wrap(err, "saving attendance")
	}
	s.deps.Logger.Info(summary.Message, s.contextSession(ctx))
	return ctx.JSON(http.StatusOK, summary)
}
