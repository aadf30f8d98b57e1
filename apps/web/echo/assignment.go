package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/session"
)

func registerAssignmentAPI(g *echo.Group, s *Server) {
	ag := g.Group("/assignments", s.sessionRequired, s.roleRequired(session.RoleTeacher))
	ag.GET("", s.queryAssignments)
	ag.POST("", s.createAssignment)
	ag.GET("/:id", s.retrieveAssignment)
}

// Handlers

func (s *Server) createAssignment(ctx echo.Context) error {
	var data assignment.NewAssignment
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewAssignment")
	}
	if err := data.Validate(s.deps.Validate); err != nil {
		return err
	}

	a, msg, err := s.deps.AssignmentSvc.Create(ctx.Request().Context(), data, s.contextSession(ctx).Role)
	if err != nil {
		return errors.Wrap(err, "creating assignment")
	}
	return ctx.JSON(http.StatusCreated, AssignmentCreatedResponse{Assignment: a, Message: msg})
}

func (s *Server) queryAssignments(ctx echo.Context) error {
	var query AssignmentQuery
	if err := ctx.Bind(&query); err != nil {
		return errors.Wrap(err, "binding to AssignmentQuery")
	}
	ordering := new(Ordering)
	ordering.Bind(ctx)

	as, err := s.deps.AssignmentSvc.Query(ctx.Request().Context(), assignment.Filter{
		Class:     core.CleanString(query.Class),
		Subject:   core.CleanString(query.Subject),
		Orderings: ordering.Orderings,
	})
	if err != nil {
		return errors.Wrap(err, "querying assignments")
	}
	return ctx.JSON(http.StatusOK, as)
}

func (s *Server) retrieveAssignment(ctx echo.Context) error {
	a, err := s.deps.AssignmentSvc.Get(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "getting assignment")
	}
	return ctx.JSON(http.StatusOK, a)
}
