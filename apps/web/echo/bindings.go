package echoapi

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/session"
)

var orderingParam = "ordering"

// Ordering binds the "ordering" query param, e.g. "?ordering=-dueDate,title".
// A leading "-" sorts descending. Fields are checked by the repositories.
type Ordering struct {
	Orderings []core.DBOrdering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	val := ctx.QueryParam(orderingParam)
	if val == "" {
		return
	}

	for _, field := range strings.Split(val, ",") {
		field = strings.TrimSpace(field)
		descending := strings.HasPrefix(field, "-")
		field = strings.TrimPrefix(field, "-")
		if field == "" {
			continue
		}
		ord.Orderings = append(ord.Orderings, core.DBOrdering{Field: field, Ascending: !descending})
	}
}

type (
	LoginRequest struct {
		Role     string `json:"role" form:"role" validate:"required,role"`
		Email    string `json:"email" form:"email"`
		Password string `json:"password" form:"password"`
	}

	SessionResponse struct {
		Role     session.Role `json:"role,omitempty"`
		View     string       `json:"view,omitempty"`
		Redirect string       `json:"redirect,omitempty"`
	}

	RoleResponse struct {
		Role session.Role `json:"role"`
		View string       `json:"view"`
	}

	AttendanceRequest struct {
		Date      string `json:"date" query:"date"`
		StudentID string `json:"studentId"`
	}

	AssignmentQuery struct {
		Class   string `query:"class"`
		Subject string `query:"subject"`
	}

	AssignmentCreatedResponse struct {
		Assignment assignment.Assignment `json:"assignment"`
		Message    string                `json:"message"`
	}

	SuccessResponse struct {
		Success string `json:"success"`
	}
)

func newSessionResponse(sess session.Session) SessionResponse {
	if !sess.Present() {
		return SessionResponse{}
	}
	return SessionResponse{
		Role:     sess.Role,
		View:     session.SelectView(sess.Role).String(),
		Redirect: dashboardPath(sess.Role),
	}
}
