package session

// View is a role-scoped dashboard variant.
type View string

const (
	ViewNone    View = ""
	ViewStudent View = "dashboard_student"
	ViewTeacher View = "dashboard_teacher"
	ViewAdmin   View = "dashboard_admin"
)

func (v View) String() string {
	if v == ViewNone {
		return "Invalid role"
	}
	return string(v)
}

// SelectView maps a role to its dashboard variant, ViewNone for unknown roles.
func SelectView(role Role) View {
	switch role {
	case RoleStudent:
		return ViewStudent
	case RoleTeacher:
		return ViewTeacher
	case RoleAdmin:
		return ViewAdmin
	}
	return ViewNone
}
