// Package dashboard assembles the role-scoped dashboards out of mock content.
package dashboard

import (
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core/session"
)

// Schedule statuses shown while the profile is absent.
const (
	StatusNotApplicable = "Not Applicable"
	StatusUnavailable   = "Unavailable"
)

type Service struct {
	profiles map[session.Role]Profile
	contents map[session.Role]Content
}

func NewService(profiles map[session.Role]Profile, contents map[session.Role]Content) *Service {
	return &Service{profiles: profiles, contents: contents}
}

// Get returns the dashboard of role.
func (svc *Service) Get(role session.Role) (Dashboard, error) {
	view := session.SelectView(role)
	if view == session.ViewNone {
		return Dashboard{}, session.ErrInvalidRole
	}
	content, ok := svc.contents[role]
	if !ok {
		return Dashboard{}, errors.Errorf("no dashboard content for role %q", role)
	}
	profile := svc.profiles[role]
	available := profile.Available

	d := Dashboard{
		Role:           role,
		View:           view,
		Title:          content.Title,
		Profile:        profileView(role, profile),
		Stats:          content.Stats,
		QuickActions:   make([]QuickAction, 0, len(content.QuickActions)),
		RecentActivity: content.RecentActivity,
	}
	for _, qa := range content.QuickActions {
		qa.Disabled = !available
		d.QuickActions = append(d.QuickActions, qa)
	}

	switch role {
	case session.RoleStudent, session.RoleTeacher:
		d.Schedule = make([]ScheduleItem, 0, len(content.Schedule))
		for _, item := range content.Schedule {
			if !available {
				item.Status = StatusNotApplicable
				if role == session.RoleTeacher {
					item.Status = StatusUnavailable
				}
			}
			d.Schedule = append(d.Schedule, item)
		}
		if role == session.RoleTeacher {
			d.ProfessionalDevelopment = content.ProfessionalDevelopment
		}
	case session.RoleAdmin:
		d.SystemAlerts = content.SystemAlerts
		d.PerformanceMetrics = content.PerformanceMetrics
	}
	return d, nil
}

func profileView(role session.Role, p Profile) ProfileView {
	available := p.Available
	pv := ProfileView{Name: p.Name}
	if role == session.RoleAdmin {
		pv.IsActive = &available
		pv.Status = "Inactive"
		if available {
			pv.Status = "Active"
		}
		return pv
	}
	pv.IsPresent = &available
	pv.Status = "Absent"
	if available {
		pv.Status = "Present"
	}
	return pv
}
