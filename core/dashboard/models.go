package dashboard

import "github.com/smartschool/connect/core/session"

type (
	// Profile is the mock person behind a role.
	Profile struct {
		Name string `json:"name" yaml:"name"`
		// Available is the "present" flag of students & teachers and the "active" flag of admins.
		Available bool `json:"available" yaml:"available"`
	}

	Stat struct {
		Label string `json:"label" yaml:"label"`
		Value string `json:"value" yaml:"value"`
		Color string `json:"color" yaml:"color"`
	}

	QuickAction struct {
		Label    string `json:"label" yaml:"label"`
		Icon     string `json:"icon" yaml:"icon"`
		Path     string `json:"path,omitempty" yaml:"path"`
		Action   string `json:"action,omitempty" yaml:"action"`
		Disabled bool   `json:"disabled" yaml:"-"`
	}

	Activity struct {
		Type  string `json:"type" yaml:"type"`
		Title string `json:"title" yaml:"title"`
		Time  string `json:"time" yaml:"time"`
	}

	ScheduleItem struct {
		Time    string `json:"time" yaml:"time"`
		Subject string `json:"subject" yaml:"subject"`
		Status  string `json:"status" yaml:"status"`
	}

	Task struct {
		Title   string `json:"title" yaml:"title"`
		DueDate string `json:"dueDate" yaml:"due_date"`
		Status  string `json:"status" yaml:"status"`
	}

	Alert struct {
		Type    string `json:"type" yaml:"type"`
		Message string `json:"message" yaml:"message"`
		Time    string `json:"time" yaml:"time"`
	}

	Metric struct {
		Metric string `json:"metric" yaml:"metric"`
		Value  string `json:"value" yaml:"value"`
		Trend  string `json:"trend" yaml:"trend"`
		Change string `json:"change" yaml:"change"`
	}

	// Content is the mock data a dashboard is assembled from.
	Content struct {
		Title                   string         `yaml:"title"`
		Stats                   []Stat         `yaml:"stats"`
		QuickActions            []QuickAction  `yaml:"quick_actions"`
		RecentActivity          []Activity     `yaml:"recent_activity"`
		Schedule                []ScheduleItem `yaml:"schedule"`
		ProfessionalDevelopment []Task         `yaml:"professional_development"`
		SystemAlerts            []Alert        `yaml:"system_alerts"`
		PerformanceMetrics      []Metric       `yaml:"performance_metrics"`
	}

	ProfileView struct {
		Name      string `json:"name"`
		IsPresent *bool  `json:"isPresent,omitempty"`
		IsActive  *bool  `json:"isActive,omitempty"`
		Status    string `json:"status"`
	}

	// Dashboard is the role-scoped view model.
	Dashboard struct {
		Role                    session.Role   `json:"role"`
		View                    session.View   `json:"view"`
		Title                   string         `json:"title"`
		Profile                 ProfileView    `json:"profile"`
		Stats                   []Stat         `json:"stats"`
		QuickActions            []QuickAction  `json:"quickActions"`
		RecentActivity          []Activity     `json:"recentActivity"`
		Schedule                []ScheduleItem `json:"todaySchedule,omitempty"`
		ProfessionalDevelopment []Task         `json:"professionalDevelopment,omitempty"`
		SystemAlerts            []Alert        `json:"systemAlerts,omitempty"`
		PerformanceMetrics      []Metric       `json:"performanceMetrics,omitempty"`
	}
)
