package echoapi_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartschool/connect/core/session"
)

func TestPages_landing(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assertBodyContains(t, rec,
		"Comprehensive School Management",
		"Designed for Every User",
		"Attendance Tracking",
		`href="/login"`,
	)

	// signed in: the nav links to the dashboard
	req, rec = newSessionRequest(http.MethodGet, "/", login(t, app, session.RoleAdmin))
	app.ServeHTTP(rec, req)
	assertBodyContains(t, rec, `href="/dashboard/admin"`, `action="/logout"`)
}

func TestPages_login(t *testing.T) {
	app := setup(t)

	req, rec := newRequest(http.MethodGet, "/login")
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assertBodyContains(t, rec, `value="student"`, `value="teacher"`, `value="admin"`, `action="/login"`)

	tests := []struct {
		name     string
		form     url.Values
		wantCode int
		wantLoc  string
		wantData []byte
	}{
		{
			name:     "student",
			form:     url.Values{"role": {"student"}, "email": {"rahul@school.test"}, "password": {"anything"}},
			wantCode: http.StatusSeeOther,
			wantLoc:  "/dashboard/student",
		},
		{name: "teacher", form: url.Values{"role": {"teacher"}}, wantCode: http.StatusSeeOther, wantLoc: "/dashboard/teacher"},
		{name: "admin", form: url.Values{"role": {" admin "}}, wantCode: http.StatusSeeOther, wantLoc: "/dashboard/admin"},
		{
			name:     "role required",
			form:     url.Values{"email": {"rahul@school.test"}},
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"role": "this field is required"}),
		},
		{
			name:     "unknown role",
			form:     url.Values{"role": {"principal"}},
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"role": "must be one of: student, teacher, admin"}),
		},
		{
			name:     "roles are lowercase",
			form:     url.Values{"role": {"Teacher"}},
			wantCode: http.StatusBadRequest,
			wantData: marshalObj(t, map[string]string{"role": "must be one of: student, teacher, admin"}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newFormRequest("/login", tt.form, nil)
			app.ServeHTTP(rec, req)

			if tt.wantLoc != "" {
				assertRedirect(t, rec, tt.wantCode, tt.wantLoc)
				cookie := roleCookie(rec)
				require.NotNil(t, cookie)
				assert.True(t, cookie.HttpOnly)
				assert.Equal(t, "/", cookie.Path)
				assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
				assert.Greater(t, cookie.MaxAge, 0, "the role flag survives browser restarts")
				return
			}
			checkCodeAndData(t, httpTest{wantCode: tt.wantCode, wantData: tt.wantData}, rec)
			assert.Nil(t, roleCookie(rec), "no session on failed login")
		})
	}
}

func TestPages_dashboardGuard(t *testing.T) {
	app := setup(t)
	cookies := sessionCookies(t, app)
	tampered := &http.Cookie{Name: session.StorageKey, Value: cookies[session.RoleStudent].Value + "x"}
	forged := &http.Cookie{Name: session.StorageKey, Value: "admin"}

	tests := []struct {
		name      string
		path      string
		cookie    *http.Cookie
		wantCode  int
		wantParts []string
	}{
		{name: "no session", path: "/dashboard/student", wantCode: http.StatusFound},
		{name: "tampered cookie", path: "/dashboard/student", cookie: tampered, wantCode: http.StatusFound},
		{name: "plain role cookie", path: "/dashboard/admin", cookie: forged, wantCode: http.StatusFound},
		{name: "unknown role", path: "/dashboard/principal", cookie: cookies[session.RoleAdmin], wantCode: http.StatusFound},
		{
			name: "student", path: "/dashboard/student", cookie: cookies[session.RoleStudent], wantCode: http.StatusOK,
			wantParts: []string{"Student Dashboard", "Rahul Sharma", "Present", "View Homework", "Today's Schedule"},
		},
		{
			name: "teacher", path: "/dashboard/teacher", cookie: cookies[session.RoleTeacher], wantCode: http.StatusOK,
			wantParts: []string{"Teacher Dashboard", "Dr. Meera Singh", "Mark Attendance", "Professional Development"},
		},
		{
			name: "admin", path: "/dashboard/admin", cookie: cookies[session.RoleAdmin], wantCode: http.StatusOK,
			wantParts: []string{"Admin Dashboard", "Mr. Rajesh Kumar", "Active", "System Alerts", "Fee Collection Rate"},
		},
		{name: "student -> teacher", path: "/dashboard/teacher", cookie: cookies[session.RoleStudent], wantCode: http.StatusFound},
		{name: "student -> admin", path: "/dashboard/admin", cookie: cookies[session.RoleStudent], wantCode: http.StatusFound},
		{name: "teacher -> student", path: "/dashboard/student", cookie: cookies[session.RoleTeacher], wantCode: http.StatusFound},
		{name: "admin -> teacher", path: "/dashboard/teacher", cookie: cookies[session.RoleAdmin], wantCode: http.StatusFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newSessionRequest(http.MethodGet, tt.path, tt.cookie)
			app.ServeHTTP(rec, req)

			if tt.wantCode == http.StatusFound {
				assertRedirect(t, rec, http.StatusFound, "/login")
				return
			}
			assert.Equal(t, tt.wantCode, rec.Code)
			assertBodyContains(t, rec, tt.wantParts...)
		})
	}
}

// For every pair of roles, signing in as one then requesting the dashboard
// of the other only renders when both are the same.
func TestPages_dashboardGuardProperties(t *testing.T) {
	app := setup(t)

	for _, r1 := range session.Roles {
		cookie := login(t, app, r1)
		for _, r2 := range session.Roles {
			req, rec := newSessionRequest(http.MethodGet, "/dashboard/"+string(r2), cookie)
			app.ServeHTTP(rec, req)

			if r1 == r2 {
				assert.Equal(t, http.StatusOK, rec.Code, "%s -> %s", r1, r2)
			} else {
				assertRedirect(t, rec, http.StatusFound, "/login")
			}
		}
	}
}

func TestPages_studentScenario(t *testing.T) {
	app := setup(t)

	// login as student
	cookie := login(t, app, session.RoleStudent)

	// the session holds the student role
	req, rec := newSessionRequest(http.MethodGet, "/api/v1/session", cookie)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{
		wantCode: http.StatusOK,
		wantData: []byte(`{"role": "student", "view": "dashboard_student", "redirect": "/dashboard/student"}`),
	}, rec)

	// the teacher dashboard is off limits
	req, rec = newSessionRequest(http.MethodGet, "/dashboard/teacher", cookie)
	app.ServeHTTP(rec, req)
	assertRedirect(t, rec, http.StatusFound, "/login")
	assert.Nil(t, roleCookie(rec), "the guard leaves the session untouched")

	// ... while the student's still renders
	req, rec = newSessionRequest(http.MethodGet, "/dashboard/student", cookie)
	app.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// logout clears the session
	req, rec = newSessionRequest(http.MethodPost, "/logout", cookie)
	app.ServeHTTP(rec, req)
	assertRedirect(t, rec, http.StatusSeeOther, "/")
	cleared := roleCookie(rec)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Less(t, cleared.MaxAge, 0)

	req, rec = newSessionRequest(http.MethodGet, "/api/v1/session", cleared)
	app.ServeHTTP(rec, req)
	checkCodeAndData(t, httpTest{wantCode: http.StatusOK, wantData: []byte(`{}`)}, rec)

	req, rec = newSessionRequest(http.MethodGet, "/dashboard/student", cleared)
	app.ServeHTTP(rec, req)
	assertRedirect(t, rec, http.StatusFound, "/login")

	// GET /logout without a session is harmless
	req, rec = newRequest(http.MethodGet, "/logout")
	app.ServeHTTP(rec, req)
	assertRedirect(t, rec, http.StatusSeeOther, "/")
}
