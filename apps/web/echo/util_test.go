package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	echoapi "github.com/smartschool/connect/apps/web/echo"
	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/attendance"
	"github.com/smartschool/connect/core/dashboard"
	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
	emailsvc "github.com/smartschool/connect/services/email"
	notifysvc "github.com/smartschool/connect/services/notify"
	inmemdb "github.com/smartschool/connect/storage/database/inmem"
	"github.com/smartschool/connect/storage/mockdata"
	"github.com/smartschool/connect/tests"
)

var (
	fixture *mockdata.Fixture
	dashSvc *dashboard.Service
	hub     *notifysvc.Hub

	today = time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)

	errNoSession  = httpErr{Error: "no active session"}
	errPermDenied = httpErr{Error: "permission denied"}
)

type loggerMock struct{}

func (l loggerMock) Debug(string, ...interface{}) {}
func (l loggerMock) Info(string, ...interface{})  {}
func (l loggerMock) Warn(string, ...interface{})  {}
func (l loggerMock) Error(string, ...interface{}) {}
func (l loggerMock) Fatal(string, ...interface{}) {}

func setup(t *testing.T) *echoapi.Server {
	var err error

	attendance.NowFunc = func() time.Time { return today }
	assignment.NowFunc = func() time.Time { return today }
	t.Cleanup(func() {
		attendance.NowFunc = time.Now
		assignment.NowFunc = time.Now
	})

	conf := core.NewTestConfig()
	logger := loggerMock{}

	fixture, err = mockdata.LoadDefault()
	require.NoError(t, err)

	validate, translator := testutil.NewValidator()
	core.ParseEmailTemplates(conf, logger)

	// set up DB & repos
	db := inmemdb.Open()

	// set up services
	hub = notifysvc.NewHub(zap.NewNop())
	go hub.Run()
	t.Cleanup(hub.Close)

	emailsvc.ResetSentMessages()
	mailSvc := emailsvc.NewConsoleServiceMock(conf, logger)

	dirSvc := directory.NewService(fixture.Students, fixture.Teachers, fixture.Parents())
	dashSvc = dashboard.NewService(fixture.Profiles, fixture.Dashboards)

	// set up server
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:          conf,
		Logger:        logger,
		Validate:      validate,
		Translator:    translator,
		Landing:       fixture.Landing,
		DashboardSvc:  dashSvc,
		DirectorySvc:  dirSvc,
		AttendanceSvc: attendance.NewService(inmemdb.NewAttendanceRepository(db), fixture.RosterTemplates()),
		AssignmentSvc: assignment.NewService(
			inmemdb.NewAssignmentRepository(db), dirSvc, hub, mailSvc, logger,
		),
		MessageSvc:     message.NewService(fixture.Messages, fixture.AbsentStudents),
		Hub:            hub,
		DisableReqLogs: true,
	})
}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	role     session.Role
	wantCode int
	wantData []byte
}

func newSessionRequest(method, path string, cookie *http.Cookie, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newSessionRequest(method, path, nil, data...)
}

func newFormRequest(path string, form url.Values, cookie *http.Cookie) (*http.Request, *httptest.ResponseRecorder) {
	req, rec := newSessionRequest(http.MethodPost, path, cookie, []byte(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, rec
}

func roleCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.StorageKey {
			return c
		}
	}
	return nil
}

// login signs in through the login form and returns the session cookie.
func login(t *testing.T, app http.Handler, role session.Role) *http.Cookie {
	req, rec := newFormRequest("/login", url.Values{"role": {string(role)}}, nil)
	app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusSeeOther, rec.Code, "login(%s): %s", role, rec.Body.String())

	cookie := roleCookie(rec)
	require.NotNil(t, cookie, "login(%s): no session cookie", role)
	return cookie
}

func sessionCookies(t *testing.T, app http.Handler) map[session.Role]*http.Cookie {
	cookies := make(map[session.Role]*http.Cookie, len(session.Roles))
	for _, r := range session.Roles {
		cookies[r] = login(t, app, r)
	}
	return cookies
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}

// runHTTPTests runs tt against app, signed in as tt.role when set.
func runHTTPTests(t *testing.T, app http.Handler, tests []httpTest) {
	cookies := sessionCookies(t, app)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			req, rec := newSessionRequest(method, tt.path, cookies[tt.role], tt.body)
			app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, code int, location string) {
	t.Helper()
	assert.Equal(t, code, rec.Code)
	assert.Equal(t, location, rec.Header().Get("Location"))
}

func assertBodyContains(t *testing.T, rec *httptest.ResponseRecorder, parts ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, p := range parts {
		assert.True(t, strings.Contains(body, p), "body does not contain %q", p)
	}
}
