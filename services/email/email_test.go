package emailsvc

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartschool/connect/core"
)

type loggerMock struct {
	mu     sync.Mutex
	errors []string
}

func (l *loggerMock) Debug(string, ...interface{}) {}
func (l *loggerMock) Info(string, ...interface{})  {}
func (l *loggerMock) Warn(string, ...interface{})  {}
func (l *loggerMock) Error(msg string, _ ...interface{}) {
	l.mu.Lock()
	l.errors = append(l.errors, msg)
	l.mu.Unlock()
}
func (l *loggerMock) Fatal(msg string, args ...interface{}) { l.Error(msg, args...) }

var parent = mail.Address{Name: "Mr. Amit Sharma", Address: "amit.sharma@parents.test"}

func TestConsoleServiceMock_SendMessages(t *testing.T) {
	ResetSentMessages()
	conf := core.NewTestConfig()
	logger := new(loggerMock)
	svc := NewConsoleServiceMock(conf, logger)

	svc.SendMessages(
		&core.EmailMessage{To: []mail.Address{parent}, Subject: "Hello", BodyStr: "Hi there"},
		&core.EmailMessage{Subject: "no recipients", BodyStr: "lost"},
		&core.EmailMessage{To: []mail.Address{parent}, Subject: "no content"},
	)

	sent := GetSentMessages()
	require.Len(t, sent, 1)
	assert.Equal(t, "Hello", sent[0].Subject)
	assert.Equal(t, "Hi there", sent[0].TextContent)
	assert.Empty(t, logger.errors)
}

func TestSendgridService_send(t *testing.T) {
	var (
		gotAuth string
		gotBody map[string]interface{}
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		if r.URL.Path != "/v3/mail/send" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	origHost := host
	host = srv.URL
	defer func() { host = origHost }()

	conf := core.NewTestConfig()
	conf.SendgridApiKey = "SG.key"
	logger := new(loggerMock)
	svc := NewSendgridService(conf, logger).(*sendgridService)

	svc.send(core.EmailMessage{
		To:          []mail.Address{parent},
		Subject:     "New assignment: Algebra",
		TextContent: "Exercises 1-5",
	})

	assert.Empty(t, logger.errors)
	assert.Equal(t, "Bearer SG.key", gotAuth)
	require.NotNil(t, gotBody)
	pers := gotBody["personalizations"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "[SmartSchool Connect] New assignment: Algebra", pers["subject"])
	content := gotBody["content"].([]interface{})
	assert.Len(t, content, 1)

	// server errors are logged
	svc.key = "SG.other"
	endpointOrig := endpoint
	endpoint = "/lol"
	defer func() { endpoint = endpointOrig }()
	svc.send(core.EmailMessage{To: []mail.Address{parent}, TextContent: "x"})
	require.Len(t, logger.errors, 1)
	assert.Contains(t, logger.errors[0], "status: 404")
}
