package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{ errs []string }

func (l *nopLogger) Debug(string, ...interface{})       {}
func (l *nopLogger) Info(string, ...interface{})        {}
func (l *nopLogger) Warn(string, ...interface{})        {}
func (l *nopLogger) Error(msg string, _ ...interface{}) { l.errs = append(l.errs, msg) }
func (l *nopLogger) Fatal(msg string, _ ...interface{}) { l.errs = append(l.errs, msg) }

type dueDate struct {
	Valid bool
	Time  time.Time
}

func TestEmailMessage_Render(t *testing.T) {
	logger := new(nopLogger)
	ParseEmailTemplates(NewTestConfig(), logger)
	require.Empty(t, logger.errs)

	data := struct {
		Title, Description, Class, Subject string
		DueDate                            dueDate
	}{Title: "Algebra", Description: "Exercises 1 to 5", Class: "10A", Subject: "Mathematics"}

	tests := []struct {
		name     string
		msg      EmailMessage
		wantText []string
		wantHTML []string
	}{
		{
			name:     "plain body",
			msg:      EmailMessage{BodyStr: "hello"},
			wantText: []string{"hello"},
		},
		{
			name:     "unknown template",
			msg:      EmailMessage{TemplateName: "lol"},
			wantText: nil,
		},
		{
			name:     "assignment created",
			msg:      EmailMessage{TemplateName: "assignment_created", TemplateData: data},
			wantText: []string{"Title: Algebra", "class 10A", "Exercises 1 to 5", "http://localhost:8000"},
			wantHTML: []string{"<h3>Algebra</h3>", "<strong>Mathematics</strong>"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.msg
			require.NoError(t, msg.Render())
			for _, want := range tt.wantText {
				assert.Contains(t, msg.TextContent, want)
			}
			for _, want := range tt.wantHTML {
				assert.Contains(t, msg.HTMLContent, want)
			}
			if tt.wantText == nil {
				assert.False(t, msg.HasContent())
			}
		})
	}
}
