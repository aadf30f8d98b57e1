// Package message holds the parents' messages & absence follow-ups of the
// teacher's communication panel.
package message

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/smartschool/connect/core"
)

const (
	StatusAll     = "all"
	StatusUnread  = "unread"
	StatusRead    = "read"
	StatusReplied = "replied"

	statusTag = "msgstatus"
)

type (
	Message struct {
		ID          string `json:"id" yaml:"id"`
		StudentID   string `json:"studentId" yaml:"student_id"`
		StudentName string `json:"studentName" yaml:"student_name"`
		ParentName  string `json:"parentName" yaml:"parent_name"`
		Message     string `json:"message" yaml:"message"`
		Timestamp   string `json:"timestamp" yaml:"timestamp"`
		Source      string `json:"source" yaml:"source"`
		Status      string `json:"status" yaml:"status"`
		Type        string `json:"type" yaml:"type"`
	}

	AbsentStudent struct {
		StudentID         string `json:"studentId" yaml:"student_id"`
		StudentName       string `json:"studentName" yaml:"student_name"`
		RollNo            string `json:"rollNo" yaml:"roll_no"`
		ParentContact     string `json:"parentContact" yaml:"parent_contact"`
		LastSeen          string `json:"lastSeen" yaml:"last_seen"`
		ConsecutiveAbsent int    `json:"consecutiveAbsent" yaml:"consecutive_absent"`
	}

	Filter struct {
		Search string `json:"search" query:"search"`
		Status string `json:"status" query:"status" validate:"msgstatus"`
	}
)

func (f *Filter) Validate(validate *validator.Validate) error {
	f.Search = core.CleanString(f.Search)
	f.Status = core.CleanString(f.Status, true)
	if f.Status == "" {
		f.Status = StatusAll
	}
	return validate.Struct(f)
}

// InitValidators registers the "msgstatus" validation tag.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	core.RegisterOneOf(validate, translator, statusTag, []string{StatusAll, StatusUnread, StatusRead, StatusReplied})
}

// TypeIcon returns the icon shown for a message type.
func TypeIcon(typ string) string {
	switch typ {
	case "excuse":
		return "alert-circle"
	case "feedback":
		return "check-circle"
	case "meeting":
		return "calendar"
	case "inquiry", "help":
		return "help-circle"
	default:
		return "message-square"
	}
}

// StatusVariant returns the badge variant shown for a message status.
func StatusVariant(status string) string {
	switch status {
	case StatusUnread:
		return "destructive"
	case StatusRead:
		return "secondary"
	case StatusReplied:
		return "default"
	default:
		return "outline"
	}
}

type Service struct {
	messages []Message
	absent   []AbsentStudent
}

func NewService(messages []Message, absent []AbsentStudent) *Service {
	return &Service{messages: messages, absent: absent}
}

// Filter returns the messages matching f. Search is matched, ignoring case,
// against the student's name & ID and the message body.
func (svc *Service) Filter(f Filter) []Message {
	res := make([]Message, 0, len(svc.messages))
	for _, m := range svc.messages {
		if f.Status != "" && f.Status != StatusAll && m.Status != f.Status {
			continue
		}
		if f.Search != "" &&
			!core.ContainsFold(m.StudentName, f.Search) &&
			!core.ContainsFold(m.StudentID, f.Search) &&
			!core.ContainsFold(m.Message, f.Search) {
			continue
		}
		res = append(res, m)
	}
	return res
}

// Absent returns the students needing an absence follow-up.
func (svc *Service) Absent() []AbsentStudent {
	res := make([]AbsentStudent, len(svc.absent))
	copy(res, svc.absent)
	return res
}
