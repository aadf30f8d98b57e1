package assignment

import (
	"context"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/smartschool/connect/core"
)

const (
	TypeText  = "text"
	TypeImage = "image"
	TypeFile  = "file"

	DefaultClass   = "10A"
	DefaultSubject = "Mathematics"

	dueDateLayout = "2006-01-02"

	typeTag    = "assigntype"
	classTag   = "classname"
	subjectTag = "subject"
)

var ErrNotFound = errors.New("assignment not found")

type (
	Assignment struct {
		ID          string    `db:"id" json:"id"`
		Title       string    `db:"title" json:"title"`
		Description string    `db:"description" json:"description"`
		Type        string    `db:"type" json:"type"`
		Class       string    `db:"class" json:"class"`
		Subject     string    `db:"subject" json:"subject"`
		DueDate     null.Time `db:"due_date" json:"dueDate"`
		CreatedBy   string    `db:"created_by" json:"createdBy"`
		CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	}

	NewAssignment struct {
		Title       string `json:"title" form:"title" validate:"required,max=200"`
		Description string `json:"description" form:"description" validate:"required"`
		Type        string `json:"type" form:"type" validate:"assigntype"`
		DueDate     string `json:"dueDate" form:"dueDate" validate:"omitempty,datetime=2006-01-02"`
		Class       string `json:"class" form:"class" validate:"classname"`
		Subject     string `json:"subject" form:"subject" validate:"subject"`
	}

	// Filter narrows assignment queries. Empty fields match everything.
	Filter struct {
		Class     string
		Subject   string
		Orderings []core.DBOrdering
	}

	Repository interface {
		Create(ctx context.Context, a Assignment) (Assignment, error)
		Get(ctx context.Context, id string) (Assignment, error)
		Query(ctx context.Context, f Filter) ([]Assignment, error)
	}
)

// OrderingFields maps the orderable API fields to their column.
var OrderingFields = map[string]string{
	"createdAt": "created_at",
	"dueDate":   "due_date",
	"title":     "title",
}

// NullableColumns are the ordering columns that may be NULL; undated assignments sort last.
var NullableColumns = map[string]bool{"due_date": true}

func (na *NewAssignment) clean() {
	na.Title = core.CleanString(na.Title)
	na.Description = core.CleanString(na.Description)
	na.Type = core.CleanString(na.Type, true)
	na.DueDate = core.CleanString(na.DueDate)
	na.Class = core.CleanString(na.Class)
	na.Subject = core.CleanString(na.Subject)
	if na.Type == "" {
		na.Type = TypeText
	}
	if na.Class == "" {
		na.Class = DefaultClass
	}
	if na.Subject == "" {
		na.Subject = DefaultSubject
	}
}

// Validate cleans & validates the assignment, applying defaults to optional fields.
func (na *NewAssignment) Validate(validate *validator.Validate) error {
	na.clean()
	return validate.Struct(na)
}

func (na NewAssignment) dueDate() null.Time {
	if na.DueDate == "" {
		return null.Time{}
	}
	t, err := time.Parse(dueDateLayout, na.DueDate)
	if err != nil {
		return null.Time{}
	}
	return null.TimeFrom(t)
}

// InitValidators registers the assignment validation tags.
// classes & subjects are the values accepted by the "classname" & "subject" tags.
func InitValidators(validate *validator.Validate, translator ut.Translator, classes, subjects []string) {
	core.RegisterOneOf(validate, translator, typeTag, []string{TypeText, TypeImage, TypeFile})
	core.RegisterOneOf(validate, translator, classTag, classes)
	core.RegisterOneOf(validate, translator, subjectTag, subjects)
}
