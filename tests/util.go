package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/assignment"
	"github.com/smartschool/connect/core/directory"
	"github.com/smartschool/connect/core/message"
	"github.com/smartschool/connect/core/session"
	"github.com/smartschool/connect/storage/database"
)

var (
	Classes  = []string{"10A", "10B", "9A", "9B"}
	Subjects = []string{"Mathematics", "Physics", "Chemistry", "English", "History"}
)

// OpenSQLite opens a migrated in-memory SQLite database, closed at the end of the test.
func OpenSQLite(t *testing.T) *sqlx.DB {
	t.Helper()

	conf := core.NewTestConfig()
	conf.Database.Engine = database.EngineSQLite
	conf.Database.Name = ":memory:"

	db, err := database.Open(conf)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err = database.Migrate(db); err != nil {
		t.Fatalf("OpenSQLite() failed to migrate: %v", err)
	}
	return db
}

// NewValidator returns a validator & translator with every custom tag registered.
func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")

	validate := validator.New()
	core.InitValidators(validate, translator)
	session.InitValidators(validate, translator)
	directory.InitValidators(validate, translator)
	message.InitValidators(validate, translator)
	assignment.InitValidators(validate, translator, Classes, Subjects)
	return validate, translator
}

func CreateAssignment(
	t *testing.T,
	repo assignment.Repository,
	id, title, class, subject string,
	createdAt time.Time,
	dueDate ...time.Time,
) assignment.Assignment {
	a := assignment.Assignment{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Type:        assignment.TypeText,
		Class:       class,
		Subject:     subject,
		CreatedBy:   string(session.RoleTeacher),
		CreatedAt:   createdAt.UTC(),
	}
	if len(dueDate) > 0 {
		a.DueDate = null.TimeFrom(dueDate[0].UTC())
	}
	a, err := repo.Create(context.Background(), a)
	if err != nil {
		t.Fatalf("CreateAssignment() failed: %v", err)
	}
	return a
}
