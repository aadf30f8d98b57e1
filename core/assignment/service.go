// Package assignment lets teachers publish assignments to a class.
package assignment

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/smartschool/connect/core"
	"github.com/smartschool/connect/core/session"
)

var NowFunc = time.Now // mockable

// ParentDirectory finds the parents of a class' students.
type ParentDirectory interface {
	ParentsOf(class string) []mail.Address
}

type Service struct {
	repo     Repository
	parents  ParentDirectory
	notifier core.NotificationService
	mailSvc  core.EmailService
	logger   core.Logger
}

func NewService(
	repo Repository,
	parents ParentDirectory,
	notifier core.NotificationService,
	mailSvc core.EmailService,
	logger core.Logger,
) *Service {
	return &Service{
		repo:     repo,
		parents:  parents,
		notifier: notifier,
		mailSvc:  mailSvc,
		logger:   logger,
	}
}

// Create stores a validated assignment then announces it to the class' students
// (in-app) & their parents (email). Delivery failures are logged, not returned.
func (svc *Service) Create(ctx context.Context, na NewAssignment, createdBy session.Role) (Assignment, string, error) {
	a := Assignment{
		ID:          uuid.NewString(),
		Title:       na.Title,
		Description: na.Description,
		Type:        na.Type,
		Class:       na.Class,
		Subject:     na.Subject,
		DueDate:     na.dueDate(),
		CreatedBy:   string(createdBy),
		CreatedAt:   NowFunc().UTC().Truncate(time.Second),
	}
	a, err := svc.repo.Create(ctx, a)
	if err != nil {
		return Assignment{}, "", errors.Wrap(err, "creating assignment")
	}

	svc.announce(a)

	msg := fmt.Sprintf("Assignment %q has been created and sent to all students via WhatsApp and in-app notifications.", a.Title)
	return a, msg, nil
}

func (svc *Service) announce(a Assignment) {
	n := core.Notification{
		Audience: string(session.RoleStudent),
		Type:     "assignment",
		Title:    "New " + a.Subject + " assignment",
		Body:     a.Title,
		SentAt:   NowFunc().UTC(),
	}
	if err := svc.notifier.Publish(n); err != nil {
		svc.logger.Error(fmt.Sprintf("publishing assignment notification: %v", err), err)
	}

	// one message per parent: parents never see each other's address
	parents := svc.parents.ParentsOf(a.Class)
	msgs := make([]*core.EmailMessage, 0, len(parents))
	for _, p := range parents {
		msgs = append(msgs, &core.EmailMessage{
			To:           []mail.Address{p},
			Subject:      "New assignment: " + a.Title,
			TemplateName: "assignment_created",
			TemplateData: a,
		})
	}
	if len(msgs) > 0 {
		svc.mailSvc.SendMessages(msgs...)
	}
}

func (svc *Service) Get(ctx context.Context, id string) (Assignment, error) {
	return svc.repo.Get(ctx, id)
}

func (svc *Service) Query(ctx context.Context, f Filter) ([]Assignment, error) {
	as, err := svc.repo.Query(ctx, f)
	return as, errors.Wrap(err, "querying assignments")
}
