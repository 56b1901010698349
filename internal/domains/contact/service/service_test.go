package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/config"
	otelMocks "bizdesk/infras/otel/mocks"
	"bizdesk/internal/domains/contact/model"
	"bizdesk/internal/domains/contact/model/dto"
	"bizdesk/internal/domains/contact/repository"
	"bizdesk/internal/domains/contact/service"
	"bizdesk/internal/notifier"
)

type stubNotifier struct {
	outcome notifier.Outcome
	mails   []notifier.Mail
}

func (s *stubNotifier) Notify(_ context.Context, mails ...notifier.Mail) notifier.Outcome {
	s.mails = append(s.mails, mails...)

	return s.outcome
}

func newService(outcome notifier.Outcome) (service.Contact, *stubNotifier) {
	cfg := &config.Config{}
	cfg.SMTP.NotifyEmail = "owner@x.com"

	notif := &stubNotifier{outcome: outcome}
	repo := repository.NewMemory(otelMocks.NewOtel())

	return service.New(repo, notif, cfg, otelMocks.NewOtel()), notif
}

func TestContactService_Create(t *testing.T) {
	svc, notif := newService(notifier.OutcomeSent)

	res, err := svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Subject: "Pricing",
		Message: "How much?",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.Contact.ID)
	assert.Equal(t, "Pricing", res.Contact.Subject)
	assert.Equal(t, notifier.OutcomeSent, res.Notification)

	require.Len(t, notif.mails, 1)
	assert.Equal(t, "owner@x.com", notif.mails[0].To)
	assert.Equal(t, "New Contact Inquiry: Pricing", notif.mails[0].Subject)
}

func TestContactService_CreateDefaultsSubject(t *testing.T) {
	svc, _ := newService(notifier.OutcomeNotConfigured)

	res, err := svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSubject, res.Contact.Subject)
}

func TestContactService_CreateNotificationFailureDoesNotBlockStorage(t *testing.T) {
	svc, _ := newService(notifier.OutcomeFailed)

	res, err := svc.Create(context.Background(), dto.CreateContactRequest{
		Name:    "A",
		Email:   "a@x.com",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, notifier.OutcomeFailed, res.Notification)

	list, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, list.TotalData)
}
