package service

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/contact/model"
	"bizdesk/internal/domains/contact/model/dto"
	"bizdesk/internal/domains/contact/repository"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Contact interface {
	Create(ctx context.Context, req dto.CreateContactRequest) (dto.CreateContactResponse, error)
	GetAll(ctx context.Context) (dto.GetContactsResponse, error)
}

type serviceImpl struct {
	repo     repository.Contact
	notifier notifier.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Contact, notif notifier.Notifier, cfg *config.Config, otl otel.Otel) Contact {
	return &serviceImpl{
		repo:     repo,
		notifier: notif,
		cfg:      cfg,
		otel:     otl,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateContactRequest) (res dto.CreateContactResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	contact := req.ToModel()

	if err = s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Msg("failed to create contact")

		return res, fmt.Errorf("failed to create contact: %w", err)
	}

	outcome := s.notifier.Notify(ctx, s.inquiryMail(contact))

	scope.AddEvent("Contact created with notification outcome " + string(outcome))

	res.Contact.FromModel(contact)
	res.Notification = outcome

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetContactsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".contact.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get contacts")

		return res, fmt.Errorf("failed to get contacts: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) inquiryMail(contact model.Contact) notifier.Mail {
	body := fmt.Sprintf(
		"New contact form submission.\n\nName: %s\nEmail: %s\nSubject: %s\nMessage: %s\n",
		contact.Name,
		contact.Email,
		contact.Subject,
		contact.Message,
	)

	return notifier.Mail{
		To:      s.cfg.SMTP.NotifyEmail,
		Subject: "New Contact Inquiry: " + contact.Subject,
		Body:    body,
	}
}
