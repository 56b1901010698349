package service

import (
	"bizdesk/config"
	"bizdesk/infras/otel"
	"bizdesk/internal/domains/subscriber/model"
	"bizdesk/internal/domains/subscriber/model/dto"
	"bizdesk/internal/domains/subscriber/repository"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Subscriber interface {
	Subscribe(ctx context.Context, req dto.CreateSubscriberRequest) (dto.CreateSubscriberResponse, error)
	GetAll(ctx context.Context) (dto.GetSubscribersResponse, error)
}

type serviceImpl struct {
	repo     repository.Subscriber
	notifier notifier.Notifier
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Subscriber, notif notifier.Notifier, cfg *config.Config, otl otel.Otel) Subscriber {
	return &serviceImpl{
		repo:     repo,
		notifier: notif,
		cfg:      cfg,
		otel:     otl,
	}
}

// Subscribe is idempotent on email: a duplicate request succeeds and returns
// the record stored by the first request. The confirmation mail goes out
// either way, so a re-subscriber still gets their acknowledgement.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.CreateSubscriberRequest) (res dto.CreateSubscriberResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscriber.Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	stored, created, err := s.repo.FindOrInsert(ctx, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to subscribe")

		return res, fmt.Errorf("failed to subscribe: %w", err)
	}

	if !created {
		scope.AddEvent("Duplicate subscription for existing subscriber " + stored.ID)
	}

	outcome := s.notifier.Notify(ctx, s.welcomeMail(stored))

	res.Subscriber.FromModel(stored)
	res.Notification = outcome

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSubscribersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscriber.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscribers")

		return res, fmt.Errorf("failed to get subscribers: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

func (s *serviceImpl) welcomeMail(sub model.Subscriber) notifier.Mail {
	body := fmt.Sprintf(
		"Hi,\n\nYou are subscribed to the %s blog. We will let you know when new posts go up.\n\nThanks,\n%s\n",
		s.cfg.App.Name,
		s.cfg.App.Name,
	)

	return notifier.Mail{
		To:      sub.Email,
		Subject: "Subscription Confirmed - " + s.cfg.App.Name,
		Body:    body,
	}
}
