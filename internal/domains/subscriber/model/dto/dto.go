package dto

import (
	"bizdesk/internal/domains/subscriber/model"
	"bizdesk/internal/notifier"
	"bizdesk/shared/constant"
	"bizdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateSubscriberRequest struct {
	Email string `json:"email" validate:"required"`
}

func (c *CreateSubscriberRequest) ToModel() model.Subscriber {
	return model.Subscriber{
		ID:           uuid.NewString(),
		Email:        c.Email,
		SubscribedAt: timezone.Now(),
		Active:       true,
	}
}

type SubscriberResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	SubscribedAt string `json:"subscribed_at"`
	Active       bool   `json:"active"`
}

func (r *SubscriberResponse) FromModel(mod model.Subscriber) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.SubscribedAt = timezone.Format(mod.SubscribedAt, constant.DateFormat)
	r.Active = mod.Active
}

type CreateSubscriberResponse struct {
	Subscriber   SubscriberResponse `json:"subscriber"`
	Notification notifier.Outcome   `json:"notification"`
}

type GetSubscribersResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	TotalData   int                  `json:"total_data"`
}

func (r *GetSubscribersResponse) FromModels(models []model.Subscriber) {
	r.TotalData = len(models)

	r.Subscribers = make([]SubscriberResponse, len(models))
	for i, mod := range models {
		r.Subscribers[i].FromModel(mod)
	}
}
