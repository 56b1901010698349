package notifier

import (
	"bizdesk/infras/otel"
	"bizdesk/infras/smtp"
	"bizdesk/shared/constant"
	"context"

	"github.com/rs/zerolog/log"
)

// Outcome reports what happened to a notification attempt. It rides along in
// API responses next to the stored record; it never turns a successful store
// into a failure.
type Outcome string

const (
	OutcomeSent          Outcome = "sent"
	OutcomeFailed        Outcome = "failed"
	OutcomeNotConfigured Outcome = "not_configured"
)

type Mail struct {
	To      string
	Subject string
	Body    string
}

type Notifier interface {
	Notify(ctx context.Context, mails ...Mail) Outcome
}

type notifierImpl struct {
	client smtp.Client
	otel   otel.Otel
}

func New(client smtp.Client, otl otel.Otel) Notifier {
	return &notifierImpl{
		client: client,
		otel:   otl,
	}
}

// Notify sends every mail best-effort. The outcome is sent only when all of
// them went out; any delivery error degrades the batch to failed. The relay
// client bounds each send with its own timeout, so a dead relay cannot hang
// the request that triggered the notification.
func (n *notifierImpl) Notify(ctx context.Context, mails ...Mail) Outcome {
	_, scope := n.otel.NewScope(ctx, constant.OtelNotifierScopeName, constant.OtelNotifierScopeName+".Notify")
	defer scope.End()

	if !n.client.Configured() {
		scope.AddEvent("Notification skipped, mail relay not configured")

		return OutcomeNotConfigured
	}

	outcome := OutcomeSent

	for _, mail := range mails {
		if mail.To == "" {
			continue
		}

		if err := n.client.Send(mail.To, mail.Subject, mail.Body); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("to", mail.To).Str("subject", mail.Subject).Msg("failed to send notification mail")

			outcome = OutcomeFailed
		}
	}

	return outcome
}
