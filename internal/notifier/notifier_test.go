package notifier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "bizdesk/infras/otel/mocks"
	smtpMocks "bizdesk/infras/smtp/mocks"
	"bizdesk/internal/notifier"
)

func TestNotifier_Notify(t *testing.T) {
	tests := []struct {
		name      string
		mails     []notifier.Mail
		setupMock func(client *smtpMocks.MockClient)
		want      notifier.Outcome
	}{
		{
			name: "all mails sent",
			mails: []notifier.Mail{
				{To: "owner@x.com", Subject: "New Appointment", Body: "body"},
				{To: "a@x.com", Subject: "Appointment Confirmed", Body: "body"},
			},
			setupMock: func(client *smtpMocks.MockClient) {
				client.EXPECT().Configured().Return(true)
				client.EXPECT().Send("owner@x.com", "New Appointment", "body").Return(nil)
				client.EXPECT().Send("a@x.com", "Appointment Confirmed", "body").Return(nil)
			},
			want: notifier.OutcomeSent,
		},
		{
			name: "relay not configured",
			mails: []notifier.Mail{
				{To: "owner@x.com", Subject: "New Appointment", Body: "body"},
			},
			setupMock: func(client *smtpMocks.MockClient) {
				client.EXPECT().Configured().Return(false)
			},
			want: notifier.OutcomeNotConfigured,
		},
		{
			name: "one delivery fails",
			mails: []notifier.Mail{
				{To: "owner@x.com", Subject: "New Appointment", Body: "body"},
				{To: "a@x.com", Subject: "Appointment Confirmed", Body: "body"},
			},
			setupMock: func(client *smtpMocks.MockClient) {
				client.EXPECT().Configured().Return(true)
				client.EXPECT().Send("owner@x.com", "New Appointment", "body").Return(errors.New("relay unreachable"))
				client.EXPECT().Send("a@x.com", "Appointment Confirmed", "body").Return(nil)
			},
			want: notifier.OutcomeFailed,
		},
		{
			name: "empty recipient skipped",
			mails: []notifier.Mail{
				{To: "", Subject: "New Appointment", Body: "body"},
				{To: "a@x.com", Subject: "Appointment Confirmed", Body: "body"},
			},
			setupMock: func(client *smtpMocks.MockClient) {
				client.EXPECT().Configured().Return(true)
				client.EXPECT().Send("a@x.com", "Appointment Confirmed", "body").Return(nil)
			},
			want: notifier.OutcomeSent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := smtpMocks.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			n := notifier.New(mockClient, otelMocks.NewOtel())

			assert.Equal(t, tt.want, n.Notify(context.Background(), tt.mails...))
		})
	}
}
