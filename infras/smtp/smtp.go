package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"bizdesk/config"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a thin mail relay client. Configured reports whether a relay host
// is set at all; Send delivers one message and respects the configured
// timeout as an overall deadline for dial, handshake and payload.
type Client interface {
	Configured() bool
	Send(to, subject, body string) error
}

type clientImpl struct {
	host    string
	addr    string
	from    string
	timeout time.Duration
}

func New(cfg *config.Config) Client {
	host := strings.TrimSpace(cfg.SMTP.Host)
	port := strings.TrimSpace(cfg.SMTP.Port)
	from := strings.TrimSpace(cfg.SMTP.From)

	if from == "" {
		from = "no-reply@bizdesk.local"
	}

	if host == "" {
		log.Warn().Msg("SMTP host not configured, mail notifications are disabled")
	}

	return &clientImpl{
		host:    host,
		addr:    net.JoinHostPort(host, port),
		from:    from,
		timeout: time.Duration(cfg.SMTP.TimeoutSeconds) * time.Second,
	}
}

func (c *clientImpl) Configured() bool {
	return c.host != ""
}

func (c *clientImpl) Send(to, subject, body string) error {
	conn, err := net.DialTimeout("tcp", c.addr, c.timeout)
	if err != nil {
		return fmt.Errorf("failed to dial mail relay: %w", err)
	}

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		conn.Close()

		return fmt.Errorf("failed to set mail relay deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, c.host)
	if err != nil {
		conn.Close()

		return fmt.Errorf("failed to open mail relay session: %w", err)
	}
	defer client.Close()

	if err := client.Mail(c.from); err != nil {
		return fmt.Errorf("failed to set mail sender: %w", err)
	}

	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set mail recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open mail payload: %w", err)
	}

	if _, err := writer.Write([]byte(buildMessage(c.from, to, subject, body))); err != nil {
		return fmt.Errorf("failed to write mail payload: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail payload: %w", err)
	}

	return client.Quit() //nolint:wrapcheck
}

// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
func buildMessage(from, to, subject, body string) string {
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}
