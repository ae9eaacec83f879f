// Package services: services/notify_service.go
package services

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"go-coach-register/config"
	"go-coach-register/logger"
)

// notifyTimeout bounds the outbound delivery call so a slow transport
// cannot stall the submission handler indefinitely.
const notifyTimeout = 10 * time.Second

// NotifyServiceInterface is the best-effort outbound notification
// contract: Notify attempts delivery and never propagates failure.
// The persistence transaction is always committed before Notify runs.
type NotifyServiceInterface interface {
	Notify(subject, body string)
}

// notifyTransport is one concrete delivery channel.
type notifyTransport interface {
	deliver(subject, body string) error
	name() string
}

// NotifyService wraps a transport with the swallow-and-log contract.
// A nil transport means log-only mode (no credentials configured).
type NotifyService struct {
	transport notifyTransport
}

// NewNotifyService selects a transport from the configuration:
// Telegram when bot token and chat id are both present, SMTP when the
// mail settings are present, otherwise log-only.
func NewNotifyService(cfg *config.Config) *NotifyService {
	switch {
	case cfg.TelegramBotToken != "" && cfg.TelegramChatID != "":
		logger.Info.Println("Notifications: using Telegram transport")
		return &NotifyService{transport: NewTelegramTransport(cfg.TelegramBotToken, cfg.TelegramChatID)}
	case cfg.SMTPHost != "" && cfg.SMTPUsername != "" && cfg.SMTPRecipient != "":
		logger.Info.Println("Notifications: using SMTP transport")
		return &NotifyService{transport: NewEmailTransport(cfg)}
	default:
		logger.Warn.Println("Notifications: no transport configured, running in log-only mode")
		return &NotifyService{}
	}
}

// Notify attempts delivery of one message. Transport failures are
// logged together with the message content and absorbed; callers never
// see an error and the already-committed submission is never affected.
func (s *NotifyService) Notify(subject, body string) {
	if s.transport == nil {
		logger.Info.Printf("Notify (log-only): %s\n%s", subject, body)
		return
	}
	if err := s.transport.deliver(subject, body); err != nil {
		logger.Error.Printf("Notify: %s delivery failed: %v; message was: %s\n%s",
			s.transport.name(), err, subject, body)
		return
	}
	logger.Info.Printf("Notify: %s delivery succeeded for %q", s.transport.name(), subject)
}

// ------------------- telegram transport -------------------

// TelegramTransport posts a sendMessage call to the Telegram bot API.
type TelegramTransport struct {
	client *resty.Client
	token  string
	chatID string

	// BaseURL is overridable so tests can point at a local server.
	BaseURL string
}

// NewTelegramTransport builds a transport with a bounded-timeout client.
func NewTelegramTransport(token, chatID string) *TelegramTransport {
	return &TelegramTransport{
		client:  resty.New().SetTimeout(notifyTimeout),
		token:   token,
		chatID:  chatID,
		BaseURL: "https://api.telegram.org",
	}
}

func (t *TelegramTransport) name() string { return "telegram" }

func (t *TelegramTransport) deliver(subject, body string) error {
	url := fmt.Sprintf("%s/bot%s/sendMessage", t.BaseURL, t.token)
	resp, err := t.client.R().
		SetFormData(map[string]string{
			"chat_id": t.chatID,
			"text":    subject + "\n" + body,
		}).
		Post(url)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("telegram API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

// ------------------- email transport -------------------

// EmailTransport sends the message as a plain-text mail via SMTP.
type EmailTransport struct {
	host      string
	port      string
	username  string
	password  string
	recipient string

	// send is swappable in tests; defaults to smtp.SendMail.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailTransport builds a transport from the SMTP configuration.
func NewEmailTransport(cfg *config.Config) *EmailTransport {
	return &EmailTransport{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		recipient: cfg.SMTPRecipient,
		send:      smtp.SendMail,
	}
}

func (t *EmailTransport) name() string { return "smtp" }

func (t *EmailTransport) deliver(subject, body string) error {
	var msg strings.Builder
	msg.WriteString("MIME-version: 1.0;\nContent-Type: text/plain; charset=\"UTF-8\";\n")
	fmt.Fprintf(&msg, "From: %s\r\n", t.username)
	fmt.Fprintf(&msg, "To: %s\r\n", t.recipient)
	fmt.Fprintf(&msg, "Subject: %s\r\n\r\n", subject)
	msg.WriteString(body)

	auth := smtp.PlainAuth("", t.username, t.password, t.host)
	return t.send(t.host+":"+t.port, auth, t.username, []string{t.recipient}, []byte(msg.String()))
}
