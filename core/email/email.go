package email

import (
	"fmt"
	"strings"

	"meditrack/core/config"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Message is a single outbound email
type Message struct {
	To       []string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers email through a configured provider
type Sender interface {
	Send(msg *Message) error
}

// NewSender creates a Sender for the configured provider.
// An empty provider returns an error; callers treat that as "email disabled".
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.EmailProvider {
	case "sendgrid":
		if cfg.SendgridAPIKey == "" {
			return nil, fmt.Errorf("sendgrid provider requires SENDGRID_API_KEY")
		}
		return &sendgridSender{
			client:   sendgrid.NewSendClient(cfg.SendgridAPIKey),
			fromName: cfg.EmailFromName,
			fromAddr: cfg.EmailFromAddress,
		}, nil
	case "postmark":
		if cfg.PostmarkToken == "" {
			return nil, fmt.Errorf("postmark provider requires POSTMARK_SERVER_TOKEN")
		}
		return &postmarkSender{
			client:   postmark.NewClient(cfg.PostmarkToken, ""),
			fromName: cfg.EmailFromName,
			fromAddr: cfg.EmailFromAddress,
		}, nil
	case "":
		return nil, fmt.Errorf("no email provider configured")
	default:
		return nil, fmt.Errorf("unsupported email provider: %s", cfg.EmailProvider)
	}
}

type sendgridSender struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

func (s *sendgridSender) Send(msg *Message) error {
	from := mail.NewEmail(s.fromName, s.fromAddr)
	for _, recipient := range msg.To {
		to := mail.NewEmail("", recipient)
		email := mail.NewSingleEmail(from, msg.Subject, to, msg.TextBody, msg.HTMLBody)
		response, err := s.client.Send(email)
		if err != nil {
			return err
		}
		if response.StatusCode >= 400 {
			return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
		}
	}
	return nil
}

type postmarkSender struct {
	client   *postmark.Client
	fromName string
	fromAddr string
}

func (s *postmarkSender) Send(msg *Message) error {
	email := postmark.Email{
		From:     fmt.Sprintf("%s <%s>", s.fromName, s.fromAddr),
		To:       strings.Join(msg.To, ","),
		Subject:  msg.Subject,
		TextBody: msg.TextBody,
		HtmlBody: msg.HTMLBody,
	}
	_, err := s.client.SendEmail(email)
	return err
}
