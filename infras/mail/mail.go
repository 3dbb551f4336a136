package mail

//go:generate go run go.uber.org/mock/mockgen -source=./mail.go -destination=./mocks/mail_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"kwagala/config"
	"kwagala/infras/otel"
	"kwagala/shared/constant"

	"github.com/rs/zerolog/log"
	gomail "github.com/wneessen/go-mail"
)

var errNoRecipient = errors.New("mail has no recipient")

// Message is one outbound HTML email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

type Client interface {
	Send(ctx context.Context, msg Message) error
}

type clientImpl struct {
	cfg  *config.Config
	otel otel.Otel
	opts []gomail.Option
}

func New(cfg *config.Config, ot otel.Otel) Client {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithTLSPortPolicy(TLSPolicy(cfg.Mail.TLSPolicy)),
		gomail.WithTimeout(time.Duration(cfg.Mail.TimeoutSecs) * time.Second),
	}

	if cfg.Mail.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Mail.Username),
			gomail.WithPassword(cfg.Mail.Password),
		)
	}

	log.Info().Str("host", cfg.Mail.Host).Int("port", cfg.Mail.Port).Msg("Mail relay configured")

	return &clientImpl{
		cfg:  cfg,
		otel: ot,
		opts: opts,
	}
}

// TLSPolicy maps MAIL_TLS_POLICY onto go-mail. Unknown values fall back to mandatory.
func TLSPolicy(policy string) gomail.TLSPolicy {
	switch strings.ToLower(policy) {
	case "none", "notls":
		return gomail.NoTLS
	case "opportunistic":
		return gomail.TLSOpportunistic
	default:
		return gomail.TLSMandatory
	}
}

// Compose builds the MIME message with the configured sender.
func Compose(fromName, fromAddress string, msg Message) (*gomail.Msg, error) {
	if len(msg.To) == 0 {
		return nil, errNoRecipient
	}

	m := gomail.NewMsg()

	if err := m.FromFormat(fromName, fromAddress); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := m.To(msg.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	m.Subject(msg.Subject)
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	return m, nil
}

func (c *clientImpl) Send(ctx context.Context, msg Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelMailScopeName, constant.OtelMailScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		"mail.subject": msg.Subject,
		"mail.to":      msg.To,
	})

	m, err := Compose(c.cfg.Mail.FromName, c.cfg.Mail.Username, msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to compose mail")

		return err
	}

	client, err := gomail.NewClient(c.cfg.Mail.Host, c.opts...)
	if err != nil {
		log.Error().Err(err).Msg("failed to create mail client")

		return fmt.Errorf("failed to create mail client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, m); err != nil {
		log.Error().Err(err).Str("host", c.cfg.Mail.Host).Msg("failed to send mail")

		return fmt.Errorf("failed to send mail: %w", err)
	}

	log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("mail sent")

	return nil
}
