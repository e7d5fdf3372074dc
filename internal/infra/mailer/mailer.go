// Package mailer delivers aggregated digest emails over SMTP.
package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"alert-engine/internal/domain/posting"
	"alert-engine/internal/pkg/config"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase"

	"github.com/wneessen/go-mail"
)

type SMTPDigestSender struct {
	cfg    config.SMTPConfig
	client *mail.Client
	logger *slog.Logger
}

func NewSMTPDigestSender(cfg config.SMTPConfig, logger *slog.Logger) (usecase.DigestSender, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTimeout(cfg.SendTimeout),
	)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build SMTP client")
	}
	return &SMTPDigestSender{cfg: cfg, client: client, logger: logger}, nil
}

// SendDigest sends exactly one email containing all matched postings. A
// timeout counts as a delivery failure, never as a crash of the batch.
func (s *SMTPDigestSender) SendDigest(ctx context.Context, email, name string, postings []*posting.Posting) error {
	html, err := renderDigest(name, postings)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.FromName, s.cfg.FromEmail); err != nil {
		return errs.Wrap(err, "invalid sender address")
	}
	if err := msg.To(email); err != nil {
		return errs.Wrap(err, "invalid recipient address")
	}
	msg.Subject(digestSubject(len(postings)))
	msg.SetBodyString(mail.TypeTextHTML, html)

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()
	if err := s.client.DialAndSendWithContext(sendCtx, msg); err != nil {
		return errs.Wrap(err, "failed to send digest email")
	}

	s.logger.Info("digest email sent", "to", email, "postings", len(postings))
	return nil
}

func digestSubject(count int) string {
	if count == 1 {
		return "1 new job matches your alert"
	}
	return fmt.Sprintf("%d new jobs match your alert", count)
}
