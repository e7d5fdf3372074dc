// Package push delivers realtime browser notifications over the Web Push
// protocol with VAPID authentication.
package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"alert-engine/internal/domain/subscription"
	"alert-engine/internal/pkg/config"
	"alert-engine/internal/pkg/errs"
	"alert-engine/internal/usecase"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/cockroachdb/errors"
)

// WebPushSender carries the VAPID credentials as injected configuration, not
// process-global state.
type WebPushSender struct {
	cfg    config.PushConfig
	logger *slog.Logger
}

func NewWebPushSender(cfg config.PushConfig, logger *slog.Logger) usecase.PushSender {
	return &WebPushSender{cfg: cfg, logger: logger}
}

// Send pushes one payload to one registration. The posting-derived Topic
// header makes redelivery attempts collapse into a single notification at
// the push service. Permanent endpoint death (404/410) is marked with
// errs.ErrRegistrationGone; credential rejection with ErrSenderUnauthorized;
// everything else is transient.
func (s *WebPushSender) Send(ctx context.Context, reg *subscription.PushRegistration, payload usecase.PushPayload) error {
	if !reg.IsUsable() {
		return errors.New("subscription has no usable push registration")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrap(err, "failed to encode push payload")
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.cfg.SendTimeout)
	defer cancel()

	resp, err := webpush.SendNotificationWithContext(sendCtx, body, &webpush.Subscription{
		Endpoint: reg.Endpoint,
		Keys: webpush.Keys{
			P256dh: reg.P256dh,
			Auth:   reg.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.cfg.Subscriber,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             s.cfg.TTL,
		Topic:           payload.CollapseTopic(),
		Urgency:         webpush.UrgencyNormal,
	})
	if err != nil {
		return errs.Wrap(err, "push request failed")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return errs.Mark(errors.Newf("push endpoint returned %d", resp.StatusCode), errs.ErrRegistrationGone)
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errs.Mark(errors.Newf("push endpoint returned %d", resp.StatusCode), errs.ErrSenderUnauthorized)
	case resp.StatusCode >= 400:
		return errors.Newf("push endpoint returned %d", resp.StatusCode)
	}
	return nil
}
