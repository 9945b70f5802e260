package notify

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/nats-io/nats.go"

	"goyo/internal/bootstrap/logging"
	"goyo/internal/errs"
	"goyo/internal/ports"
)

// NATSNotifier publishes alert events to a NATS subject.
type NATSNotifier struct {
	conn    *nats.Conn
	subject string
}

var _ ports.AlertNotifier = (*NATSNotifier)(nil)

func NewNATSNotifier(ctx context.Context, url string, subject string) (*NATSNotifier, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if url == "" {
		return nil, errors.New("nats url is required")
	}
	if subject == "" {
		return nil, errors.New("nats subject is required")
	}

	conn, err := nats.Connect(url, nats.Name("goyo-alerts"))
	if err != nil {
		return nil, errs.Wrap(err, "connect nats")
	}

	logging.Info(
		logging.WithAttrs(ctx, slog.String("component", "notify.nats")),
		"nats notifier connected",
		slog.String("url", url),
		slog.String("subject", subject),
	)

	return &NATSNotifier{conn: conn, subject: subject}, nil
}

func (n *NATSNotifier) PublishAlertCreated(ctx context.Context, event ports.AlertEvent) error {
	if ctx == nil {
		return errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return errs.Wrap(err, "check context")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal alert event")
	}

	if err := n.conn.Publish(n.subject, payload); err != nil {
		return errs.Wrap(err, "publish alert event")
	}
	return nil
}

func (n *NATSNotifier) Close() {
	if n.conn == nil {
		return
	}
	// Drain flushes buffered publishes before closing.
	if err := n.conn.Drain(); err != nil {
		n.conn.Close()
	}
}

// NoopNotifier drops every event; used when no NATS url is configured.
type NoopNotifier struct{}

var _ ports.AlertNotifier = NoopNotifier{}

func NewNoopNotifier() NoopNotifier {
	return NoopNotifier{}
}

func (NoopNotifier) PublishAlertCreated(context.Context, ports.AlertEvent) error {
	return nil
}
