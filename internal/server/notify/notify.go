// Package notify announces committed transfers to other services. Delivery is
// best effort: a notification is sent only after the transfer has committed,
// and a failure to send never affects the transfer.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophwallet/internal/logging"
	"github.com/dmitrijs2005/gophwallet/internal/server/telemetry"
	"github.com/nats-io/nats.go"
)

// TransferEvent describes a committed transfer. Amount is in minor units.
type TransferEvent struct {
	From   string    `json:"from"`
	To     string    `json:"to"`
	Amount int64     `json:"amount"`
	At     time.Time `json:"at"`
}

type Notifier interface {
	TransferCompleted(ctx context.Context, ev TransferEvent)
	Close()
}

// Nop drops every event. It is used when no broker is configured.
type Nop struct{}

func (Nop) TransferCompleted(context.Context, TransferEvent) {}
func (Nop) Close()                                           {}

type publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes events as JSON on a NATS subject.
type NATSNotifier struct {
	pub     publisher
	conn    *nats.Conn
	subject string
	log     logging.Logger
}

// Connect returns a NATSNotifier for url, or Nop when url is empty.
func Connect(url, subject string, log logging.Logger) (Notifier, error) {
	if url == "" {
		return Nop{}, nil
	}

	opts := []nats.Option{
		nats.Name("gophwallet"),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn(context.Background(), "nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info(context.Background(), "nats reconnected", "url", nc.ConnectedUrl())
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSNotifier{pub: conn, conn: conn, subject: subject, log: log}, nil
}

func (n *NATSNotifier) TransferCompleted(ctx context.Context, ev TransferEvent) {
	data, err := json.Marshal(ev)
	if err != nil {
		n.log.Error(ctx, "failed to marshal transfer event", "error", err)
		return
	}

	if err := n.pub.Publish(n.subject, data); err != nil {
		telemetry.NATSPublishFailures.WithLabelValues(n.subject).Inc()
		n.log.Warn(ctx, "failed to publish transfer event", "error", err)
		return
	}
	telemetry.NATSMessagesPublished.WithLabelValues(n.subject).Inc()
}

func (n *NATSNotifier) Close() {
	if n.conn != nil {
		_ = n.conn.Drain()
		n.conn.Close()
	}
}
