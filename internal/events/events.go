// Package events publishes generation lifecycle events so other systems
// (dashboards, provisioning pipelines) can react to finished runs.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// GenerationEvent describes one finished generation run.
type GenerationEvent struct {
	RunID     string    `json:"run_id"`
	Project   string    `json:"project"`
	Framework string    `json:"framework"`
	Industry  string    `json:"industry"`
	Outcome   string    `json:"outcome"`
	Pages     int       `json:"pages"`
	Files     int       `json:"files"`
	Warnings  int       `json:"warnings"`
	Errors    int       `json:"errors"`
	Duration  string    `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher emits generation events. Implementations must be safe to call
// with a nil event receiver configuration (use Noop when unconfigured).
type Publisher interface {
	Publish(ctx context.Context, ev GenerationEvent) error
	Close()
}

// Noop discards all events.
type Noop struct{}

func (Noop) Publish(context.Context, GenerationEvent) error { return nil }
func (Noop) Close()                                         {}

// NATSPublisher publishes events to a NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATS connects to the NATS server. The connection retries in the
// background so a briefly unavailable broker does not fail generation.
func NewNATS(url, subject string) (*NATSPublisher, error) {
	if subject == "" {
		subject = "siteforge.generation"
	}
	conn, err := nats.Connect(url,
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return &NATSPublisher{conn: conn, subject: subject}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, ev GenerationEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal generation event: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish generation event: %w", err)
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("flush generation event: %w", err)
	}
	return nil
}

func (p *NATSPublisher) Close() {
	_ = p.conn.Drain()
}
