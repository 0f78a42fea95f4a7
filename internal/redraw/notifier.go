// Package redraw delivers redraw requests to the host integration. The
// NATS notifier publishes one JSON event per request; the log notifier is
// used when no broker is configured.
package redraw

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	"github.com/KirkDiggler/glamour-api/internal/state"
)

// DefaultSubjectPrefix is prepended to the actor token of each subject
const DefaultSubjectPrefix = "glamour.redraw"

// Publisher is the part of *nats.Conn the notifier needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Event is the payload published for each redraw request
type Event struct {
	Actor       string `json:"actor"`
	Type        string `json:"type"`
	Reason      string `json:"reason"`
	RequestedAt int64  `json:"requested_at"`
}

// NatsConfig holds the dependencies for a NatsNotifier
type NatsConfig struct {
	Conn          Publisher
	Clock         clock.Clock
	SubjectPrefix string
}

// Validate ensures all required dependencies are present
func (c *NatsConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Conn == nil {
		vb.RequiredField("Conn")
	}

	return vb.Build()
}

// NatsNotifier publishes redraw requests on <prefix>.<actor>
type NatsNotifier struct {
	conn   Publisher
	clock  clock.Clock
	prefix string
}

var _ state.Redrawer = (*NatsNotifier)(nil)

// NewNatsNotifier creates a notifier publishing through conn
func NewNatsNotifier(cfg *NatsConfig) (*NatsNotifier, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid nats notifier config")
	}

	prefix := cfg.SubjectPrefix
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &NatsNotifier{
		conn:   cfg.Conn,
		clock:  clk,
		prefix: prefix,
	}, nil
}

// Subject returns the subject a request for entity is published on
func (n *NatsNotifier) Subject(entity core.Entity) string {
	return n.prefix + "." + SubjectToken(entity.GetID())
}

// RequestRedraw implements state.Redrawer
func (n *NatsNotifier) RequestRedraw(ctx context.Context, entity core.Entity, reason string) error {
	if entity == nil {
		return errors.InvalidArgument("entity is required")
	}

	payload, err := json.Marshal(Event{
		Actor:       entity.GetID(),
		Type:        entity.GetType(),
		Reason:      reason,
		RequestedAt: n.clock.Now().Unix(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to marshal redraw event")
	}

	subject := n.Subject(entity)
	if err := n.conn.Publish(subject, payload); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to publish redraw event")
	}

	slog.DebugContext(ctx, "redraw requested",
		"subject", subject,
		"actor", entity.GetID(),
		"reason", reason)

	return nil
}

// SubjectToken turns an actor id into a single NATS subject token.
// Separators and wildcards become underscores.
func SubjectToken(id string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '.', '*', '>', ' ', '\t', '\r', '\n':
			return '_'
		}
		return r
	}, id)
}

// LogNotifier only logs redraw requests
type LogNotifier struct{}

var _ state.Redrawer = LogNotifier{}

// RequestRedraw implements state.Redrawer
func (LogNotifier) RequestRedraw(ctx context.Context, entity core.Entity, reason string) error {
	slog.InfoContext(ctx, "redraw requested",
		"actor", entity.GetID(),
		"type", entity.GetType(),
		"reason", reason)
	return nil
}
