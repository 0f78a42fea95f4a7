package bindings

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/glamour-api/internal/entities/appearance"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/glamour-api/internal/redis"
)

// bindingsKey is a hash of actor identifier to binding record
const bindingsKey = "binding:actors"

type record struct {
	Actor    string `json:"actor"`
	DesignID string `json:"design_id"`
	BoundAt  int64  `json:"bound_at"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis binding repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	return vb.Build()
}

// NewRedis creates a new Redis-backed binding repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid binding repository config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

func (r *redisRepository) Bind(ctx context.Context, input BindInput) (*BindOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}
	if input.DesignID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	out := &BindOutput{}
	previous, err := r.Get(ctx, GetInput{Actor: input.Actor})
	switch {
	case err == nil:
		out.Replaced = previous.Binding.DesignID
	case !errors.IsNotFound(err):
		return nil, err
	}

	b := Binding{Actor: input.Actor, DesignID: input.DesignID, BoundAt: r.clock.Now()}
	data, err := json.Marshal(record{
		Actor:    b.Actor.String(),
		DesignID: b.DesignID,
		BoundAt:  b.BoundAt.Unix(),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal binding")
	}

	if err := r.client.HSet(ctx, bindingsKey, b.Actor.String(), data).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to bind %s", b.Actor)
	}

	slog.DebugContext(ctx, "actor bound", "actor", b.Actor.String(), "design_id", b.DesignID)
	out.Binding = &b
	return out, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	raw, err := r.client.HGet(ctx, bindingsKey, input.Actor.String()).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, notBound(input.Actor)
		}
		return nil, errors.Wrapf(err, "failed to get binding")
	}

	b, err := decodeRecord(raw)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Binding: b}, nil
}

func (r *redisRepository) Unbind(ctx context.Context, input UnbindInput) (*UnbindOutput, error) {
	if err := validateActor(input.Actor); err != nil {
		return nil, err
	}

	removed, err := r.client.HDel(ctx, bindingsKey, input.Actor.String()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unbind %s", input.Actor)
	}
	if removed == 0 {
		return nil, notBound(input.Actor)
	}

	return &UnbindOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	all, err := r.client.HGetAll(ctx, bindingsKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bindings")
	}

	list := make([]*Binding, 0, len(all))
	for field, raw := range all {
		b, err := decodeRecord(raw)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable binding", "actor", field, "error", err)
			continue
		}
		list = append(list, b)
	}
	sortBindings(list)

	return &ListOutput{Bindings: list}, nil
}

func decodeRecord(raw string) (*Binding, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal binding")
	}
	actor, err := appearance.ParseActorIdentifier(rec.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "stored binding has a bad actor")
	}
	return &Binding{
		Actor:    actor,
		DesignID: rec.DesignID,
		BoundAt:  time.Unix(rec.BoundAt, 0).UTC(),
	}, nil
}
