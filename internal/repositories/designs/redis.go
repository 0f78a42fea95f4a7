package designs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/glamour-api/internal/design"
	"github.com/KirkDiggler/glamour-api/internal/errors"
	"github.com/KirkDiggler/glamour-api/internal/pkg/clock"
	"github.com/KirkDiggler/glamour-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/glamour-api/internal/redis"
)

const (
	designKeyPrefix = "design:"
	designIndexKey  = "design:index"

	// DesignIDPrefix is prepended to generated design IDs
	DesignIDPrefix = "dsg"
)

// record is the JSON document stored per design. Appearance data is kept
// as a snapshot code so the stored form matches what users exchange.
type record struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Code           string `json:"code"`
	WriteProtected bool   `json:"write_protected"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

func toRecord(d *design.StoredDesign) record {
	return record{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Code:           d.Code(),
		WriteProtected: d.WriteProtected,
		CreatedAt:      d.CreatedAt.Unix(),
		UpdatedAt:      d.UpdatedAt.Unix(),
	}
}

func fromRecord(rec record) (*design.StoredDesign, error) {
	d, err := design.FromCode(rec.Code)
	if err != nil {
		return nil, errors.Wrapf(err, "stored design %s is corrupt", rec.ID)
	}
	d.ID = rec.ID
	d.Name = rec.Name
	d.Description = rec.Description
	d.WriteProtected = rec.WriteProtected
	d.CreatedAt = time.Unix(rec.CreatedAt, 0).UTC()
	d.UpdatedAt = time.Unix(rec.UpdatedAt, 0).UTC()
	return d, nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	idGen  idgen.Generator
}

// RedisConfig contains configuration for the Redis design repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	IDGen  idgen.Generator
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

// NewRedis creates a new Redis-backed design repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid design repository config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	gen := cfg.IDGen
	if gen == nil {
		gen = idgen.NewUUID(DesignIDPrefix)
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		idGen:  gen,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateForWrite(input.Design, false); err != nil {
		return nil, err
	}

	d := normalize(input.Design)
	if d.ID == "" {
		d.ID = r.idGen.Generate()
	}
	key := designKeyPrefix + d.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("design with ID %s already exists", d.ID)
	}

	now := r.clock.Now()
	d.CreatedAt = now
	d.UpdatedAt = now

	if err := r.write(ctx, d); err != nil {
		return nil, errors.Wrapf(err, "failed to create design")
	}

	slog.DebugContext(ctx, "design created", "id", d.ID, "name", d.Name)

	return &CreateOutput{Design: clone(d)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	result, err := r.client.Get(ctx, designKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("design with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get design")
	}

	d, err := decodeRecord(result)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Design: d}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateForWrite(input.Design, true); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.Design.ID})
	if err != nil {
		return nil, err
	}
	if err := checkProtected(existing.Design, input.Design); err != nil {
		return nil, err
	}

	d := normalize(input.Design)
	d.CreatedAt = existing.Design.CreatedAt
	d.UpdatedAt = r.clock.Now()

	if err := r.write(ctx, d); err != nil {
		return nil, errors.Wrapf(err, "failed to update design")
	}

	return &UpdateOutput{Design: clone(d)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDesignIDEmpty)
	}

	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	if existing.Design.WriteProtected {
		return nil, errors.WriteProtected(input.ID)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, designKeyPrefix+input.ID)
		pipe.SRem(ctx, designIndexKey, input.ID)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete design")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, designIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read design index")
	}
	if len(ids) == 0 {
		return &ListOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = designKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get designs")
	}

	list := make([]*design.StoredDesign, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "design index points at missing design", "id", ids[i])
			continue
		}
		d, err := decodeRecord(raw)
		if err != nil {
			slog.WarnContext(ctx, "skipping unreadable design", "id", ids[i], "error", err)
			continue
		}
		list = append(list, d)
	}
	sortDesigns(list)

	return &ListOutput{Designs: list}, nil
}

func (r *redisRepository) write(ctx context.Context, d *design.StoredDesign) error {
	data, err := json.Marshal(toRecord(d))
	if err != nil {
		return errors.Wrapf(err, "failed to marshal design")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, designKeyPrefix+d.ID, data, 0)
		pipe.SAdd(ctx, designIndexKey, d.ID)
		return nil
	})
	return err
}

func decodeRecord(raw string) (*design.StoredDesign, error) {
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal design")
	}
	return fromRecord(rec)
}
