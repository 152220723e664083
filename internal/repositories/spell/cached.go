package spell

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	redisclient "github.com/KirkDiggler/rpg-sheet-api/internal/redis"
)

const spellKeyPrefix = "spell:"

// CachedConfig contains configuration for the redis read-through cache
type CachedConfig struct {
	Next   Repository
	Client redisclient.Client
	TTL    time.Duration
	Logger *logger.Logger
}

// Validate validates the CachedConfig.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Next == nil {
		vb.RequiredField("Next")
	}
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.TTL <= 0 {
		vb.InvalidField("TTL", "must be positive")
	}
	if cfg.Logger == nil {
		vb.RequiredField("Logger")
	}
	return vb.Build()
}

// cachedRepository serves Get from redis and falls through to Next.
// Cache failures are logged and never fail a read.
type cachedRepository struct {
	next   Repository
	client redisclient.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewCached wraps a repository with a redis cache for single spell reads
func NewCached(cfg *CachedConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cachedRepository{
		next:   cfg.Next,
		client: cfg.Client,
		ttl:    cfg.TTL,
		log:    cfg.Logger.With("repository", "spell_cache"),
	}, nil
}

func (r *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	return r.next.List(ctx, input)
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	key := spellKeyPrefix + input.ID
	raw, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out GetOutput
		if jsonErr := json.Unmarshal(raw, &out.Spell); jsonErr == nil && out.Spell != nil {
			return &out, nil
		}
		r.log.Warn("discarding unreadable cached spell", "spell_id", input.ID)
	case !stderrors.Is(err, redisclient.Nil):
		r.log.Warn("spell cache read failed", "spell_id", input.ID, "error", err)
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(out.Spell); jsonErr == nil {
		if setErr := r.client.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			r.log.Warn("spell cache write failed", "spell_id", input.ID, "error", setErr)
		}
	}
	return out, nil
}

func (r *cachedRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	out, err := r.next.Upsert(ctx, input)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(input.Spells))
	for _, s := range input.Spells {
		keys = append(keys, spellKeyPrefix+s.ID)
	}
	if len(keys) > 0 {
		if delErr := r.client.Del(ctx, keys...).Err(); delErr != nil {
			r.log.Warn("spell cache invalidation failed", "count", len(keys), "error", delErr)
		}
	}
	return out, nil
}
