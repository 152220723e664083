// Package external is the location for the dnd5e-api client used to seed the
// spell catalog
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-sheet-api/internal/clients/external Client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
)

const defaultConcurrency = 8

// Client defines the interface for reading SRD spells
type Client interface {
	// ListSpells returns every spell matching the input with full details
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error)

	// GetSpell fetches one spell by its SRD key, e.g. "fireball"
	GetSpell(ctx context.Context, key string) (*SpellData, error)
}

// SpellAPI is the part of the dnd5e-api client used here. dnd5e.Interface
// satisfies it.
type SpellAPI interface {
	ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error)
	GetSpell(key string) (*entities.Spell, error)
}

// ListSpellsInput narrows the SRD spell list
type ListSpellsInput struct {
	Level *int32
	// ClassID is a lower case class key such as "wizard"
	ClassID string
}

// SpellData represents spell information from the SRD
type SpellData struct {
	Key           string
	Name          string
	Level         int32
	School        string
	CastingTime   string
	Range         string
	Duration      string
	Concentration bool
	Ritual        bool
	Description   string
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Concurrency bounds parallel detail requests (optional, defaults to 8)
	Concurrency int
	Logger      *logger.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = defaultConcurrency
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}
	return nil
}

type client struct {
	api         SpellAPI
	concurrency int
	log         *logger.Logger
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	return NewWithAPI(dnd5e.NewCachedClient(baseClient, cfg.CacheTTL), cfg), nil
}

// NewWithAPI wraps an existing dnd5e-api client
func NewWithAPI(api SpellAPI, cfg *Config) Client {
	if cfg == nil {
		cfg = &Config{}
	}
	_ = cfg.Validate()

	return &client{
		api:         api,
		concurrency: cfg.Concurrency,
		log:         cfg.Logger,
	}
}

func (c *client) GetSpell(_ context.Context, key string) (*SpellData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("spell key is required")
	}

	spell, err := c.api.GetSpell(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell").
			WithMeta("spell_key", key)
	}

	return convertSpell(spell)
}

func (c *client) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*SpellData, error) {
	var apiInput *dnd5e.ListSpellsInput
	if input != nil {
		apiInput = &dnd5e.ListSpellsInput{Class: input.ClassID}
		if input.Level != nil {
			level := int(*input.Level)
			apiInput.Level = &level
		}
	}

	refs, err := c.api.ListSpells(apiInput)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list spells")
	}
	c.log.Info("listed SRD spell references", "count", len(refs))

	// Details are loaded concurrently; each goroutine owns one index.
	spells := make([]*SpellData, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, ref := range refs {
		if ref == nil {
			continue
		}
		i, ref := i, ref
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			spell, err := c.api.GetSpell(ref.Key)
			if err != nil {
				return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get spell").
					WithMeta("spell_key", ref.Key)
			}
			data, err := convertSpell(spell)
			if err != nil {
				return err
			}
			spells[i] = data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := spells[:0]
	for _, s := range spells {
		if s != nil {
			out = append(out, s)
		}
	}
	return out, nil
}
