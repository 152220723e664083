// Package graphql serves the character sheet GraphQL API
package graphql

import (
	_ "embed"
	"net/http"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	gqlotel "github.com/graph-gophers/graphql-go/trace/otel"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
	spellsvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
)

//go:embed schema.graphql
var schemaSDL string

const defaultMaxDepth = 12

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService charactersvc.Service
	SpellService     spellsvc.Service
	Logger           *logger.Logger
	// MaxDepth limits query nesting (optional, defaults to 12)
	MaxDepth int
	// DisableTracing skips the OpenTelemetry field tracer
	DisableTracing bool
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterService == nil {
		vb.RequiredField("CharacterService")
	}
	if c.SpellService == nil {
		vb.RequiredField("SpellService")
	}

	return vb.Build()
}

// NewSchema parses the embedded schema and binds it to the resolvers
func NewSchema(cfg *HandlerConfig) (*gql.Schema, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid handler config")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = defaultMaxDepth
	}

	opts := []gql.SchemaOpt{
		gql.MaxDepth(maxDepth),
	}
	if !cfg.DisableTracing {
		opts = append(opts, gql.Tracer(gqlotel.DefaultTracer()))
	}

	root := &Resolver{
		characters: cfg.CharacterService,
		spells:     cfg.SpellService,
		log:        log.With("component", "graphql"),
	}

	schema, err := gql.ParseSchema(schemaSDL, root, opts...)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to parse schema")
	}
	return schema, nil
}

// NewHandler creates the POST /graphql handler
func NewHandler(cfg *HandlerConfig) (http.Handler, error) {
	schema, err := NewSchema(cfg)
	if err != nil {
		return nil, err
	}
	return &relay.Handler{Schema: schema}, nil
}
