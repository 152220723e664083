// Package spell implements the spell catalog orchestrator
package spell

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	spellrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spell"
	"github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
)

// Config holds the dependencies for the spell orchestrator
type Config struct {
	SpellRepo      spellrepo.Repository
	ExternalClient external.Client
	// Logger is optional
	Logger *logger.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SpellRepo == nil {
		vb.RequiredField("SpellRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}

	return vb.Build()
}

// Orchestrator implements the spell.Service interface
type Orchestrator struct {
	spellRepo      spellrepo.Repository
	externalClient external.Client
	log            *logger.Logger
}

// New creates a new spell orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Orchestrator{
		spellRepo:      cfg.SpellRepo,
		externalClient: cfg.ExternalClient,
		log:            log.With("component", "spell_orchestrator"),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ spell.Service = (*Orchestrator)(nil)

// ListSpells returns catalog spells matching the filter ordered by name then id
func (o *Orchestrator) ListSpells(ctx context.Context, input *spell.ListSpellsInput) (*spell.ListSpellsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	result, err := o.spellRepo.List(ctx, spellrepo.ListInput{
		Predicate: filter.BuildSpellWhere(input.Filter),
	})
	if err != nil {
		return nil, wrap(err, "failed to list spells")
	}

	return &spell.ListSpellsOutput{Spells: result.Spells}, nil
}

// GetSpell returns one catalog spell
func (o *Orchestrator) GetSpell(ctx context.Context, input *spell.GetSpellInput) (*spell.GetSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("spellID", input.SpellID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.SpellID})
	if err != nil {
		return nil, wrap(err, "failed to get spell")
	}

	return &spell.GetSpellOutput{Spell: result.Spell}, nil
}

// GetSpellByID loads the catalog spell of a spellbook entry
func (o *Orchestrator) GetSpellByID(ctx context.Context, input *spell.GetSpellByIDInput) (*spell.GetSpellByIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SpellID == "" {
		return nil, errors.InvalidArgument("spell ID is required")
	}

	result, err := o.spellRepo.Get(ctx, spellrepo.GetInput{ID: input.SpellID})
	if err != nil {
		return nil, wrap(err, "failed to get spell")
	}

	return &spell.GetSpellByIDOutput{Spell: result.Spell}, nil
}

// ImportSpells copies SRD spells into the catalog, keyed by their SRD key
func (o *Orchestrator) ImportSpells(ctx context.Context, input *spell.ImportSpellsInput) (*spell.ImportSpellsOutput, error) {
	if input == nil {
		input = &spell.ImportSpellsInput{}
	}

	vb := errors.NewValidationBuilder()
	for _, level := range input.Levels {
		errors.ValidateRange("levels", level, 0, 9, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	var requests []*external.ListSpellsInput
	if len(input.Levels) == 0 {
		requests = append(requests, nil)
	}
	for _, level := range input.Levels {
		lvl := level
		requests = append(requests, &external.ListSpellsInput{Level: &lvl})
	}

	output := &spell.ImportSpellsOutput{}
	for _, req := range requests {
		data, err := o.externalClient.ListSpells(ctx, req)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch SRD spells")
		}

		spells := make([]*entities.Spell, 0, len(data))
		for _, d := range data {
			if d == nil || d.Key == "" || d.Name == "" {
				output.Skipped++
				continue
			}
			spells = append(spells, toEntity(d))
		}
		if len(spells) == 0 {
			continue
		}

		result, err := o.spellRepo.Upsert(ctx, spellrepo.UpsertInput{Spells: spells})
		if err != nil {
			return nil, wrap(err, "failed to store spells")
		}
		output.Imported += result.Count
	}

	o.log.Info("spell import finished",
		"imported", output.Imported,
		"skipped", output.Skipped)

	return output, nil
}

func toEntity(d *external.SpellData) *entities.Spell {
	return &entities.Spell{
		ID:            d.Key,
		Name:          d.Name,
		Level:         d.Level,
		School:        d.School,
		CastingTime:   d.CastingTime,
		Range:         d.Range,
		Duration:      d.Duration,
		Concentration: d.Concentration,
		Ritual:        d.Ritual,
		Description:   d.Description,
	}
}

func wrap(err error, message string) error {
	if errors.GetCode(err).IsClientVisible() {
		return err
	}
	return errors.Wrap(err, message)
}
