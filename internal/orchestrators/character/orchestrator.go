// Package character implements the character sheet orchestrator
package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	characterrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/character"
	spellbookrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellbook"
	spellslotrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellslot"
	"github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
)

const (
	minSlotLevel = 1
	maxSlotLevel = 9

	errNoSlotsRemaining = "no spell slots remaining"
	errNoSlotsUsed      = "no spell slots used"
)

// Config holds the dependencies for the character orchestrator
type Config struct {
	CharacterRepo characterrepo.Repository
	SpellSlotRepo spellslotrepo.Repository
	SpellbookRepo spellbookrepo.Repository
	// Logger is optional
	Logger *logger.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.SpellSlotRepo == nil {
		vb.RequiredField("SpellSlotRepo")
	}
	if c.SpellbookRepo == nil {
		vb.RequiredField("SpellbookRepo")
	}

	return vb.Build()
}

// Orchestrator implements the character.Service interface
type Orchestrator struct {
	characterRepo characterrepo.Repository
	spellSlotRepo spellslotrepo.Repository
	spellbookRepo spellbookrepo.Repository
	log           *logger.Logger
}

// New creates a new character orchestrator
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
		characterRepo: cfg.CharacterRepo,
		spellSlotRepo: cfg.SpellSlotRepo,
		spellbookRepo: cfg.SpellbookRepo,
		log:           log.With("component", "character_orchestrator"),
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ character.Service = (*Orchestrator)(nil)

// ListCharacters returns the caller's characters ordered by name then id
func (o *Orchestrator) ListCharacters(
	ctx context.Context,
	input *character.ListCharactersInput,
) (*character.ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	result, err := o.characterRepo.List(ctx, characterrepo.ListInput{
		OwnerID:   input.UserID.String(),
		Predicate: filter.BuildCharacterWhere(input.Filter),
	})
	if err != nil {
		return nil, wrap(err, "failed to list characters")
	}

	return &character.ListCharactersOutput{
		Characters: result.Characters,
	}, nil
}

// GetCharacter returns one of the caller's characters
func (o *Orchestrator) GetCharacter(
	ctx context.Context,
	input *character.GetCharacterInput,
) (*character.GetCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.Get(ctx, characterrepo.GetInput{
		OwnerID: input.UserID.String(),
		ID:      input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to get character")
	}

	return &character.GetCharacterOutput{
		Character: result.Character,
	}, nil
}

// ToggleInspiration flips the inspiration flag of an owned character
func (o *Orchestrator) ToggleInspiration(
	ctx context.Context,
	input *character.ToggleInspirationInput,
) (*character.ToggleInspirationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.ToggleInspiration(ctx, characterrepo.ToggleInspirationInput{
		OwnerID: input.UserID.String(),
		ID:      input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to toggle inspiration")
	}

	o.log.Debug("inspiration toggled",
		"character_id", input.CharacterID,
		"inspiration", result.Character.Inspiration)

	return &character.ToggleInspirationOutput{
		Character: result.Character,
	}, nil
}

// UpdateDeathSaves replaces both death save counts
func (o *Orchestrator) UpdateDeathSaves(
	ctx context.Context,
	input *character.UpdateDeathSavesInput,
) (*character.UpdateDeathSavesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateNonNegative("successes", input.Successes, vb)
	errors.ValidateNonNegative("failures", input.Failures, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.UpdateDeathSaves(ctx, characterrepo.UpdateDeathSavesInput{
		OwnerID:     input.UserID.String(),
		CharacterID: input.CharacterID,
		DeathSaves: entities.DeathSaves{
			Successes: input.Successes,
			Failures:  input.Failures,
		},
	})
	if err != nil {
		return nil, wrap(err, "failed to update death saves")
	}

	return &character.UpdateDeathSavesOutput{
		Stats: result.Stats,
	}, nil
}

// ToggleSpellSlot expends or restores one slot at a level. A slot that cannot
// move in the requested direction is rejected, never clamped.
func (o *Orchestrator) ToggleSpellSlot(
	ctx context.Context,
	input *character.ToggleSpellSlotInput,
) (*character.ToggleSpellSlotOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	direction := input.Direction
	if direction == "" {
		direction = character.SlotDirectionExpend
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRange("level", input.Level, minSlotLevel, maxSlotLevel, vb)
	errors.ValidateEnum("direction", direction, []character.SlotDirection{
		character.SlotDirectionExpend,
		character.SlotDirectionRestore,
	}, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ownerID := input.UserID.String()
	current, err := o.spellSlotRepo.GetOwned(ctx, spellslotrepo.GetOwnedInput{
		OwnerID:     ownerID,
		CharacterID: input.CharacterID,
		Level:       input.Level,
	})
	if err != nil {
		return nil, wrap(err, "failed to get spell slot")
	}
	slot := current.Slot

	var updated *entities.SpellSlot
	switch direction {
	case character.SlotDirectionRestore:
		if slot.Used <= 0 {
			return nil, errors.InvalidState(errNoSlotsUsed).
				WithMeta("character_id", input.CharacterID).
				WithMeta("level", input.Level)
		}
		result, err := o.spellSlotRepo.Restore(ctx, spellslotrepo.RestoreInput{
			OwnerID: ownerID,
			SlotID:  slot.ID,
		})
		if err != nil {
			return nil, wrap(err, "failed to restore spell slot")
		}
		updated = result.Slot
	default:
		if slot.Used >= slot.Total {
			return nil, errors.InvalidState(errNoSlotsRemaining).
				WithMeta("character_id", input.CharacterID).
				WithMeta("level", input.Level)
		}
		result, err := o.spellSlotRepo.Expend(ctx, spellslotrepo.ExpendInput{
			OwnerID: ownerID,
			SlotID:  slot.ID,
		})
		if err != nil {
			return nil, wrap(err, "failed to expend spell slot")
		}
		updated = result.Slot
	}

	o.log.Debug("spell slot toggled",
		"character_id", input.CharacterID,
		"level", updated.Level,
		"direction", string(direction),
		"used", updated.Used,
		"total", updated.Total)

	return &character.ToggleSpellSlotOutput{
		Slot: updated,
	}, nil
}

// UpdateSkillProficiencies replaces all skill proficiency flags in one write
func (o *Orchestrator) UpdateSkillProficiencies(
	ctx context.Context,
	input *character.UpdateSkillProficienciesInput,
) (*character.UpdateSkillProficienciesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.characterRepo.UpdateSkills(ctx, characterrepo.UpdateSkillsInput{
		OwnerID:     input.UserID.String(),
		CharacterID: input.CharacterID,
		Skills:      input.Skills,
	})
	if err != nil {
		return nil, wrap(err, "failed to update skill proficiencies")
	}

	return &character.UpdateSkillProficienciesOutput{
		CharacterID: result.Stats.CharacterID,
		Skills:      result.Stats.Skills,
		Stats:       result.Stats,
	}, nil
}

// PrepareSpell marks a catalog spell prepared in an owned character's
// spellbook, adding the entry when it is missing
func (o *Orchestrator) PrepareSpell(
	ctx context.Context,
	input *character.PrepareSpellInput,
) (*character.PrepareSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("spellID", input.SpellID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.spellbookRepo.Prepare(ctx, spellbookrepo.PrepareInput{
		OwnerID:     input.UserID.String(),
		CharacterID: input.CharacterID,
		SpellID:     input.SpellID,
	})
	if err != nil {
		return nil, wrap(err, "failed to prepare spell")
	}

	return &character.PrepareSpellOutput{
		Entry: result.Entry,
	}, nil
}

// UnprepareSpell clears the prepared flag. An entry that does not exist is
// reported as unprepared without being created.
func (o *Orchestrator) UnprepareSpell(
	ctx context.Context,
	input *character.UnprepareSpellInput,
) (*character.UnprepareSpellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.UserID.IsZero() {
		return nil, errors.Unauthenticated("authentication required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("characterID", input.CharacterID, vb)
	errors.ValidateRequired("spellID", input.SpellID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	result, err := o.spellbookRepo.Unprepare(ctx, spellbookrepo.UnprepareInput{
		OwnerID:     input.UserID.String(),
		CharacterID: input.CharacterID,
		SpellID:     input.SpellID,
	})
	if err != nil {
		return nil, wrap(err, "failed to unprepare spell")
	}

	if !result.Existed {
		o.log.Debug("unprepare of unknown spellbook entry",
			"character_id", input.CharacterID,
			"spell_id", input.SpellID)
	}

	return &character.UnprepareSpellOutput{
		Entry: result.Entry,
	}, nil
}

// wrap keeps client visible errors intact so their message reaches the
// caller, and wraps everything else with context for the logs
func wrap(err error, message string) error {
	if errors.GetCode(err).IsClientVisible() {
		return err
	}
	return errors.Wrap(err, message)
}
