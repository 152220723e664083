package character

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	characterrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/character"
	spellbookrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellbook"
	spellslotrepo "github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellslot"
	"github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
)

// Nested field loaders. Callers pass the id of a character they already
// loaded through an ownership-scoped query, so no owner is checked here.

// GetStats loads the stats block of a character
func (o *Orchestrator) GetStats(
	ctx context.Context,
	input *character.GetStatsInput,
) (*character.GetStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.GetStats(ctx, characterrepo.GetStatsInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to get stats")
	}

	return &character.GetStatsOutput{Stats: result.Stats}, nil
}

// ListAttacks loads the attacks of a character
func (o *Orchestrator) ListAttacks(
	ctx context.Context,
	input *character.ListAttacksInput,
) (*character.ListAttacksOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.ListAttacks(ctx, characterrepo.ListAttacksInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to list attacks")
	}

	return &character.ListAttacksOutput{Attacks: result.Attacks}, nil
}

// ListInventory loads the inventory of a character matching the filter
func (o *Orchestrator) ListInventory(
	ctx context.Context,
	input *character.ListInventoryInput,
) (*character.ListInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.ListInventory(ctx, characterrepo.ListInventoryInput{
		CharacterID: input.CharacterID,
		Predicate:   filter.BuildInventoryWhere(input.Filter),
	})
	if err != nil {
		return nil, wrap(err, "failed to list inventory")
	}

	return &character.ListInventoryOutput{Items: result.Items}, nil
}

// ListFeatures loads the features of a character
func (o *Orchestrator) ListFeatures(
	ctx context.Context,
	input *character.ListFeaturesInput,
) (*character.ListFeaturesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.characterRepo.ListFeatures(ctx, characterrepo.ListFeaturesInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to list features")
	}

	return &character.ListFeaturesOutput{Features: result.Features}, nil
}

// ListSpellSlots loads the spell slots of a character by ascending level
func (o *Orchestrator) ListSpellSlots(
	ctx context.Context,
	input *character.ListSpellSlotsInput,
) (*character.ListSpellSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.spellSlotRepo.List(ctx, spellslotrepo.ListInput{
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, wrap(err, "failed to list spell slots")
	}

	return &character.ListSpellSlotsOutput{Slots: result.Slots}, nil
}

// ListSpellbook loads the spellbook of a character
func (o *Orchestrator) ListSpellbook(
	ctx context.Context,
	input *character.ListSpellbookInput,
) (*character.ListSpellbookOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument("character ID is required")
	}

	result, err := o.spellbookRepo.List(ctx, spellbookrepo.ListInput{
		CharacterID:  input.CharacterID,
		PreparedOnly: input.PreparedOnly,
	})
	if err != nil {
		return nil, wrap(err, "failed to list spellbook")
	}

	return &character.ListSpellbookOutput{Entries: result.Entries}, nil
}
