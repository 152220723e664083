package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
)

// Mutations return the touched keys together with the changed fields, so
// clients can update their cache without refetching.

// ToggleInspiration resolves Mutation.toggleInspiration
func (r *Resolver) ToggleInspiration(ctx context.Context, args struct{ CharacterID gql.ID }) (*characterResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("toggleInspiration", err)
	}

	output, err := r.characters.ToggleInspiration(ctx, &charactersvc.ToggleInspirationInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
	})
	if err != nil {
		return nil, r.fail("toggleInspiration", err)
	}

	return r.newCharacter(userID, output.Character.ID).withCharacter(output.Character), nil
}

type deathSavesInput struct {
	Successes int32
	Failures  int32
}

// UpdateDeathSaves resolves Mutation.updateDeathSaves
func (r *Resolver) UpdateDeathSaves(ctx context.Context, args struct {
	CharacterID gql.ID
	Input       deathSavesInput
}) (*characterResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("updateDeathSaves", err)
	}

	output, err := r.characters.UpdateDeathSaves(ctx, &charactersvc.UpdateDeathSavesInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
		Successes:   args.Input.Successes,
		Failures:    args.Input.Failures,
	})
	if err != nil {
		return nil, r.fail("updateDeathSaves", err)
	}

	return r.newCharacter(userID, string(args.CharacterID)).withStats(output.Stats), nil
}

// ToggleSpellSlot resolves Mutation.toggleSpellSlot
func (r *Resolver) ToggleSpellSlot(ctx context.Context, args struct {
	CharacterID gql.ID
	Level       int32
	Direction   string
}) (*spellSlotResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("toggleSpellSlot", err)
	}

	input := &charactersvc.ToggleSpellSlotInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
		Level:       args.Level,
	}
	if args.Direction != "" {
		input.Direction = charactersvc.SlotDirection(args.Direction)
	}

	output, err := r.characters.ToggleSpellSlot(ctx, input)
	if err != nil {
		return nil, r.fail("toggleSpellSlot", err)
	}

	return &spellSlotResolver{slot: output.Slot}, nil
}

type skillProficienciesInput struct {
	Acrobatics     bool
	AnimalHandling bool
	Arcana         bool
	Athletics      bool
	Deception      bool
	History        bool
	Insight        bool
	Intimidation   bool
	Investigation  bool
	Medicine       bool
	Nature         bool
	Perception     bool
	Performance    bool
	Persuasion     bool
	Religion       bool
	SleightOfHand  bool
	Stealth        bool
	Survival       bool
}

func (in skillProficienciesInput) toEntity() entities.SkillProficiencies {
	return entities.SkillProficiencies(in)
}

// UpdateSkillProficiencies resolves Mutation.updateSkillProficiencies
func (r *Resolver) UpdateSkillProficiencies(ctx context.Context, args struct {
	CharacterID gql.ID
	Input       skillProficienciesInput
}) (*skillProficienciesResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("updateSkillProficiencies", err)
	}

	output, err := r.characters.UpdateSkillProficiencies(ctx, &charactersvc.UpdateSkillProficienciesInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
		Skills:      args.Input.toEntity(),
	})
	if err != nil {
		return nil, r.fail("updateSkillProficiencies", err)
	}

	return &skillProficienciesResolver{characterID: output.CharacterID, skills: output.Skills}, nil
}

// PrepareSpell resolves Mutation.prepareSpell
func (r *Resolver) PrepareSpell(ctx context.Context, args struct {
	CharacterID gql.ID
	SpellID     gql.ID
}) (*spellbookEntryResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("prepareSpell", err)
	}

	output, err := r.characters.PrepareSpell(ctx, &charactersvc.PrepareSpellInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
		SpellID:     string(args.SpellID),
	})
	if err != nil {
		return nil, r.fail("prepareSpell", err)
	}

	return r.newSpellbookEntry(output.Entry), nil
}

// UnprepareSpell resolves Mutation.unprepareSpell
func (r *Resolver) UnprepareSpell(ctx context.Context, args struct {
	CharacterID gql.ID
	SpellID     gql.ID
}) (*spellbookEntryResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("unprepareSpell", err)
	}

	output, err := r.characters.UnprepareSpell(ctx, &charactersvc.UnprepareSpellInput{
		UserID:      userID,
		CharacterID: string(args.CharacterID),
		SpellID:     string(args.SpellID),
	})
	if err != nil {
		return nil, r.fail("unprepareSpell", err)
	}

	return r.newSpellbookEntry(output.Entry), nil
}
