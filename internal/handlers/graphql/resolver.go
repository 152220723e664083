package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	"github.com/KirkDiggler/rpg-sheet-api/internal/logger"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
	spellsvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
)

// Resolver is the root of both the query and the mutation type
type Resolver struct {
	characters charactersvc.Service
	spells     spellsvc.Service
	log        *logger.Logger
}

// fail converts an error for the response. Internal failures are logged here
// with their cause since the client only sees the code.
func (r *Resolver) fail(op string, err error) error {
	code := errors.GetCode(err)
	if code.IsClientVisible() {
		r.log.Debug("request rejected", "op", op, "code", code.String(), "error", err.Error())
	} else {
		r.log.Error("request failed", "op", op, "code", code.String(), "error", err.Error())
	}
	return errors.ToGraphQL(err)
}

// Queries

type characterFilterInput struct {
	Name    *string
	Classes *[]string
	Levels  *[]int32
}

func (in *characterFilterInput) toFilter() *filter.CharacterFilter {
	if in == nil {
		return nil
	}
	f := &filter.CharacterFilter{Name: in.Name}
	if in.Classes != nil {
		f.Classes = *in.Classes
	}
	if in.Levels != nil {
		f.Levels = *in.Levels
	}
	return f
}

// CurrentUserCharacters resolves Query.currentUserCharacters
func (r *Resolver) CurrentUserCharacters(ctx context.Context, args struct {
	Filter *characterFilterInput
}) ([]*characterResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("currentUserCharacters", err)
	}

	output, err := r.characters.ListCharacters(ctx, &charactersvc.ListCharactersInput{
		UserID: userID,
		Filter: args.Filter.toFilter(),
	})
	if err != nil {
		return nil, r.fail("currentUserCharacters", err)
	}

	result := make([]*characterResolver, 0, len(output.Characters))
	for _, c := range output.Characters {
		result = append(result, r.newCharacter(userID, c.ID).withCharacter(c))
	}
	return result, nil
}

// Character resolves Query.character
func (r *Resolver) Character(ctx context.Context, args struct{ ID gql.ID }) (*characterResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("character", err)
	}

	output, err := r.characters.GetCharacter(ctx, &charactersvc.GetCharacterInput{
		UserID:      userID,
		CharacterID: string(args.ID),
	})
	if err != nil {
		return nil, r.fail("character", err)
	}

	return r.newCharacter(userID, output.Character.ID).withCharacter(output.Character), nil
}

type spellFilterInput struct {
	Name          *string
	Levels        *[]int32
	Schools       *[]string
	Concentration *bool
	Ritual        *bool
}

func (in *spellFilterInput) toFilter() *filter.SpellFilter {
	if in == nil {
		return nil
	}
	f := &filter.SpellFilter{
		Name:          in.Name,
		Concentration: in.Concentration,
		Ritual:        in.Ritual,
	}
	if in.Levels != nil {
		f.Levels = *in.Levels
	}
	if in.Schools != nil {
		f.Schools = *in.Schools
	}
	return f
}

// Spells resolves Query.spells
func (r *Resolver) Spells(ctx context.Context, args struct {
	Filter *spellFilterInput
}) ([]*spellResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("spells", err)
	}

	output, err := r.spells.ListSpells(ctx, &spellsvc.ListSpellsInput{
		UserID: userID,
		Filter: args.Filter.toFilter(),
	})
	if err != nil {
		return nil, r.fail("spells", err)
	}

	result := make([]*spellResolver, 0, len(output.Spells))
	for _, s := range output.Spells {
		result = append(result, &spellResolver{spell: s})
	}
	return result, nil
}

// Spell resolves Query.spell
func (r *Resolver) Spell(ctx context.Context, args struct{ ID gql.ID }) (*spellResolver, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, r.fail("spell", err)
	}

	output, err := r.spells.GetSpell(ctx, &spellsvc.GetSpellInput{
		UserID:  userID,
		SpellID: string(args.ID),
	})
	if err != nil {
		return nil, r.fail("spell", err)
	}

	return &spellResolver{spell: output.Spell}, nil
}
