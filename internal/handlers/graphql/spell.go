package graphql

import (
	"context"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	spellsvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/spell"
)

type spellResolver struct{ spell *entities.Spell }

func (r *spellResolver) ID() gql.ID          { return gql.ID(r.spell.ID) }
func (r *spellResolver) Name() string        { return r.spell.Name }
func (r *spellResolver) Level() int32        { return r.spell.Level }
func (r *spellResolver) School() string      { return r.spell.School }
func (r *spellResolver) CastingTime() string { return r.spell.CastingTime }
func (r *spellResolver) Range() string       { return r.spell.Range }
func (r *spellResolver) Duration() string    { return r.spell.Duration }
func (r *spellResolver) Concentration() bool { return r.spell.Concentration }
func (r *spellResolver) Ritual() bool        { return r.spell.Ritual }
func (r *spellResolver) Description() string { return r.spell.Description }

type spellSlotResolver struct{ slot *entities.SpellSlot }

func (r *spellSlotResolver) ID() gql.ID          { return gql.ID(r.slot.ID) }
func (r *spellSlotResolver) CharacterID() gql.ID { return gql.ID(r.slot.CharacterID) }
func (r *spellSlotResolver) Level() int32        { return r.slot.Level }
func (r *spellSlotResolver) Total() int32        { return r.slot.Total }
func (r *spellSlotResolver) Used() int32         { return r.slot.Used }
func (r *spellSlotResolver) Remaining() int32    { return r.slot.Remaining() }

type spellbookEntryResolver struct {
	root  *Resolver
	entry *entities.CharacterSpell
}

func (r *Resolver) newSpellbookEntry(entry *entities.CharacterSpell) *spellbookEntryResolver {
	return &spellbookEntryResolver{root: r, entry: entry}
}

func (r *spellbookEntryResolver) ID() *gql.ID {
	if r.entry.ID == "" {
		return nil
	}
	id := gql.ID(r.entry.ID)
	return &id
}

func (r *spellbookEntryResolver) CharacterID() gql.ID {
	return gql.ID(r.entry.CharacterID)
}

func (r *spellbookEntryResolver) Prepared() bool {
	return r.entry.Prepared
}

// Spell returns the catalog entry of the spellbook row. Listed entries carry
// it already; mutation payloads look it up. A spell missing from the catalog
// resolves to its id alone so an unprepare of an unknown spell still succeeds.
func (r *spellbookEntryResolver) Spell(ctx context.Context) (*spellResolver, error) {
	if r.entry.Spell != nil {
		return &spellResolver{spell: r.entry.Spell}, nil
	}

	output, err := r.root.spells.GetSpellByID(ctx, &spellsvc.GetSpellByIDInput{SpellID: r.entry.SpellID})
	if errors.IsNotFound(err) {
		r.root.log.Debug("spellbook entry references unknown spell",
			"character_id", r.entry.CharacterID,
			"spell_id", r.entry.SpellID)
		return &spellResolver{spell: &entities.Spell{ID: r.entry.SpellID}}, nil
	}
	if err != nil {
		return nil, r.root.fail("spellbookEntry.spell", err)
	}
	return &spellResolver{spell: output.Spell}, nil
}
