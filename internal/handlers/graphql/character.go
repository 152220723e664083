package graphql

import (
	"context"
	"sync"

	gql "github.com/graph-gophers/graphql-go"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	charactersvc "github.com/KirkDiggler/rpg-sheet-api/internal/services/character"
)

// characterResolver resolves a character the caller owns. The row and the
// stats block are loaded on first use unless the parent resolver already
// holds them. Sibling fields resolve concurrently, hence the mutex.
type characterResolver struct {
	root   *Resolver
	userID auth.UserID
	id     string

	mu        sync.Mutex
	character *entities.Character
	stats     *entities.CharacterStats
}

func (r *Resolver) newCharacter(userID auth.UserID, id string) *characterResolver {
	return &characterResolver{root: r, userID: userID, id: id}
}

func (c *characterResolver) withCharacter(ch *entities.Character) *characterResolver {
	c.character = ch
	return c
}

func (c *characterResolver) withStats(stats *entities.CharacterStats) *characterResolver {
	c.stats = stats
	return c
}

func (c *characterResolver) load(ctx context.Context) (*entities.Character, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.character != nil {
		return c.character, nil
	}

	output, err := c.root.characters.GetCharacter(ctx, &charactersvc.GetCharacterInput{
		UserID:      c.userID,
		CharacterID: c.id,
	})
	if err != nil {
		return nil, c.root.fail("character", err)
	}
	c.character = output.Character
	return c.character, nil
}

func (c *characterResolver) loadStats(ctx context.Context) (*entities.CharacterStats, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stats != nil {
		return c.stats, nil
	}

	output, err := c.root.characters.GetStats(ctx, &charactersvc.GetStatsInput{CharacterID: c.id})
	if err != nil {
		return nil, c.root.fail("character.stats", err)
	}
	c.stats = output.Stats
	return c.stats, nil
}

func (c *characterResolver) ID() gql.ID {
	return gql.ID(c.id)
}

func (c *characterResolver) Name(ctx context.Context) (string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	return ch.Name, nil
}

func (c *characterResolver) Race(ctx context.Context) (string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	return ch.Race, nil
}

func (c *characterResolver) Class(ctx context.Context) (string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return "", err
	}
	return ch.Class, nil
}

func (c *characterResolver) Subclass(ctx context.Context) (*string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return ch.Subclass, nil
}

func (c *characterResolver) Level(ctx context.Context) (int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return ch.Level, nil
}

func (c *characterResolver) Alignment(ctx context.Context) (*string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return ch.Alignment, nil
}

func (c *characterResolver) ProficiencyBonus(ctx context.Context) (int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return ch.ProficiencyBonus, nil
}

func (c *characterResolver) Inspiration(ctx context.Context) (bool, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return false, err
	}
	return ch.Inspiration, nil
}

func (c *characterResolver) ArmorClass(ctx context.Context) (int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return ch.ArmorClass, nil
}

func (c *characterResolver) Speed(ctx context.Context) (int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return ch.Speed, nil
}

func (c *characterResolver) Initiative(ctx context.Context) (int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return 0, err
	}
	return ch.Initiative, nil
}

func (c *characterResolver) SpellcastingAbility(ctx context.Context) (*string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return ch.SpellcastingAbility, nil
}

func (c *characterResolver) SpellSaveDC(ctx context.Context) (*int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return ch.SpellSaveDC, nil
}

func (c *characterResolver) SpellAttackBonus(ctx context.Context) (*int32, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return ch.SpellAttackBonus, nil
}

func (c *characterResolver) Conditions(ctx context.Context) ([]string, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	if ch.Conditions == nil {
		return []string{}, nil
	}
	return []string(ch.Conditions), nil
}

func (c *characterResolver) CreatedAt(ctx context.Context) (gql.Time, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return gql.Time{}, err
	}
	return gql.Time{Time: ch.CreatedAt}, nil
}

func (c *characterResolver) UpdatedAt(ctx context.Context) (gql.Time, error) {
	ch, err := c.load(ctx)
	if err != nil {
		return gql.Time{}, err
	}
	return gql.Time{Time: ch.UpdatedAt}, nil
}

// Stats block

func (c *characterResolver) AbilityScores(ctx context.Context) (*abilityScoresResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &abilityScoresResolver{scores: stats.AbilityScores}, nil
}

func (c *characterResolver) HitPoints(ctx context.Context) (*hitPointsResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &hitPointsResolver{hp: stats.HitPoints}, nil
}

func (c *characterResolver) DeathSaves(ctx context.Context) (*deathSavesResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &deathSavesResolver{saves: stats.DeathSaves}, nil
}

func (c *characterResolver) HitDice(ctx context.Context) (*hitDiceResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &hitDiceResolver{dice: stats.HitDice}, nil
}

func (c *characterResolver) SavingThrows(ctx context.Context) (*savingThrowsResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &savingThrowsResolver{saves: stats.SavingThrows}, nil
}

func (c *characterResolver) SkillProficiencies(ctx context.Context) (*skillProficienciesResolver, error) {
	stats, err := c.loadStats(ctx)
	if err != nil {
		return nil, err
	}
	return &skillProficienciesResolver{characterID: c.id, skills: stats.Skills}, nil
}

// Collections, each fetched only when selected

func (c *characterResolver) Attacks(ctx context.Context) ([]*attackResolver, error) {
	output, err := c.root.characters.ListAttacks(ctx, &charactersvc.ListAttacksInput{CharacterID: c.id})
	if err != nil {
		return nil, c.root.fail("character.attacks", err)
	}
	result := make([]*attackResolver, 0, len(output.Attacks))
	for _, a := range output.Attacks {
		result = append(result, &attackResolver{attack: a})
	}
	return result, nil
}

type inventoryFilterInput struct {
	Name     *string
	Equipped *bool
}

func (in *inventoryFilterInput) toFilter() *filter.InventoryFilter {
	if in == nil {
		return nil
	}
	return &filter.InventoryFilter{Name: in.Name, Equipped: in.Equipped}
}

func (c *characterResolver) Inventory(ctx context.Context, args struct {
	Filter *inventoryFilterInput
}) ([]*inventoryItemResolver, error) {
	output, err := c.root.characters.ListInventory(ctx, &charactersvc.ListInventoryInput{
		CharacterID: c.id,
		Filter:      args.Filter.toFilter(),
	})
	if err != nil {
		return nil, c.root.fail("character.inventory", err)
	}
	result := make([]*inventoryItemResolver, 0, len(output.Items))
	for _, item := range output.Items {
		result = append(result, &inventoryItemResolver{item: item})
	}
	return result, nil
}

func (c *characterResolver) Features(ctx context.Context) ([]*featureResolver, error) {
	output, err := c.root.characters.ListFeatures(ctx, &charactersvc.ListFeaturesInput{CharacterID: c.id})
	if err != nil {
		return nil, c.root.fail("character.features", err)
	}
	result := make([]*featureResolver, 0, len(output.Features))
	for _, f := range output.Features {
		result = append(result, &featureResolver{feature: f})
	}
	return result, nil
}

func (c *characterResolver) SpellSlots(ctx context.Context) ([]*spellSlotResolver, error) {
	output, err := c.root.characters.ListSpellSlots(ctx, &charactersvc.ListSpellSlotsInput{CharacterID: c.id})
	if err != nil {
		return nil, c.root.fail("character.spellSlots", err)
	}
	result := make([]*spellSlotResolver, 0, len(output.Slots))
	for _, s := range output.Slots {
		result = append(result, &spellSlotResolver{slot: s})
	}
	return result, nil
}

func (c *characterResolver) Spellbook(ctx context.Context, args struct {
	PreparedOnly bool
}) ([]*spellbookEntryResolver, error) {
	output, err := c.root.characters.ListSpellbook(ctx, &charactersvc.ListSpellbookInput{
		CharacterID:  c.id,
		PreparedOnly: args.PreparedOnly,
	})
	if err != nil {
		return nil, c.root.fail("character.spellbook", err)
	}
	result := make([]*spellbookEntryResolver, 0, len(output.Entries))
	for _, e := range output.Entries {
		result = append(result, c.root.newSpellbookEntry(e))
	}
	return result, nil
}
