package graphql

import (
	gql "github.com/graph-gophers/graphql-go"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
)

type abilityScoresResolver struct{ scores entities.AbilityScores }

func (r *abilityScoresResolver) Strength() int32     { return r.scores.Strength }
func (r *abilityScoresResolver) Dexterity() int32    { return r.scores.Dexterity }
func (r *abilityScoresResolver) Constitution() int32 { return r.scores.Constitution }
func (r *abilityScoresResolver) Intelligence() int32 { return r.scores.Intelligence }
func (r *abilityScoresResolver) Wisdom() int32       { return r.scores.Wisdom }
func (r *abilityScoresResolver) Charisma() int32     { return r.scores.Charisma }

type hitPointsResolver struct{ hp entities.HitPoints }

func (r *hitPointsResolver) Current() int32 { return r.hp.Current }
func (r *hitPointsResolver) Max() int32     { return r.hp.Max }
func (r *hitPointsResolver) Temp() int32    { return r.hp.Temp }

type deathSavesResolver struct{ saves entities.DeathSaves }

func (r *deathSavesResolver) Successes() int32 { return r.saves.Successes }
func (r *deathSavesResolver) Failures() int32  { return r.saves.Failures }

type hitDiceResolver struct{ dice entities.HitDice }

func (r *hitDiceResolver) Total() int32     { return r.dice.Total }
func (r *hitDiceResolver) Remaining() int32 { return r.dice.Remaining }
func (r *hitDiceResolver) Die() string      { return r.dice.Die }

type savingThrowsResolver struct {
	saves entities.SavingThrowProficiencies
}

func (r *savingThrowsResolver) Strength() bool     { return r.saves.Strength }
func (r *savingThrowsResolver) Dexterity() bool    { return r.saves.Dexterity }
func (r *savingThrowsResolver) Constitution() bool { return r.saves.Constitution }
func (r *savingThrowsResolver) Intelligence() bool { return r.saves.Intelligence }
func (r *savingThrowsResolver) Wisdom() bool       { return r.saves.Wisdom }
func (r *savingThrowsResolver) Charisma() bool     { return r.saves.Charisma }

// skillProficienciesResolver is keyed by character id so clients can
// normalize it
type skillProficienciesResolver struct {
	characterID string
	skills      entities.SkillProficiencies
}

func (r *skillProficienciesResolver) CharacterID() gql.ID  { return gql.ID(r.characterID) }
func (r *skillProficienciesResolver) Acrobatics() bool     { return r.skills.Acrobatics }
func (r *skillProficienciesResolver) AnimalHandling() bool { return r.skills.AnimalHandling }
func (r *skillProficienciesResolver) Arcana() bool         { return r.skills.Arcana }
func (r *skillProficienciesResolver) Athletics() bool      { return r.skills.Athletics }
func (r *skillProficienciesResolver) Deception() bool      { return r.skills.Deception }
func (r *skillProficienciesResolver) History() bool        { return r.skills.History }
func (r *skillProficienciesResolver) Insight() bool        { return r.skills.Insight }
func (r *skillProficienciesResolver) Intimidation() bool   { return r.skills.Intimidation }
func (r *skillProficienciesResolver) Investigation() bool  { return r.skills.Investigation }
func (r *skillProficienciesResolver) Medicine() bool       { return r.skills.Medicine }
func (r *skillProficienciesResolver) Nature() bool         { return r.skills.Nature }
func (r *skillProficienciesResolver) Perception() bool     { return r.skills.Perception }
func (r *skillProficienciesResolver) Performance() bool    { return r.skills.Performance }
func (r *skillProficienciesResolver) Persuasion() bool     { return r.skills.Persuasion }
func (r *skillProficienciesResolver) Religion() bool       { return r.skills.Religion }
func (r *skillProficienciesResolver) SleightOfHand() bool  { return r.skills.SleightOfHand }
func (r *skillProficienciesResolver) Stealth() bool        { return r.skills.Stealth }
func (r *skillProficienciesResolver) Survival() bool       { return r.skills.Survival }

type attackResolver struct{ attack *entities.Attack }

func (r *attackResolver) ID() gql.ID         { return gql.ID(r.attack.ID) }
func (r *attackResolver) Name() string       { return r.attack.Name }
func (r *attackResolver) AttackBonus() int32 { return r.attack.AttackBonus }
func (r *attackResolver) Damage() string     { return r.attack.Damage }
func (r *attackResolver) DamageType() string { return r.attack.DamageType }
func (r *attackResolver) Notes() string      { return r.attack.Notes }

type inventoryItemResolver struct{ item *entities.InventoryItem }

func (r *inventoryItemResolver) ID() gql.ID      { return gql.ID(r.item.ID) }
func (r *inventoryItemResolver) Name() string    { return r.item.Name }
func (r *inventoryItemResolver) Quantity() int32 { return r.item.Quantity }
func (r *inventoryItemResolver) Weight() float64 { return r.item.Weight }
func (r *inventoryItemResolver) Equipped() bool  { return r.item.Equipped }
func (r *inventoryItemResolver) Notes() string   { return r.item.Notes }

type featureResolver struct{ feature *entities.CharacterFeature }

func (r *featureResolver) ID() gql.ID            { return gql.ID(r.feature.ID) }
func (r *featureResolver) Name() string          { return r.feature.Name }
func (r *featureResolver) Source() string        { return r.feature.Source }
func (r *featureResolver) Description() string   { return r.feature.Description }
func (r *featureResolver) UsesMax() *int32       { return r.feature.UsesMax }
func (r *featureResolver) UsesRemaining() *int32 { return r.feature.UsesRemaining }
