// Package character defines the interface for character sheet operations
package character

//go:generate mockgen -destination=mock/mock_service.go -package=charactermock github.com/KirkDiggler/rpg-sheet-api/internal/services/character Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
)

// Service defines the interface for character sheet operations.
// Every operation that takes a UserID rejects an empty one with
// errors.Unauthenticated before touching storage, and only sees characters
// that user owns.
type Service interface {
	// Queries
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// Mutations
	ToggleInspiration(ctx context.Context, input *ToggleInspirationInput) (*ToggleInspirationOutput, error)
	UpdateDeathSaves(ctx context.Context, input *UpdateDeathSavesInput) (*UpdateDeathSavesOutput, error)
	ToggleSpellSlot(ctx context.Context, input *ToggleSpellSlotInput) (*ToggleSpellSlotOutput, error)
	UpdateSkillProficiencies(ctx context.Context, input *UpdateSkillProficienciesInput) (*UpdateSkillProficienciesOutput, error)
	PrepareSpell(ctx context.Context, input *PrepareSpellInput) (*PrepareSpellOutput, error)
	UnprepareSpell(ctx context.Context, input *UnprepareSpellInput) (*UnprepareSpellOutput, error)

	// Nested field loaders. The parent character has already been resolved
	// through an ownership-scoped query.
	GetStats(ctx context.Context, input *GetStatsInput) (*GetStatsOutput, error)
	ListAttacks(ctx context.Context, input *ListAttacksInput) (*ListAttacksOutput, error)
	ListInventory(ctx context.Context, input *ListInventoryInput) (*ListInventoryOutput, error)
	ListFeatures(ctx context.Context, input *ListFeaturesInput) (*ListFeaturesOutput, error)
	ListSpellSlots(ctx context.Context, input *ListSpellSlotsInput) (*ListSpellSlotsOutput, error)
	ListSpellbook(ctx context.Context, input *ListSpellbookInput) (*ListSpellbookOutput, error)
}

// SlotDirection selects whether ToggleSpellSlot uses or recovers a slot
type SlotDirection string

// Slot directions
const (
	SlotDirectionExpend  SlotDirection = "EXPEND"
	SlotDirectionRestore SlotDirection = "RESTORE"
)

// Query types

// ListCharactersInput defines the request for listing characters
type ListCharactersInput struct {
	UserID auth.UserID
	Filter *filter.CharacterFilter
}

// ListCharactersOutput defines the response for listing characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	UserID      auth.UserID
	CharacterID string
}

// GetCharacterOutput defines the response for getting a character
type GetCharacterOutput struct {
	Character *entities.Character
}

// Mutation types

// ToggleInspirationInput defines the request for toggling inspiration
type ToggleInspirationInput struct {
	UserID      auth.UserID
	CharacterID string
}

// ToggleInspirationOutput defines the response for toggling inspiration
type ToggleInspirationOutput struct {
	Character *entities.Character
}

// UpdateDeathSavesInput defines the request for replacing death saves
type UpdateDeathSavesInput struct {
	UserID      auth.UserID
	CharacterID string
	Successes   int32
	Failures    int32
}

// UpdateDeathSavesOutput defines the response for replacing death saves
type UpdateDeathSavesOutput struct {
	Stats *entities.CharacterStats
}

// ToggleSpellSlotInput defines the request for using or recovering a slot
type ToggleSpellSlotInput struct {
	UserID      auth.UserID
	CharacterID string
	Level       int32
	// Direction defaults to SlotDirectionExpend when empty
	Direction SlotDirection
}

// ToggleSpellSlotOutput defines the response for using or recovering a slot
type ToggleSpellSlotOutput struct {
	Slot *entities.SpellSlot
}

// UpdateSkillProficienciesInput defines the request for replacing skills
type UpdateSkillProficienciesInput struct {
	UserID      auth.UserID
	CharacterID string
	Skills      entities.SkillProficiencies
}

// UpdateSkillProficienciesOutput defines the response for replacing skills
type UpdateSkillProficienciesOutput struct {
	CharacterID string
	Skills      entities.SkillProficiencies
	Stats       *entities.CharacterStats
}

// PrepareSpellInput defines the request for preparing a spell
type PrepareSpellInput struct {
	UserID      auth.UserID
	CharacterID string
	SpellID     string
}

// PrepareSpellOutput defines the response for preparing a spell
type PrepareSpellOutput struct {
	Entry *entities.CharacterSpell
}

// UnprepareSpellInput defines the request for unpreparing a spell
type UnprepareSpellInput struct {
	UserID      auth.UserID
	CharacterID string
	SpellID     string
}

// UnprepareSpellOutput defines the response for unpreparing a spell
type UnprepareSpellOutput struct {
	Entry *entities.CharacterSpell
}

// Loader types

// GetStatsInput defines the request for loading stats
type GetStatsInput struct {
	CharacterID string
}

// GetStatsOutput defines the response for loading stats
type GetStatsOutput struct {
	Stats *entities.CharacterStats
}

// ListAttacksInput defines the request for loading attacks
type ListAttacksInput struct {
	CharacterID string
}

// ListAttacksOutput defines the response for loading attacks
type ListAttacksOutput struct {
	Attacks []*entities.Attack
}

// ListInventoryInput defines the request for loading inventory
type ListInventoryInput struct {
	CharacterID string
	Filter      *filter.InventoryFilter
}

// ListInventoryOutput defines the response for loading inventory
type ListInventoryOutput struct {
	Items []*entities.InventoryItem
}

// ListFeaturesInput defines the request for loading features
type ListFeaturesInput struct {
	CharacterID string
}

// ListFeaturesOutput defines the response for loading features
type ListFeaturesOutput struct {
	Features []*entities.CharacterFeature
}

// ListSpellSlotsInput defines the request for loading spell slots
type ListSpellSlotsInput struct {
	CharacterID string
}

// ListSpellSlotsOutput defines the response for loading spell slots
type ListSpellSlotsOutput struct {
	Slots []*entities.SpellSlot
}

// ListSpellbookInput defines the request for loading a spellbook
type ListSpellbookInput struct {
	CharacterID  string
	PreparedOnly bool
}

// ListSpellbookOutput defines the response for loading a spellbook
type ListSpellbookOutput struct {
	Entries []*entities.CharacterSpell
}
