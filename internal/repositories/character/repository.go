// Package character provides the interface for character sheet persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-sheet-api/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
)

// Repository defines the interface for character persistence.
// Methods taking an OwnerID only see rows owned by it; a character owned by
// someone else is reported exactly like a missing one.
type Repository interface {
	// List returns the owner's characters matching the predicate, ordered by
	// name then id
	// Returns errors.InvalidArgument for an empty owner
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves one owned character
	// Returns errors.NotFound if the character doesn't exist or isn't owned
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ToggleInspiration flips the inspiration flag in a single statement
	// Returns errors.NotFound if the character doesn't exist or isn't owned
	// Returns errors.Internal for storage failures
	ToggleInspiration(ctx context.Context, input ToggleInspirationInput) (*ToggleInspirationOutput, error)

	// UpdateDeathSaves replaces both death save counts
	// Returns errors.NotFound if the stats row doesn't exist or isn't owned
	// Returns errors.Internal for storage failures
	UpdateDeathSaves(ctx context.Context, input UpdateDeathSavesInput) (*UpdateDeathSavesOutput, error)

	// UpdateSkills replaces all skill proficiency flags in one write
	// Returns errors.NotFound if the stats row doesn't exist or isn't owned
	// Returns errors.Internal for storage failures
	UpdateSkills(ctx context.Context, input UpdateSkillsInput) (*UpdateSkillsOutput, error)

	// GetStats loads the stats row of an already scoped character
	// Returns errors.NotFound if no stats row exists
	// Returns errors.Internal for storage failures
	GetStats(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error)

	// ListAttacks loads attacks of an already scoped character
	ListAttacks(ctx context.Context, input ListAttacksInput) (*ListAttacksOutput, error)

	// ListInventory loads inventory of an already scoped character
	ListInventory(ctx context.Context, input ListInventoryInput) (*ListInventoryOutput, error)

	// ListFeatures loads features of an already scoped character
	ListFeatures(ctx context.Context, input ListFeaturesInput) (*ListFeaturesOutput, error)
}

// ListInput defines the input for listing characters
type ListInput struct {
	OwnerID   string
	Predicate filter.Predicate
}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	OwnerID string
	ID      string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ToggleInspirationInput defines the input for toggling inspiration
type ToggleInspirationInput struct {
	OwnerID string
	ID      string
}

// ToggleInspirationOutput defines the output for toggling inspiration
type ToggleInspirationOutput struct {
	Character *entities.Character
}

// UpdateDeathSavesInput defines the input for replacing death saves
type UpdateDeathSavesInput struct {
	OwnerID     string
	CharacterID string
	DeathSaves  entities.DeathSaves
}

// UpdateDeathSavesOutput defines the output for replacing death saves
type UpdateDeathSavesOutput struct {
	Stats *entities.CharacterStats
}

// UpdateSkillsInput defines the input for replacing skill proficiencies
type UpdateSkillsInput struct {
	OwnerID     string
	CharacterID string
	Skills      entities.SkillProficiencies
}

// UpdateSkillsOutput defines the output for replacing skill proficiencies
type UpdateSkillsOutput struct {
	Stats *entities.CharacterStats
}

// GetStatsInput defines the input for loading stats
type GetStatsInput struct {
	CharacterID string
}

// GetStatsOutput defines the output for loading stats
type GetStatsOutput struct {
	Stats *entities.CharacterStats
}

// ListAttacksInput defines the input for loading attacks
type ListAttacksInput struct {
	CharacterID string
}

// ListAttacksOutput defines the output for loading attacks
type ListAttacksOutput struct {
	Attacks []*entities.Attack
}

// ListInventoryInput defines the input for loading inventory
type ListInventoryInput struct {
	CharacterID string
	Predicate   filter.Predicate
}

// ListInventoryOutput defines the output for loading inventory
type ListInventoryOutput struct {
	Items []*entities.InventoryItem
}

// ListFeaturesInput defines the input for loading features
type ListFeaturesInput struct {
	CharacterID string
}

// ListFeaturesOutput defines the output for loading features
type ListFeaturesOutput struct {
	Features []*entities.CharacterFeature
}
