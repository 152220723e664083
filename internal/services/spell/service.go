// Package spell defines the interface for spell catalog operations
package spell

//go:generate mockgen -destination=mock/mock_service.go -package=spellmock github.com/KirkDiggler/rpg-sheet-api/internal/services/spell Service

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/auth"
	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
)

// Service defines the interface for spell catalog operations.
// The catalog is shared; reads require a user but no ownership.
type Service interface {
	ListSpells(ctx context.Context, input *ListSpellsInput) (*ListSpellsOutput, error)
	GetSpell(ctx context.Context, input *GetSpellInput) (*GetSpellOutput, error)

	// GetSpellByID loads the spell of an already scoped spellbook entry
	GetSpellByID(ctx context.Context, input *GetSpellByIDInput) (*GetSpellByIDOutput, error)

	// ImportSpells writes catalog entries fetched from the SRD
	ImportSpells(ctx context.Context, input *ImportSpellsInput) (*ImportSpellsOutput, error)
}

// ListSpellsInput defines the request for listing spells
type ListSpellsInput struct {
	UserID auth.UserID
	Filter *filter.SpellFilter
}

// ListSpellsOutput defines the response for listing spells
type ListSpellsOutput struct {
	Spells []*entities.Spell
}

// GetSpellInput defines the request for getting a spell
type GetSpellInput struct {
	UserID  auth.UserID
	SpellID string
}

// GetSpellOutput defines the response for getting a spell
type GetSpellOutput struct {
	Spell *entities.Spell
}

// GetSpellByIDInput defines the request for loading a spell by id
type GetSpellByIDInput struct {
	SpellID string
}

// GetSpellByIDOutput defines the response for loading a spell by id
type GetSpellByIDOutput struct {
	Spell *entities.Spell
}

// ImportSpellsInput defines the request for importing SRD spells
type ImportSpellsInput struct {
	// Levels limits the import; empty imports every level
	Levels []int32
}

// ImportSpellsOutput defines the response for importing SRD spells
type ImportSpellsOutput struct {
	Imported int
	Skipped  int
}
