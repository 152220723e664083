// Package spellbook provides persistence for the spells a character knows
// and which of them are prepared
package spellbook

//go:generate mockgen -destination=mock/mock_repository.go -package=spellbookmock github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellbook Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
)

// Repository defines the interface for spellbook persistence
type Repository interface {
	// List returns entries of an already scoped character ordered by spell
	// name then entry id
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Prepare creates or updates the entry with prepared = true
	// Returns errors.NotFound if the character isn't owned or the spell doesn't exist
	// Returns errors.Internal for storage failures
	Prepare(ctx context.Context, input PrepareInput) (*PrepareOutput, error)

	// Unprepare sets prepared = false. A missing entry is left missing.
	// Returns errors.NotFound if the character isn't owned
	// Returns errors.Internal for storage failures
	Unprepare(ctx context.Context, input UnprepareInput) (*UnprepareOutput, error)
}

// ListInput defines the input for listing a spellbook
type ListInput struct {
	CharacterID  string
	PreparedOnly bool
}

// ListOutput defines the output for listing a spellbook
type ListOutput struct {
	Entries []*entities.CharacterSpell
}

// PrepareInput defines the input for preparing a spell
type PrepareInput struct {
	OwnerID     string
	CharacterID string
	SpellID     string
}

// PrepareOutput defines the output for preparing a spell
type PrepareOutput struct {
	Entry *entities.CharacterSpell
}

// UnprepareInput defines the input for unpreparing a spell
type UnprepareInput struct {
	OwnerID     string
	CharacterID string
	SpellID     string
}

// UnprepareOutput defines the output for unpreparing a spell
type UnprepareOutput struct {
	// Entry is the stored row, or a transient unprepared entry when none existed
	Entry   *entities.CharacterSpell
	Existed bool
}
