// Package spell provides persistence for the global spell catalog
package spell

//go:generate mockgen -destination=mock/mock_repository.go -package=spellmock github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spell Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
)

// Repository defines the interface for spell catalog persistence.
// The catalog has no owner; callers decide who may read it.
type Repository interface {
	// List returns spells matching the predicate, ordered by name then id
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Get retrieves a spell by ID
	// Returns errors.InvalidArgument for an empty ID
	// Returns errors.NotFound if the spell doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Upsert inserts or replaces catalog entries by ID
	// Returns errors.Internal for storage failures
	Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error)
}

// ListInput defines the input for listing spells
type ListInput struct {
	Predicate filter.Predicate
}

// ListOutput defines the output for listing spells
type ListOutput struct {
	Spells []*entities.Spell
}

// GetInput defines the input for getting a spell
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a spell
type GetOutput struct {
	Spell *entities.Spell
}

// UpsertInput defines the input for writing catalog entries
type UpsertInput struct {
	Spells []*entities.Spell
}

// UpsertOutput defines the output for writing catalog entries
type UpsertOutput struct {
	Count int
}
