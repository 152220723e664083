// Package spellslot provides persistence for per-level spell slot counters
package spellslot

//go:generate mockgen -destination=mock/mock_repository.go -package=spellslotmock github.com/KirkDiggler/rpg-sheet-api/internal/repositories/spellslot Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
)

// Repository defines the interface for spell slot persistence.
// Writes keep 0 <= used <= total; a write that would break it changes
// nothing and reports errors.InvalidState.
type Repository interface {
	// List returns the slots of an already scoped character by ascending level
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// GetOwned returns the slot at a level of an owned character
	// Returns errors.NotFound if there is no slot or the character isn't owned
	// Returns errors.Internal for storage failures
	GetOwned(ctx context.Context, input GetOwnedInput) (*GetOwnedOutput, error)

	// Expend marks one more slot used
	// Returns errors.InvalidState if no slot remains
	// Returns errors.Internal for storage failures
	Expend(ctx context.Context, input ExpendInput) (*ExpendOutput, error)

	// Restore marks one slot unused
	// Returns errors.InvalidState if none is used
	// Returns errors.Internal for storage failures
	Restore(ctx context.Context, input RestoreInput) (*RestoreOutput, error)
}

// ListInput defines the input for listing slots
type ListInput struct {
	CharacterID string
}

// ListOutput defines the output for listing slots
type ListOutput struct {
	Slots []*entities.SpellSlot
}

// GetOwnedInput defines the input for reading one owned slot
type GetOwnedInput struct {
	OwnerID     string
	CharacterID string
	Level       int32
}

// GetOwnedOutput defines the output for reading one owned slot
type GetOwnedOutput struct {
	Slot *entities.SpellSlot
}

// ExpendInput defines the input for expending a slot
type ExpendInput struct {
	OwnerID string
	SlotID  string
}

// ExpendOutput defines the output for expending a slot
type ExpendOutput struct {
	Slot *entities.SpellSlot
}

// RestoreInput defines the input for restoring a slot
type RestoreInput struct {
	OwnerID string
	SlotID  string
}

// RestoreOutput defines the output for restoring a slot
type RestoreOutput struct {
	Slot *entities.SpellSlot
}
