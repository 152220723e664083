package spellslot

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/repositories/scope"
)

const (
	slotsTable = "spell_slots"

	errOwnerIDEmpty     = "owner ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
	errSlotIDEmpty      = "slot ID cannot be empty"
	errSlotNotFound     = "spell slot not found"
)

type gormRepository struct {
	db *gorm.DB
}

// GormConfig contains configuration for the gorm spell slot repository.
type GormConfig struct {
	DB *gorm.DB
}

// Validate validates the GormConfig.
func (cfg *GormConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

// NewGorm creates a new gorm-backed spell slot repository
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &gormRepository{db: cfg.DB}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var slots []*entities.SpellSlot
	err := r.db.WithContext(ctx).
		Where("character_id = ?", input.CharacterID).
		Order("level").
		Find(&slots).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list spell slots").WithMeta("character_id", input.CharacterID)
	}
	return &ListOutput{Slots: slots}, nil
}

func (r *gormRepository) GetOwned(ctx context.Context, input GetOwnedInput) (*GetOwnedOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var slot entities.SpellSlot
	q := r.db.WithContext(ctx).Model(&entities.SpellSlot{}).
		Where(slotsTable+".character_id = ? AND "+slotsTable+".level = ?", input.CharacterID, input.Level)
	err := scope.OwnedDependent(q, slotsTable, input.OwnerID).Take(&slot).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound(errSlotNotFound).
			WithMeta("character_id", input.CharacterID).
			WithMeta("level", input.Level)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell slot").WithMeta("character_id", input.CharacterID)
	}
	return &GetOwnedOutput{Slot: &slot}, nil
}

func (r *gormRepository) Expend(ctx context.Context, input ExpendInput) (*ExpendOutput, error) {
	slot, err := r.adjust(ctx, input.OwnerID, input.SlotID, "used < total", gorm.Expr("used + 1"), "no spell slots remaining")
	if err != nil {
		return nil, err
	}
	return &ExpendOutput{Slot: slot}, nil
}

func (r *gormRepository) Restore(ctx context.Context, input RestoreInput) (*RestoreOutput, error) {
	slot, err := r.adjust(ctx, input.OwnerID, input.SlotID, "used > 0", gorm.Expr("used - 1"), "no spell slots used")
	if err != nil {
		return nil, err
	}
	return &RestoreOutput{Slot: slot}, nil
}

// adjust applies a guarded change to used. Zero affected rows means the guard
// failed between the caller's read and this write.
func (r *gormRepository) adjust(ctx context.Context, ownerID, slotID, guard string, value interface{}, violation string) (*entities.SpellSlot, error) {
	if ownerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}
	if slotID == "" {
		return nil, errors.InvalidArgument(errSlotIDEmpty)
	}

	var slot entities.SpellSlot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&entities.SpellSlot{}).Where(slotsTable+".id = ?", slotID).Where(guard)
		res := scope.OwnedDependent(q, slotsTable, ownerID).Update("used", value)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to update spell slot").WithMeta("slot_id", slotID)
		}
		if res.RowsAffected == 0 {
			return errors.InvalidState(violation).WithMeta("slot_id", slotID)
		}

		if err := tx.Where("id = ?", slotID).Take(&slot).Error; err != nil {
			return errors.Wrapf(err, "failed to reload spell slot").WithMeta("slot_id", slotID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &slot, nil
}
