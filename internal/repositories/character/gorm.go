package character

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
	"github.com/KirkDiggler/rpg-sheet-api/internal/repositories/scope"
)

const (
	statsTable     = "character_stats"
	inventoryTable = "inventory_items"

	errOwnerIDEmpty     = "owner ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
	errNotFound         = "character not found"
	errStatsNotFound    = "character stats not found"
)

type gormRepository struct {
	db *gorm.DB
}

// GormConfig contains configuration for the gorm character repository.
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

// NewGorm creates a new gorm-backed character repository
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &gormRepository{db: cfg.DB}, nil
}

func requireOwned(ownerID, characterID string) error {
	if ownerID == "" {
		return errors.InvalidArgument(errOwnerIDEmpty)
	}
	if characterID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDEmpty)
	}

	q := r.db.WithContext(ctx).Model(&entities.Character{})
	q = scope.OwnedCharacter(q, input.OwnerID)
	q = filter.Apply(q, scope.CharactersTable, input.Predicate)

	var characters []*entities.Character
	if err := q.Order("name, id").Find(&characters).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list characters")
	}

	return &ListOutput{Characters: characters}, nil
}

func (r *gormRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := requireOwned(input.OwnerID, input.ID); err != nil {
		return nil, err
	}

	char, err := r.getOwned(r.db.WithContext(ctx), input.OwnerID, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *gormRepository) getOwned(db *gorm.DB, ownerID, id string) (*entities.Character, error) {
	var char entities.Character
	err := scope.OwnedCharacter(db.Model(&entities.Character{}), ownerID).
		Where(scope.CharactersTable+".id = ?", id).
		Take(&char).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound(errNotFound).WithMeta("character_id", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character").WithMeta("character_id", id)
	}
	return &char, nil
}

func (r *gormRepository) ToggleInspiration(ctx context.Context, input ToggleInspirationInput) (*ToggleInspirationOutput, error) {
	if err := requireOwned(input.OwnerID, input.ID); err != nil {
		return nil, err
	}

	var char *entities.Character
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Character{}).
			Where("id = ? AND owner_id = ?", input.ID, input.OwnerID).
			Update("inspiration", gorm.Expr("NOT inspiration"))
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to toggle inspiration").WithMeta("character_id", input.ID)
		}
		if res.RowsAffected == 0 {
			return errors.NotFound(errNotFound).WithMeta("character_id", input.ID)
		}

		var err error
		char, err = r.getOwned(tx, input.OwnerID, input.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ToggleInspirationOutput{Character: char}, nil
}

func (r *gormRepository) UpdateDeathSaves(ctx context.Context, input UpdateDeathSavesInput) (*UpdateDeathSavesOutput, error) {
	if err := requireOwned(input.OwnerID, input.CharacterID); err != nil {
		return nil, err
	}

	stats, err := r.updateStats(ctx, input.OwnerID, input.CharacterID, input.DeathSaves.Columns())
	if err != nil {
		return nil, err
	}
	return &UpdateDeathSavesOutput{Stats: stats}, nil
}

func (r *gormRepository) UpdateSkills(ctx context.Context, input UpdateSkillsInput) (*UpdateSkillsOutput, error) {
	if err := requireOwned(input.OwnerID, input.CharacterID); err != nil {
		return nil, err
	}

	stats, err := r.updateStats(ctx, input.OwnerID, input.CharacterID, input.Skills.Columns())
	if err != nil {
		return nil, err
	}
	return &UpdateSkillsOutput{Stats: stats}, nil
}

// updateStats writes columns on an owned stats row and reads it back in the
// same transaction
func (r *gormRepository) updateStats(ctx context.Context, ownerID, characterID string, columns map[string]interface{}) (*entities.CharacterStats, error) {
	var stats entities.CharacterStats
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&entities.CharacterStats{}).Where(statsTable+".character_id = ?", characterID)
		res := scope.OwnedDependent(q, statsTable, ownerID).Updates(columns)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to update stats").WithMeta("character_id", characterID)
		}
		if res.RowsAffected == 0 {
			return errors.NotFound(errStatsNotFound).WithMeta("character_id", characterID)
		}

		if err := tx.Where("character_id = ?", characterID).Take(&stats).Error; err != nil {
			return errors.Wrapf(err, "failed to reload stats").WithMeta("character_id", characterID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *gormRepository) GetStats(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var stats entities.CharacterStats
	err := r.db.WithContext(ctx).Where("character_id = ?", input.CharacterID).Take(&stats).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound(errStatsNotFound).WithMeta("character_id", input.CharacterID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get stats").WithMeta("character_id", input.CharacterID)
	}

	return &GetStatsOutput{Stats: &stats}, nil
}

func (r *gormRepository) ListAttacks(ctx context.Context, input ListAttacksInput) (*ListAttacksOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var attacks []*entities.Attack
	err := r.db.WithContext(ctx).
		Where("character_id = ?", input.CharacterID).
		Order("name, id").
		Find(&attacks).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list attacks").WithMeta("character_id", input.CharacterID)
	}

	return &ListAttacksOutput{Attacks: attacks}, nil
}

func (r *gormRepository) ListInventory(ctx context.Context, input ListInventoryInput) (*ListInventoryOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	q := r.db.WithContext(ctx).Model(&entities.InventoryItem{}).
		Where(inventoryTable+".character_id = ?", input.CharacterID)
	q = filter.Apply(q, inventoryTable, input.Predicate)

	var items []*entities.InventoryItem
	if err := q.Order("name, id").Find(&items).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list inventory").WithMeta("character_id", input.CharacterID)
	}

	return &ListInventoryOutput{Items: items}, nil
}

func (r *gormRepository) ListFeatures(ctx context.Context, input ListFeaturesInput) (*ListFeaturesOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	var features []*entities.CharacterFeature
	err := r.db.WithContext(ctx).
		Where("character_id = ?", input.CharacterID).
		Order("name, id").
		Find(&features).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list features").WithMeta("character_id", input.CharacterID)
	}

	return &ListFeaturesOutput{Features: features}, nil
}
