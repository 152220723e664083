package spell

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/filter"
)

const (
	spellsTable = "spells"
	upsertBatch = 100

	errSpellIDEmpty = "spell ID cannot be empty"
)

type gormRepository struct {
	db *gorm.DB
}

// GormConfig contains configuration for the gorm spell repository.
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

// NewGorm creates a new gorm-backed spell repository
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &gormRepository{db: cfg.DB}, nil
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	q := filter.Apply(r.db.WithContext(ctx).Model(&entities.Spell{}), spellsTable, input.Predicate)

	var spells []*entities.Spell
	if err := q.Order("name, id").Find(&spells).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list spells")
	}
	return &ListOutput{Spells: spells}, nil
}

func (r *gormRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	var spell entities.Spell
	err := r.db.WithContext(ctx).Where("id = ?", input.ID).Take(&spell).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound("spell not found").WithMeta("spell_id", input.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get spell").WithMeta("spell_id", input.ID)
	}
	return &GetOutput{Spell: &spell}, nil
}

func (r *gormRepository) Upsert(ctx context.Context, input UpsertInput) (*UpsertOutput, error) {
	if len(input.Spells) == 0 {
		return &UpsertOutput{}, nil
	}
	for _, s := range input.Spells {
		if s == nil || s.ID == "" {
			return nil, errors.InvalidArgument(errSpellIDEmpty)
		}
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		CreateInBatches(input.Spells, upsertBatch).Error
	if err != nil {
		return nil, errors.Wrapf(err, "failed to upsert spells")
	}
	return &UpsertOutput{Count: len(input.Spells)}, nil
}
