package spellbook

import (
	"context"

	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
	"github.com/KirkDiggler/rpg-sheet-api/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet-api/internal/repositories/scope"
)

const (
	entriesTable = "character_spells"

	errOwnerIDEmpty     = "owner ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
	errSpellIDEmpty     = "spell ID cannot be empty"
)

// prepareSQL inserts or updates the entry only when the character is owned
// and the spell exists. No row selected means nothing is written.
const prepareSQL = `INSERT INTO character_spells (id, character_id, spell_id, prepared)
SELECT ?, c.id, ?, ?
FROM characters c
WHERE c.id = ? AND c.owner_id = ?
  AND EXISTS (SELECT 1 FROM spells s WHERE s.id = ?)
ON CONFLICT (character_id, spell_id) DO UPDATE SET prepared = excluded.prepared`

type gormRepository struct {
	db    *gorm.DB
	idGen idgen.Generator
}

// GormConfig contains configuration for the gorm spellbook repository.
type GormConfig struct {
	DB          *gorm.DB
	IDGenerator idgen.Generator
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

// NewGorm creates a new gorm-backed spellbook repository
func NewGorm(cfg *GormConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen := cfg.IDGenerator
	if gen == nil {
		gen = idgen.NewUUID("")
	}
	return &gormRepository{db: cfg.DB, idGen: gen}, nil
}

func validateEntry(ownerID, characterID, spellID string) error {
	vb := errors.NewValidationBuilder()
	if ownerID == "" {
		vb.Field("owner_id", errOwnerIDEmpty)
	}
	if characterID == "" {
		vb.Field("character_id", errCharacterIDEmpty)
	}
	if spellID == "" {
		vb.Field("spell_id", errSpellIDEmpty)
	}
	return vb.Build()
}

func (r *gormRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	q := r.db.WithContext(ctx).
		Model(&entities.CharacterSpell{}).
		Joins("JOIN spells ON spells.id = "+entriesTable+".spell_id").
		Preload("Spell").
		Where(entriesTable+".character_id = ?", input.CharacterID)
	if input.PreparedOnly {
		q = q.Where(entriesTable+".prepared = ?", true)
	}

	var entries []*entities.CharacterSpell
	if err := q.Order("spells.name, " + entriesTable + ".id").Find(&entries).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list spellbook").WithMeta("character_id", input.CharacterID)
	}
	return &ListOutput{Entries: entries}, nil
}

func (r *gormRepository) Prepare(ctx context.Context, input PrepareInput) (*PrepareOutput, error) {
	if err := validateEntry(input.OwnerID, input.CharacterID, input.SpellID); err != nil {
		return nil, err
	}

	var entry entities.CharacterSpell
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(prepareSQL,
			r.idGen.Generate(), input.SpellID, true,
			input.CharacterID, input.OwnerID,
			input.SpellID,
		)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to prepare spell")
		}
		if res.RowsAffected == 0 {
			return errors.NotFound("character or spell not found")
		}

		err := tx.Where("character_id = ? AND spell_id = ?", input.CharacterID, input.SpellID).Take(&entry).Error
		if err != nil {
			return errors.Wrapf(err, "failed to reload spellbook entry")
		}
		return nil
	})
	if err != nil {
		return nil, withEntryMeta(err, input.CharacterID, input.SpellID)
	}
	return &PrepareOutput{Entry: &entry}, nil
}

func (r *gormRepository) Unprepare(ctx context.Context, input UnprepareInput) (*UnprepareOutput, error) {
	if err := validateEntry(input.OwnerID, input.CharacterID, input.SpellID); err != nil {
		return nil, err
	}

	out := &UnprepareOutput{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx.Model(&entities.CharacterSpell{}).
			Where(entriesTable+".character_id = ? AND "+entriesTable+".spell_id = ?", input.CharacterID, input.SpellID)
		res := scope.OwnedDependent(q, entriesTable, input.OwnerID).Update("prepared", false)
		if res.Error != nil {
			return errors.Wrapf(res.Error, "failed to unprepare spell")
		}

		if res.RowsAffected > 0 {
			var entry entities.CharacterSpell
			if err := tx.Where("character_id = ? AND spell_id = ?", input.CharacterID, input.SpellID).Take(&entry).Error; err != nil {
				return errors.Wrapf(err, "failed to reload spellbook entry")
			}
			out.Entry = &entry
			out.Existed = true
			return nil
		}

		owned, err := scope.CharacterOwned(ctx, tx, input.OwnerID, input.CharacterID)
		if err != nil {
			return errors.Wrapf(err, "failed to check character ownership")
		}
		if !owned {
			return errors.NotFound("character not found")
		}

		out.Entry = &entities.CharacterSpell{
			CharacterID: input.CharacterID,
			SpellID:     input.SpellID,
			Prepared:    false,
		}
		return nil
	})
	if err != nil {
		return nil, withEntryMeta(err, input.CharacterID, input.SpellID)
	}
	return out, nil
}

func withEntryMeta(err error, characterID, spellID string) error {
	var e *errors.Error
	if !errors.As(err, &e) {
		return errors.Wrapf(err, "spellbook write failed").
			WithMeta("character_id", characterID).
			WithMeta("spell_id", spellID)
	}
	return e.WithMeta("character_id", characterID).WithMeta("spell_id", spellID)
}
