package testutils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KirkDiggler/rpg-sheet-api/internal/entities"
)

// SeedCharacter inserts a level 5 wizard with a stats row
func SeedCharacter(t *testing.T, db *gorm.DB, ownerID, name string) *entities.Character {
	t.Helper()

	ability := "intelligence"
	dc := int32(15)
	char := &entities.Character{
		ID:                  uuid.NewString(),
		OwnerID:             ownerID,
		Name:                name,
		Race:                "High Elf",
		Class:               "Wizard",
		Level:               5,
		ProficiencyBonus:    3,
		ArmorClass:          12,
		Speed:               30,
		Initiative:          2,
		SpellcastingAbility: &ability,
		SpellSaveDC:         &dc,
		Conditions:          []string{},
	}
	require.NoError(t, db.Create(char).Error)

	stats := &entities.CharacterStats{
		CharacterID: char.ID,
		AbilityScores: entities.AbilityScores{
			Strength: 8, Dexterity: 14, Constitution: 13,
			Intelligence: 18, Wisdom: 12, Charisma: 10,
		},
		HitPoints: entities.HitPoints{Current: 27, Max: 27},
		HitDice:   entities.HitDice{Total: 5, Remaining: 5, Die: "d6"},
		SavingThrows: entities.SavingThrowProficiencies{
			Intelligence: true,
			Wisdom:       true,
		},
		Skills: entities.SkillProficiencies{Arcana: true, History: true},
	}
	require.NoError(t, db.Create(stats).Error)

	return char
}

// SeedSpell inserts a catalog spell
func SeedSpell(t *testing.T, db *gorm.DB, name string, level int32, school string) *entities.Spell {
	t.Helper()

	spell := &entities.Spell{
		ID:     uuid.NewString(),
		Name:   name,
		Level:  level,
		School: school,
	}
	require.NoError(t, db.Create(spell).Error)
	return spell
}

// SeedSpellSlot inserts a spell slot row
func SeedSpellSlot(t *testing.T, db *gorm.DB, characterID string, level, total, used int32) *entities.SpellSlot {
	t.Helper()

	slot := &entities.SpellSlot{
		ID:          uuid.NewString(),
		CharacterID: characterID,
		Level:       level,
		Total:       total,
		Used:        used,
	}
	require.NoError(t, db.Create(slot).Error)
	return slot
}

// SeedCharacterSpell inserts a spellbook entry
func SeedCharacterSpell(t *testing.T, db *gorm.DB, characterID, spellID string, prepared bool) *entities.CharacterSpell {
	t.Helper()

	entry := &entities.CharacterSpell{
		ID:          uuid.NewString(),
		CharacterID: characterID,
		SpellID:     spellID,
		Prepared:    prepared,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}
