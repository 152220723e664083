// Package entities holds the persisted D&D 5e character sheet records
package entities

import (
	"time"

	"gorm.io/datatypes"
)

// Character is a finalized character sheet owned by exactly one user
type Character struct {
	ID                  string `gorm:"primaryKey;type:varchar(64)"`
	OwnerID             string `gorm:"type:varchar(64);not null;index"`
	Name                string `gorm:"not null"`
	Race                string `gorm:"not null"`
	Class               string `gorm:"not null"`
	Subclass            *string
	Level               int32 `gorm:"not null"`
	Alignment           *string
	ProficiencyBonus    int32 `gorm:"not null"`
	Inspiration         bool  `gorm:"not null"`
	ArmorClass          int32 `gorm:"not null"`
	Speed               int32 `gorm:"not null"`
	Initiative          int32 `gorm:"not null"`
	SpellcastingAbility *string
	SpellSaveDC         *int32
	SpellAttackBonus    *int32
	Conditions          datatypes.JSONSlice[string]
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides the gorm table name
func (Character) TableName() string { return "characters" }

// CharacterStats is the one-to-one numeric block of a character sheet
type CharacterStats struct {
	CharacterID   string                   `gorm:"primaryKey;type:varchar(64)"`
	AbilityScores AbilityScores            `gorm:"embedded"`
	HitPoints     HitPoints                `gorm:"embedded;embeddedPrefix:hp_"`
	DeathSaves    DeathSaves               `gorm:"embedded;embeddedPrefix:death_save_"`
	HitDice       HitDice                  `gorm:"embedded;embeddedPrefix:hit_dice_"`
	SavingThrows  SavingThrowProficiencies `gorm:"embedded;embeddedPrefix:save_"`
	Skills        SkillProficiencies       `gorm:"embedded;embeddedPrefix:skill_"`
	UpdatedAt     time.Time
}

// TableName overrides the gorm table name
func (CharacterStats) TableName() string { return "character_stats" }

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int32
	Dexterity    int32
	Constitution int32
	Intelligence int32
	Wisdom       int32
	Charisma     int32
}

// HitPoints tracks current, maximum and temporary hit points
type HitPoints struct {
	Current int32
	Max     int32
	Temp    int32
}

// DeathSaves is the death saving throw tally
type DeathSaves struct {
	Successes int32
	Failures  int32
}

// Columns returns the stored column values, including zeroes
func (d DeathSaves) Columns() map[string]interface{} {
	return map[string]interface{}{
		"death_save_successes": d.Successes,
		"death_save_failures":  d.Failures,
	}
}

// HitDice tracks hit dice for short rests
type HitDice struct {
	Total     int32
	Remaining int32
	Die       string
}

// SavingThrowProficiencies flags proficiency per ability saving throw
type SavingThrowProficiencies struct {
	Strength     bool
	Dexterity    bool
	Constitution bool
	Intelligence bool
	Wisdom       bool
	Charisma     bool
}
