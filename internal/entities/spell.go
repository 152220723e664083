package entities

// Spell is a global catalog entry. It has no owner.
type Spell struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	Name          string `gorm:"not null;index"`
	Level         int32  `gorm:"not null;index"`
	School        string `gorm:"not null"`
	CastingTime   string
	Range         string `gorm:"column:spell_range"`
	Duration      string
	Concentration bool `gorm:"not null"`
	Ritual        bool `gorm:"not null"`
	Description   string
}

// TableName overrides the gorm table name
func (Spell) TableName() string { return "spells" }

// SpellSlot counts used slots of one spell level for a character
type SpellSlot struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	CharacterID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_spell_slot_character_level"`
	Level       int32  `gorm:"not null;uniqueIndex:idx_spell_slot_character_level"`
	Total       int32  `gorm:"not null"`
	Used        int32  `gorm:"not null"`
}

// TableName overrides the gorm table name
func (SpellSlot) TableName() string { return "spell_slots" }

// Remaining is the number of unused slots
func (s *SpellSlot) Remaining() int32 {
	return s.Total - s.Used
}

// CharacterSpell is a spellbook entry joining a character to a catalog spell
type CharacterSpell struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	CharacterID string `gorm:"type:varchar(64);not null;uniqueIndex:idx_character_spell"`
	SpellID     string `gorm:"type:varchar(64);not null;uniqueIndex:idx_character_spell"`
	Prepared    bool   `gorm:"not null"`

	// Spell is set when the entry was listed with its catalog row
	Spell *Spell `gorm:"foreignKey:SpellID;references:ID"`
}

// TableName overrides the gorm table name
func (CharacterSpell) TableName() string { return "character_spells" }
