package entities

// Attack is an attack or weapon line on the sheet
type Attack struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	CharacterID string `gorm:"type:varchar(64);not null;index"`
	Name        string `gorm:"not null"`
	AttackBonus int32  `gorm:"not null"`
	Damage      string
	DamageType  string
	Notes       string
}

// TableName overrides the gorm table name
func (Attack) TableName() string { return "attacks" }

// InventoryItem is an item carried by a character
type InventoryItem struct {
	ID          string `gorm:"primaryKey;type:varchar(64)"`
	CharacterID string `gorm:"type:varchar(64);not null;index"`
	Name        string `gorm:"not null"`
	Quantity    int32  `gorm:"not null"`
	Weight      float64
	Equipped    bool `gorm:"not null"`
	Notes       string
}

// TableName overrides the gorm table name
func (InventoryItem) TableName() string { return "inventory_items" }

// CharacterFeature is a class, race or feat feature
type CharacterFeature struct {
	ID            string `gorm:"primaryKey;type:varchar(64)"`
	CharacterID   string `gorm:"type:varchar(64);not null;index"`
	Name          string `gorm:"not null"`
	Source        string
	Description   string
	UsesMax       *int32
	UsesRemaining *int32
}

// TableName overrides the gorm table name
func (CharacterFeature) TableName() string { return "character_features" }

// All returns every model managed by the schema migration
func All() []interface{} {
	return []interface{}{
		&Character{},
		&CharacterStats{},
		&Spell{},
		&SpellSlot{},
		&CharacterSpell{},
		&Attack{},
		&InventoryItem{},
		&CharacterFeature{},
	}
}
