// Package scope holds the ownership conditions shared by repositories.
//
// Every statement that touches a character or one of its dependents carries
// one of these conditions, so ownership is checked by the same statement
// that reads or writes the row.
package scope

import (
	"context"

	"gorm.io/gorm"
)

// CharactersTable is the owning table of every scoped record
const CharactersTable = "characters"

// OwnedCharacter restricts a query on characters to one owner
func OwnedCharacter(db *gorm.DB, ownerID string) *gorm.DB {
	return db.Where(CharactersTable+".owner_id = ?", ownerID)
}

// OwnedDependent restricts a query on a table with a character_id column to
// rows whose parent character belongs to ownerID
func OwnedDependent(db *gorm.DB, table, ownerID string) *gorm.DB {
	return db.Where(
		"EXISTS (SELECT 1 FROM "+CharactersTable+" c WHERE c.id = "+table+".character_id AND c.owner_id = ?)",
		ownerID,
	)
}

// CharacterOwned reports whether characterID exists and belongs to ownerID
func CharacterOwned(ctx context.Context, db *gorm.DB, ownerID, characterID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Table(CharactersTable).
		Where("id = ? AND owner_id = ?", characterID, ownerID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
