package filter

// Storage columns that filters may constrain
const (
	FieldName          = "name"
	FieldLevel         = "level"
	FieldSchool        = "school"
	FieldConcentration = "concentration"
	FieldRitual        = "ritual"
	FieldClass         = "class"
	FieldEquipped      = "equipped"
)

// SpellFilter narrows the spell catalog
type SpellFilter struct {
	// Name matches as a case-insensitive substring
	Name          *string
	Levels        []int32
	Schools       []string
	Concentration *bool
	Ritual        *bool
}

// CharacterFilter narrows a user's characters
type CharacterFilter struct {
	Name    *string
	Classes []string
	Levels  []int32
}

// InventoryFilter narrows a character's inventory
type InventoryFilter struct {
	Name     *string
	Equipped *bool
}

// BuildSpellWhere builds the predicate for a spell catalog query
func BuildSpellWhere(f *SpellFilter) Predicate {
	var p Predicate
	if f == nil {
		return p
	}
	p.containsFold(FieldName, f.Name)
	p.inInt32(FieldLevel, f.Levels)
	p.inString(FieldSchool, f.Schools)
	p.eqBool(FieldConcentration, f.Concentration)
	p.eqBool(FieldRitual, f.Ritual)
	return p
}

// BuildCharacterWhere builds the predicate for a character list query
func BuildCharacterWhere(f *CharacterFilter) Predicate {
	var p Predicate
	if f == nil {
		return p
	}
	p.containsFold(FieldName, f.Name)
	p.inString(FieldClass, f.Classes)
	p.inInt32(FieldLevel, f.Levels)
	return p
}

// BuildInventoryWhere builds the predicate for an inventory query
func BuildInventoryWhere(f *InventoryFilter) Predicate {
	var p Predicate
	if f == nil {
		return p
	}
	p.containsFold(FieldName, f.Name)
	p.eqBool(FieldEquipped, f.Equipped)
	return p
}
