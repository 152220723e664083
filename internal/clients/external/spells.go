package external

import (
	"fmt"
	"strings"

	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/rpg-sheet-api/internal/errors"
)

func convertSpell(spell *entities.Spell) (*SpellData, error) {
	if spell == nil {
		return nil, errors.Internal("spell is nil")
	}

	school := ""
	if spell.SpellSchool != nil {
		school = spell.SpellSchool.Name
	}

	return &SpellData{
		Key:           spell.Key,
		Name:          spell.Name,
		Level:         int32(spell.SpellLevel), // nolint:gosec // D&D spell levels are always 0-9
		School:        school,
		CastingTime:   spell.CastingTime,
		Range:         spell.Range,
		Duration:      spell.Duration,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
		Description:   buildSpellDescription(spell),
	}, nil
}

// buildSpellDescription summarizes the structured fields the SRD client
// exposes, since it carries no prose description
func buildSpellDescription(spell *entities.Spell) string {
	parts := []string{buildSpellHeader(spell)}

	if spell.SpellDamage != nil {
		if spell.SpellDamage.SpellDamageType != nil {
			parts = append(parts, fmt.Sprintf("Damage Type: %s", spell.SpellDamage.SpellDamageType.Name))
		}
		if spell.SpellDamage.SpellDamageAtSlotLevel != nil {
			if base := baseDamage(spell.SpellLevel, spell.SpellDamage.SpellDamageAtSlotLevel); base != "" {
				parts = append(parts, fmt.Sprintf("Base Damage: %s", base))
			}
		}
	}

	if spell.DC != nil {
		dc := "Saving Throw"
		if spell.DC.DCType != nil {
			dc = fmt.Sprintf("%s Save", spell.DC.DCType.Name)
		}
		if spell.DC.DCSuccess != "" {
			dc += fmt.Sprintf(" (%s)", spell.DC.DCSuccess)
		}
		parts = append(parts, dc)
	}

	if spell.AreaOfEffect != nil {
		parts = append(parts, fmt.Sprintf("Area: %s (%d ft)", spell.AreaOfEffect.Type, spell.AreaOfEffect.Size))
	}

	var classes []string
	for _, class := range spell.SpellClasses {
		if class != nil {
			classes = append(classes, class.Name)
		}
	}
	if len(classes) > 0 {
		parts = append(parts, fmt.Sprintf("Classes: %s", strings.Join(classes, ", ")))
	}

	return strings.Join(parts, ". ")
}

func baseDamage(level int, atSlot *entities.SpellDamageAtSlotLevel) string {
	switch level {
	case 0, 1:
		return atSlot.FirstLevel
	case 2:
		return atSlot.SecondLevel
	case 3:
		return atSlot.ThirdLevel
	case 4:
		return atSlot.FourthLevel
	case 5:
		return atSlot.FifthLevel
	case 6:
		return atSlot.SixthLevel
	case 7:
		return atSlot.SeventhLevel
	case 8:
		return atSlot.EighthLevel
	case 9:
		return atSlot.NinthLevel
	default:
		return ""
	}
}

func buildSpellHeader(spell *entities.Spell) string {
	level := "Cantrip"
	if spell.SpellLevel > 0 {
		level = fmt.Sprintf("Level %d", spell.SpellLevel)
	}

	school := "Unknown School"
	if spell.SpellSchool != nil {
		school = spell.SpellSchool.Name
	}

	return fmt.Sprintf("%s %s spell", level, school)
}
