package entities

// Skill identifies one of the 18 D&D 5e skills
type Skill string

// Skill constants
const (
	SkillAcrobatics     Skill = "acrobatics"
	SkillAnimalHandling Skill = "animal_handling"
	SkillArcana         Skill = "arcana"
	SkillAthletics      Skill = "athletics"
	SkillDeception      Skill = "deception"
	SkillHistory        Skill = "history"
	SkillInsight        Skill = "insight"
	SkillIntimidation   Skill = "intimidation"
	SkillInvestigation  Skill = "investigation"
	SkillMedicine       Skill = "medicine"
	SkillNature         Skill = "nature"
	SkillPerception     Skill = "perception"
	SkillPerformance    Skill = "performance"
	SkillPersuasion     Skill = "persuasion"
	SkillReligion       Skill = "religion"
	SkillSleightOfHand  Skill = "sleight_of_hand"
	SkillStealth        Skill = "stealth"
	SkillSurvival       Skill = "survival"
)

// AllSkills lists every skill in sheet order
var AllSkills = []Skill{
	SkillAcrobatics,
	SkillAnimalHandling,
	SkillArcana,
	SkillAthletics,
	SkillDeception,
	SkillHistory,
	SkillInsight,
	SkillIntimidation,
	SkillInvestigation,
	SkillMedicine,
	SkillNature,
	SkillPerception,
	SkillPerformance,
	SkillPersuasion,
	SkillReligion,
	SkillSleightOfHand,
	SkillStealth,
	SkillSurvival,
}

// Column is the character_stats column holding the proficiency flag
func (s Skill) Column() string {
	return "skill_" + string(s)
}

// SkillProficiencies flags proficiency per skill. It is always written as a
// whole set.
type SkillProficiencies struct {
	Acrobatics     bool
	AnimalHandling bool
	Arcana         bool
	Athletics      bool
	Deception      bool
	History        bool
	Insight        bool
	Intimidation   bool
	Investigation  bool
	Medicine       bool
	Nature         bool
	Perception     bool
	Performance    bool
	Persuasion     bool
	Religion       bool
	SleightOfHand  bool
	Stealth        bool
	Survival       bool
}

// Get returns the flag for one skill
func (p SkillProficiencies) Get(skill Skill) bool {
	switch skill {
	case SkillAcrobatics:
		return p.Acrobatics
	case SkillAnimalHandling:
		return p.AnimalHandling
	case SkillArcana:
		return p.Arcana
	case SkillAthletics:
		return p.Athletics
	case SkillDeception:
		return p.Deception
	case SkillHistory:
		return p.History
	case SkillInsight:
		return p.Insight
	case SkillIntimidation:
		return p.Intimidation
	case SkillInvestigation:
		return p.Investigation
	case SkillMedicine:
		return p.Medicine
	case SkillNature:
		return p.Nature
	case SkillPerception:
		return p.Perception
	case SkillPerformance:
		return p.Performance
	case SkillPersuasion:
		return p.Persuasion
	case SkillReligion:
		return p.Religion
	case SkillSleightOfHand:
		return p.SleightOfHand
	case SkillStealth:
		return p.Stealth
	case SkillSurvival:
		return p.Survival
	default:
		return false
	}
}

// Columns returns every skill column with its value. A map is used so false
// values are written; gorm skips zero fields when updating from a struct.
func (p SkillProficiencies) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, len(AllSkills))
	for _, skill := range AllSkills {
		cols[skill.Column()] = p.Get(skill)
	}
	return cols
}
