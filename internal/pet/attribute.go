package pet

// Attribute identifies a numeric gauge on the companion's state. The set is
// closed: catalogs referencing anything else fail validation at load time.
type Attribute string

const (
	AttrHunger    Attribute = "hunger"
	AttrEnergy    Attribute = "energy"
	AttrMood      Attribute = "mood"
	AttrHygiene   Attribute = "hygiene"
	AttrKnowledge Attribute = "knowledge"
	AttrFitness   Attribute = "fitness"
	AttrSocial    Attribute = "social"
	AttrMoney     Attribute = "money"
	AttrAdventure Attribute = "adventure"
	AttrHealth    Attribute = "health"
	AttrXp        Attribute = "xp"
)

// Attributes lists every known attribute in display order.
var Attributes = []Attribute{
	AttrHunger,
	AttrEnergy,
	AttrMood,
	AttrHygiene,
	AttrKnowledge,
	AttrFitness,
	AttrSocial,
	AttrMoney,
	AttrAdventure,
	AttrHealth,
	AttrXp,
}

// Known returns true if a is one of the enumerated attributes.
func (a Attribute) Known() bool {
	switch a {
	case AttrHunger, AttrEnergy, AttrMood, AttrHygiene, AttrKnowledge,
		AttrFitness, AttrSocial, AttrMoney, AttrAdventure, AttrHealth, AttrXp:
		return true
	}
	return false
}

// Capped returns true if the attribute is clamped to an upper bound of 100.
// Money and xp are accumulators and may grow past it.
func (a Attribute) Capped() bool {
	switch a {
	case AttrMoney, AttrXp:
		return false
	}
	return true
}

// Clamp applies the attribute's bound policy to v. Every attribute floors
// at zero; capped attributes also ceiling at 100.
func (a Attribute) Clamp(v int) int {
	if v < 0 {
		return 0
	}
	if a.Capped() && v > 100 {
		return 100
	}
	return v
}

// Icon returns the glyph used for this attribute in history entries.
func (a Attribute) Icon() string {
	switch a {
	case AttrHunger:
		return "🍔"
	case AttrEnergy:
		return "⚡"
	case AttrMood:
		return "😊"
	case AttrHygiene:
		return "🧼"
	case AttrKnowledge:
		return "📚"
	case AttrFitness:
		return "💪"
	case AttrSocial:
		return "👥"
	case AttrMoney:
		return "💰"
	case AttrAdventure:
		return "🗺️"
	case AttrHealth:
		return "❤️"
	case AttrXp:
		return "⭐"
	default:
		return "❓"
	}
}
