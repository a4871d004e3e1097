package build

// Profession names. The game defines exactly ten professions; id 0 is the
// reserved "no profession" slot and anything the lookup tables do not know
// renders as Unknown.
const (
	ProfessionNone         = "None"
	ProfessionWarrior      = "Warrior"
	ProfessionRanger       = "Ranger"
	ProfessionMonk         = "Monk"
	ProfessionNecromancer  = "Necromancer"
	ProfessionMesmer       = "Mesmer"
	ProfessionElementalist = "Elementalist"
	ProfessionAssassin     = "Assassin"
	ProfessionRitualist    = "Ritualist"
	ProfessionParagon      = "Paragon"
	ProfessionDervish      = "Dervish"
	ProfessionUnknown      = "Unknown"
)

// SkillSlots is the fixed number of skill slots on a bar. Empty slots hold
// skill id 0.
const SkillSlots = 8

// MaxWeaponSets is the most weapon sets a single equipment loadout carries.
const MaxWeaponSets = 4

// ArmorSlotName identifies one of the five armor pieces.
type ArmorSlotName string

// Armor slot names. A valid armor configuration has exactly these five
// slots, never more or fewer.
const (
	SlotHead  ArmorSlotName = "head"
	SlotChest ArmorSlotName = "chest"
	SlotHands ArmorSlotName = "hands"
	SlotLegs  ArmorSlotName = "legs"
	SlotFeet  ArmorSlotName = "feet"
)

// ArmorSlotNames returns the five slot names in display order.
func ArmorSlotNames() []ArmorSlotName {
	return []ArmorSlotName{SlotHead, SlotChest, SlotHands, SlotLegs, SlotFeet}
}
