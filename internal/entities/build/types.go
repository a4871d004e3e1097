// Package build defines the value objects shared by the template and
// share-link codecs. Instances are constructed fresh per encode/decode call
// and never mutated after construction.
package build

// DecodedTemplate is the structured form of one skill-template code:
// profession pair, attribute allocation, and exactly eight skill ids.
type DecodedTemplate struct {
	// Primary is the primary profession name ("None" for id 0,
	// "Unknown" for ids outside the lookup tables)
	Primary string
	// Secondary is the secondary profession name
	Secondary string
	// Attributes maps attribute name to invested points; only attributes
	// with points > 0 are present
	Attributes map[string]int
	// Skills always holds exactly SkillSlots entries, 0 meaning an empty slot
	Skills []int
}

// SkillBar is one character's loadout inside a shared build.
type SkillBar struct {
	// Name is the character's display name
	Name string
	// HeroName is the hero occupying this slot, if any
	HeroName string
	// Primary and Secondary are profession names
	Primary    string
	Secondary  string
	Attributes map[string]int
	// Skills always holds exactly SkillSlots entries
	Skills []int
	// PlayerCount duplicates this bar across team slots; always >= 1
	PlayerCount int
	Equipment   *Equipment
	Variants    []Variant
}

// Variant is an alternate skill/attribute setup sharing a bar's identity.
// Empty Primary/Secondary mean the professions are inherited from the
// owning bar at resolution time rather than stored redundantly.
type Variant struct {
	Name       string
	Primary    string
	Secondary  string
	Attributes map[string]int
	Skills     []int
	Equipment  *Equipment
}

// ResolveProfessions returns the variant's professions, falling back to the
// owning bar's pair where the variant does not override them.
func (v *Variant) ResolveProfessions(bar *SkillBar) (primary, secondary string) {
	primary, secondary = v.Primary, v.Secondary
	if primary == "" {
		primary = bar.Primary
	}
	if secondary == "" {
		secondary = bar.Secondary
	}
	return primary, secondary
}

// Equipment is a bar's optional gear: up to MaxWeaponSets weapon sets and
// one armor configuration.
type Equipment struct {
	WeaponSets []WeaponSet
	Armor      *ArmorSetConfig
}

// IsEmpty reports whether the equipment carries no data worth serializing.
func (e *Equipment) IsEmpty() bool {
	if e == nil {
		return true
	}
	for i := range e.WeaponSets {
		if !e.WeaponSets[i].IsEmpty() {
			return false
		}
	}
	return e.Armor == nil || e.Armor.IsEmpty()
}

// WeaponSet pairs a main-hand and an off-hand configuration.
type WeaponSet struct {
	MainHand *WeaponConfig
	OffHand  *WeaponConfig
}

// IsEmpty reports whether neither hand carries an item or a modifier.
func (w *WeaponSet) IsEmpty() bool {
	return !w.MainHand.HasData() && !w.OffHand.HasData()
}

// WeaponConfig is one hand's item plus its modifier references. Zero ids
// mean the slot is empty.
type WeaponConfig struct {
	ItemID        int
	PrefixID      int
	SuffixID      int
	InscriptionID int
}

// HasData reports whether any item or modifier reference is set. A config
// holding only modifier ids still carries meaning: a suffix imposes its
// attribute floor with no item id present.
func (c *WeaponConfig) HasData() bool {
	if c == nil {
		return false
	}
	return c.ItemID != 0 || c.PrefixID != 0 || c.SuffixID != 0 || c.InscriptionID != 0
}

// ArmorSlot holds the rune and insignia on one armor piece.
type ArmorSlot struct {
	RuneID     int
	InsigniaID int
}

// ArmorSetConfig is the five-slot armor configuration plus an optional
// head-piece attribute override.
type ArmorSetConfig struct {
	Head  ArmorSlot
	Chest ArmorSlot
	Hands ArmorSlot
	Legs  ArmorSlot
	Feet  ArmorSlot
	// HeadAttribute overrides the attribute the head piece boosts, if set
	HeadAttribute string
}

// Slot returns a pointer to the named slot, or nil for an unknown name.
func (a *ArmorSetConfig) Slot(name ArmorSlotName) *ArmorSlot {
	switch name {
	case SlotHead:
		return &a.Head
	case SlotChest:
		return &a.Chest
	case SlotHands:
		return &a.Hands
	case SlotLegs:
		return &a.Legs
	case SlotFeet:
		return &a.Feet
	default:
		return nil
	}
}

// IsEmpty reports whether no slot carries a rune or insignia and no head
// attribute override is set.
func (a *ArmorSetConfig) IsEmpty() bool {
	if a == nil {
		return true
	}
	for _, name := range ArmorSlotNames() {
		s := a.Slot(name)
		if s.RuneID != 0 || s.InsigniaID != 0 {
			return false
		}
	}
	return a.HeadAttribute == ""
}

// Clone returns a deep copy of the armor configuration.
func (a *ArmorSetConfig) Clone() *ArmorSetConfig {
	if a == nil {
		return nil
	}
	cp := *a
	return &cp
}

// ShareableBuild is a named, tagged collection of skill bars, the unit the
// share-link codec serializes.
type ShareableBuild struct {
	Name string
	Tags []string
	Bars []SkillBar
}
