// Package equipment computes effective attribute values from gear and
// validates armor upgrades against the wearer's profession.
package equipment

import (
	"fmt"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
)

// ItemKind distinguishes the two upgrade kinds an armor slot holds.
type ItemKind string

// Armor upgrade kinds
const (
	KindRune     ItemKind = "rune"
	KindInsignia ItemKind = "insignia"
)

// InvalidItem describes one armor upgrade that does not fit the selected
// profession, with enough detail to display and to clear it.
type InvalidItem struct {
	Slot   build.ArmorSlotName
	Kind   ItemKind
	ItemID int
	Reason string
}

// Config holds the dependencies for the equipment resolver
type Config struct {
	GameData gamedata.Service
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.GameData == nil {
		vb.RequiredField("GameData")
	}
	return vb.Build()
}

// Resolver derives effective attribute values and validates equipment. All
// methods are pure functions over their arguments and the lookup tables.
type Resolver struct {
	data gamedata.Service
}

// New creates a new equipment resolver
func New(cfg *Config) (*Resolver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Resolver{data: cfg.GameData}, nil
}

// EffectiveAttributes returns base attribute values with equipment bonuses
// applied: rune bonuses add up across slots, then suffix modifiers on the
// first weapon set raise their attribute to a floor via max. The floor can
// introduce attributes outside the wielder's own profession set. The input
// map is never mutated.
func (r *Resolver) EffectiveAttributes(base map[string]int, eq *build.Equipment) map[string]int {
	effective := make(map[string]int, len(base)+2)
	for name, points := range base {
		effective[name] = points
	}
	if eq == nil {
		return effective
	}

	if eq.Armor != nil {
		for _, name := range build.ArmorSlotNames() {
			slot := eq.Armor.Slot(name)
			if slot.RuneID == 0 {
				continue
			}
			rn, ok := r.data.Rune(slot.RuneID)
			if !ok || rn.Attribute == "" || rn.Bonus == 0 {
				continue
			}
			effective[rn.Attribute] += rn.Bonus
		}
	}

	// Only the active (first) weapon set contributes floors.
	if len(eq.WeaponSets) > 0 {
		set := eq.WeaponSets[0]
		for _, cfg := range []*build.WeaponConfig{set.MainHand, set.OffHand} {
			if cfg == nil || cfg.SuffixID == 0 {
				continue
			}
			mod, ok := r.data.Modifier(cfg.SuffixID)
			if !ok || mod.Attribute == "" || mod.Floor <= 0 {
				continue
			}
			if effective[mod.Attribute] < mod.Floor {
				effective[mod.Attribute] = mod.Floor
			}
		}
	}

	return effective
}

// ValidateArmorForProfession returns one entry per rune or insignia that is
// bound to a different profession than the given one. A nil armor config
// validates clean.
func (r *Resolver) ValidateArmorForProfession(armor *build.ArmorSetConfig, professionKey string) []InvalidItem {
	if armor == nil {
		return nil
	}

	var invalid []InvalidItem
	for _, name := range build.ArmorSlotNames() {
		slot := armor.Slot(name)
		if slot.RuneID != 0 {
			if rn, ok := r.data.Rune(slot.RuneID); ok && rn.Profession != "" && rn.Profession != professionKey {
				invalid = append(invalid, InvalidItem{
					Slot:   name,
					Kind:   KindRune,
					ItemID: slot.RuneID,
					Reason: fmt.Sprintf("%s requires %s armor", rn.Name, rn.Profession),
				})
			}
		}
		if slot.InsigniaID != 0 {
			if ins, ok := r.data.Insignia(slot.InsigniaID); ok && ins.Profession != "" && ins.Profession != professionKey {
				invalid = append(invalid, InvalidItem{
					Slot:   name,
					Kind:   KindInsignia,
					ItemID: slot.InsigniaID,
					Reason: fmt.Sprintf("%s requires %s armor", ins.Name, ins.Profession),
				})
			}
		}
	}
	return invalid
}

// ClearInvalidEquipment returns a copy of the armor configuration with
// exactly the flagged slot fields zeroed; everything else is untouched.
func ClearInvalidEquipment(armor *build.ArmorSetConfig, invalid []InvalidItem) *build.ArmorSetConfig {
	if armor == nil {
		return nil
	}

	cleared := armor.Clone()
	for _, item := range invalid {
		slot := cleared.Slot(item.Slot)
		if slot == nil {
			continue
		}
		switch item.Kind {
		case KindRune:
			if slot.RuneID == item.ItemID {
				slot.RuneID = 0
			}
		case KindInsignia:
			if slot.InsigniaID == item.ItemID {
				slot.InsigniaID = 0
			}
		}
	}
	return cleared
}
