package share

import (
	"encoding/json"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
)

// The wire form uses the historical single-letter keys so previously shared
// links keep decoding. The keys carry no meaning beyond positional mapping;
// they exist to shrink the serialized payload. Fields equal to their
// defaults are omitted entirely.

type wireBuild struct {
	Version int        `json:"v"`
	Name    string     `json:"n,omitempty"`
	Tags    wireTags   `json:"t,omitempty"`
	Bars    []*wireBar `json:"b"`
}

// wireTags is a tag index list that tolerates corrupt entries: anything in
// the array that does not parse as an integer is dropped instead of failing
// the whole payload. Vocabulary growth and hand-edited links both produce
// such entries in old shared URLs.
type wireTags []int

func (t *wireTags) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(wireTags, 0, len(raw))
	for _, entry := range raw {
		// The pointer target also filters nulls, which unmarshal into a
		// plain int as a silent zero.
		var idx *int
		if err := json.Unmarshal(entry, &idx); err != nil || idx == nil {
			continue
		}
		out = append(out, *idx)
	}
	*t = out
	return nil
}

type wireBar struct {
	Name      string         `json:"n,omitempty"`
	Hero      string         `json:"h,omitempty"`
	Template  string         `json:"t"`
	Players   int            `json:"p,omitempty"`
	Equipment *wireEquipment `json:"e,omitempty"`
	Variants  []*wireVariant `json:"v,omitempty"`
}

type wireVariant struct {
	Name string `json:"n,omitempty"`
	// Primary/Secondary are stored only when the variant overrides the
	// owning bar's professions; the template code always carries the
	// resolved pair.
	Primary   string         `json:"p,omitempty"`
	Secondary string         `json:"s,omitempty"`
	Template  string         `json:"t"`
	Equipment *wireEquipment `json:"e,omitempty"`
}

type wireEquipment struct {
	Weapons []*wireWeaponSet `json:"w,omitempty"`
	Armor   *wireArmor       `json:"a,omitempty"`
}

type wireWeaponSet struct {
	Main *wireWeapon `json:"m,omitempty"`
	Off  *wireWeapon `json:"o,omitempty"`
}

type wireWeapon struct {
	Item        int `json:"i,omitempty"`
	Prefix      int `json:"p,omitempty"`
	Suffix      int `json:"s,omitempty"`
	Inscription int `json:"c,omitempty"`
}

type wireArmor struct {
	Head          *wireArmorSlot `json:"h,omitempty"`
	Chest         *wireArmorSlot `json:"c,omitempty"`
	Hands         *wireArmorSlot `json:"g,omitempty"`
	Legs          *wireArmorSlot `json:"l,omitempty"`
	Feet          *wireArmorSlot `json:"f,omitempty"`
	HeadAttribute string         `json:"x,omitempty"`
}

type wireArmorSlot struct {
	Rune     int `json:"r,omitempty"`
	Insignia int `json:"i,omitempty"`
}

// toWire reduces a build to its minimized wire form, encoding each bar and
// variant through the template codec.
func (c *Codec) toWire(b *build.ShareableBuild) (*wireBuild, error) {
	w := &wireBuild{
		Version: WireVersion,
		Name:    b.Name,
		Tags:    c.tagIndices(b.Tags),
		Bars:    make([]*wireBar, 0, len(b.Bars)),
	}

	for i := range b.Bars {
		bar := &b.Bars[i]
		code, err := c.templates.Encode(&build.DecodedTemplate{
			Primary:    bar.Primary,
			Secondary:  bar.Secondary,
			Attributes: bar.Attributes,
			Skills:     bar.Skills,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode bar %d", i)
		}

		wb := &wireBar{
			Name:      bar.Name,
			Hero:      bar.HeroName,
			Template:  code,
			Equipment: equipmentToWire(bar.Equipment),
		}
		if bar.PlayerCount > 1 {
			wb.Players = bar.PlayerCount
		}

		for j := range bar.Variants {
			v := &bar.Variants[j]
			primary, secondary := v.ResolveProfessions(bar)
			vcode, err := c.templates.Encode(&build.DecodedTemplate{
				Primary:    primary,
				Secondary:  secondary,
				Attributes: v.Attributes,
				Skills:     v.Skills,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to encode variant %d of bar %d", j, i)
			}
			wb.Variants = append(wb.Variants, &wireVariant{
				Name:      v.Name,
				Primary:   v.Primary,
				Secondary: v.Secondary,
				Template:  vcode,
				Equipment: equipmentToWire(v.Equipment),
			})
		}

		w.Bars = append(w.Bars, wb)
	}

	return w, nil
}

// fromWire expands a wire build back into the domain form. Per-bar template
// failures degrade to a default bar instead of failing the whole decode;
// every such recovery is reported as a warning.
func (c *Codec) fromWire(w *wireBuild) (*build.ShareableBuild, []string) {
	var warnings []string

	out := &build.ShareableBuild{
		Name: w.Name,
		Tags: c.tagNames(w.Tags),
		Bars: make([]build.SkillBar, 0, len(w.Bars)),
	}

	for i, wb := range w.Bars {
		bar := build.SkillBar{
			Name:        wb.Name,
			HeroName:    wb.Hero,
			PlayerCount: 1,
			Equipment:   equipmentFromWire(wb.Equipment),
		}
		if wb.Players > 1 {
			bar.PlayerCount = wb.Players
		}

		decoded, err := c.templates.Decode(wb.Template)
		if err != nil {
			// Historical behavior: a corrupt embedded template yields a
			// blank Warrior bar rather than failing the share link.
			warnings = append(warnings, barFallbackWarning(i, err))
			bar.Primary = build.ProfessionWarrior
			bar.Secondary = build.ProfessionNone
			bar.Attributes = map[string]int{}
			bar.Skills = make([]int, build.SkillSlots)
		} else {
			bar.Primary = decoded.Primary
			bar.Secondary = decoded.Secondary
			bar.Attributes = decoded.Attributes
			bar.Skills = decoded.Skills
		}

		for j, wv := range wb.Variants {
			vdecoded, err := c.templates.Decode(wv.Template)
			if err != nil {
				warnings = append(warnings, variantDroppedWarning(i, j, err))
				continue
			}
			bar.Variants = append(bar.Variants, build.Variant{
				Name:       wv.Name,
				Primary:    wv.Primary,
				Secondary:  wv.Secondary,
				Attributes: vdecoded.Attributes,
				Skills:     vdecoded.Skills,
				Equipment:  equipmentFromWire(wv.Equipment),
			})
		}

		out.Bars = append(out.Bars, bar)
	}

	return out, warnings
}

func equipmentToWire(eq *build.Equipment) *wireEquipment {
	if eq.IsEmpty() {
		return nil
	}

	w := &wireEquipment{}
	for i := range eq.WeaponSets {
		set := &eq.WeaponSets[i]
		if set.IsEmpty() {
			continue
		}
		w.Weapons = append(w.Weapons, &wireWeaponSet{
			Main: weaponToWire(set.MainHand),
			Off:  weaponToWire(set.OffHand),
		})
	}
	if !eq.Armor.IsEmpty() {
		w.Armor = &wireArmor{
			Head:          armorSlotToWire(eq.Armor.Head),
			Chest:         armorSlotToWire(eq.Armor.Chest),
			Hands:         armorSlotToWire(eq.Armor.Hands),
			Legs:          armorSlotToWire(eq.Armor.Legs),
			Feet:          armorSlotToWire(eq.Armor.Feet),
			HeadAttribute: eq.Armor.HeadAttribute,
		}
	}
	if len(w.Weapons) == 0 && w.Armor == nil {
		return nil
	}
	return w
}

func weaponToWire(cfg *build.WeaponConfig) *wireWeapon {
	if !cfg.HasData() {
		return nil
	}
	return &wireWeapon{
		Item:        cfg.ItemID,
		Prefix:      cfg.PrefixID,
		Suffix:      cfg.SuffixID,
		Inscription: cfg.InscriptionID,
	}
}

func armorSlotToWire(slot build.ArmorSlot) *wireArmorSlot {
	if slot.RuneID == 0 && slot.InsigniaID == 0 {
		return nil
	}
	return &wireArmorSlot{Rune: slot.RuneID, Insignia: slot.InsigniaID}
}

func equipmentFromWire(w *wireEquipment) *build.Equipment {
	if w == nil {
		return nil
	}

	eq := &build.Equipment{}
	for _, set := range w.Weapons {
		if set == nil {
			continue
		}
		eq.WeaponSets = append(eq.WeaponSets, build.WeaponSet{
			MainHand: weaponFromWire(set.Main),
			OffHand:  weaponFromWire(set.Off),
		})
	}
	if w.Armor != nil {
		eq.Armor = &build.ArmorSetConfig{
			Head:          armorSlotFromWire(w.Armor.Head),
			Chest:         armorSlotFromWire(w.Armor.Chest),
			Hands:         armorSlotFromWire(w.Armor.Hands),
			Legs:          armorSlotFromWire(w.Armor.Legs),
			Feet:          armorSlotFromWire(w.Armor.Feet),
			HeadAttribute: w.Armor.HeadAttribute,
		}
	}
	if eq.IsEmpty() {
		return nil
	}
	return eq
}

func weaponFromWire(w *wireWeapon) *build.WeaponConfig {
	if w == nil {
		return nil
	}
	return &build.WeaponConfig{
		ItemID:        w.Item,
		PrefixID:      w.Prefix,
		SuffixID:      w.Suffix,
		InscriptionID: w.Inscription,
	}
}

func armorSlotFromWire(w *wireArmorSlot) build.ArmorSlot {
	if w == nil {
		return build.ArmorSlot{}
	}
	return build.ArmorSlot{RuneID: w.Rune, InsigniaID: w.Insignia}
}
