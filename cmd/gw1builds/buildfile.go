package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
)

// buildFile is the YAML document the share command reads and the unshare
// command writes. It mirrors the domain types with readable field names.
type buildFile struct {
	Name string    `yaml:"name,omitempty"`
	Tags []string  `yaml:"tags,omitempty"`
	Bars []barFile `yaml:"bars"`
}

type barFile struct {
	Name       string         `yaml:"name,omitempty"`
	Hero       string         `yaml:"hero,omitempty"`
	Primary    string         `yaml:"primary"`
	Secondary  string         `yaml:"secondary,omitempty"`
	Attributes map[string]int `yaml:"attributes,omitempty"`
	Skills     []int          `yaml:"skills"`
	Players    int            `yaml:"players,omitempty"`
	Equipment  *equipmentFile `yaml:"equipment,omitempty"`
	Variants   []variantFile  `yaml:"variants,omitempty"`
}

type variantFile struct {
	Name       string         `yaml:"name,omitempty"`
	Primary    string         `yaml:"primary,omitempty"`
	Secondary  string         `yaml:"secondary,omitempty"`
	Attributes map[string]int `yaml:"attributes,omitempty"`
	Skills     []int          `yaml:"skills"`
	Equipment  *equipmentFile `yaml:"equipment,omitempty"`
}

type equipmentFile struct {
	WeaponSets []weaponSetFile `yaml:"weapon_sets,omitempty"`
	Armor      *armorFile      `yaml:"armor,omitempty"`
}

type weaponSetFile struct {
	Main *weaponFile `yaml:"main,omitempty"`
	Off  *weaponFile `yaml:"off,omitempty"`
}

type weaponFile struct {
	Item        int `yaml:"item"`
	Prefix      int `yaml:"prefix,omitempty"`
	Suffix      int `yaml:"suffix,omitempty"`
	Inscription int `yaml:"inscription,omitempty"`
}

type armorFile struct {
	Head          *armorSlotFile `yaml:"head,omitempty"`
	Chest         *armorSlotFile `yaml:"chest,omitempty"`
	Hands         *armorSlotFile `yaml:"hands,omitempty"`
	Legs          *armorSlotFile `yaml:"legs,omitempty"`
	Feet          *armorSlotFile `yaml:"feet,omitempty"`
	HeadAttribute string         `yaml:"head_attribute,omitempty"`
}

type armorSlotFile struct {
	Rune     int `yaml:"rune,omitempty"`
	Insignia int `yaml:"insignia,omitempty"`
}

func loadBuildFile(path string) (*build.ShareableBuild, error) {
	raw, err := os.ReadFile(path) // nolint:gosec // path comes from the CLI argument
	if err != nil {
		return nil, fmt.Errorf("failed to read build file: %w", err)
	}

	var f buildFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse build file: %w", err)
	}

	return f.toDomain(), nil
}

func (f *buildFile) toDomain() *build.ShareableBuild {
	out := &build.ShareableBuild{Name: f.Name, Tags: f.Tags}
	for _, bar := range f.Bars {
		players := bar.Players
		if players < 1 {
			players = 1
		}
		b := build.SkillBar{
			Name:        bar.Name,
			HeroName:    bar.Hero,
			Primary:     bar.Primary,
			Secondary:   bar.Secondary,
			Attributes:  bar.Attributes,
			Skills:      padSkills(bar.Skills),
			PlayerCount: players,
			Equipment:   bar.Equipment.toDomain(),
		}
		if b.Secondary == "" {
			b.Secondary = build.ProfessionNone
		}
		for _, v := range bar.Variants {
			b.Variants = append(b.Variants, build.Variant{
				Name:       v.Name,
				Primary:    v.Primary,
				Secondary:  v.Secondary,
				Attributes: v.Attributes,
				Skills:     padSkills(v.Skills),
				Equipment:  v.Equipment.toDomain(),
			})
		}
		out.Bars = append(out.Bars, b)
	}
	return out
}

func buildFileFrom(b *build.ShareableBuild) *buildFile {
	f := &buildFile{Name: b.Name, Tags: b.Tags}
	for i := range b.Bars {
		bar := &b.Bars[i]
		bf := barFile{
			Name:       bar.Name,
			Hero:       bar.HeroName,
			Primary:    bar.Primary,
			Secondary:  bar.Secondary,
			Attributes: bar.Attributes,
			Skills:     bar.Skills,
			Equipment:  equipmentFileFrom(bar.Equipment),
		}
		if bar.PlayerCount > 1 {
			bf.Players = bar.PlayerCount
		}
		for j := range bar.Variants {
			v := &bar.Variants[j]
			bf.Variants = append(bf.Variants, variantFile{
				Name:       v.Name,
				Primary:    v.Primary,
				Secondary:  v.Secondary,
				Attributes: v.Attributes,
				Skills:     v.Skills,
				Equipment:  equipmentFileFrom(v.Equipment),
			})
		}
		f.Bars = append(f.Bars, bf)
	}
	return f
}

func (e *equipmentFile) toDomain() *build.Equipment {
	if e == nil {
		return nil
	}

	eq := &build.Equipment{}
	for _, set := range e.WeaponSets {
		eq.WeaponSets = append(eq.WeaponSets, build.WeaponSet{
			MainHand: set.Main.toDomain(),
			OffHand:  set.Off.toDomain(),
		})
	}
	if e.Armor != nil {
		eq.Armor = &build.ArmorSetConfig{
			Head:          e.Armor.Head.toDomain(),
			Chest:         e.Armor.Chest.toDomain(),
			Hands:         e.Armor.Hands.toDomain(),
			Legs:          e.Armor.Legs.toDomain(),
			Feet:          e.Armor.Feet.toDomain(),
			HeadAttribute: e.Armor.HeadAttribute,
		}
	}
	return eq
}

func equipmentFileFrom(eq *build.Equipment) *equipmentFile {
	if eq.IsEmpty() {
		return nil
	}

	f := &equipmentFile{}
	for i := range eq.WeaponSets {
		set := &eq.WeaponSets[i]
		f.WeaponSets = append(f.WeaponSets, weaponSetFile{
			Main: weaponFileFrom(set.MainHand),
			Off:  weaponFileFrom(set.OffHand),
		})
	}
	if !eq.Armor.IsEmpty() {
		f.Armor = &armorFile{
			Head:          armorSlotFileFrom(eq.Armor.Head),
			Chest:         armorSlotFileFrom(eq.Armor.Chest),
			Hands:         armorSlotFileFrom(eq.Armor.Hands),
			Legs:          armorSlotFileFrom(eq.Armor.Legs),
			Feet:          armorSlotFileFrom(eq.Armor.Feet),
			HeadAttribute: eq.Armor.HeadAttribute,
		}
	}
	return f
}

func (w *weaponFile) toDomain() *build.WeaponConfig {
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

func weaponFileFrom(cfg *build.WeaponConfig) *weaponFile {
	if cfg == nil {
		return nil
	}
	return &weaponFile{
		Item:        cfg.ItemID,
		Prefix:      cfg.PrefixID,
		Suffix:      cfg.SuffixID,
		Inscription: cfg.InscriptionID,
	}
}

func (s *armorSlotFile) toDomain() build.ArmorSlot {
	if s == nil {
		return build.ArmorSlot{}
	}
	return build.ArmorSlot{RuneID: s.Rune, InsigniaID: s.Insignia}
}

func armorSlotFileFrom(slot build.ArmorSlot) *armorSlotFile {
	if slot.RuneID == 0 && slot.InsigniaID == 0 {
		return nil
	}
	return &armorSlotFile{Rune: slot.RuneID, Insignia: slot.InsigniaID}
}

func padSkills(ids []int) []int {
	skills := make([]int, build.SkillSlots)
	copy(skills, ids)
	return skills
}
