package gamedata

import (
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
)

//go:embed data/*.yaml
var dataFS embed.FS

// UnknownName is the sentinel returned for ids the tables do not know.
const UnknownName = "Unknown"

// Tables is the immutable in-memory form of the reference datasets. It is
// safe for concurrent reads; nothing writes to it after Load returns.
type Tables struct {
	professions   map[int]string
	professionIDs map[string]int
	attributes    map[int]string
	attributeIDs  map[string]int
	skillTypes    map[int]string
	campaigns     map[int]string
	items         map[int]Item
	modifiers     map[int]Modifier
	runes         map[int]Rune
	insignias     map[int]Insignia
}

var _ Service = (*Tables)(nil)

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Default returns the process-wide lookup tables, loading the embedded
// datasets on first use. Concurrent first callers share one load. If the
// load fails the tables are left empty so later lookups miss
// deterministically instead of retrying.
func Default() Service {
	defaultOnce.Do(func() {
		t, err := Load()
		if err != nil {
			slog.Error("failed to load game data, lookups will return unknowns", "error", err)
			t = Empty()
		}
		defaultTables = t
	})
	return defaultTables
}

// Empty returns tables with no records; every lookup returns its sentinel.
func Empty() *Tables {
	return &Tables{
		professions:   map[int]string{},
		professionIDs: map[string]int{},
		attributes:    map[int]string{},
		attributeIDs:  map[string]int{},
		skillTypes:    map[int]string{},
		campaigns:     map[int]string{},
		items:         map[int]Item{},
		modifiers:     map[int]Modifier{},
		runes:         map[int]Rune{},
		insignias:     map[int]Insignia{},
	}
}

type namedRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// Load parses the embedded YAML datasets into lookup tables.
func Load() (*Tables, error) {
	t := Empty()

	var professions []namedRecord
	if err := loadFile("data/professions.yaml", &professions); err != nil {
		return nil, err
	}
	for _, p := range professions {
		t.professions[p.ID] = p.Name
		t.professionIDs[p.Name] = p.ID
	}

	var attributes []namedRecord
	if err := loadFile("data/attributes.yaml", &attributes); err != nil {
		return nil, err
	}
	for _, a := range attributes {
		t.attributes[a.ID] = a.Name
		t.attributeIDs[a.Name] = a.ID
	}

	var skillTypes []namedRecord
	if err := loadFile("data/skill_types.yaml", &skillTypes); err != nil {
		return nil, err
	}
	for _, s := range skillTypes {
		t.skillTypes[s.ID] = s.Name
	}

	var campaigns []namedRecord
	if err := loadFile("data/campaigns.yaml", &campaigns); err != nil {
		return nil, err
	}
	for _, c := range campaigns {
		t.campaigns[c.ID] = c.Name
	}

	var items []Item
	if err := loadFile("data/items.yaml", &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		t.items[it.ID] = it
	}

	var modifiers []Modifier
	if err := loadFile("data/modifiers.yaml", &modifiers); err != nil {
		return nil, err
	}
	for _, m := range modifiers {
		t.modifiers[m.ID] = m
	}

	var runes []Rune
	if err := loadFile("data/runes.yaml", &runes); err != nil {
		return nil, err
	}
	for _, r := range runes {
		t.runes[r.ID] = r
	}

	var insignias []Insignia
	if err := loadFile("data/insignias.yaml", &insignias); err != nil {
		return nil, err
	}
	for _, in := range insignias {
		t.insignias[in.ID] = in
	}

	return t, nil
}

func loadFile(path string, out interface{}) error {
	raw, err := dataFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// ProfessionName maps a profession id to its name.
func (t *Tables) ProfessionName(id int) string {
	if name, ok := t.professions[id]; ok {
		return name
	}
	return build.ProfessionUnknown
}

// ProfessionID maps a profession name back to its id.
func (t *Tables) ProfessionID(name string) (int, bool) {
	id, ok := t.professionIDs[name]
	return id, ok
}

// AttributeName maps an attribute id to its name.
func (t *Tables) AttributeName(id int) string {
	if name, ok := t.attributes[id]; ok {
		return name
	}
	return UnknownName
}

// AttributeID maps an attribute name back to its id.
func (t *Tables) AttributeID(name string) (int, bool) {
	id, ok := t.attributeIDs[name]
	return id, ok
}

// SkillTypeName maps a skill type id to its name.
func (t *Tables) SkillTypeName(id int) string {
	if name, ok := t.skillTypes[id]; ok {
		return name
	}
	return UnknownName
}

// CampaignName maps a campaign id to its name.
func (t *Tables) CampaignName(id int) string {
	if name, ok := t.campaigns[id]; ok {
		return name
	}
	return UnknownName
}

// Item looks up a weapon or off-hand item record.
func (t *Tables) Item(id int) (Item, bool) {
	it, ok := t.items[id]
	return it, ok
}

// Modifier looks up a weapon modifier record.
func (t *Tables) Modifier(id int) (Modifier, bool) {
	m, ok := t.modifiers[id]
	return m, ok
}

// Rune looks up an armor rune record.
func (t *Tables) Rune(id int) (Rune, bool) {
	r, ok := t.runes[id]
	return r, ok
}

// Insignia looks up an armor insignia record.
func (t *Tables) Insignia(id int) (Insignia, bool) {
	i, ok := t.insignias[id]
	return i, ok
}
