// Package gamedata provides read-only lookup tables for the static game
// reference datasets (professions, attributes, items, armor upgrades).
package gamedata

//go:generate mockgen -destination=mock/mock_service.go -package=gamedatamock github.com/gw1tools/gw1builds-sub003/internal/gamedata Service

// Service is the read-only domain lookup interface consumed by the codecs
// and the equipment resolver. All lookups are total: unknown ids return the
// "Unknown" sentinel or a zero record with ok=false, never an error.
type Service interface {
	// ProfessionName maps a profession id to its name; id 0 is "None",
	// anything unrecognized is "Unknown"
	ProfessionName(id int) string

	// ProfessionID maps a profession name back to its id
	ProfessionID(name string) (int, bool)

	// AttributeName maps an attribute id to its name
	AttributeName(id int) string

	// AttributeID maps an attribute name back to its id
	AttributeID(name string) (int, bool)

	// SkillTypeName maps a skill type id to its name
	SkillTypeName(id int) string

	// CampaignName maps a campaign id to its name
	CampaignName(id int) string

	// Item looks up a weapon or off-hand item record
	Item(id int) (Item, bool)

	// Modifier looks up a weapon modifier (prefix, suffix, or inscription)
	Modifier(id int) (Modifier, bool)

	// Rune looks up an armor rune record
	Rune(id int) (Rune, bool)

	// Insignia looks up an armor insignia record
	Insignia(id int) (Insignia, bool)
}

// Item is one weapon or off-hand reference record.
type Item struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	// Type is the weapon class, e.g. "sword" or "focus"
	Type string `yaml:"type"`
	// TwoHanded items occupy both hands of a weapon set
	TwoHanded bool `yaml:"two_handed"`
}

// Modifier is a weapon upgrade record. Suffix modifiers may grant an
// attribute floor: the wielder's effective value for Attribute is raised to
// at least Floor.
type Modifier struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
	// Position is "prefix", "suffix", or "inscription"
	Position  string `yaml:"position"`
	Attribute string `yaml:"attribute"`
	Floor     int    `yaml:"floor"`
}

// Rune is an armor rune record. Profession-bound runes name the profession
// whose armor they fit; an empty Profession means unrestricted.
type Rune struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Attribute  string `yaml:"attribute"`
	Bonus      int    `yaml:"bonus"`
	Profession string `yaml:"profession"`
}

// Insignia is an armor insignia record, optionally profession-bound.
type Insignia struct {
	ID         int    `yaml:"id"`
	Name       string `yaml:"name"`
	Profession string `yaml:"profession"`
}
