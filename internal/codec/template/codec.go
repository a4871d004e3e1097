// Package template implements the bidirectional codec for the game's
// binary skill-template strings.
package template

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
)

// MaxCodeLen bounds accepted input before any parsing happens. It exists to
// cap decode cost on hostile input; real codes are far shorter.
const MaxCodeLen = 500

const (
	typeSkill     = 14
	typeEquipment = 15

	headerVersion = 0

	maxProfessionID = 10

	// field width controls and their base widths
	professionBaseWidth = 4
	attributeBaseWidth  = 4
	skillBaseWidth      = 8

	maxAttributePoints = 15
)

// Config holds the dependencies for the template codec
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

// Codec converts between template codes and DecodedTemplate values. It is
// stateless apart from the lookup tables and safe for concurrent use.
type Codec struct {
	data gamedata.Service
}

// New creates a new template codec
func New(cfg *Config) (*Codec, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &Codec{data: cfg.GameData}, nil
}

// Decode parses a template code into its structured form. Failures carry
// one of the codec error codes; see the errors package.
func (c *Codec) Decode(code string) (*build.DecodedTemplate, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.EmptyTemplate("template code is empty")
	}
	if len(code) > MaxCodeLen {
		return nil, errors.TemplateTooLongf("template code is %d characters, limit is %d", len(code), MaxCodeLen)
	}

	r, err := newBitReader(code)
	if err != nil {
		return nil, err
	}

	header, err := r.read(4)
	if err != nil {
		return nil, err
	}
	if header != typeSkill {
		if header == typeEquipment {
			return nil, errors.NotSkillTemplate("this is an equipment template, not a skill template")
		}
		return nil, errors.NotSkillTemplate("unrecognized template type").
			WithMeta("template_type", header)
	}
	// The version field has only ever held one value; tolerate others as
	// long as the rest of the stream parses.
	if _, err := r.read(4); err != nil {
		return nil, err
	}

	profCtl, err := r.read(2)
	if err != nil {
		return nil, err
	}
	profWidth := profCtl*2 + professionBaseWidth

	primary, err := r.read(profWidth)
	if err != nil {
		return nil, err
	}
	secondary, err := r.read(profWidth)
	if err != nil {
		return nil, err
	}
	if primary > maxProfessionID {
		return nil, errors.MalformedTemplate("primary profession id out of range").
			WithMeta("profession_id", primary)
	}
	if secondary > maxProfessionID {
		return nil, errors.MalformedTemplate("secondary profession id out of range").
			WithMeta("profession_id", secondary)
	}

	attrCount, err := r.read(4)
	if err != nil {
		return nil, err
	}
	attrCtl, err := r.read(4)
	if err != nil {
		return nil, err
	}
	attrWidth := attrCtl + attributeBaseWidth

	attributes := make(map[string]int)
	for i := 0; i < attrCount; i++ {
		id, err := r.read(attrWidth)
		if err != nil {
			return nil, err
		}
		points, err := r.read(4)
		if err != nil {
			return nil, err
		}
		if id == 0 || points == 0 {
			continue
		}
		name := c.data.AttributeName(id)
		if name == gamedata.UnknownName {
			// Keep distinct unrecognized ids from collapsing into one key.
			name = fmt.Sprintf("%s (%d)", gamedata.UnknownName, id)
		}
		attributes[name] = points
	}

	skillCtl, err := r.read(4)
	if err != nil {
		return nil, err
	}
	skillWidth := skillCtl + skillBaseWidth

	// Pad with empty slots if the stream yields fewer than eight skills.
	skills := make([]int, build.SkillSlots)
	for i := 0; i < build.SkillSlots && r.remaining() >= skillWidth; i++ {
		skills[i], _ = r.read(skillWidth)
	}

	return &build.DecodedTemplate{
		Primary:    c.data.ProfessionName(primary),
		Secondary:  c.data.ProfessionName(secondary),
		Attributes: attributes,
		Skills:     skills,
	}, nil
}

// Encode renders a decoded template back into a code string, choosing the
// narrowest field widths that fit the data.
func (c *Codec) Encode(t *build.DecodedTemplate) (string, error) {
	if t == nil {
		return "", errors.InvalidArgument("template is required")
	}

	primary, err := c.professionID("primary", t.Primary)
	if err != nil {
		return "", err
	}
	secondary, err := c.professionID("secondary", t.Secondary)
	if err != nil {
		return "", err
	}

	type attrEntry struct{ id, points int }
	attrs := make([]attrEntry, 0, len(t.Attributes))
	for name, points := range t.Attributes {
		if points == 0 {
			continue
		}
		if points < 0 || points > maxAttributePoints {
			return "", errors.InvalidArgumentf("attribute %q has %d points, must be between 0 and %d",
				name, points, maxAttributePoints)
		}
		id, ok := c.data.AttributeID(name)
		if !ok {
			return "", errors.InvalidArgumentf("unknown attribute %q", name)
		}
		attrs = append(attrs, attrEntry{id: id, points: points})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].id < attrs[j].id })
	if len(attrs) > 15 {
		return "", errors.InvalidArgumentf("%d attributes cannot fit in a template", len(attrs))
	}

	if len(t.Skills) > build.SkillSlots {
		return "", errors.InvalidArgumentf("%d skills exceed the %d slots", len(t.Skills), build.SkillSlots)
	}
	skills := make([]int, build.SkillSlots)
	for i, id := range t.Skills {
		if id < 0 {
			return "", errors.InvalidArgumentf("skill id %d is negative", id)
		}
		skills[i] = id
	}

	profWidth := professionBaseWidth
	if w := bitsFor(max(primary, secondary)); w > profWidth {
		profWidth = w + w%2
	}
	attrWidth := attributeBaseWidth
	for _, a := range attrs {
		if w := bitsFor(a.id); w > attrWidth {
			attrWidth = w
		}
	}
	skillWidth := skillBaseWidth
	for _, id := range skills {
		if w := bitsFor(id); w > skillWidth {
			skillWidth = w
		}
	}
	// Width controls are 4-bit fields, which caps how wide ids can get.
	if attrWidth-attributeBaseWidth > 15 {
		return "", errors.InvalidArgument("attribute id too large to encode")
	}
	if skillWidth-skillBaseWidth > 15 {
		return "", errors.InvalidArgument("skill id too large to encode")
	}

	var w bitWriter
	w.write(typeSkill, 4)
	w.write(headerVersion, 4)
	w.write((profWidth-professionBaseWidth)/2, 2)
	w.write(primary, profWidth)
	w.write(secondary, profWidth)
	w.write(len(attrs), 4)
	w.write(attrWidth-attributeBaseWidth, 4)
	for _, a := range attrs {
		w.write(a.id, attrWidth)
		w.write(a.points, 4)
	}
	w.write(skillWidth-skillBaseWidth, 4)
	for _, id := range skills {
		w.write(id, skillWidth)
	}

	return w.String(), nil
}

// IsValid reports whether a code decodes cleanly.
func (c *Codec) IsValid(code string) bool {
	_, err := c.Decode(code)
	return err == nil
}

// PrimaryProfession returns the primary profession of a code, or false if
// the code does not decode.
func (c *Codec) PrimaryProfession(code string) (string, bool) {
	decoded, err := c.Decode(code)
	if err != nil {
		return "", false
	}
	return decoded.Primary, true
}

func (c *Codec) professionID(field, name string) (int, error) {
	if name == "" {
		return 0, nil
	}
	id, ok := c.data.ProfessionID(name)
	if !ok {
		return 0, errors.InvalidArgumentf("unknown %s profession %q", field, name)
	}
	return id, nil
}
