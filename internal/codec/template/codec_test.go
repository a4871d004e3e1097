package template_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/template"
	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
)

func newCodec(t *testing.T) *template.Codec {
	t.Helper()
	data, err := gamedata.Load()
	require.NoError(t, err)
	codec, err := template.New(&template.Config{GameData: data})
	require.NoError(t, err)
	return codec
}

func TestNew_RequiresGameData(t *testing.T) {
	_, err := template.New(&template.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecode_KnownCode(t *testing.T) {
	codec := newCodec(t)

	decoded, err := codec.Decode("OQhjIoBooSqDuN2kkOhARAFAAA")
	require.NoError(t, err)

	assert.Equal(t, build.ProfessionMesmer, decoded.Primary)
	assert.Equal(t, build.ProfessionRitualist, decoded.Secondary)
	assert.Equal(t, map[string]int{
		"Illusion Magic":   8,
		"Domination Magic": 10,
		"Channeling Magic": 10,
	}, decoded.Attributes)
	assert.Equal(t, []int{234, 878, 2358, 932, 33, 17, 5, 0}, decoded.Skills)
}

func TestDecode_EmptyBar(t *testing.T) {
	codec := newCodec(t)

	decoded, err := codec.Decode("OgMAAAAAAAAAAAAA")
	require.NoError(t, err)

	assert.Equal(t, build.ProfessionRanger, decoded.Primary)
	assert.Equal(t, build.ProfessionMonk, decoded.Secondary)
	assert.Empty(t, decoded.Attributes)
	assert.Equal(t, make([]int, build.SkillSlots), decoded.Skills)
}

func TestDecode_DropsZeroAttributeID(t *testing.T) {
	codec := newCodec(t)

	// Encodes an attribute entry with id 0, which must not survive decode.
	decoded, err := codec.Decode("OgVDoMrwQADKD4OLDwgcAsAAA")
	require.NoError(t, err)

	assert.Equal(t, build.ProfessionElementalist, decoded.Primary)
	assert.Equal(t, map[string]int{
		"Fire Magic":     12,
		"Energy Storage": 10,
	}, decoded.Attributes)
}

func TestDecode_UnknownAttributeIDsStayDistinct(t *testing.T) {
	codec := newCodec(t)

	// Carries attribute ids 26 and 27, neither of which exists in the
	// lookup tables, alongside one known attribute.
	decoded, err := codec.Decode("OQBTortFIAAAAAAAAAAAA")
	require.NoError(t, err)

	assert.Equal(t, build.ProfessionMesmer, decoded.Primary)
	assert.Equal(t, map[string]int{
		"Unknown (26)":   5,
		"Unknown (27)":   6,
		"Illusion Magic": 4,
	}, decoded.Attributes)
}

func TestDecode_Whitespace(t *testing.T) {
	codec := newCodec(t)

	decoded, err := codec.Decode("  OgMAAAAAAAAAAAAA \n")
	require.NoError(t, err)
	assert.Equal(t, build.ProfessionRanger, decoded.Primary)
}

func TestDecode_ErrorTaxonomy(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name  string
		code  string
		check func(error) bool
		want  errors.Code
	}{
		{"empty", "", errors.IsEmptyTemplate, errors.CodeEmptyTemplate},
		{"whitespace only", "   ", errors.IsEmptyTemplate, errors.CodeEmptyTemplate},
		{"too long", strings.Repeat("A", 501), errors.IsTemplateTooLong, errors.CodeTemplateTooLong},
		{"bad character", "OgMA!AAA", errors.IsInvalidEncoding, errors.CodeInvalidEncoding},
		{"truncated header", "OQ", errors.IsInvalidEncoding, errors.CodeInvalidEncoding},
		{"truncated attributes", "OQhjIo", errors.IsInvalidEncoding, errors.CodeInvalidEncoding},
		{"equipment template", "PkpQNAAA", errors.IsNotSkillTemplate, errors.CodeNotSkillTemplate},
		{"unrecognized type", "DkpQNAAA", errors.IsNotSkillTemplate, errors.CodeNotSkillTemplate},
		{"profession out of range", "OADAAAAAAAAAAAAA", errors.IsMalformedTemplate, errors.CodeMalformedTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.code)
			require.Error(t, err)
			assert.True(t, tt.check(err), "got %v, want code %s", err, tt.want)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	codec := newCodec(t)

	original := &build.DecodedTemplate{
		Primary:   build.ProfessionWarrior,
		Secondary: build.ProfessionNone,
		Attributes: map[string]int{
			"Strength":    12,
			"Axe Mastery": 12,
			"Tactics":     3,
		},
		Skills: []int{330, 337, 355, 346, 27, 0, 0, 2356},
	}

	code, err := codec.Encode(original)
	require.NoError(t, err)

	decoded, err := codec.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestEncode_NormalizesShortSkillList(t *testing.T) {
	codec := newCodec(t)

	code, err := codec.Encode(&build.DecodedTemplate{
		Primary:   build.ProfessionMonk,
		Secondary: "",
		Skills:    []int{1234},
	})
	require.NoError(t, err)

	decoded, err := codec.Decode(code)
	require.NoError(t, err)
	assert.Equal(t, build.ProfessionNone, decoded.Secondary)
	assert.Equal(t, []int{1234, 0, 0, 0, 0, 0, 0, 0}, decoded.Skills)
}

func TestEncode_Rejections(t *testing.T) {
	codec := newCodec(t)

	tests := []struct {
		name string
		in   *build.DecodedTemplate
	}{
		{"nil template", nil},
		{"unknown profession", &build.DecodedTemplate{Primary: "Commando"}},
		{"unknown attribute", &build.DecodedTemplate{
			Primary: build.ProfessionWarrior, Attributes: map[string]int{"Luck": 5},
		}},
		{"points over cap", &build.DecodedTemplate{
			Primary: build.ProfessionWarrior, Attributes: map[string]int{"Strength": 16},
		}},
		{"too many skills", &build.DecodedTemplate{
			Primary: build.ProfessionWarrior, Skills: make([]int, 9),
		}},
		{"negative skill", &build.DecodedTemplate{
			Primary: build.ProfessionWarrior, Skills: []int{-1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Encode(tt.in)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestIsValid(t *testing.T) {
	codec := newCodec(t)

	assert.True(t, codec.IsValid("OQhjIoBooSqDuN2kkOhARAFAAA"))
	assert.False(t, codec.IsValid(""))
	assert.False(t, codec.IsValid("not a template"))
}

func TestPrimaryProfession(t *testing.T) {
	codec := newCodec(t)

	prof, ok := codec.PrimaryProfession("OQhjIoBooSqDuN2kkOhARAFAAA")
	require.True(t, ok)
	assert.Equal(t, build.ProfessionMesmer, prof)

	_, ok = codec.PrimaryProfession("garbage!")
	assert.False(t, ok)
}

// Round-trip over randomly generated templates. Attribute id 0 is excluded
// because the decoder drops it by design.
func TestRoundTripProperty(t *testing.T) {
	data, err := gamedata.Load()
	require.NoError(t, err)
	codec, err := template.New(&template.Config{GameData: data})
	require.NoError(t, err)

	professions := []string{
		build.ProfessionNone, build.ProfessionWarrior, build.ProfessionRanger,
		build.ProfessionMonk, build.ProfessionNecromancer, build.ProfessionMesmer,
		build.ProfessionElementalist, build.ProfessionAssassin,
		build.ProfessionRitualist, build.ProfessionParagon, build.ProfessionDervish,
	}
	attributeIDs := make([]int, 0, 44)
	for id := 1; id <= 44; id++ {
		if data.AttributeName(id) != gamedata.UnknownName {
			attributeIDs = append(attributeIDs, id)
		}
	}

	rapid.Check(t, func(t *rapid.T) {
		original := &build.DecodedTemplate{
			Primary:    rapid.SampledFrom(professions).Draw(t, "primary"),
			Secondary:  rapid.SampledFrom(professions).Draw(t, "secondary"),
			Attributes: map[string]int{},
			Skills:     make([]int, build.SkillSlots),
		}
		for _, id := range rapid.SliceOfNDistinct(rapid.SampledFrom(attributeIDs), 0, 6, rapid.ID[int]).Draw(t, "attrs") {
			original.Attributes[data.AttributeName(id)] = rapid.IntRange(1, 15).Draw(t, "points")
		}
		for i := range original.Skills {
			original.Skills[i] = rapid.IntRange(0, 3431).Draw(t, "skill")
		}

		code, err := codec.Encode(original)
		require.NoError(t, err)
		decoded, err := codec.Decode(code)
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})
}
