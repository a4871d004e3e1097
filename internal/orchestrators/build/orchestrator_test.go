package build_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/share"
	"github.com/gw1tools/gw1builds-sub003/internal/codec/template"
	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	"github.com/gw1tools/gw1builds-sub003/internal/equipment"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
	orchestrator "github.com/gw1tools/gw1builds-sub003/internal/orchestrators/build"
	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
	"github.com/gw1tools/gw1builds-sub003/internal/testutils/builders"
)

func newService(t *testing.T) buildsvc.Service {
	t.Helper()

	data, err := gamedata.Load()
	require.NoError(t, err)
	templates, err := template.New(&template.Config{GameData: data})
	require.NoError(t, err)
	shares, err := share.New(&share.Config{Templates: templates})
	require.NoError(t, err)
	resolver, err := equipment.New(&equipment.Config{GameData: data})
	require.NoError(t, err)

	svc, err := orchestrator.NewOrchestrator(&orchestrator.Config{
		Templates: templates,
		Shares:    shares,
		Equipment: resolver,
	})
	require.NoError(t, err)
	return svc
}

func TestNewOrchestrator_RequiresDependencies(t *testing.T) {
	_, err := orchestrator.NewOrchestrator(&orchestrator.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestDecodeTemplate(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	out, err := svc.DecodeTemplate(ctx, &buildsvc.DecodeTemplateInput{Code: "OQhjIoBooSqDuN2kkOhARAFAAA"})
	require.NoError(t, err)
	assert.Equal(t, build.ProfessionMesmer, out.Template.Primary)
	assert.Equal(t, build.ProfessionRitualist, out.Template.Secondary)

	_, err = svc.DecodeTemplate(ctx, &buildsvc.DecodeTemplateInput{Code: "   "})
	require.Error(t, err)
	assert.True(t, errors.IsEmptyTemplate(err))
}

func TestEncodeTemplate_RoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	tmpl := &build.DecodedTemplate{
		Primary:    build.ProfessionRanger,
		Secondary:  build.ProfessionMonk,
		Attributes: map[string]int{"Expertise": 10, "Marksmanship": 12},
		Skills:     []int{17, 33, 0, 0, 0, 0, 0, 0},
	}

	encoded, err := svc.EncodeTemplate(ctx, &buildsvc.EncodeTemplateInput{Template: tmpl})
	require.NoError(t, err)

	decoded, err := svc.DecodeTemplate(ctx, &buildsvc.DecodeTemplateInput{Code: encoded.Code})
	require.NoError(t, err)
	assert.Equal(t, tmpl, decoded.Template)

	_, err = svc.EncodeTemplate(ctx, &buildsvc.EncodeTemplateInput{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestShareLink_RoundTrip(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	in := builders.NewShareableBuildBuilder().
		WithName("Barrage Hero").
		WithTags("pve", "hero").
		WithBar(builders.NewSkillBarBuilder().
			WithName("Jin").
			WithProfessions(build.ProfessionRanger, build.ProfessionNone).
			WithAttribute("Expertise", 12).
			WithAttribute("Marksmanship", 12).
			WithSkills(17, 33, 330).
			Build()).
		Build()

	encoded, err := svc.EncodeShareLink(ctx, &buildsvc.EncodeShareLinkInput{Build: in})
	require.NoError(t, err)
	assert.False(t, encoded.Truncated)
	assert.Equal(t, "not truncated", encoded.Message)

	decoded, err := svc.DecodeShareLink(ctx, &buildsvc.DecodeShareLinkInput{URL: encoded.URL})
	require.NoError(t, err)
	assert.Empty(t, decoded.Warnings)
	assert.Equal(t, in, decoded.Build)
}

func TestDecodeShareLink_NoData(t *testing.T) {
	svc := newService(t)

	_, err := svc.DecodeShareLink(context.Background(), &buildsvc.DecodeShareLinkInput{URL: "https://example.invalid/?x=1"})
	require.Error(t, err)
	assert.True(t, errors.IsNoData(err))
}

func TestResolveAttributes(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	bar := &build.SkillBar{
		Primary:    build.ProfessionWarrior,
		Secondary:  build.ProfessionNone,
		Attributes: map[string]int{"Strength": 9, "Axe Mastery": 12},
		Skills:     make([]int, build.SkillSlots),
		Equipment: &build.Equipment{
			WeaponSets: []build.WeaponSet{{
				MainHand: &build.WeaponConfig{ItemID: 101, SuffixID: 212},
			}},
			Armor: &build.ArmorSetConfig{
				// Superior Strength rune plus a Mesmer-bound rune.
				Head:  build.ArmorSlot{RuneID: 303},
				Chest: build.ArmorSlot{RuneID: 341},
			},
		},
	}

	out, err := svc.ResolveAttributes(ctx, &buildsvc.ResolveAttributesInput{Bar: bar})
	require.NoError(t, err)

	assert.Equal(t, 12, out.Attributes["Strength"])
	assert.Equal(t, 12, out.Attributes["Axe Mastery"])
	// Suffix "of Swordsmanship" floors Swordsmanship at 9.
	assert.Equal(t, 9, out.Attributes["Swordsmanship"])

	require.Len(t, out.Invalid, 1)
	assert.Equal(t, string(build.SlotChest), out.Invalid[0].Slot)
	assert.Equal(t, 341, out.Invalid[0].ItemID)
}

func TestRenderDescription(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	out, err := svc.RenderDescription(ctx, &buildsvc.RenderDescriptionInput{
		Text: "Deal 10...34 fire damage.",
		Rank: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Deal 29 fire damage.", out.Text)

	_, err = svc.RenderDescription(ctx, &buildsvc.RenderDescriptionInput{Text: "x", Rank: 21})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}
