// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
)

// SkillBarBuilder provides a fluent interface for building test SkillBar instances
type SkillBarBuilder struct {
	bar *build.SkillBar
}

// NewSkillBarBuilder creates a new builder with a minimal Warrior bar
func NewSkillBarBuilder() *SkillBarBuilder {
	return &SkillBarBuilder{
		bar: &build.SkillBar{
			Primary:     build.ProfessionWarrior,
			Secondary:   build.ProfessionNone,
			Attributes:  map[string]int{},
			Skills:      make([]int, build.SkillSlots),
			PlayerCount: 1,
		},
	}
}

// WithName sets the character name
func (b *SkillBarBuilder) WithName(name string) *SkillBarBuilder {
	b.bar.Name = name
	return b
}

// WithHero sets the hero occupying the slot
func (b *SkillBarBuilder) WithHero(name string) *SkillBarBuilder {
	b.bar.HeroName = name
	return b
}

// WithProfessions sets the profession pair
func (b *SkillBarBuilder) WithProfessions(primary, secondary string) *SkillBarBuilder {
	b.bar.Primary = primary
	b.bar.Secondary = secondary
	return b
}

// WithAttribute sets one attribute allocation
func (b *SkillBarBuilder) WithAttribute(name string, points int) *SkillBarBuilder {
	b.bar.Attributes[name] = points
	return b
}

// WithSkills fills the skill slots; missing trailing slots stay empty
func (b *SkillBarBuilder) WithSkills(ids ...int) *SkillBarBuilder {
	skills := make([]int, build.SkillSlots)
	copy(skills, ids)
	b.bar.Skills = skills
	return b
}

// WithPlayerCount sets the team-slot multiplier
func (b *SkillBarBuilder) WithPlayerCount(count int) *SkillBarBuilder {
	b.bar.PlayerCount = count
	return b
}

// WithEquipment attaches an equipment configuration
func (b *SkillBarBuilder) WithEquipment(eq *build.Equipment) *SkillBarBuilder {
	b.bar.Equipment = eq
	return b
}

// WithVariant appends a variant
func (b *SkillBarBuilder) WithVariant(v build.Variant) *SkillBarBuilder {
	b.bar.Variants = append(b.bar.Variants, v)
	return b
}

// Build returns the constructed skill bar
func (b *SkillBarBuilder) Build() *build.SkillBar {
	return b.bar
}

// ShareableBuildBuilder provides a fluent interface for building test
// ShareableBuild instances
type ShareableBuildBuilder struct {
	build *build.ShareableBuild
}

// NewShareableBuildBuilder creates a new builder with no bars
func NewShareableBuildBuilder() *ShareableBuildBuilder {
	return &ShareableBuildBuilder{
		build: &build.ShareableBuild{
			Name: "Test Build",
		},
	}
}

// WithName sets the build name
func (b *ShareableBuildBuilder) WithName(name string) *ShareableBuildBuilder {
	b.build.Name = name
	return b
}

// WithTags sets the tag list
func (b *ShareableBuildBuilder) WithTags(tags ...string) *ShareableBuildBuilder {
	b.build.Tags = tags
	return b
}

// WithBar appends a skill bar
func (b *ShareableBuildBuilder) WithBar(bar *build.SkillBar) *ShareableBuildBuilder {
	b.build.Bars = append(b.build.Bars, *bar)
	return b
}

// Build returns the constructed shareable build
func (b *ShareableBuildBuilder) Build() *build.ShareableBuild {
	return b.build
}
