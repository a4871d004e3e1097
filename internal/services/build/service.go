// Package build defines the interface for build codec operations
package build

//go:generate mockgen -destination=mock/mock_service.go -package=buildmock github.com/gw1tools/gw1builds-sub003/internal/services/build Service

import (
	"context"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
)

// Service defines the interface for build codec operations
type Service interface {
	// Template codec
	DecodeTemplate(ctx context.Context, input *DecodeTemplateInput) (*DecodeTemplateOutput, error)
	EncodeTemplate(ctx context.Context, input *EncodeTemplateInput) (*EncodeTemplateOutput, error)

	// Share links
	EncodeShareLink(ctx context.Context, input *EncodeShareLinkInput) (*EncodeShareLinkOutput, error)
	DecodeShareLink(ctx context.Context, input *DecodeShareLinkInput) (*DecodeShareLinkOutput, error)

	// Derived views
	ResolveAttributes(ctx context.Context, input *ResolveAttributesInput) (*ResolveAttributesOutput, error)
	RenderDescription(ctx context.Context, input *RenderDescriptionInput) (*RenderDescriptionOutput, error)
}

// DecodeTemplateInput defines the request for decoding a template code
type DecodeTemplateInput struct {
	Code string
}

// DecodeTemplateOutput defines the response for decoding a template code
type DecodeTemplateOutput struct {
	Template *build.DecodedTemplate
}

// EncodeTemplateInput defines the request for encoding a template
type EncodeTemplateInput struct {
	Template *build.DecodedTemplate
}

// EncodeTemplateOutput defines the response for encoding a template
type EncodeTemplateOutput struct {
	Code string
}

// EncodeShareLinkInput defines the request for building a share URL
type EncodeShareLinkInput struct {
	Build *build.ShareableBuild
}

// EncodeShareLinkOutput defines the response for building a share URL
type EncodeShareLinkOutput struct {
	URL       string
	Truncated bool
	// Message names the degradation step applied, or "not truncated"
	Message string
}

// DecodeShareLinkInput defines the request for decoding a share URL
type DecodeShareLinkInput struct {
	URL string
}

// DecodeShareLinkOutput defines the response for decoding a share URL
type DecodeShareLinkOutput struct {
	Build    *build.ShareableBuild
	Warnings []string
}

// ResolveAttributesInput defines the request for computing a bar's
// effective attributes from its equipment
type ResolveAttributesInput struct {
	Bar *build.SkillBar
}

// ResolveAttributesOutput defines the response for computing effective
// attributes
type ResolveAttributesOutput struct {
	// Attributes is the base allocation plus rune bonuses and weapon
	// suffix floors
	Attributes map[string]int
	// Invalid lists equipment pieces whose profession binding does not
	// match the bar
	Invalid []InvalidItem
}

// InvalidItem identifies one equipment piece bound to a foreign profession
type InvalidItem struct {
	Slot   string
	Kind   string
	ItemID int
	Reason string
}

// RenderDescriptionInput defines the request for rendering a skill
// description at an attribute rank
type RenderDescriptionInput struct {
	Text string
	Rank int
}

// RenderDescriptionOutput defines the response for rendering a skill
// description
type RenderDescriptionOutput struct {
	Text string
}
