// Package build implements the build orchestrator tying the codecs, the
// equipment resolver, and the scaling engine together behind the service
// interface.
package build

import (
	"context"
	"log/slog"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/share"
	"github.com/gw1tools/gw1builds-sub003/internal/codec/template"
	"github.com/gw1tools/gw1builds-sub003/internal/equipment"
	"github.com/gw1tools/gw1builds-sub003/internal/errors"
	"github.com/gw1tools/gw1builds-sub003/internal/scaling"
	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

// Config holds the dependencies for the build orchestrator
type Config struct {
	Templates *template.Codec
	Shares    *share.Codec
	Equipment *equipment.Resolver
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Templates == nil {
		vb.RequiredField("Templates")
	}
	if c.Shares == nil {
		vb.RequiredField("Shares")
	}
	if c.Equipment == nil {
		vb.RequiredField("Equipment")
	}

	return vb.Build()
}

type orchestrator struct {
	templates *template.Codec
	shares    *share.Codec
	equipment *equipment.Resolver
}

var _ buildsvc.Service = (*orchestrator)(nil)

// NewOrchestrator creates a new build orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (buildsvc.Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		templates: cfg.Templates,
		shares:    cfg.Shares,
		equipment: cfg.Equipment,
	}, nil
}

func (o *orchestrator) DecodeTemplate(ctx context.Context, input *buildsvc.DecodeTemplateInput) (*buildsvc.DecodeTemplateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	decoded, err := o.templates.Decode(input.Code)
	if err != nil {
		slog.DebugContext(ctx, "template decode failed",
			"code_len", len(input.Code),
			"error_code", errors.GetCode(err))
		return nil, err
	}

	return &buildsvc.DecodeTemplateOutput{Template: decoded}, nil
}

func (o *orchestrator) EncodeTemplate(ctx context.Context, input *buildsvc.EncodeTemplateInput) (*buildsvc.EncodeTemplateOutput, error) {
	if input == nil || input.Template == nil {
		return nil, errors.InvalidArgument("template is required")
	}

	code, err := o.templates.Encode(input.Template)
	if err != nil {
		return nil, err
	}

	return &buildsvc.EncodeTemplateOutput{Code: code}, nil
}

func (o *orchestrator) EncodeShareLink(ctx context.Context, input *buildsvc.EncodeShareLinkInput) (*buildsvc.EncodeShareLinkOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}

	out, err := o.shares.Encode(input.Build)
	if err != nil {
		return nil, err
	}
	if out.Truncated {
		slog.InfoContext(ctx, "share link degraded to fit",
			"build", input.Build.Name,
			"step", out.Message)
	}

	return &buildsvc.EncodeShareLinkOutput{
		URL:       out.URL,
		Truncated: out.Truncated,
		Message:   out.Message,
	}, nil
}

func (o *orchestrator) DecodeShareLink(ctx context.Context, input *buildsvc.DecodeShareLinkInput) (*buildsvc.DecodeShareLinkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.shares.Decode(input.URL)
	if err != nil {
		return nil, err
	}
	for _, w := range out.Warnings {
		slog.WarnContext(ctx, "share link decoded with warning", "warning", w)
	}

	return &buildsvc.DecodeShareLinkOutput{
		Build:    out.Build,
		Warnings: out.Warnings,
	}, nil
}

func (o *orchestrator) ResolveAttributes(ctx context.Context, input *buildsvc.ResolveAttributesInput) (*buildsvc.ResolveAttributesOutput, error) {
	if input == nil || input.Bar == nil {
		return nil, errors.InvalidArgument("skill bar is required")
	}

	bar := input.Bar
	effective := o.equipment.EffectiveAttributes(bar.Attributes, bar.Equipment)

	var invalid []buildsvc.InvalidItem
	if bar.Equipment != nil {
		for _, item := range o.equipment.ValidateArmorForProfession(bar.Equipment.Armor, bar.Primary) {
			invalid = append(invalid, buildsvc.InvalidItem{
				Slot:   string(item.Slot),
				Kind:   string(item.Kind),
				ItemID: item.ItemID,
				Reason: item.Reason,
			})
		}
	}

	return &buildsvc.ResolveAttributesOutput{
		Attributes: effective,
		Invalid:    invalid,
	}, nil
}

func (o *orchestrator) RenderDescription(ctx context.Context, input *buildsvc.RenderDescriptionInput) (*buildsvc.RenderDescriptionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Rank < 0 || input.Rank > scaling.MaxRank {
		return nil, errors.InvalidArgumentf("rank %d is outside [0, %d]", input.Rank, scaling.MaxRank)
	}

	return &buildsvc.RenderDescriptionOutput{
		Text: scaling.FormatDescription(input.Text, input.Rank),
	}, nil
}
