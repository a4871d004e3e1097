package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gw1tools/gw1builds-sub003/internal/entities/build"
	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <template.yaml>",
	Short: "Encode a template file into a skill template code",
	Long:  `Encode a YAML file with primary, secondary, attributes, and skills fields into a skill template code.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func runEncode(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0]) // nolint:gosec // path comes from the CLI argument
	if err != nil {
		return fmt.Errorf("failed to read template file: %w", err)
	}

	var doc struct {
		Primary    string         `yaml:"primary"`
		Secondary  string         `yaml:"secondary"`
		Attributes map[string]int `yaml:"attributes"`
		Skills     []int          `yaml:"skills"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("failed to parse template file: %w", err)
	}
	if doc.Secondary == "" {
		doc.Secondary = build.ProfessionNone
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.EncodeTemplate(cmd.Context(), &buildsvc.EncodeTemplateInput{
		Template: &build.DecodedTemplate{
			Primary:    doc.Primary,
			Secondary:  doc.Secondary,
			Attributes: doc.Attributes,
			Skills:     padSkills(doc.Skills),
		},
	})
	if err != nil {
		return err
	}

	fmt.Println(out.Code)
	return nil
}
