package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <template-code>",
	Short: "Decode a skill template code",
	Long:  `Decode a skill template code into professions, attributes, and skill ids, printed as YAML.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.DecodeTemplate(cmd.Context(), &buildsvc.DecodeTemplateInput{Code: args[0]})
	if err != nil {
		return err
	}

	doc := struct {
		Primary    string         `yaml:"primary"`
		Secondary  string         `yaml:"secondary"`
		Attributes map[string]int `yaml:"attributes,omitempty"`
		Skills     []int          `yaml:"skills"`
	}{
		Primary:    out.Template.Primary,
		Secondary:  out.Template.Secondary,
		Attributes: out.Template.Attributes,
		Skills:     out.Template.Skills,
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return enc.Close()
}
