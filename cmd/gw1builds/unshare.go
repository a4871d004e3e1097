package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var unshareCmd = &cobra.Command{
	Use:   "unshare <url>",
	Short: "Decode a share URL into a build file",
	Long:  `Decode a share URL back into a YAML build dump on stdout. Recoverable oddities in the link are reported on stderr.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUnshare,
}

func runUnshare(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.DecodeShareLink(cmd.Context(), &buildsvc.DecodeShareLinkInput{URL: args[0]})
	if err != nil {
		return err
	}

	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(buildFileFrom(out.Build)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return enc.Close()
}
