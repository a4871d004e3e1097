package main

import (
	"fmt"

	"github.com/spf13/cobra"

	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var renderRank int

var renderCmd = &cobra.Command{
	Use:   "render <description>",
	Short: "Render a skill description at an attribute rank",
	Long:  `Render a skill description, replacing every MIN...MAX range with the value the given attribute rank yields.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderRank, "rank", 12, "attribute rank to render at")
}

func runRender(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.RenderDescription(cmd.Context(), &buildsvc.RenderDescriptionInput{
		Text: args[0],
		Rank: renderRank,
	})
	if err != nil {
		return err
	}

	fmt.Println(out.Text)
	return nil
}
