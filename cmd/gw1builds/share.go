package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/share"
	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var (
	shareBaseURL   string
	shareMaxURLLen int
)

var shareCmd = &cobra.Command{
	Use:   "share <build.yaml>",
	Short: "Build a shareable URL from a build file",
	Long:  `Build a shareable URL from a YAML build file. If the build exceeds the URL length ceiling, parts are dropped in a fixed order and the step taken is reported on stderr.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	shareCmd.Flags().StringVar(&shareBaseURL, "base-url", "", "base URL for generated links (default "+share.DefaultBaseURL+")")
	shareCmd.Flags().IntVar(&shareMaxURLLen, "max-url-len", 0, "URL length ceiling before degradation (default 1800)")
}

func runShare(cmd *cobra.Command, args []string) error {
	b, err := loadBuildFile(args[0])
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}

	out, err := svc.EncodeShareLink(cmd.Context(), &buildsvc.EncodeShareLinkInput{Build: b})
	if err != nil {
		return err
	}

	if out.Truncated {
		fmt.Fprintf(os.Stderr, "warning: %s\n", out.Message)
	}
	fmt.Println(out.URL)
	return nil
}
