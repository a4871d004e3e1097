// Package main is the entry point for the gw1builds command line tool
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gw1tools/gw1builds-sub003/internal/codec/share"
	"github.com/gw1tools/gw1builds-sub003/internal/codec/template"
	"github.com/gw1tools/gw1builds-sub003/internal/equipment"
	"github.com/gw1tools/gw1builds-sub003/internal/gamedata"
	orchestrator "github.com/gw1tools/gw1builds-sub003/internal/orchestrators/build"
	buildsvc "github.com/gw1tools/gw1builds-sub003/internal/services/build"
)

var rootCmd = &cobra.Command{
	Use:   "gw1builds",
	Short: "Guild Wars build codec tool",
	Long:  `gw1builds converts between skill template codes, shareable build URLs, and readable build dumps.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(unshareCmd)
	rootCmd.AddCommand(renderCmd)
}

// newService wires the full codec stack against the embedded game data.
func newService() (buildsvc.Service, error) {
	data := gamedata.Default()

	templates, err := template.New(&template.Config{GameData: data})
	if err != nil {
		return nil, fmt.Errorf("failed to create template codec: %w", err)
	}

	shares, err := share.New(&share.Config{
		Templates: templates,
		BaseURL:   shareBaseURL,
		MaxURLLen: shareMaxURLLen,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create share codec: %w", err)
	}

	resolver, err := equipment.New(&equipment.Config{GameData: data})
	if err != nil {
		return nil, fmt.Errorf("failed to create equipment resolver: %w", err)
	}

	return orchestrator.NewOrchestrator(&orchestrator.Config{
		Templates: templates,
		Shares:    shares,
		Equipment: resolver,
	})
}
