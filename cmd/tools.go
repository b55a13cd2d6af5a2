package cmd

import (
	"github.com/spf13/cobra"

	"github.com/searchcmp/searchcmp-cli/internal/config"
	"github.com/searchcmp/searchcmp-cli/internal/ui/console"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List configured search tools and the diff pair",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			ui := console.New()
			return ui.RunToolsImperative(cfg)
		},
	}
	rootCmd.AddCommand(cmd)
}
