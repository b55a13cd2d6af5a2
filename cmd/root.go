package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/searchcmp/searchcmp-cli/internal/assets"
	"github.com/searchcmp/searchcmp-cli/internal/compare"
	"github.com/searchcmp/searchcmp-cli/internal/config"
	"github.com/searchcmp/searchcmp-cli/internal/logging"
	"github.com/searchcmp/searchcmp-cli/internal/ui/console"
)

var cfgFile string
var verbose bool
var pick bool
var summary bool
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "searchcmp [flags] [--] <arg>...",
	Short: "Run several search tools with the same arguments and diff their sorted output",
	Long: "searchcmp runs every configured search tool with the given arguments, " +
		"captures each tool's stdout, sorts the lines, and prints a unified diff " +
		"between the configured pair. The arguments are not interpreted: everything " +
		"after the first positional token is forwarded to the tools verbatim.",
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		if pick {
			pair, err := console.PickPair(cfg)
			if err != nil {
				return err
			}
			cfg.Compare = pair
		}
		ui := console.New()
		rep, err := compare.New(cfg, compare.ExecRunner{}, ui).Run(args)
		if err != nil {
			return err
		}
		ui.PrintDiff(rep.Diff)
		if summary {
			ui.PrintSummary(rep)
		}
		return nil
	},
}

func Execute() error { return rootCmd.Execute() }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/searchcmp); all *.yaml in that directory are merged")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show executed commands and debug detail")
	rootCmd.Flags().BoolVar(&pick, "pick", false, "choose the diff pair interactively for this run")
	rootCmd.Flags().BoolVar(&summary, "summary", false, "append a per-tool capture summary after the diff")
	// Search args pass through untouched, even when they look like flags:
	// parsing stops at the first positional token.
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Version = version
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	var cfgDir string
	if cfgFile != "" {
		cfgDir = filepath.Dir(cfgFile)
	} else {
		dir, _ := os.UserConfigDir()
		cfgDir = filepath.Join(dir, "searchcmp")
	}
	// Ensure config directory and default tools.yaml exist
	_ = os.MkdirAll(cfgDir, 0o755)
	_ = assets.WriteDefaultToolsIfMissing(cfgDir)
	// Gather all YAML files and load
	entries, _ := os.ReadDir(cfgDir)
	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		low := strings.ToLower(e.Name())
		if strings.HasSuffix(low, ".yaml") || strings.HasSuffix(low, ".yml") {
			files = append(files, filepath.Join(cfgDir, e.Name()))
		}
	}
	if len(files) == 0 {
		logging.Error("no YAML config files found in " + cfgDir)
		os.Exit(1)
	}
	cfg, err := config.LoadFromFiles(files)
	if err != nil {
		logging.Error("config error: " + err.Error())
		os.Exit(1)
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		logging.Error("schema error: " + err.Error())
		os.Exit(1)
	}
	logging.Init()
	logging.SetVerbose(verbose)
}
