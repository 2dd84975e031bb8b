package main

import (
	"fmt"
	"os"

	"earlyreturn/internal/config"
	"earlyreturn/internal/earlyreturn"
	"earlyreturn/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "earlyreturn",
	Short: "Reverse strings and compute factorials, returning early on trivial input",
	Long: `earlyreturn reverses text and computes factorials.

Run without arguments to print the demo: the reversed demo text followed by
the factorial of the demo input (both configurable, see "earlyreturn config show").`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, loadErr := loadConfig()
		if loadErr != nil {
			if cmd.Annotations[annotationConfigOptional] != "true" {
				return loadErr
			}
			loaded = config.DefaultConfig()
		}
		cfg = loaded

		var err error
		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		boot := logger.For(logging.CategoryBoot)
		if loadErr != nil {
			boot.Warn("ignoring unusable config, using defaults",
				zap.String("path", configPath),
				zap.Error(loadErr))
		}
		boot.Debug("config loaded",
			zap.String("path", configPath),
			zap.String("command", cmd.CommandPath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDemo,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (missing file means defaults)")

	rootCmd.Flags().BoolVar(&demoGraphemes, "graphemes", false, "Reverse the demo text by grapheme cluster")

	// Reverse flags
	reverseCmd.Flags().BoolVar(&reverseGraphemes, "graphemes", false, "Reverse by grapheme cluster instead of code point")

	// Factorial flags
	factorialCmd.Flags().BoolVar(&factorialStrict, "strict", false, "Fail on negative input or int overflow instead of clamping")
	factorialCmd.Flags().BoolVar(&factorialBig, "big", false, "Compute with arbitrary precision")
	factorialCmd.MarkFlagsMutuallyExclusive("strict", "big")

	// Config subcommands
	configInitCmd.Flags().BoolVar(&configForce, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	// Add commands to root
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(factorialCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// annotationConfigOptional marks commands that still run when the config
// file cannot be loaded or fails validation. They get the defaults instead.
const annotationConfigOptional = "config_optional"

// loadConfig reads and validates the file named by --config.
func loadConfig() (*config.Config, error) {
	loaded, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := loaded.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configPath, err)
	}
	return loaded, nil
}

var demoGraphemes bool

// runDemo prints the reversed demo text and the demo factorial.
func runDemo(cmd *cobra.Command, args []string) error {
	demo := earlyreturn.Demo{
		Text:           cfg.Demo.Text,
		FactorialInput: cfg.Demo.FactorialInput,
		Graphemes:      cfg.Demo.Graphemes || demoGraphemes,
	}
	logger.For(logging.CategoryDemo).Debug("running demo",
		zap.String("text", demo.Text),
		zap.Int("factorial_input", demo.FactorialInput),
		zap.Bool("graphemes", demo.Graphemes))

	return demo.Run(cmd.OutOrStdout())
}
