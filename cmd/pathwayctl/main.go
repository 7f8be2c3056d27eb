// Command pathwayctl inspects and edits the career pathway from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nathan-pham/gradcap-mvp/internal/config"
	"github.com/nathan-pham/gradcap-mvp/internal/di"
)

var (
	configFile string
	driver     string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "pathwayctl",
	Short:         "Operate the career pathway content store",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", os.Getenv("CONFIG_FILE"), "YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Override the store driver")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the log level")

	rootCmd.AddCommand(nodesCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(editCmd)
}

// openContainer loads configuration and wires the store. The caller must run
// the returned cleanup.
func openContainer(ctx context.Context) (*di.Container, func(), error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	if driver != "" || logLevel != "" {
		if driver != "" {
			cfg.Store.Driver = driver
		}
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}
	// Operator commands never serve metrics.
	cfg.Metrics.Enabled = false
	return di.InitializeContainer(ctx, cfg)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✖ "+err.Error()))
		os.Exit(1)
	}
}
