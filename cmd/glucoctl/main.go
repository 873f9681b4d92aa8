// Command glucoctl runs and administers the GlucoseGurus API.
//
// Usage:
//
//	glucoctl serve
//	glucoctl migrate up|down|status
//	glucoctl token issue --user <account id>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glucosegurus/glucosegurus-backend/internal/app"
	"github.com/glucosegurus/glucosegurus-backend/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "glucoctl",
	Short:         "Run and administer the GlucoseGurus API",
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the REST API until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return app.Serve(cmd.Context(), cfg, app.NewLogger(cfg.Log))
	},
}

// loadConfig reads --config when given, CONFIG_PATH otherwise.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.Load()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file")

	rootCmd.AddCommand(serveCmd, migrateCmd, tokenCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "glucoctl: %v\n", err)
		os.Exit(1)
	}
}
