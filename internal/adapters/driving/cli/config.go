package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wingforge configuration",
	Long: `View and change configuration values.

Keys:
  dataset.dir                  directory holding the airfoil dataset
  output.dir                   directory exported models are written to
  generation.sample_count      per-surface profile samples
  generation.station_count     spanwise stations per half wing
  generation.thickness_factor  profile thickness scale
  generation.strategy          meshing strategy (lofted, convex_hull)
  server.addr                  HTTP API listen address
  server.rate_limit            generation requests per second
  server.rate_burst            generation rate limiter burst`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Configuration")
	cmd.Println("=====================")
	cmd.Println()

	cmd.Println("[Dataset]")
	cmd.Printf("  Directory: %s\n", orDefault(settings.Dataset.Dir))
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", orDefault(settings.Output.Dir))
	cmd.Println()

	cmd.Println("[Generation]")
	cmd.Printf("  Samples:   %d\n", settings.Generation.SampleCount)
	cmd.Printf("  Stations:  %d\n", settings.Generation.StationCount)
	cmd.Printf("  Thickness: %.3f\n", settings.Generation.ThicknessFactor)
	cmd.Printf("  Strategy:  %s\n", settings.Generation.Strategy)
	cmd.Println()

	cmd.Println("[Server]")
	cmd.Printf("  Address:    %s\n", settings.Server.Addr)
	cmd.Printf("  Rate limit: %.2f req/s (burst %d)\n",
		settings.Server.RateLimit, settings.Server.RateBurst)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func orDefault(dir string) string {
	if dir == "" {
		return "(default)"
	}
	return dir
}
