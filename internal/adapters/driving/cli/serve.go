package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/rest"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the wingforge HTTP API.

The API exposes wing generation, the airfoil dataset and the model catalog
as JSON endpoints, and serves exported GLB files directly:

  POST /api/v1/wings       generate a wing (JSON params or prompt)
  GET  /api/v1/wings       list generated models
  GET  /api/v1/wings/:id   fetch one model record
  GET  /api/v1/airfoils    list dataset airfoils
  GET  /models/:filename   download an exported GLB
  GET  /healthz            liveness probe`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if generatorService == nil || datasetService == nil || catalogService == nil {
		return errors.New("services not configured")
	}

	cfg := rest.Config{ModelsDir: modelsDir}
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		cfg.Addr = settings.Server.Addr
		cfg.RateLimit = settings.Server.RateLimit
		cfg.RateBurst = settings.Server.RateBurst
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	ports := &rest.Ports{
		Generator: generatorService,
		Dataset:   datasetService,
		Catalog:   catalogService,
	}

	server, err := rest.NewServer(ports, cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wingforge API listening on http://%s\n", cfg.Addr)
	return server.Run(cmd.Context())
}
