package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	modelsListJSON bool
	modelsShowJSON bool
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Browse generated wing models",
	Long:  `Commands for browsing the catalog of previously generated wing models.`,
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated models, newest first",
	Args:  cobra.NoArgs,
	RunE:  runModelsList,
}

var modelsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one model record",
	Args:  cobra.ExactArgs(1),
	RunE:  runModelsShow,
}

func init() {
	modelsListCmd.Flags().BoolVar(&modelsListJSON, "json", false, "output records as JSON")
	modelsShowCmd.Flags().BoolVar(&modelsShowJSON, "json", false, "output the record as JSON")
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsShowCmd)
	rootCmd.AddCommand(modelsCmd)
}

func runModelsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	models, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing models failed: %w", err)
	}

	if modelsListJSON {
		data, err := marshalIndent(models)
		if err != nil {
			return err
		}
		cmd.Println(data)
		return nil
	}

	if len(models) == 0 {
		cmd.Println("No models generated yet.")
		return nil
	}

	cmd.Printf("%d models:\n", len(models))
	cmd.Println()
	for i := range models {
		m := &models[i]
		cmd.Printf("  %s  %-12s  %7d tris  %s\n",
			shortID(m.ID), m.AirfoilName, m.TriangleCount,
			m.CreatedAt.Format(time.RFC3339))
	}
	cmd.Println()
	cmd.Println("Use 'wingforge models show <id>' for details.")
	return nil
}

func runModelsShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	model, err := catalogService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("fetching model failed: %w", err)
	}

	if modelsShowJSON {
		return outputModelJSON(cmd, model)
	}

	outputModelSummary(cmd, model)
	cmd.Println()
	cmd.Printf("  Samples:    %d per surface\n", model.Options.SampleCount)
	cmd.Printf("  Stations:   %d per half wing\n", model.Options.StationCount)
	cmd.Printf("  Thickness:  %.3f\n", model.Options.ThicknessFactor)
	cmd.Printf("  Created:    %s\n", model.CreatedAt.Format(time.RFC3339))
	return nil
}

// shortID abbreviates catalog IDs for table output.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func marshalIndent(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal: %w", err)
	}
	return string(data), nil
}
