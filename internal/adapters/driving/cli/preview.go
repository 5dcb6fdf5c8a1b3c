package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/preview"
)

var (
	previewSamples int
	previewOutput  string
)

var previewCmd = &cobra.Command{
	Use:   "preview [airfoil]",
	Short: "Render an airfoil profile to a PNG image",
	Long: `Decodes the named airfoil's cross-section and renders the upper and
lower surfaces to a PNG image, useful for checking a profile before
generating a full wing.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewSamples, "samples", 0, "per-surface profile samples")
	previewCmd.Flags().StringVarP(&previewOutput, "output", "o", "", "output PNG path (default <airfoil>.png)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	name := args[0]

	samples := previewSamples
	if samples <= 0 && settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}
		samples = settings.Generation.SampleCount
	}

	profile, err := datasetService.Profile(cmd.Context(), name, samples)
	if err != nil {
		return fmt.Errorf("decoding profile failed: %w", err)
	}

	output := previewOutput
	if output == "" {
		output = name + ".png"
	}

	if err := preview.SaveProfile(output, *profile); err != nil {
		return fmt.Errorf("rendering preview failed: %w", err)
	}

	cmd.Printf("Rendered %s (%d points) to %s\n", profile.Name, profile.Len(), output)
	return nil
}
