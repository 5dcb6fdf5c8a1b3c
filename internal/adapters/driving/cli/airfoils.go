package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var airfoilsJSON bool

var airfoilsCmd = &cobra.Command{
	Use:   "airfoils",
	Short: "List available airfoils",
	Long:  `Lists the airfoil names available in the coefficient dataset.`,
	Args:  cobra.NoArgs,
	RunE:  runAirfoils,
}

func init() {
	airfoilsCmd.Flags().BoolVar(&airfoilsJSON, "json", false, "output names as JSON")
	rootCmd.AddCommand(airfoilsCmd)
}

func runAirfoils(cmd *cobra.Command, _ []string) error {
	if datasetService == nil {
		return errors.New("dataset service not configured")
	}

	names, err := datasetService.ListAirfoils(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing airfoils failed: %w", err)
	}

	if airfoilsJSON {
		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal names: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%d airfoils available:\n", len(names))
	cmd.Println()
	for _, name := range names {
		cmd.Printf("  %s\n", name)
	}
	return nil
}
