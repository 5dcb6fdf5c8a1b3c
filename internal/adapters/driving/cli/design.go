package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/tui"
)

var designCmd = &cobra.Command{
	Use:   "design",
	Short: "Launch the interactive wing designer",
	Long: `Launch the interactive terminal UI for designing wings.

The designer lets you pick an airfoil, tune the wing parameters with live
derived metrics, and generate the model without leaving the terminal.

Controls:
  ↑/k, ↓/j - Navigate
  Tab      - Next field
  Enter    - Select / Generate
  Esc      - Back
  q        - Quit`,
	RunE: runDesign,
}

func init() {
	rootCmd.AddCommand(designCmd)
}

func runDesign(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in designer: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Generator: generatorService,
		Dataset:   datasetService,
		Catalog:   catalogService,
		Settings:  settingsService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create designer: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("designer error: %w", err)
	}

	return nil
}
