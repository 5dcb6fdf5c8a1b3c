// Package cli implements the wingforge command-line interface.
// Commands are thin shells over the driving ports; the composition root
// injects service implementations through SetServices before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
	"github.com/wingforge-labs/wingforge-cli/internal/logger"
)

// version is stamped by the build; overridden via SetVersion.
var version = "dev"

// Injected services. Commands nil-check these so a partially wired
// binary fails with a clear message instead of a panic.
var (
	generatorService driving.GeneratorService
	datasetService   driving.DatasetService
	catalogService   driving.CatalogService
	settingsService  driving.SettingsService

	// modelsDir is the resolved directory exported GLB files live in,
	// used by the serve command for file serving.
	modelsDir string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "wingforge",
	Short: "Generate 3D wing models from tabulated airfoil data",
	Long: `Wingforge builds lofted 3D wing models from polynomial airfoil data.

Describe the wing in plain words or exact parameters, pick an airfoil from
the bundled dataset, and wingforge lofts, triangulates and exports a binary
glTF (GLB) model ready for any viewer or slicer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose pipeline logging on stderr")
}

// Services bundles the driving port implementations the commands call.
type Services struct {
	Generator driving.GeneratorService
	Dataset   driving.DatasetService
	Catalog   driving.CatalogService
	Settings  driving.SettingsService

	// ModelsDir is the resolved GLB output directory.
	ModelsDir string
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	generatorService = s.Generator
	datasetService = s.Dataset
	catalogService = s.Catalog
	settingsService = s.Settings
	modelsDir = s.ModelsDir
}

// SetVersion records the build version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
