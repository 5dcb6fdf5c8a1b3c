package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/promptparse"
)

var (
	generateRootChord float64
	generateSemiSpan  float64
	generateSweep     float64
	generateTaper     float64
	generateSamples   int
	generateStations  int
	generateThickness float64
	generateStrategy  string
	generateJSON      bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [airfoil] [prompt]",
	Short: "Generate a 3D wing model",
	Long: `Generates a lofted 3D wing model from a dataset airfoil and exports it
as a binary glTF (GLB) file.

Wing shape comes from the optional prompt, from explicit flags, or both;
flags win over the prompt. Anything still unset falls back to a sensible
default (10 span, 2 root chord, 25 sweep, 0.5 taper).

Examples:
  wingforge generate 2032c "a wing with 12m wingspan and 30 degrees sweep"
  wingforge generate naca4412 --semi-span 6 --sweep 15 --taper 0.4
  wingforge generate e387 "taper ratio: 0.3" --strategy convex_hull`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().Float64Var(&generateRootChord, "root-chord", 0, "root chord length")
	generateCmd.Flags().Float64Var(&generateSemiSpan, "semi-span", 0, "half-span from root to tip")
	generateCmd.Flags().Float64Var(&generateSweep, "sweep", 0, "leading-edge sweep in degrees")
	generateCmd.Flags().Float64Var(&generateTaper, "taper", 0, "tip chord over root chord")
	generateCmd.Flags().IntVar(&generateSamples, "samples", 0, "per-surface profile samples")
	generateCmd.Flags().IntVar(&generateStations, "stations", 0, "spanwise stations per half wing")
	generateCmd.Flags().Float64Var(&generateThickness, "thickness", 0, "profile thickness scale")
	generateCmd.Flags().StringVar(&generateStrategy, "strategy", "", "meshing strategy (lofted, convex_hull)")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "output the catalog record as JSON")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if generatorService == nil {
		return errors.New("generator service not configured")
	}

	airfoil := args[0]
	prompt := ""
	if len(args) > 1 {
		prompt = args[1]
	}

	spec := promptparse.Parse(prompt)
	if cmd.Flags().Changed("root-chord") {
		spec.RootChord = generateRootChord
	}
	if cmd.Flags().Changed("semi-span") {
		spec.SemiSpan = generateSemiSpan
	}
	if cmd.Flags().Changed("sweep") {
		spec.SweepDeg = generateSweep
	}
	if cmd.Flags().Changed("taper") {
		spec.TaperRatio = generateTaper
	}

	opts, err := generateOptions(cmd)
	if err != nil {
		return err
	}

	model, err := generatorService.Generate(cmd.Context(), airfoil, spec, opts)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if generateJSON {
		return outputModelJSON(cmd, model)
	}

	outputModelSummary(cmd, model)
	return nil
}

// generateOptions resolves pipeline tuning: configured defaults,
// overridden by explicit flags.
func generateOptions(cmd *cobra.Command) (domain.GenerateOptions, error) {
	opts := domain.DefaultGenerateOptions()
	if settingsService != nil {
		settings, err := settingsService.Get()
		if err != nil {
			return opts, fmt.Errorf("loading settings: %w", err)
		}
		opts = settings.Generation.Options()
	}

	if cmd.Flags().Changed("samples") {
		opts.SampleCount = generateSamples
	}
	if cmd.Flags().Changed("stations") {
		opts.StationCount = generateStations
	}
	if cmd.Flags().Changed("thickness") {
		opts.ThicknessFactor = generateThickness
	}
	if cmd.Flags().Changed("strategy") {
		opts.Strategy = domain.MeshingStrategy(strings.ToLower(generateStrategy))
	}

	return opts, nil
}

func outputModelJSON(cmd *cobra.Command, model *domain.GeneratedModel) error {
	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputModelSummary(cmd *cobra.Command, model *domain.GeneratedModel) {
	cmd.Printf("Generated wing %s\n", model.ID)
	cmd.Println()
	cmd.Printf("  Airfoil:    %s\n", model.AirfoilName)
	cmd.Printf("  Root chord: %.3f\n", model.Spec.RootChord)
	cmd.Printf("  Semi-span:  %.3f\n", model.Spec.SemiSpan)
	cmd.Printf("  Sweep:      %.1f deg\n", model.Spec.SweepDeg)
	cmd.Printf("  Taper:      %.3f\n", model.Spec.TaperRatio)
	cmd.Println()
	cmd.Printf("  Tip chord:  %.3f\n", model.Metrics.TipChord)
	cmd.Printf("  Total span: %.3f\n", model.Metrics.TotalSpan)
	cmd.Printf("  Wing area:  %.3f\n", model.Metrics.WingArea)
	if model.Metrics.AspectRatio != nil {
		cmd.Printf("  Aspect:     %.3f\n", *model.Metrics.AspectRatio)
	}
	cmd.Println()
	cmd.Printf("  Mesh:       %d vertices, %d triangles (%s)\n",
		model.VertexCount, model.TriangleCount, model.Options.Strategy)
	cmd.Printf("  File:       %s (%d bytes)\n", model.FilePath, model.FileSize)
}
