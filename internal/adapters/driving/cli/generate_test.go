package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores changed flags to their defaults so tests do not
// leak flag state into each other.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestGenerateCmd_Use(t *testing.T) {
	assert.Equal(t, "generate [airfoil] [prompt]", generateCmd.Use)
}

func TestGenerateCmd_Short(t *testing.T) {
	assert.Equal(t, "Generate a 3D wing model", generateCmd.Short)
}

func TestGenerateCmd_RequiresAirfoil(t *testing.T) {
	_, err := execute(t, "generate")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts between 1 and 2 arg(s)")
}

func TestGenerateCmd_Executes(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	out, err := execute(t, "generate", "2032c", "--samples", "10", "--stations", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Generated wing")
	assert.Contains(t, out, "2032c")
	assert.Contains(t, out, "vertices")
	assert.Contains(t, out, ".glb")
}

func TestGenerateCmd_PromptSetsSpec(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	out, err := execute(t, "generate", "2032c", "a wing with 8m wingspan",
		"--samples", "10", "--stations", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Semi-span:  4.000")
}

func TestGenerateCmd_FlagsOverridePrompt(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	out, err := execute(t, "generate", "2032c", "a wing with 12m wingspan",
		"--semi-span", "3", "--samples", "10", "--stations", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "Semi-span:  3.000")
}

func TestGenerateCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	out, err := execute(t, "generate", "2032c", "--json",
		"--samples", "10", "--stations", "4")

	require.NoError(t, err)
	assert.Contains(t, out, "\"AirfoilName\": \"2032c\"")
	assert.Contains(t, out, "\"TriangleCount\"")
}

func TestGenerateCmd_InvalidGeometry(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	_, err := execute(t, "generate", "2032c", "--sweep", "120")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generation failed")
	assert.Contains(t, err.Error(), "sweep_angle_deg")
}

func TestGenerateCmd_UnknownAirfoil(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	_, err := execute(t, "generate", "naca0012",
		"--samples", "10", "--stations", "4")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGenerateCmd_UnknownStrategy(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()
	defer resetFlags(generateCmd)

	_, err := execute(t, "generate", "2032c", "--strategy", "voxel")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "voxel")
}

func TestGenerateCmd_ServiceNotConfigured(t *testing.T) {
	oldService := generatorService
	generatorService = nil
	defer func() {
		generatorService = oldService
	}()

	_, err := execute(t, "generate", "2032c")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "generator service not configured")
}
