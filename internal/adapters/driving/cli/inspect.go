package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wingforge-labs/wingforge-cli/internal/glb"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file.glb]",
	Short: "Inspect a GLB file",
	Long: `Reads a binary glTF (GLB) file and prints its container layout and
mesh statistics without loading the geometry into memory.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	info, err := glb.DecodeInfo(f)
	if err != nil {
		return fmt.Errorf("inspecting %s failed: %w", path, err)
	}

	cmd.Printf("%s\n", path)
	cmd.Println()
	cmd.Printf("  glTF version: %d\n", info.Version)
	cmd.Printf("  Container:    %d bytes\n", info.TotalLength)
	if info.Generator != "" {
		cmd.Printf("  Generator:    %s\n", info.Generator)
	}
	cmd.Printf("  Vertices:     %d\n", info.VertexCount)
	cmd.Printf("  Triangles:    %d\n", info.TriangleCount)
	cmd.Printf("  Normals:      %v\n", info.HasNormals)
	if len(info.PositionMin) == 3 && len(info.PositionMax) == 3 {
		cmd.Printf("  Bounds min:   [%.4f, %.4f, %.4f]\n",
			info.PositionMin[0], info.PositionMin[1], info.PositionMin[2])
		cmd.Printf("  Bounds max:   [%.4f, %.4f, %.4f]\n",
			info.PositionMax[0], info.PositionMax[1], info.PositionMax[2])
	}
	return nil
}
