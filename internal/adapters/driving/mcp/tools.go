package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/promptparse"
)

// GenerateWingInput is the input schema for the generate_wing tool.
// Pointer fields distinguish an explicit value from an absent one, so
// explicit parameters always win over prompt extraction.
type GenerateWingInput struct {
	Airfoil         string   `json:"airfoil" jsonschema:"dataset airfoil name to build the wing from"`
	Prompt          string   `json:"prompt,omitempty" jsonschema:"free-text wing description, e.g. 'a glider wing with 12m wingspan'"`
	RootChord       *float64 `json:"root_chord,omitempty" jsonschema:"chord length at the wing root in model units"`
	SemiSpan        *float64 `json:"semi_span,omitempty" jsonschema:"half-span from root to tip in model units"`
	SweepAngleDeg   *float64 `json:"sweep_angle_deg,omitempty" jsonschema:"leading-edge sweep in degrees, -90 to 90"`
	TaperRatio      *float64 `json:"taper_ratio,omitempty" jsonschema:"tip chord divided by root chord"`
	SampleCount     int      `json:"sample_count,omitempty" jsonschema:"per-surface profile samples (default 120)"`
	StationCount    int      `json:"station_count,omitempty" jsonschema:"spanwise stations on the half wing (default 20)"`
	ThicknessFactor float64  `json:"thickness_factor,omitempty" jsonschema:"profile thickness scale (default 0.08)"`
	Strategy        string   `json:"strategy,omitempty" jsonschema:"meshing strategy: lofted (default) or convex_hull"`
}

// GenerateWingOutput is the output schema for the generate_wing tool.
type GenerateWingOutput struct {
	ID            string   `json:"id"`
	Airfoil       string   `json:"airfoil"`
	FilePath      string   `json:"file_path"`
	FileSize      int64    `json:"file_size"`
	VertexCount   int      `json:"vertex_count"`
	TriangleCount int      `json:"triangle_count"`
	TipChord      float64  `json:"tip_chord"`
	TotalSpan     float64  `json:"total_span"`
	WingArea      float64  `json:"wing_area"`
	AspectRatio   *float64 `json:"aspect_ratio,omitempty"`
	Strategy      string   `json:"strategy"`
}

// ListAirfoilsInput is the input schema for the list_airfoils tool.
type ListAirfoilsInput struct{}

// ListAirfoilsOutput is the output schema for the list_airfoils tool.
type ListAirfoilsOutput struct {
	Airfoils []string `json:"airfoils"`
	Count    int      `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generate_wing",
		Description: "Generate a 3D wing model (GLB file) from a dataset airfoil and wing parameters",
	}, s.handleGenerateWing)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_airfoils",
		Description: "List all airfoils available in the coefficient dataset",
	}, s.handleListAirfoils)
}

// handleGenerateWing handles the generate_wing tool invocation. The wing
// shape comes from explicit parameters, the prompt, or both.
func (s *Server) handleGenerateWing(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerateWingInput,
) (*mcp.CallToolResult, GenerateWingOutput, error) {
	spec := promptparse.Parse(input.Prompt)
	if input.RootChord != nil {
		spec.RootChord = *input.RootChord
	}
	if input.SemiSpan != nil {
		spec.SemiSpan = *input.SemiSpan
	}
	if input.SweepAngleDeg != nil {
		spec.SweepDeg = *input.SweepAngleDeg
	}
	if input.TaperRatio != nil {
		spec.TaperRatio = *input.TaperRatio
	}

	opts := domain.DefaultGenerateOptions()
	if input.SampleCount > 0 {
		opts.SampleCount = input.SampleCount
	}
	if input.StationCount > 0 {
		opts.StationCount = input.StationCount
	}
	if input.ThicknessFactor > 0 {
		opts.ThicknessFactor = input.ThicknessFactor
	}
	if input.Strategy != "" {
		opts.Strategy = domain.MeshingStrategy(strings.ToLower(input.Strategy))
	}

	model, err := s.ports.Generator.Generate(ctx, input.Airfoil, spec, opts)
	if err != nil {
		return nil, GenerateWingOutput{}, err
	}

	output := GenerateWingOutput{
		ID:            model.ID,
		Airfoil:       model.AirfoilName,
		FilePath:      model.FilePath,
		FileSize:      model.FileSize,
		VertexCount:   model.VertexCount,
		TriangleCount: model.TriangleCount,
		TipChord:      model.Metrics.TipChord,
		TotalSpan:     model.Metrics.TotalSpan,
		WingArea:      model.Metrics.WingArea,
		AspectRatio:   model.Metrics.AspectRatio,
		Strategy:      model.Options.Strategy.String(),
	}

	return nil, output, nil
}

// handleListAirfoils handles the list_airfoils tool invocation.
func (s *Server) handleListAirfoils(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListAirfoilsInput,
) (*mcp.CallToolResult, ListAirfoilsOutput, error) {
	names, err := s.ports.Dataset.ListAirfoils(ctx)
	if err != nil {
		return nil, ListAirfoilsOutput{}, err
	}

	return nil, ListAirfoilsOutput{Airfoils: names, Count: len(names)}, nil
}
