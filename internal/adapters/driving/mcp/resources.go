package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for wingforge resources.
	uriScheme = "wingforge://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the airfoil dataset.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "airfoils",
		Name:        "airfoils",
		Description: "All airfoil names in the coefficient dataset",
		MIMEType:    "application/json",
	}, s.handleAirfoilsResource)

	// Static resource for the generated-model catalog.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "models",
		Name:        "models",
		Description: "Catalog of generated wing models, newest first",
		MIMEType:    "application/json",
	}, s.handleModelsResource)

	// Template for one catalog record.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "models/{modelId}",
		Name:        "model",
		Description: "One generated wing model record",
		MIMEType:    "application/json",
	}, s.handleModelResource)
}

// handleAirfoilsResource returns all dataset airfoil names.
func (s *Server) handleAirfoilsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Dataset.ListAirfoils(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing airfoils: %w", err)
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling airfoils: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleModelsResource returns a summary of every catalog record.
func (s *Server) handleModelsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	models, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	// Build simplified model list.
	type modelInfo struct {
		ID            string    `json:"id"`
		Airfoil       string    `json:"airfoil"`
		TriangleCount int       `json:"triangle_count"`
		FilePath      string    `json:"file_path"`
		CreatedAt     time.Time `json:"created_at"`
	}

	infos := make([]modelInfo, len(models))
	for i := range models {
		infos[i] = modelInfo{
			ID:            models[i].ID,
			Airfoil:       models[i].AirfoilName,
			TriangleCount: models[i].TriangleCount,
			FilePath:      models[i].FilePath,
			CreatedAt:     models[i].CreatedAt,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling models: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleModelResource returns one full catalog record.
func (s *Server) handleModelResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Catalog == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract modelId from URI: wingforge://models/{modelId}
	modelID := extractModelID(req.Params.URI)
	if modelID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	model, err := s.ports.Catalog.Get(ctx, modelID)
	if err != nil {
		return nil, fmt.Errorf("fetching model: %w", err)
	}

	// Build the full record.
	type modelDetail struct {
		ID            string    `json:"id"`
		Airfoil       string    `json:"airfoil"`
		RootChord     float64   `json:"root_chord"`
		SemiSpan      float64   `json:"semi_span"`
		SweepAngleDeg float64   `json:"sweep_angle_deg"`
		TaperRatio    float64   `json:"taper_ratio"`
		SampleCount   int       `json:"sample_count"`
		StationCount  int       `json:"station_count"`
		Strategy      string    `json:"strategy"`
		TipChord      float64   `json:"tip_chord"`
		TotalSpan     float64   `json:"total_span"`
		WingArea      float64   `json:"wing_area"`
		AspectRatio   *float64  `json:"aspect_ratio"`
		VertexCount   int       `json:"vertex_count"`
		TriangleCount int       `json:"triangle_count"`
		FilePath      string    `json:"file_path"`
		FileSize      int64     `json:"file_size"`
		CreatedAt     time.Time `json:"created_at"`
	}

	detail := modelDetail{
		ID:            model.ID,
		Airfoil:       model.AirfoilName,
		RootChord:     model.Spec.RootChord,
		SemiSpan:      model.Spec.SemiSpan,
		SweepAngleDeg: model.Spec.SweepDeg,
		TaperRatio:    model.Spec.TaperRatio,
		SampleCount:   model.Options.SampleCount,
		StationCount:  model.Options.StationCount,
		Strategy:      model.Options.Strategy.String(),
		TipChord:      model.Metrics.TipChord,
		TotalSpan:     model.Metrics.TotalSpan,
		WingArea:      model.Metrics.WingArea,
		AspectRatio:   model.Metrics.AspectRatio,
		VertexCount:   model.VertexCount,
		TriangleCount: model.TriangleCount,
		FilePath:      model.FilePath,
		FileSize:      model.FileSize,
		CreatedAt:     model.CreatedAt,
	}

	data, err := json.MarshalIndent(detail, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling model: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractModelID extracts the model ID from a URI like wingforge://models/{modelId}.
func extractModelID(uri string) string {
	const prefix = uriScheme + "models/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
