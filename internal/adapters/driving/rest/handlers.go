package rest

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/promptparse"
)

// generateRequest is the POST /api/v1/wings body. Pointer fields
// distinguish an explicit value from an absent one, so explicit
// parameters always win over prompt extraction.
type generateRequest struct {
	Airfoil         string   `json:"airfoil"`
	Prompt          string   `json:"prompt"`
	RootChord       *float64 `json:"root_chord"`
	SemiSpan        *float64 `json:"semi_span"`
	SweepDeg        *float64 `json:"sweep_angle_deg"`
	TaperRatio      *float64 `json:"taper_ratio"`
	SampleCount     *int     `json:"sample_count"`
	StationCount    *int     `json:"station_count"`
	ThicknessFactor *float64 `json:"thickness_factor"`
	Strategy        string   `json:"strategy"`
}

// specResponse is the wing-shape part of a wing payload.
type specResponse struct {
	RootChord  float64 `json:"root_chord"`
	SemiSpan   float64 `json:"semi_span"`
	SweepDeg   float64 `json:"sweep_angle_deg"`
	TaperRatio float64 `json:"taper_ratio"`
}

// optionsResponse is the pipeline-tuning part of a wing payload.
type optionsResponse struct {
	SampleCount     int     `json:"sample_count"`
	StationCount    int     `json:"station_count"`
	ThicknessFactor float64 `json:"thickness_factor"`
	Strategy        string  `json:"strategy"`
}

// metricsResponse is the derived-planform part of a wing payload.
// AspectRatio is null when the wing area is not positive.
type metricsResponse struct {
	TipChord    float64  `json:"tip_chord"`
	TotalSpan   float64  `json:"total_span"`
	WingArea    float64  `json:"wing_area"`
	AspectRatio *float64 `json:"aspect_ratio"`
}

// wingResponse is one generated model on the wire. File is the download
// path under /models, not the server-side location.
type wingResponse struct {
	ID            string          `json:"id"`
	Airfoil       string          `json:"airfoil"`
	Spec          specResponse    `json:"spec"`
	Options       optionsResponse `json:"options"`
	Metrics       metricsResponse `json:"metrics"`
	VertexCount   int             `json:"vertex_count"`
	TriangleCount int             `json:"triangle_count"`
	File          string          `json:"file"`
	FileSize      int64           `json:"file_size"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toWingResponse(m domain.GeneratedModel) wingResponse {
	return wingResponse{
		ID:      m.ID,
		Airfoil: m.AirfoilName,
		Spec: specResponse{
			RootChord:  m.Spec.RootChord,
			SemiSpan:   m.Spec.SemiSpan,
			SweepDeg:   m.Spec.SweepDeg,
			TaperRatio: m.Spec.TaperRatio,
		},
		Options: optionsResponse{
			SampleCount:     m.Options.SampleCount,
			StationCount:    m.Options.StationCount,
			ThicknessFactor: m.Options.ThicknessFactor,
			Strategy:        m.Options.Strategy.String(),
		},
		Metrics: metricsResponse{
			TipChord:    m.Metrics.TipChord,
			TotalSpan:   m.Metrics.TotalSpan,
			WingArea:    m.Metrics.WingArea,
			AspectRatio: m.Metrics.AspectRatio,
		},
		VertexCount:   m.VertexCount,
		TriangleCount: m.TriangleCount,
		File:          "/models/" + filepath.Base(m.FilePath),
		FileSize:      m.FileSize,
		CreatedAt:     m.CreatedAt,
	}
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate runs the generation pipeline for one request. The wing
// shape comes from explicit parameters, the prompt, or both; explicit
// parameters win field by field.
func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.Airfoil == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "airfoil is required"})
		return
	}

	spec := promptparse.Parse(req.Prompt)
	if req.RootChord != nil {
		spec.RootChord = *req.RootChord
	}
	if req.SemiSpan != nil {
		spec.SemiSpan = *req.SemiSpan
	}
	if req.SweepDeg != nil {
		spec.SweepDeg = *req.SweepDeg
	}
	if req.TaperRatio != nil {
		spec.TaperRatio = *req.TaperRatio
	}

	opts := domain.DefaultGenerateOptions()
	if req.SampleCount != nil {
		opts.SampleCount = *req.SampleCount
	}
	if req.StationCount != nil {
		opts.StationCount = *req.StationCount
	}
	if req.ThicknessFactor != nil {
		opts.ThicknessFactor = *req.ThicknessFactor
	}
	if req.Strategy != "" {
		strategy := domain.MeshingStrategy(strings.ToLower(req.Strategy))
		if !strategy.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown meshing strategy %q", req.Strategy)})
			return
		}
		opts.Strategy = strategy
	}

	model, err := s.ports.Generator.Generate(c.Request.Context(), req.Airfoil, spec, opts)
	if err != nil {
		s.abortError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toWingResponse(*model))
}

// handleListWings returns the catalog, newest first.
func (s *Server) handleListWings(c *gin.Context) {
	models, err := s.ports.Catalog.List(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}

	wings := make([]wingResponse, 0, len(models))
	for _, m := range models {
		wings = append(wings, toWingResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{"wings": wings, "count": len(wings)})
}

// handleGetWing returns one catalog record by ID.
func (s *Server) handleGetWing(c *gin.Context) {
	model, err := s.ports.Catalog.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, toWingResponse(*model))
}

// handleListAirfoils returns all dataset airfoil names, sorted.
func (s *Server) handleListAirfoils(c *gin.Context) {
	names, err := s.ports.Dataset.ListAirfoils(c.Request.Context())
	if err != nil {
		s.abortError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"airfoils": names, "count": len(names)})
}

// handleModelFile serves an exported GLB from the models directory.
// The filename must be a bare name; anything path-like is rejected
// before it can escape the directory.
func (s *Server) handleModelFile(c *gin.Context) {
	name := c.Param("filename")
	if name == "." || name == ".." || name != filepath.Base(name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid model filename"})
		return
	}

	path := filepath.Join(s.cfg.ModelsDir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"error": "model file not found"})
		return
	}

	c.Header("Content-Type", "model/gltf-binary")
	c.File(path)
}

// statusFor maps a pipeline error onto an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidGeometry), errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAirfoilNotFound), errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDataUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// abortError writes a JSON error body with the mapped status.
func (s *Server) abortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"error": err.Error()})
}
