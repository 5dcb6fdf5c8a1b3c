package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
	"github.com/wingforge-labs/wingforge-cli/internal/geometry"
	"github.com/wingforge-labs/wingforge-cli/internal/glb"
	"github.com/wingforge-labs/wingforge-cli/internal/logger"
	"github.com/wingforge-labs/wingforge-cli/internal/meshing"
)

// Ensure GeneratorService implements the interface.
var _ driving.GeneratorService = (*GeneratorService)(nil)

// GeneratorService runs the wing generation pipeline and records the
// results.
type GeneratorService struct {
	airfoils  driven.AirfoilSource
	store     driven.ModelStore
	cleaner   *meshing.Cleaner
	outputDir string
}

// NewGeneratorService creates a new generator service. Exported GLB files
// are written into outputDir, which is created on first use.
func NewGeneratorService(airfoils driven.AirfoilSource, store driven.ModelStore, outputDir string) *GeneratorService {
	return &GeneratorService{
		airfoils:  airfoils,
		store:     store,
		cleaner:   meshing.NewCleaner(),
		outputDir: outputDir,
	}
}

// Generate validates the spec, builds the wing mesh from the named airfoil,
// exports it as a GLB file and records it in the catalog. All-or-nothing:
// on any error no file and no catalog row remain.
func (s *GeneratorService) Generate(
	ctx context.Context, airfoilName string, spec domain.WingSpec, opts domain.GenerateOptions,
) (*domain.GeneratedModel, error) {
	logger.Section("Wing Generation")
	logger.Debug("Airfoil: %q", airfoilName)
	logger.Debug("Spec: root=%.3f semi=%.3f sweep=%.1f taper=%.3f",
		spec.RootChord, spec.SemiSpan, spec.SweepDeg, spec.TaperRatio)

	opts = opts.Normalised()
	if !opts.Strategy.IsValid() {
		return nil, &domain.MeshError{Strategy: opts.Strategy, Reason: "unknown strategy"}
	}
	logger.Debug("Options: samples=%d stations=%d thickness=%.3f strategy=%s",
		opts.SampleCount, opts.StationCount, opts.ThicknessFactor, opts.Strategy)

	if err := spec.Validate(); err != nil {
		logger.Warn("Rejected spec: %v", err)
		return nil, err
	}

	record, err := s.airfoils.Lookup(ctx, airfoilName)
	if err != nil {
		return nil, fmt.Errorf("lookup airfoil: %w", err)
	}

	profile := geometry.DecodeProfile(*record, opts.SampleCount)
	logger.Debug("Decoded profile: %d points", profile.Len())

	stations := geometry.Loft(profile, spec, opts)
	logger.Debug("Lofted %d stations", len(stations))

	mesh, err := meshing.Build(opts.Strategy, stations)
	if err != nil {
		return nil, fmt.Errorf("build mesh: %w", err)
	}
	logger.Debug("Raw mesh: %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())

	mesh = s.cleaner.Clean(mesh)
	logger.Debug("Cleaned mesh: %d vertices, %d triangles", mesh.VertexCount(), mesh.TriangleCount())
	if mesh.IsEmpty() {
		return nil, &domain.MeshError{Strategy: opts.Strategy, Reason: "cleanup left no triangles"}
	}

	model := &domain.GeneratedModel{
		ID:            uuid.New().String(),
		AirfoilName:   airfoilName,
		Spec:          spec,
		Options:       opts,
		Metrics:       geometry.Metrics(spec),
		VertexCount:   mesh.VertexCount(),
		TriangleCount: mesh.TriangleCount(),
		CreatedAt:     time.Now().UTC(),
	}

	path, size, err := s.writeGLB(model.ID, mesh)
	if err != nil {
		return nil, err
	}
	model.FilePath = path
	model.FileSize = size
	logger.Info("Exported %s (%d bytes)", path, size)

	if err := s.store.SaveModel(ctx, model); err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			logger.Warn("Orphaned export %s: %v", path, rmErr)
		}
		return nil, fmt.Errorf("save model: %w", err)
	}

	return model, nil
}

// writeGLB exports the mesh under the filename for the given ID and returns
// the absolute path and byte size. Partial files are removed on failure.
func (s *GeneratorService) writeGLB(id string, mesh *domain.Mesh) (string, int64, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", 0, &domain.ExportError{Cause: err}
	}

	path := filepath.Join(s.outputDir, "wing-"+id+".glb")
	f, err := os.Create(path)
	if err != nil {
		return "", 0, &domain.ExportError{Cause: err}
	}

	size, err := glb.Encode(f, mesh)
	if err != nil {
		f.Close()
		os.Remove(path)
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", 0, &domain.ExportError{Cause: err}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return abs, size, nil
}
