package mcp

import (
	"context"
	"time"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

// mockGeneratorService is a mock implementation of driving.GeneratorService.
// It captures the last request so tests can assert parameter resolution.
type mockGeneratorService struct {
	model *domain.GeneratedModel
	err   error

	airfoil string
	spec    domain.WingSpec
	opts    domain.GenerateOptions
}

func (m *mockGeneratorService) Generate(
	_ context.Context,
	airfoil string,
	spec domain.WingSpec,
	opts domain.GenerateOptions,
) (*domain.GeneratedModel, error) {
	m.airfoil = airfoil
	m.spec = spec
	m.opts = opts
	return m.model, m.err
}

// mockDatasetService is a mock implementation of driving.DatasetService.
type mockDatasetService struct {
	names   []string
	profile *domain.AirfoilProfile
	err     error
}

func (m *mockDatasetService) ListAirfoils(_ context.Context) ([]string, error) {
	return m.names, m.err
}

func (m *mockDatasetService) Count(_ context.Context) (int, error) {
	return len(m.names), m.err
}

func (m *mockDatasetService) Profile(_ context.Context, _ string, _ int) (*domain.AirfoilProfile, error) {
	return m.profile, m.err
}

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	models []domain.GeneratedModel
	model  *domain.GeneratedModel
	err    error
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.GeneratedModel, error) {
	return m.models, m.err
}

func (m *mockCatalogService) Get(_ context.Context, _ string) (*domain.GeneratedModel, error) {
	return m.model, m.err
}

// sampleModel returns a full catalog record for resource and tool tests.
func sampleModel() *domain.GeneratedModel {
	aspect := 100.0 / 15.0
	return &domain.GeneratedModel{
		ID:          "model-1",
		AirfoilName: "2032c",
		Spec:        domain.WingSpec{RootChord: 2.0, SemiSpan: 5.0, SweepDeg: 25.0, TaperRatio: 0.5},
		Options:     domain.DefaultGenerateOptions(),
		Metrics: domain.DerivedMetrics{
			TipChord:    1.0,
			TotalSpan:   10.0,
			WingArea:    15.0,
			AspectRatio: &aspect,
		},
		VertexCount:   140,
		TriangleCount: 240,
		FilePath:      "/tmp/models/wing-model-1.glb",
		FileSize:      1234,
		CreatedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}
