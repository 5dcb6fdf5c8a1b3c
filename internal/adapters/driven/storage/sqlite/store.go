package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
)

// Store is a SQLite-backed catalog of generated models.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.wingforge/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".wingforge", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ModelStore returns a ModelStore interface backed by this store.
func (s *Store) ModelStore() driven.ModelStore {
	return &modelStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Model Store ====================

// modelStore implements driven.ModelStore.
type modelStore struct {
	store *Store
}

var _ driven.ModelStore = (*modelStore)(nil)

// SaveModel stores or updates a generated model record.
func (s *modelStore) SaveModel(ctx context.Context, model *domain.GeneratedModel) error {
	if model == nil {
		return errors.New("saving model: nil model")
	}

	metricsJSON, err := json.Marshal(model.Metrics)
	if err != nil {
		return fmt.Errorf("marshalling metrics: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO models (
			id, airfoil_name,
			root_chord, semi_span, sweep_angle_deg, taper_ratio,
			sample_count, station_count, thickness_factor, strategy,
			metrics, vertex_count, triangle_count,
			file_path, file_size, created_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			airfoil_name = excluded.airfoil_name,
			root_chord = excluded.root_chord,
			semi_span = excluded.semi_span,
			sweep_angle_deg = excluded.sweep_angle_deg,
			taper_ratio = excluded.taper_ratio,
			sample_count = excluded.sample_count,
			station_count = excluded.station_count,
			thickness_factor = excluded.thickness_factor,
			strategy = excluded.strategy,
			metrics = excluded.metrics,
			vertex_count = excluded.vertex_count,
			triangle_count = excluded.triangle_count,
			file_path = excluded.file_path,
			file_size = excluded.file_size,
			created_at = excluded.created_at
	`, model.ID, model.AirfoilName,
		model.Spec.RootChord, model.Spec.SemiSpan, model.Spec.SweepDeg, model.Spec.TaperRatio,
		model.Options.SampleCount, model.Options.StationCount, model.Options.ThicknessFactor,
		string(model.Options.Strategy),
		string(metricsJSON), model.VertexCount, model.TriangleCount,
		model.FilePath, model.FileSize, model.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving model: %w", err)
	}
	return nil
}

// GetModel retrieves a model record by ID.
func (s *modelStore) GetModel(ctx context.Context, id string) (*domain.GeneratedModel, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, airfoil_name,
			root_chord, semi_span, sweep_angle_deg, taper_ratio,
			sample_count, station_count, thickness_factor, strategy,
			metrics, vertex_count, triangle_count,
			file_path, file_size, created_at
		FROM models WHERE id = ?
	`, id)

	model, err := scanModel(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning model: %w", err)
	}

	return model, nil
}

// ListModels returns all model records, newest first.
func (s *modelStore) ListModels(ctx context.Context) ([]domain.GeneratedModel, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, airfoil_name,
			root_chord, semi_span, sweep_angle_deg, taper_ratio,
			sample_count, station_count, thickness_factor, strategy,
			metrics, vertex_count, triangle_count,
			file_path, file_size, created_at
		FROM models
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying models: %w", err)
	}
	defer rows.Close()

	var models []domain.GeneratedModel //nolint:prealloc // size unknown from query
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning model: %w", err)
		}
		models = append(models, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating models: %w", err)
	}

	return models, nil
}

// rowScanner abstracts sql.Row and sql.Rows for shared scan code.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanModel reads one catalog row into a GeneratedModel.
func scanModel(row rowScanner) (*domain.GeneratedModel, error) {
	var model domain.GeneratedModel
	var strategy string
	var metricsJSON string
	var createdAt sql.NullTime
	if err := row.Scan(&model.ID, &model.AirfoilName,
		&model.Spec.RootChord, &model.Spec.SemiSpan, &model.Spec.SweepDeg, &model.Spec.TaperRatio,
		&model.Options.SampleCount, &model.Options.StationCount, &model.Options.ThicknessFactor,
		&strategy,
		&metricsJSON, &model.VertexCount, &model.TriangleCount,
		&model.FilePath, &model.FileSize, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(metricsJSON), &model.Metrics); err != nil {
		return nil, fmt.Errorf("unmarshaling metrics: %w", err)
	}

	model.Options.Strategy = domain.MeshingStrategy(strategy)
	if createdAt.Valid {
		model.CreatedAt = createdAt.Time.UTC()
	}

	return &model, nil
}
