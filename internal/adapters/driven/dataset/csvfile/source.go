package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/mholt/archiver/v3"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
	"github.com/wingforge-labs/wingforge-cli/internal/logger"
)

// Dataset file names as shipped.
const (
	// CSVFileName is the coefficient table file.
	CSVFileName = "combinedAirfoilDataLabeled.csv"

	// ArchiveFileName is the zip archive the table ships in.
	ArchiveFileName = "archive.zip"
)

// Header column names. Coefficient columns are matched by prefix in file
// order, mirroring how the dataset was published.
const (
	nameColumn       = "airfoilName"
	upperCoeffPrefix = "upperSurfaceCoeff"
	lowerCoeffPrefix = "lowerSurfaceCoeff"
)

// Ensure Source implements the interface.
var _ driven.AirfoilSource = (*Source)(nil)

// Source reads the airfoil coefficient table from a data directory.
// The table is loaded exactly once on first use and is immutable after.
type Source struct {
	dir string

	once    sync.Once
	loadErr error
	records map[string]domain.AirfoilRecord
	names   []string
	skipped int
}

// NewSource creates a source reading from the given data directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Lookup retrieves the coefficient record for a named airfoil.
func (s *Source) Lookup(_ context.Context, name string) (*domain.AirfoilRecord, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	rec, ok := s.records[name]
	if !ok {
		return nil, &domain.AirfoilNotFoundError{Name: name}
	}
	return &rec, nil
}

// Names returns all airfoil names, sorted.
func (s *Source) Names(_ context.Context) ([]string, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}
	return append([]string(nil), s.names...), nil
}

// Len returns the number of airfoils in the table.
func (s *Source) Len(_ context.Context) (int, error) {
	if err := s.ensureLoaded(); err != nil {
		return 0, err
	}
	return len(s.records), nil
}

// Skipped returns how many malformed rows the load pass dropped.
func (s *Source) Skipped() int {
	if err := s.ensureLoaded(); err != nil {
		return 0
	}
	return s.skipped
}

func (s *Source) ensureLoaded() error {
	s.once.Do(s.load)
	return s.loadErr
}

func (s *Source) load() {
	logger.Section("Airfoil Dataset")

	csvPath := filepath.Join(s.dir, CSVFileName)
	if _, err := os.Stat(csvPath); err != nil {
		if !os.IsNotExist(err) {
			s.loadErr = fmt.Errorf("%w: stat %s: %v", domain.ErrDataUnavailable, csvPath, err)
			return
		}
		if err := s.extractArchive(csvPath); err != nil {
			s.loadErr = err
			return
		}
	}

	f, err := os.Open(csvPath)
	if err != nil {
		s.loadErr = fmt.Errorf("%w: open %s: %v", domain.ErrDataUnavailable, csvPath, err)
		return
	}
	defer f.Close()

	records, skipped, err := parseTable(f)
	if err != nil {
		s.loadErr = err
		return
	}

	s.records = records
	s.skipped = skipped
	s.names = make([]string, 0, len(records))
	for name := range records {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)

	if skipped > 0 {
		logger.Warn("Skipped %d malformed dataset rows", skipped)
	}
	logger.Info("Loaded %d airfoils from %s", len(s.records), csvPath)
}

// extractArchive pulls the CSV out of the shipped zip into the data dir.
func (s *Source) extractArchive(csvPath string) error {
	zipPath := filepath.Join(s.dir, ArchiveFileName)
	if _, err := os.Stat(zipPath); err != nil {
		return fmt.Errorf("%w: neither %s nor %s present in %s",
			domain.ErrDataUnavailable, CSVFileName, ArchiveFileName, s.dir)
	}

	logger.Info("Extracting %s from %s", CSVFileName, zipPath)
	if err := archiver.NewZip().Extract(zipPath, CSVFileName, s.dir); err != nil {
		return fmt.Errorf("%w: extract %s: %v", domain.ErrDataUnavailable, zipPath, err)
	}
	if _, err := os.Stat(csvPath); err != nil {
		return fmt.Errorf("%w: archive %s does not contain %s",
			domain.ErrDataUnavailable, zipPath, CSVFileName)
	}
	return nil
}

// parseTable reads the CSV into records. Rows that cannot be parsed are
// counted and skipped; a table with no usable rows is an error.
func parseTable(r io.Reader) (map[string]domain.AirfoilRecord, int, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: read header: %v", domain.ErrDataUnavailable, err)
	}

	nameIdx := -1
	var upperIdx, lowerIdx []int
	for i, col := range header {
		col = strings.TrimSpace(col)
		switch {
		case col == nameColumn:
			nameIdx = i
		case strings.HasPrefix(col, upperCoeffPrefix):
			upperIdx = append(upperIdx, i)
		case strings.HasPrefix(col, lowerCoeffPrefix):
			lowerIdx = append(lowerIdx, i)
		}
	}
	if nameIdx < 0 {
		return nil, 0, fmt.Errorf("%w: column %s missing", domain.ErrDataUnavailable, nameColumn)
	}
	if len(upperIdx) != domain.CoefficientCount || len(lowerIdx) != domain.CoefficientCount {
		return nil, 0, fmt.Errorf("%w: expected %d coefficient columns per surface, got %d upper and %d lower",
			domain.ErrDataUnavailable, domain.CoefficientCount, len(upperIdx), len(lowerIdx))
	}

	records := make(map[string]domain.AirfoilRecord)
	skipped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				skipped++
				continue
			}
			return nil, skipped, fmt.Errorf("%w: read row: %v", domain.ErrDataUnavailable, err)
		}

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			skipped++
			continue
		}
		// First occurrence wins for duplicate names.
		if _, exists := records[name]; exists {
			skipped++
			continue
		}

		upper, ok := parseCoefficients(row, upperIdx)
		if !ok {
			skipped++
			continue
		}
		lower, ok := parseCoefficients(row, lowerIdx)
		if !ok {
			skipped++
			continue
		}

		records[name] = domain.AirfoilRecord{Name: name, Upper: upper, Lower: lower}
	}

	if len(records) == 0 {
		return nil, skipped, fmt.Errorf("%w: no usable rows in %s", domain.ErrDataUnavailable, CSVFileName)
	}
	return records, skipped, nil
}

func parseCoefficients(row []string, idx []int) ([]float64, bool) {
	coeffs := make([]float64, len(idx))
	for i, col := range idx {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
		if err != nil {
			return nil, false
		}
		coeffs[i] = v
	}
	return coeffs, true
}
