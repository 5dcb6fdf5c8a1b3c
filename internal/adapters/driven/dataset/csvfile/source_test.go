package csvfile

import (
	"archive/zip"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
)

func datasetHeader() string {
	cols := []string{"airfoilName"}
	for i := 0; i < domain.CoefficientCount; i++ {
		cols = append(cols, fmt.Sprintf("upperSurfaceCoeff%d", i))
	}
	for i := 0; i < domain.CoefficientCount; i++ {
		cols = append(cols, fmt.Sprintf("lowerSurfaceCoeff%d", i))
	}
	return strings.Join(cols, ",")
}

// datasetRow renders a row whose surfaces are constant polynomials.
func datasetRow(name string, upperConst, lowerConst float64) string {
	fields := []string{name}
	for i := 0; i < domain.CoefficientCount; i++ {
		v := 0.0
		if i == domain.CoefficientCount-1 {
			v = upperConst
		}
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	for i := 0; i < domain.CoefficientCount; i++ {
		v := 0.0
		if i == domain.CoefficientCount-1 {
			v = lowerConst
		}
		fields = append(fields, strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strings.Join(fields, ",")
}

func datasetContent(rows ...string) string {
	return strings.Join(append([]string{datasetHeader()}, rows...), "\n") + "\n"
}

func writeDataset(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CSVFileName), []byte(content), 0o644))
}

func writeArchive(t *testing.T, dir, csvContent string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, ArchiveFileName))
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create(CSVFileName)
	require.NoError(t, err)
	_, err = w.Write([]byte(csvContent))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

// TestSource_LoadsCSV tests loading a plain CSV table.
func TestSource_LoadsCSV(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, datasetContent(
		datasetRow("naca4412", 2e4, -0.02),
		datasetRow("2032c", 5e4, -0.05),
	))

	source := NewSource(dir)

	rec, err := source.Lookup(context.Background(), "2032c")
	require.NoError(t, err)
	assert.Equal(t, "2032c", rec.Name)
	require.Len(t, rec.Upper, domain.CoefficientCount)
	require.Len(t, rec.Lower, domain.CoefficientCount)
	assert.InDelta(t, 5e4, rec.Upper[domain.CoefficientCount-1], 1e-12)
	assert.InDelta(t, -0.05, rec.Lower[domain.CoefficientCount-1], 1e-12)
	assert.True(t, rec.Complete())

	names, err := source.Names(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2032c", "naca4412"}, names)

	n, err := source.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Zero(t, source.Skipped())
}

// TestSource_ExtractsArchive tests falling back to the zip archive when no
// plain CSV is present.
func TestSource_ExtractsArchive(t *testing.T) {
	dir := t.TempDir()
	writeArchive(t, dir, datasetContent(datasetRow("2032c", 5e4, -0.05)))

	source := NewSource(dir)

	rec, err := source.Lookup(context.Background(), "2032c")
	require.NoError(t, err)
	assert.Equal(t, "2032c", rec.Name)

	// The CSV should now sit extracted next to the archive.
	assert.FileExists(t, filepath.Join(dir, CSVFileName))
}

// TestSource_MissingDataset tests the empty-directory failure mode.
func TestSource_MissingDataset(t *testing.T) {
	source := NewSource(t.TempDir())

	_, err := source.Lookup(context.Background(), "2032c")
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)

	_, err = source.Names(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)

	_, err = source.Len(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

// TestSource_UnknownAirfoil tests the lookup miss on a loaded table.
func TestSource_UnknownAirfoil(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, datasetContent(datasetRow("2032c", 5e4, -0.05)))

	source := NewSource(dir)

	_, err := source.Lookup(context.Background(), "naca0012")
	assert.ErrorIs(t, err, domain.ErrAirfoilNotFound)

	var notFound *domain.AirfoilNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "naca0012", notFound.Name)
}

// TestSource_SkipsMalformedRows tests that bad rows are dropped, not fatal.
func TestSource_SkipsMalformedRows(t *testing.T) {
	dir := t.TempDir()

	badFloat := strings.Replace(datasetRow("beta", 1, 1), "1,", "junk,", 1)
	shortRow := "gamma,1,2,3"
	emptyName := datasetRow("", 1, 1)
	duplicate := datasetRow("alpha", 9e9, 9e9)

	writeDataset(t, dir, datasetContent(
		datasetRow("alpha", 5e4, -0.05),
		badFloat,
		shortRow,
		emptyName,
		duplicate,
	))

	source := NewSource(dir)

	n, err := source.Len(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 4, source.Skipped())

	// First occurrence wins for duplicates.
	rec, err := source.Lookup(context.Background(), "alpha")
	require.NoError(t, err)
	assert.InDelta(t, 5e4, rec.Upper[domain.CoefficientCount-1], 1e-12)
}

// TestSource_EmptyTable tests that a header-only table is unavailable.
func TestSource_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, datasetHeader()+"\n")

	source := NewSource(dir)

	_, err := source.Len(context.Background())
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

// TestSource_MalformedHeader tests that a wrong coefficient column count
// fails the whole load.
func TestSource_MalformedHeader(t *testing.T) {
	dir := t.TempDir()
	header := "airfoilName,upperSurfaceCoeff0,lowerSurfaceCoeff0"
	writeDataset(t, dir, header+"\nfoo,1,2\n")

	source := NewSource(dir)

	_, err := source.Lookup(context.Background(), "foo")
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}

// TestSource_ConcurrentAccess tests that the lazy load is safe under
// concurrent first use.
func TestSource_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, datasetContent(datasetRow("2032c", 5e4, -0.05)))

	source := NewSource(dir)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = source.Lookup(context.Background(), "2032c")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}
