// Package csvfile loads the airfoil coefficient table from the dataset CSV.
//
// The dataset ships as combinedAirfoilDataLabeled.csv inside archive.zip;
// when the directory holds only the archive, the CSV is extracted on first
// use. Loading is lazy behind a sync.Once so concurrent generations share
// one immutable table. Malformed rows are skipped with a warning count,
// never fatal, unless the table ends up empty.
package csvfile
