// Command wingforge generates lofted 3D wing models from tabulated
// airfoil data.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driven/config/file"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driven/dataset/csvfile"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driven/storage/sqlite"
	"github.com/wingforge-labs/wingforge-cli/internal/adapters/driving/cli"
	"github.com/wingforge-labs/wingforge-cli/internal/core/services"
)

// version is set via -ldflags at build time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	dataDir, modelsDir, err := resolveDirs(settings.Dataset.Dir, settings.Output.Dir)
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}
	defer store.Close()
	catalog := store.ModelStore()

	airfoils := csvfile.NewSource(dataDir)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Generator: services.NewGeneratorService(airfoils, catalog, modelsDir),
		Dataset:   services.NewDatasetService(airfoils),
		Catalog:   services.NewCatalogService(catalog),
		Settings:  settingsService,
		ModelsDir: modelsDir,
	})

	return cli.Execute()
}

// resolveDirs fills unset directory settings with the application
// defaults under ~/.wingforge.
func resolveDirs(dataDir, modelsDir string) (string, string, error) {
	if dataDir != "" && modelsDir != "" {
		return dataDir, modelsDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", "", fmt.Errorf("resolving home directory: %w", err)
	}
	if dataDir == "" {
		dataDir = filepath.Join(home, ".wingforge", "data")
	}
	if modelsDir == "" {
		modelsDir = filepath.Join(home, ".wingforge", "models")
	}
	return dataDir, modelsDir, nil
}
