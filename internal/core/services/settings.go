package services

import (
	"fmt"
	"strconv"

	"github.com/wingforge-labs/wingforge-cli/internal/core/domain"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driven"
	"github.com/wingforge-labs/wingforge-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyDatasetDir      = "dataset.dir"
	keyOutputDir       = "output.dir"
	keySampleCount     = "generation.sample_count"
	keyStationCount    = "generation.station_count"
	keyThicknessFactor = "generation.thickness_factor"
	keyStrategy        = "generation.strategy"
	keyServerAddr      = "server.addr"
	keyServerRateLimit = "server.rate_limit"
	keyServerRateBurst = "server.rate_burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, filling unset keys with
// defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Dataset: domain.DatasetSettings{
			Dir: s.configStore.GetString(keyDatasetDir), // No default - empty means the app data dir
		},
		Output: domain.OutputSettings{
			Dir: s.configStore.GetString(keyOutputDir), // No default - empty means the app models dir
		},
		Generation: domain.GenerationSettings{
			SampleCount:     s.getInt(keySampleCount, defaults.Generation.SampleCount),
			StationCount:    s.getInt(keyStationCount, defaults.Generation.StationCount),
			ThicknessFactor: s.getFloat(keyThicknessFactor, defaults.Generation.ThicknessFactor),
			Strategy:        s.getStrategy(defaults.Generation.Strategy),
		},
		Server: domain.ServerSettings{
			Addr:      s.getString(keyServerAddr, defaults.Server.Addr),
			RateLimit: s.getFloat(keyServerRateLimit, defaults.Server.RateLimit),
			RateBurst: s.getInt(keyServerRateBurst, defaults.Server.RateBurst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyDatasetDir, settings.Dataset.Dir); err != nil {
		return fmt.Errorf("save dataset dir: %w", err)
	}
	if err := s.configStore.Set(keyOutputDir, settings.Output.Dir); err != nil {
		return fmt.Errorf("save output dir: %w", err)
	}

	if err := s.configStore.Set(keySampleCount, settings.Generation.SampleCount); err != nil {
		return fmt.Errorf("save sample count: %w", err)
	}
	if err := s.configStore.Set(keyStationCount, settings.Generation.StationCount); err != nil {
		return fmt.Errorf("save station count: %w", err)
	}
	if err := s.configStore.Set(keyThicknessFactor, settings.Generation.ThicknessFactor); err != nil {
		return fmt.Errorf("save thickness factor: %w", err)
	}
	if err := s.configStore.Set(keyStrategy, settings.Generation.Strategy.String()); err != nil {
		return fmt.Errorf("save strategy: %w", err)
	}

	if err := s.configStore.Set(keyServerAddr, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}
	if err := s.configStore.Set(keyServerRateLimit, settings.Server.RateLimit); err != nil {
		return fmt.Errorf("save server rate limit: %w", err)
	}
	if err := s.configStore.Set(keyServerRateBurst, settings.Server.RateBurst); err != nil {
		return fmt.Errorf("save server rate burst: %w", err)
	}

	return nil
}

// Set stores a single raw configuration value, coercing it to the type the
// key expects.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyDatasetDir, keyOutputDir, keyServerAddr:
		return s.configStore.Set(key, value)

	case keySampleCount, keyStationCount, keyServerRateBurst:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, err)
		}
		return s.configStore.Set(key, n)

	case keyThicknessFactor, keyServerRateLimit:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s expects a number: %w", key, err)
		}
		return s.configStore.Set(key, f)

	case keyStrategy:
		strategy := domain.MeshingStrategy(value)
		if !strategy.IsValid() {
			return fmt.Errorf("invalid meshing strategy: %s", value)
		}
		return s.configStore.Set(key, strategy.String())

	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Path returns the backing configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getStrategy(defaultVal domain.MeshingStrategy) domain.MeshingStrategy {
	val := s.configStore.GetString(keyStrategy)
	if val == "" {
		return defaultVal
	}
	strategy := domain.MeshingStrategy(val)
	if !strategy.IsValid() {
		return defaultVal
	}
	return strategy
}
