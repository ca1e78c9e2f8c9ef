package config

import "time"

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type AppConfig struct {
	StorageKind     string           `yaml:"storage"`
	Location        string           `yaml:"timezone"`
	Timeout         time.Duration    `yaml:"request-timeout"`
	CategoryRules   []CategoryConfig `yaml:"categories"`
	DefaultCategory string           `yaml:"default-category"`
}

func (s *AppConfig) Storage() string {
	return s.StorageKind
}

// TimeLocation falls back to UTC, Validate has already rejected unknown zones.
func (s *AppConfig) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(s.Location)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (s *AppConfig) RequestTimeout() time.Duration {
	return s.Timeout
}

func (s *AppConfig) Categories() []CategoryConfig {
	return s.CategoryRules
}

func (s *AppConfig) FallbackCategory() string {
	return s.DefaultCategory
}
