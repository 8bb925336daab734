package store

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kingbharath048-glitch/Onboarding-Flow-Pro/internal/domain"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Outlets []seedRecord `yaml:"outlets"`
}

type seedRecord struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Brand       string `yaml:"brand"`
	RequestedBy string `yaml:"requestedBy"`
	Priority    string `yaml:"priority"`
	City        string `yaml:"city"`
	Stage       string `yaml:"stage"`
	AgeMs       int64  `yaml:"ageMs"`
}

// DefaultSeed returns the built-in seed board with timestamps relative to now.
func DefaultSeed(now time.Time) []domain.Outlet {
	outlets, err := ParseSeed(defaultSeed, now, domain.Stages, domain.Cities)
	if err != nil {
		panic("store: embedded seed.yaml is invalid: " + err.Error())
	}
	return outlets
}

// LoadSeedFile reads a seed board in the seed.yaml format from path.
func LoadSeedFile(path string, now time.Time) ([]domain.Outlet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("store.LoadSeedFile: %w", err)
	}
	outlets, err := ParseSeed(data, now, domain.Stages, domain.Cities)
	if err != nil {
		return nil, fmt.Errorf("store.LoadSeedFile: %s: %w", path, err)
	}
	return outlets, nil
}

// ParseSeed decodes a YAML seed board. Every stage, city and priority must
// belong to the given catalogs; a seed is trusted data and is rejected
// rather than filtered.
func ParseSeed(data []byte, now time.Time, stages domain.StageCatalog, cities domain.CityCatalog) ([]domain.Outlet, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode seed: %v", domain.ErrValidation, err)
	}

	out := make([]domain.Outlet, 0, len(f.Outlets))
	for i, r := range f.Outlets {
		o := domain.Outlet{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Brand:       r.Brand,
			RequestedBy: r.RequestedBy,
			Priority:    domain.Priority(r.Priority),
			City:        domain.City(r.City),
			Stage:       domain.Stage(r.Stage),
			Timestamp:   now.Add(-time.Duration(r.AgeMs) * time.Millisecond).UnixMilli(),
		}
		switch {
		case o.ID == "":
			return nil, fmt.Errorf("%w: seed outlet %d has no id", domain.ErrValidation, i)
		case !stages.Contains(o.Stage):
			return nil, fmt.Errorf("%w: seed outlet %s has unknown stage %q", domain.ErrValidation, o.ID, o.Stage)
		case o.City != "" && !cities.Contains(o.City):
			return nil, fmt.Errorf("%w: seed outlet %s has unknown city %q", domain.ErrValidation, o.ID, o.City)
		case o.Priority != "" && !o.Priority.Valid():
			return nil, fmt.Errorf("%w: seed outlet %s has unknown priority %q", domain.ErrValidation, o.ID, o.Priority)
		}
		out = append(out, o)
	}
	return out, nil
}
