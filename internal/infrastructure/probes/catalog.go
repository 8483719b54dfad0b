// Package probes loads the smoke-test catalogue: fixed prompts from the
// embedded YAML asset paired with in-code validators.
package probes

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kagebunshin/kbdiag/assets"
	"github.com/kagebunshin/kbdiag/internal/domain"
)

type catalogDoc struct {
	Probes []struct {
		Name   string `yaml:"name"`
		Prompt string `yaml:"prompt"`
		Quick  bool   `yaml:"quick"`
	} `yaml:"probes"`
}

// Load returns the probe set in catalogue order. It fails if a probe has no
// registered validator, so the catalogue and the registry cannot drift
// silently.
func Load() ([]domain.Probe, error) {
	return load(assets.DefaultProbesYAML)
}

func load(raw []byte) ([]domain.Probe, error) {
	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("probe catalogue: %w", err)
	}
	if len(doc.Probes) == 0 {
		return nil, fmt.Errorf("probe catalogue: no probes defined")
	}

	out := make([]domain.Probe, 0, len(doc.Probes))
	for _, p := range doc.Probes {
		validate, found := validators[p.Name]
		if !found {
			return nil, fmt.Errorf("probe catalogue: no validator for %q", p.Name)
		}
		out = append(out, domain.Probe{
			Name:     p.Name,
			Prompt:   p.Prompt,
			Quick:    p.Quick,
			Validate: validate,
		})
	}
	return out, nil
}
