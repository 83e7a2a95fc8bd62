package persona

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// teamFile is the on-disk shape of a team definition file.
type teamFile struct {
	Personas []Definition `yaml:"personas"`
}

// LoadTeam reads persona definitions from a YAML file. Every definition
// must validate and ids must be unique.
func LoadTeam(path string) ([]Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read team file: %w", err)
	}

	var file teamFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse team file %s: %w", path, err)
	}
	if len(file.Personas) == 0 {
		return nil, fmt.Errorf("team file %s defines no personas", path)
	}

	seen := make(map[string]bool, len(file.Personas))
	for _, def := range file.Personas {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("team file %s: %w", path, err)
		}
		if seen[def.ID] {
			return nil, fmt.Errorf("team file %s: duplicate persona id %q", path, def.ID)
		}
		seen[def.ID] = true
	}

	return file.Personas, nil
}
