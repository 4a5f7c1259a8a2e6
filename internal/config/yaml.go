package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlProvider is a koanf.Provider reading a YAML document from disk.
type yamlProvider struct {
	path string
}

func yamlFile(path string) *yamlProvider {
	return &yamlProvider{path: path}
}

// ReadBytes returns the raw file contents.
func (p *yamlProvider) ReadBytes() ([]byte, error) {
	return os.ReadFile(p.path)
}

// Read decodes the file into a nested map. An empty document yields an empty map.
func (p *yamlProvider) Read() (map[string]interface{}, error) {
	b, err := p.ReadBytes()
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return out, nil
}
