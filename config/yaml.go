package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Defaults Fields       `yaml:"defaults"`
	Prefixes yamlPrefixes `yaml:"prefixes"`
}

// yamlPrefixes exists to capture mapping order, which a Go map loses.
type yamlPrefixes []Prefix

func (t *yamlPrefixes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: prefixes must be a mapping", value.Line)
	}
	for ix := 0; ix+1 < len(value.Content); ix += 2 {
		key, val := value.Content[ix], value.Content[ix+1]
		p := Prefix{CIDR: key.Value, Fields: Fields{}}
		if val.Kind != yaml.ScalarNode || val.Tag != "!!null" { // An empty entry is legit
			if err := val.Decode(&p.Fields); err != nil {
				return fmt.Errorf("line %d: prefix %s: %w", val.Line, key.Value, err)
			}
		}
		*t = append(*t, p)
	}

	return nil
}

func loadYAML(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var yf yamlFile
	err = yaml.Unmarshal(b, &yf)
	if err != nil {
		return nil, err
	}

	return &File{Defaults: yf.Defaults, Prefixes: yf.Prefixes}, nil
}
