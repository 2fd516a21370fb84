package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Fields holds the raw values of one mapping, either the defaults or the overrides of a
// single prefix.
type Fields map[string]any

// Prefix is a single entry from the "prefixes" mapping.
type Prefix struct {
	CIDR   string
	Fields Fields
}

// File is the untyped content of a configuration file. Prefixes are in file order.
type File struct {
	Path     string
	Defaults Fields
	Prefixes []Prefix
}

var ErrNoPrefixes = errors.New("no prefixes configured")

// Load reads the configuration file at path. The format is chosen by the file extension:
// .yml and .yaml are YAML, .toml is TOML.
func Load(path string) (*File, error) {
	var f *File
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		f, err = loadYAML(path)
	case ".toml":
		f, err = loadTOML(path)
	default:
		return nil, fmt.Errorf("unsupported config file type '%s'", path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path
	if f.Defaults == nil {
		f.Defaults = Fields{}
	}
	if len(f.Prefixes) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoPrefixes)
	}

	return f, nil
}

// Lookup returns the value of key and whether it is present.
func (t Fields) Lookup(key string) (any, bool) {
	v, ok := t[key]
	return v, ok
}
