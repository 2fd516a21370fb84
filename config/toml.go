package config

import (
	"github.com/BurntSushi/toml"
)

type tomlFile struct {
	Defaults Fields            `toml:"defaults"`
	Prefixes map[string]Fields `toml:"prefixes"`
}

// loadTOML decodes into maps then recovers prefix order from the key metadata. CIDRs must
// be quoted keys in TOML, e.g. [prefixes."192.0.2.0/24"].
func loadTOML(path string) (*File, error) {
	var tf tomlFile
	md, err := toml.DecodeFile(path, &tf)
	if err != nil {
		return nil, err
	}
	f := &File{Defaults: tf.Defaults}
	seen := make(map[string]bool)
	for _, key := range md.Keys() {
		if len(key) < 2 || key[0] != "prefixes" || seen[key[1]] {
			continue
		}
		cidr := key[1]
		seen[cidr] = true
		fields := tf.Prefixes[cidr]
		if fields == nil {
			fields = Fields{}
		}
		f.Prefixes = append(f.Prefixes, Prefix{CIDR: cidr, Fields: fields})
	}

	return f, nil
}
