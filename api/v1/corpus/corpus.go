package corpus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidFile = errors.New("invalid fortunes file")

// fileFormat is the YAML layout of a fortunes file:
//
//	fortunes:
//	  - "first"
//	  - "second"
type fileFormat struct {
	Fortunes []string `yaml:"fortunes"`
}

// LoadFile reads fortunes from a YAML file and normalizes them.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrInvalidFile, path, err)
	}

	return Parse(data)
}

func Parse(data []byte) ([]string, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}

	return Normalize(f.Fortunes), nil
}

// Normalize trims every entry and drops the blank ones, keeping order.
func Normalize(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}
