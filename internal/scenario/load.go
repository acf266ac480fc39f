package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load decodes every YAML document in r. JSON input works too, since YAML
// is a superset of it.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []Scenario
	for {
		var s Scenario
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", len(out)+1, err)
		}
		if s.Engine == "" {
			return nil, fmt.Errorf("scenario %d: %w: engine is required", len(out)+1, ErrMissingInput)
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, ErrNoScenarios
	}

	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
