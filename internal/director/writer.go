package director

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteScenario writes a scenario to a YAML file
func WriteScenario(scenario *Scenario, path string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(scenario); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	return os.WriteFile(path, buf.Bytes(), 0644)
}

// ReadScenario reads and validates a scenario from a YAML file
func ReadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scenario, err := DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenario, nil
}

// DecodeScenario parses a scenario, rejecting unknown keys
func DecodeScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scenario Scenario
	if err := dec.Decode(&scenario); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty scenario")
		}
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if scenario.Version == "" {
		scenario.Version = "1.0"
	}
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	return &scenario, nil
}
