// Package cli implements the script model and built-in operation surface
// behind the tendril command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// StepSpec is one step of a script: an operation name with arguments, or a
// group holding nested steps that run on a sub-chain.
type StepSpec struct {
	Op    string     `mapstructure:"op"`
	Args  []any      `mapstructure:"args"`
	Steps []StepSpec `mapstructure:"steps"`
}

// Script is a named sequence of steps loaded from YAML.
type Script struct {
	Name  string     `mapstructure:"name"`
	Steps []StepSpec `mapstructure:"steps"`
}

// LoadScript reads and decodes a YAML script file.
// YAML is parsed into loose maps first and then decoded through mapstructure,
// so scripts can omit fields and mix scalar argument types freely.
func LoadScript(path string) (*Script, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return ParseScript(raw)
}

// ParseScript decodes script YAML from memory.
func ParseScript(raw []byte) (*Script, error) {
	var loose map[string]any
	if err := yaml.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("invalid script YAML: %w", err)
	}

	var script Script
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &script,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(loose); err != nil {
		return nil, fmt.Errorf("invalid script structure: %w", err)
	}

	if err := validateSteps(script.Steps); err != nil {
		return nil, err
	}
	return &script, nil
}

func validateSteps(steps []StepSpec) error {
	for i, s := range steps {
		if s.Op == "" && len(s.Steps) == 0 {
			return fmt.Errorf("step %d: missing op", i)
		}
		if len(s.Steps) > 0 {
			if s.Op != "" && s.Op != OpGroup {
				return fmt.Errorf("step %d: op %q cannot carry nested steps", i, s.Op)
			}
			if err := validateSteps(s.Steps); err != nil {
				return err
			}
		}
	}
	return nil
}
