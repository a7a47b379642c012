package concept

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned when a scenario document has an
// extension other than .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("unsupported scenario format")

// Scenario is a named concept, as listed in a what-if scenario file.
type Scenario struct {
	Name    string `json:"name" yaml:"name" validate:"required,max=120"`
	Concept `yaml:",inline"`
}

// ScenarioFile is the top-level document of a scenario file.
type ScenarioFile struct {
	Scenarios []Scenario `json:"scenarios" yaml:"scenarios" validate:"dive"`
}

// Format identifies the encoding of a scenario document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the document format from a file name or object key.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseScenarios decodes and validates a scenario document.
// Only the document shape is checked; genre, tier, runtime and month
// values are passed through untouched.
func ParseScenarios(data []byte, format Format) ([]Scenario, error) {
	var file ScenarioFile
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing scenarios: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing scenarios: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err := validate.Struct(file); err != nil {
		return nil, fmt.Errorf("validating scenarios: %w", err)
	}
	return file.Scenarios, nil
}
