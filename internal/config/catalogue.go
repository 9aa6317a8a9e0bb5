package config

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed variables.yaml
var catalogueYAML []byte

// Variable documents a single environment variable read by the application.
type Variable struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Default     string `yaml:"default"`
	Required    bool   `yaml:"required"`
	Sensitive   bool   `yaml:"sensitive"`
	Description string `yaml:"description"`
}

type catalogueFile struct {
	Variables []Variable `yaml:"variables"`
}

// LoadCatalogue parses the embedded variable catalogue.
func LoadCatalogue() ([]Variable, error) {
	return parseCatalogue(catalogueYAML)
}

func parseCatalogue(data []byte) ([]Variable, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	for i, v := range file.Variables {
		if v.Name == "" {
			return nil, fmt.Errorf("catalogue entry %d has no name", i)
		}
	}
	return file.Variables, nil
}

// Usage renders the catalogue as help text for the command line.
func Usage(vars []Variable) string {
	var b strings.Builder
	b.WriteString("Environment variables:\n")
	for _, v := range vars {
		var notes []string
		switch {
		case v.Required:
			notes = append(notes, "required")
		case v.Default != "":
			notes = append(notes, "default: "+v.Default)
		default:
			notes = append(notes, "optional")
		}
		if v.Sensitive {
			notes = append(notes, "masked")
		}
		fmt.Fprintf(&b, "  %-13s %-6s %s (%s)\n", v.Name, v.Type, v.Description, strings.Join(notes, ", "))
	}
	return b.String()
}
