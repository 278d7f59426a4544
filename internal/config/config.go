// Package config loads and validates the optional interpreter
// configuration file (maxCallDepth, traceEvaluation).
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

// Config holds the knobs an interpreter run can be tuned with.
type Config struct {
	MaxCallDepth    int  `yaml:"maxCallDepth"`
	TraceEvaluation bool `yaml:"traceEvaluation"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{MaxCallDepth: 1000}
}

// schemaDoc is a compiled-JSON-Schema-from-literal, scaled down to this
// module's two fields.
var schemaDoc = []byte(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"maxCallDepth": {"type": "integer", "minimum": 1},
		"traceEvaluation": {"type": "boolean"}
	}
}`)

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const url = "mython://config.schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(schemaDoc)); err != nil {
		return nil, err
	}
	return compiler.Compile(url)
}

// Load reads, schema-validates, and decodes a YAML config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	schema, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("config: compile schema: %w", err)
	}
	if raw != nil {
		if err := schema.Validate(raw); err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}
