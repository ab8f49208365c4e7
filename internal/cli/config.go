package cli

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/srcmodel/internal/annotations"
	"github.com/toyz/srcmodel/internal/errors"
	"github.com/toyz/srcmodel/internal/registry"
)

// DefaultConfigFile is read from the working directory when no --config
// is given; it is optional.
const DefaultConfigFile = ".srcmodel.yaml"

// Config holds the settings shared by every command
type Config struct {
	// Verbose enables detailed logging and error reporting
	Verbose bool `yaml:"verbose"`

	// Quiet only shows errors
	Quiet bool `yaml:"quiet"`

	// Color forces colored output on or off; unset means detect
	Color *bool `yaml:"color"`

	// Write rewrites edited files in place instead of printing them
	Write bool `yaml:"write"`

	// Imports adds an import when an annotation is added by a known type.
	// When false the annotation is written with its qualified name.
	Imports bool `yaml:"imports"`

	// Annotations registers extra annotation types
	Annotations []AnnotationConfig `yaml:"annotations"`

	// Enums registers extra enum types, keyed by qualified name
	Enums map[string][]string `yaml:"enums"`
}

// AnnotationConfig is one extra annotation type
type AnnotationConfig struct {
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
}

// DefaultConfig returns the settings used when no file sets them
func DefaultConfig() *Config {
	return &Config{Imports: true}
}

// LoadConfig reads path, or DefaultConfigFile when path is empty. A
// missing default file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.WrapFileSystemError("read", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapConfigurationError(path, "parse", err)
	}
	if cfg.Quiet && cfg.Verbose {
		return nil, errors.ConfigurationError(path, "verbose and quiet cannot both be set")
	}
	return cfg, nil
}

// HasExtraTypes reports whether the config registers anything
func (c *Config) HasExtraTypes() bool {
	return len(c.Annotations) > 0 || len(c.Enums) > 0
}

// Extra converts the configured types for the registry. Invalid type
// names are reported together.
func (c *Config) Extra() (registry.Extra, error) {
	extra := registry.Extra{Enums: c.Enums}
	var errs *errors.MultipleErrors
	for _, a := range c.Annotations {
		ref, err := annotations.NewTypeRef(a.Type)
		if err != nil {
			errors.AddToMultiple(&errs, err.(errors.SrcError))
			continue
		}
		extra.Annotations = append(extra.Annotations, registry.TypeInfo{Type: ref, Description: a.Description})
	}
	return extra, errs.ErrOrNil()
}
