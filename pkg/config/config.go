// Package config loads the YAML run configuration: dataset paths, the default
// route endpoints, ranking size, per-query node modes and output settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-routegraph/pkg/analysis"
	"github.com/dd0wney/cluso-routegraph/pkg/routegraph"
)

// ErrInvalidConfig is returned when a configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

// Config is the full run configuration
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Route   RouteConfig   `yaml:"route"`
	TopN    int           `yaml:"top_n" validate:"min=1,max=1000"`
	Modes   ModesConfig   `yaml:"modes"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// DatasetConfig names the two input files
type DatasetConfig struct {
	Cities string `yaml:"cities" validate:"required"`
	Routes string `yaml:"routes" validate:"required"`
}

// RouteConfig holds the default endpoints of the route query, as IATA codes.
// Codes are matched against the dataset exactly as written.
type RouteConfig struct {
	From string `yaml:"from" validate:"required,len=3,alpha"`
	To   string `yaml:"to" validate:"required,len=3,alpha"`
}

// ModesConfig sets the node mode of each query
type ModesConfig struct {
	Summary      string `yaml:"summary" validate:"oneof=node-inclusive edge-only"`
	Degree       string `yaml:"degree" validate:"oneof=node-inclusive edge-only"`
	Distribution string `yaml:"distribution" validate:"oneof=node-inclusive edge-only"`
	Diameter     string `yaml:"diameter" validate:"oneof=node-inclusive edge-only"`
	Route        string `yaml:"route" validate:"oneof=node-inclusive edge-only"`
	Betweenness  string `yaml:"betweenness" validate:"oneof=node-inclusive edge-only"`
}

// OutputConfig selects the report format
type OutputConfig struct {
	Format string `yaml:"format" validate:"oneof=plain table"`
}

// LogConfig sets the minimum log level. Empty defers to LOG_LEVEL, then info.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// MetricsConfig optionally names a Prometheus textfile written after the run
type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	modes := analysis.DefaultModes()
	return &Config{
		Dataset: DatasetConfig{
			Cities: "data/global-cities.dat",
			Routes: "data/global-net.dat",
		},
		Route: RouteConfig{From: "CBR", To: "CPT"},
		TopN:  10,
		Modes: ModesConfig{
			Summary:      modes.Summary.String(),
			Degree:       modes.Degree.String(),
			Distribution: modes.Distribution.String(),
			Diameter:     modes.Diameter.String(),
			Route:        modes.Route.String(),
			Betweenness:  modes.Betweenness.String(),
		},
		Output: OutputConfig{Format: "plain"},
	}
}

// Load reads path over the defaults and validates the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate normalizes case-insensitive fields and checks every constraint
func (c *Config) Validate() error {
	c.Route.From = strings.TrimSpace(c.Route.From)
	c.Route.To = strings.TrimSpace(c.Route.To)
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))

	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// AnalysisModes converts the configured mode names
func (c *Config) AnalysisModes() (analysis.Modes, error) {
	var modes analysis.Modes
	fields := []struct {
		name   string
		target *routegraph.NodeMode
	}{
		{c.Modes.Summary, &modes.Summary},
		{c.Modes.Degree, &modes.Degree},
		{c.Modes.Distribution, &modes.Distribution},
		{c.Modes.Diameter, &modes.Diameter},
		{c.Modes.Route, &modes.Route},
		{c.Modes.Betweenness, &modes.Betweenness},
	}
	for _, f := range fields {
		mode, err := routegraph.ParseNodeMode(f.name)
		if err != nil {
			return analysis.Modes{}, err
		}
		*f.target = mode
	}
	return modes, nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	// Report the first failing field
	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%w: %s: field is required", ErrInvalidConfig, field)
		case "min":
			return fmt.Errorf("%w: %s: must be at least %s", ErrInvalidConfig, field, param)
		case "max":
			return fmt.Errorf("%w: %s: must not exceed %s", ErrInvalidConfig, field, param)
		case "len":
			return fmt.Errorf("%w: %s: must be %s characters", ErrInvalidConfig, field, param)
		case "oneof":
			return fmt.Errorf("%w: %s: must be one of [%s], got %q", ErrInvalidConfig, field, param, e.Value())
		default:
			return fmt.Errorf("%w: %s: validation failed (%s)", ErrInvalidConfig, field, e.Tag())
		}
	}

	return err
}
