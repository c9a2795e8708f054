// Package config holds the run configuration of the mining engine.
//
// A Config is read from YAML (unknown keys are rejected), layered over
// Default(), and validated with struct tags plus cross-field checks. Every
// failure wraps ErrConfiguration; the engine validates before any
// computation starts, so a bad threshold never aborts a run halfway.
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

	"github.com/katalvlaran/sarmine/extract"
)

// ErrConfiguration marks every invalid or unreadable configuration.
var ErrConfiguration = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the top-level run configuration.
//
// Thread Safety: safe to read concurrently; not safe to modify after the
// engine is built.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction"`
	Additivity AdditivityConfig `yaml:"additivity" json:"additivity"`
	Strategies StrategiesConfig `yaml:"strategies" json:"strategies"`
	Filter     FilterConfig     `yaml:"filter" json:"filter"`

	// Workers bounds concurrent wild-types; 0 uses GOMAXPROCS.
	Workers int `yaml:"workers" json:"workers" validate:"gte=0"`

	// WildTypes lists record IDs to mine; empty mines every record.
	WildTypes []string `yaml:"wild_types,omitempty" json:"wild_types,omitempty" validate:"dive,required"`

	LogLevel string `yaml:"log_level" json:"log_level" validate:"omitempty,oneof=debug info warn error"`
}

// ExtractionConfig drives rule extraction.
type ExtractionConfig struct {
	// MaxArity drops rules with more edits; 0 is unbounded.
	MaxArity          int     `yaml:"max_arity" json:"max_arity" validate:"gte=0,lte=30"`
	AmpThreshold      float64 `yaml:"amp_threshold" json:"amp_threshold" validate:"gte=0"`
	ObservationPolicy string  `yaml:"observation_policy" json:"observation_policy" validate:"omitempty,oneof=first_seen max_amplification mean_amplification"`
}

// AdditivityConfig drives the additivity test.
type AdditivityConfig struct {
	Tolerance float64 `yaml:"tolerance" json:"tolerance" validate:"gte=0,lt=1"`
}

// StrategiesConfig enables and tunes the candidate generators.
type StrategiesConfig struct {
	Clique      CliqueConfig      `yaml:"clique" json:"clique"`
	Transitive  TransitiveConfig  `yaml:"transitive" json:"transitive"`
	Subtraction SubtractionConfig `yaml:"subtraction" json:"subtraction"`
}

// CliqueConfig tunes clique enumeration; Transitive shares the caps.
type CliqueConfig struct {
	Enabled          bool    `yaml:"enabled" json:"enabled"`
	FitnessThreshold float64 `yaml:"fitness_threshold" json:"fitness_threshold"`
	MinSize          int     `yaml:"min_size" json:"min_size" validate:"gte=1"`
	MaxSize          int     `yaml:"max_size" json:"max_size" validate:"gte=0"`
	MaxCliques       int     `yaml:"max_cliques" json:"max_cliques" validate:"gte=0"`
}

// TransitiveConfig tunes transitive closure.
type TransitiveConfig struct {
	Enabled     bool    `yaml:"enabled" json:"enabled"`
	MaxHop      int     `yaml:"max_hop" json:"max_hop" validate:"gte=0"`
	DecayFactor float64 `yaml:"decay_factor" json:"decay_factor" validate:"gt=0,lte=1"`
}

// SubtractionConfig tunes rule subtraction.
type SubtractionConfig struct {
	Enabled   bool    `yaml:"enabled" json:"enabled"`
	NumMutMin int     `yaml:"num_mut_min" json:"num_mut_min" validate:"gte=1"`
	AmpMin    float64 `yaml:"amp_min" json:"amp_min" validate:"gte=0"`
}

// FilterConfig bounds emitted candidates.
type FilterConfig struct {
	MinPredictedFitness   float64  `yaml:"min_predicted_fitness" json:"min_predicted_fitness"`
	MinDistance           int      `yaml:"min_distance" json:"min_distance" validate:"gte=0"`
	MaxDistance           int      `yaml:"max_distance" json:"max_distance" validate:"gte=0"`
	AllowPositions        []string `yaml:"allow_positions,omitempty" json:"allow_positions,omitempty" validate:"dive,required"`
	DenyPositions         []string `yaml:"deny_positions,omitempty" json:"deny_positions,omitempty" validate:"dive,required"`
	MinMinuendFitness     float64  `yaml:"min_minuend_fitness" json:"min_minuend_fitness"`
	MaxSubtrahendDistance int      `yaml:"max_subtrahend_distance" json:"max_subtrahend_distance" validate:"gte=0"`
	HitRatio              float64  `yaml:"hit_ratio" json:"hit_ratio" validate:"gt=0,lte=1"`
	Neighbors             int      `yaml:"neighbors" json:"neighbors" validate:"gte=1"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Extraction: ExtractionConfig{
			MaxArity:          4,
			AmpThreshold:      1.0,
			ObservationPolicy: extract.PolicyFirstSeen.String(),
		},
		Additivity: AdditivityConfig{Tolerance: 0.1},
		Strategies: StrategiesConfig{
			Clique: CliqueConfig{
				Enabled:    true,
				MinSize:    3,
				MaxCliques: 10000,
			},
			Transitive: TransitiveConfig{
				Enabled:     true,
				MaxHop:      1,
				DecayFactor: 0.9,
			},
			Subtraction: SubtractionConfig{
				Enabled:   true,
				NumMutMin: 1,
				AmpMin:    1.0,
			},
		},
		Filter: FilterConfig{
			HitRatio:  1.0 / 3.0,
			Neighbors: 3,
		},
		LogLevel: "info",
	}
}

// Load reads the YAML file at path over Default() and validates it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default() and validates the result. Unknown keys
// are errors.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Write encodes cfg as YAML.
func Write(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}

// Validate checks field constraints and cross-field consistency.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	cl := c.Strategies.Clique
	if cl.MaxSize > 0 && cl.MaxSize < cl.MinSize {
		return fmt.Errorf("%w: strategies.clique.max_size %d < min_size %d", ErrConfiguration, cl.MaxSize, cl.MinSize)
	}
	f := c.Filter
	if f.MaxDistance > 0 && f.MaxDistance < f.MinDistance {
		return fmt.Errorf("%w: filter.max_distance %d < min_distance %d", ErrConfiguration, f.MaxDistance, f.MinDistance)
	}
	deny := make(map[string]bool, len(f.DenyPositions))
	for _, p := range f.DenyPositions {
		deny[p] = true
	}
	for _, p := range f.AllowPositions {
		if deny[p] {
			return fmt.Errorf("%w: position %q is both allowed and denied", ErrConfiguration, p)
		}
	}
	if _, err := extract.ParsePolicy(c.Extraction.ObservationPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return nil
}

// Policy returns the parsed observation policy. Validate guarantees it
// parses.
func (c Config) Policy() extract.Policy {
	p, _ := extract.ParsePolicy(c.Extraction.ObservationPolicy)

	return p
}
