// SPDX-License-Identifier: MIT
// Package designio: YAML configuration loading.

package designio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fjordtools/designkit/design"
	"github.com/fjordtools/designkit/matrix"
)

// ErrFormat indicates syntactically or structurally invalid input to the
// loader or table reader. Semantic configuration problems are reported by
// design.Validate as design.ErrConfig, not here.
var ErrFormat = errors.New("designio: invalid format")

func formatErrorf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrFormat)
}

// Leaf shapes decoded directly by the YAML library; ordering inside these
// does not matter.
type yamlSeeds struct {
	Mode   string `yaml:"mode"`
	Name   string `yaml:"name"`
	Origin int    `yaml:"origin"`
	Values []int  `yaml:"values"`
}

type yamlParam struct {
	Family  string    `yaml:"family"`
	Params  []float64 `yaml:"params"`
	Values  []float64 `yaml:"values"`
	Weights []float64 `yaml:"weights"`
}

type yamlCorr struct {
	Parameters []string    `yaml:"parameters"`
	Matrix     [][]float64 `yaml:"matrix"`
	Seed       int64       `yaml:"seed"`
	RankCorr   bool        `yaml:"rankcorr"`
}

type yamlSens struct {
	Type         string    `yaml:"type"`
	SeedName     string    `yaml:"seedname"`
	Repeats      int       `yaml:"repeats"`
	Parameters   yaml.Node `yaml:"parameters"`
	Cases        yaml.Node `yaml:"cases"`
	Correlations yaml.Node `yaml:"correlations"`
}

type yamlBackground struct {
	Parameters    yaml.Node          `yaml:"parameters"`
	Correlations  yaml.Node          `yaml:"correlations"`
	DefaultValues map[string]float64 `yaml:"defaultvalues"`
}

type yamlConfig struct {
	DesignType    string             `yaml:"designtype"`
	Seeds         yamlSeeds          `yaml:"seeds"`
	Repeats       int                `yaml:"repeats"`
	DistSeed      int64              `yaml:"distseed"`
	DefaultValues map[string]float64 `yaml:"defaultvalues"`
	Sensitivities yaml.Node          `yaml:"sensitivities"`
	Background    *yamlBackground    `yaml:"background"`
}

// LoadConfig parses a YAML configuration, preserving the declaration order
// of sensitivities, parameters, cases and correlation groups. The result
// is not validated beyond structure; run design.Validate (or Generate,
// which does) for semantic checks.
func LoadConfig(r io.Reader) (design.Config, error) {
	var raw yamlConfig
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return design.Config{}, formatErrorf("decode: %v", err)
	}

	cfg := design.Config{
		DesignType: design.DesignType(raw.DesignType),
		Seeds: design.SeedPolicy{
			Mode:   design.SeedMode(raw.Seeds.Mode),
			Name:   raw.Seeds.Name,
			Origin: raw.Seeds.Origin,
			Values: raw.Seeds.Values,
		},
		Repeats:       raw.Repeats,
		DistSeed:      raw.DistSeed,
		DefaultValues: raw.DefaultValues,
	}

	sens, err := decodeSensitivities(raw.Sensitivities)
	if err != nil {
		return design.Config{}, err
	}
	cfg.Sensitivities = sens

	if raw.Background != nil {
		bg := &design.Background{DefaultValues: raw.Background.DefaultValues}
		if bg.Parameters, err = decodeParameters(raw.Background.Parameters); err != nil {
			return design.Config{}, err
		}
		if bg.Correlations, err = decodeCorrelations(raw.Background.Correlations); err != nil {
			return design.Config{}, err
		}
		cfg.Background = bg
	}

	return cfg, nil
}

// LoadConfigFile reads and parses a YAML configuration file.
func LoadConfigFile(path string) (design.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return design.Config{}, fmt.Errorf("designio: open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

// mappingEntries walks a YAML mapping node in document order, invoking fn
// with each key name and value node. An absent node is an empty mapping.
func mappingEntries(node yaml.Node, what string, fn func(name string, value *yaml.Node) error) error {
	if node.IsZero() || node.Kind == 0 {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return formatErrorf("%s: expected a mapping at line %d", what, node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func decodeSensitivities(node yaml.Node) ([]design.Sensitivity, error) {
	var out []design.Sensitivity
	err := mappingEntries(node, "sensitivities", func(name string, value *yaml.Node) error {
		var ys yamlSens
		if err := value.Decode(&ys); err != nil {
			return formatErrorf("sensitivity %q: %v", name, err)
		}

		s := design.Sensitivity{
			Name:     name,
			Type:     design.SensType(ys.Type),
			SeedName: ys.SeedName,
			Repeats:  ys.Repeats,
		}
		var err error
		if s.Parameters, err = decodeParameters(ys.Parameters); err != nil {
			return fmt.Errorf("sensitivity %q: %w", name, err)
		}
		if s.Cases, err = decodeCases(ys.Cases); err != nil {
			return fmt.Errorf("sensitivity %q: %w", name, err)
		}
		if s.Correlations, err = decodeCorrelations(ys.Correlations); err != nil {
			return fmt.Errorf("sensitivity %q: %w", name, err)
		}

		out = append(out, s)
		return nil
	})
	return out, err
}

func decodeParameters(node yaml.Node) ([]design.Parameter, error) {
	var out []design.Parameter
	err := mappingEntries(node, "parameters", func(name string, value *yaml.Node) error {
		var yp yamlParam
		if err := value.Decode(&yp); err != nil {
			return formatErrorf("parameter %q: %v", name, err)
		}
		out = append(out, design.Parameter{
			Name:    name,
			Family:  yp.Family,
			Params:  yp.Params,
			Values:  yp.Values,
			Weights: yp.Weights,
		})
		return nil
	})
	return out, err
}

func decodeCases(node yaml.Node) ([]design.ScenarioCase, error) {
	var out []design.ScenarioCase
	err := mappingEntries(node, "cases", func(name string, value *yaml.Node) error {
		values := make(map[string]float64)
		if err := value.Decode(&values); err != nil {
			return formatErrorf("case %q: %v", name, err)
		}
		out = append(out, design.ScenarioCase{Name: name, Values: values})
		return nil
	})
	return out, err
}

func decodeCorrelations(node yaml.Node) ([]design.CorrGroup, error) {
	var out []design.CorrGroup
	err := mappingEntries(node, "correlations", func(name string, value *yaml.Node) error {
		var yc yamlCorr
		if err := value.Decode(&yc); err != nil {
			return formatErrorf("correlation group %q: %v", name, err)
		}
		m, err := matrix.NewDenseFromRows(yc.Matrix)
		if err != nil {
			return formatErrorf("correlation group %q: %v", name, err)
		}
		out = append(out, design.CorrGroup{
			Name:       name,
			Parameters: yc.Parameters,
			Matrix:     m,
			Seed:       yc.Seed,
			RankCorr:   yc.RankCorr,
		})
		return nil
	})
	return out, err
}
