package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// source yields one configuration layer. loaded holds the layers read so
// far, highest priority first. A nil layer is skipped.
type source func(loaded []*StructuredConfig) (*StructuredConfig, error)

// load reads every source in priority order and merges the layers. mergo
// only fills zero fields, so a value from an earlier source is never
// overwritten by a later one. All source errors are reported together.
func load(sources ...source) (*StructuredConfig, error) {
	layers := make([]*StructuredConfig, 0, len(sources))

	var errs error
	for _, src := range sources {
		layer, err := src(layers)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if layer != nil {
			layers = append(layers, layer)
		}
	}
	if errs != nil {
		return nil, fmt.Errorf("error occured during building config: %w", errs)
	}

	merged := new(StructuredConfig)
	for _, layer := range layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

// standardSources is env, flags, the JSON file and defaults, in that order.
func standardSources(args []string) []source {
	return []source{fromEnv, fromFlags(args), fromJSON, fromDefaults}
}

func fromEnv([]*StructuredConfig) (*StructuredConfig, error) {
	return parseEnv()
}

func fromFlags(args []string) source {
	return func([]*StructuredConfig) (*StructuredConfig, error) {
		return parseFlags(args)
	}
}

// fromJSON reads the file named by the first layer that sets a path.
func fromJSON(loaded []*StructuredConfig) (*StructuredConfig, error) {
	for _, layer := range loaded {
		if layer.JSONFilePath != "" {
			return parseJSON(layer.JSONFilePath)
		}
	}
	return nil, nil
}

func fromDefaults([]*StructuredConfig) (*StructuredConfig, error) {
	return defaults(), nil
}

func commandLineArgs() []string {
	if len(os.Args) < 2 {
		return nil
	}
	return os.Args[1:]
}
