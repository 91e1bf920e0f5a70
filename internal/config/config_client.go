package config

import "fmt"

// ClientConfig is the configuration of cmd/client.
type ClientConfig struct {
	Adapter Adapter

	// Args hold the command and its operands.
	Args []string
}

// GetClientConfig reads the same layers as the server but keeps only the
// adapter settings, so server-only fields are never required.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load(standardSources(commandLineArgs())...)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{Adapter: cfg.Adapter, Args: cfg.Args}
	return clientCfg, clientCfg.validate()
}
