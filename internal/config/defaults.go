package config

import "time"

const (
	defaultHTTPAddress       = "localhost:8080"
	defaultRequestTimeout    = 30 * time.Second
	defaultTokenIssuer       = "go-doc-keeper"
	defaultTokenDuration     = 48 * time.Hour
	defaultRoleID            = 2
	defaultLoginRateLimit    = 1
	defaultLoginRateBurst    = 5
	defaultMaxOpenConns      = 10
	defaultVersion           = "dev"
	defaultAdapterAddress    = "http://localhost:8080"
	defaultAdapterReqTimeout = 10 * time.Second
)

// defaults returns the lowest-priority configuration source.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:    defaultTokenIssuer,
			TokenDuration:  defaultTokenDuration,
			DefaultRoleID:  defaultRoleID,
			LoginRateLimit: defaultLoginRateLimit,
			LoginRateBurst: defaultLoginRateBurst,
			Version:        defaultVersion,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: defaultMaxOpenConns},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterReqTimeout,
		},
	}
}
