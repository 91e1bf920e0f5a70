// Package config assembles the server and client settings.
//
// Four layers are read: environment variables, command-line flags, an
// optional JSON file whose path comes from either of the first two, and
// built-in defaults. A field keeps the value of the first layer that sets
// it. Use [GetStructuredConfig] in cmd/server and [GetClientConfig] in
// cmd/client.
package config
