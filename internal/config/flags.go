package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// parseFlags reads the command-line layer. Flags bind straight into the
// returned config, so an absent flag leaves its field zero.
//
//	-a               listen address host:port
//	-d               database DSN
//	-db-max-conns    connection pool size
//	-c, -config      JSON config file
//	-token-sign-key  token signing secret
//	-token-issuer    token issuer
//	-token-duration  token lifetime, e.g. 48h
//	-request-timeout request timeout, e.g. 30s
//	-trust-proxy     take client addresses from proxy headers
//	-api             API base URL used by the client
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet("go-doc-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var((*listenAddress)(&cfg.Server.HTTPAddress), "a", "listen address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN")
	fs.IntVar(&cfg.Storage.DB.MaxOpenConns, "db-max-conns", 0, "connection pool size")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "token signing secret")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "request timeout")
	fs.BoolVar(&cfg.Server.TrustProxy, "trust-proxy", false, "take client addresses from proxy headers")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "api", "", "API base URL used by the client")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		cfg.Args = fs.Args()
	}

	return cfg, nil
}

// listenAddress is a flag.Value accepting host:port with a numeric port in
// 1..65535. The host may be empty, "localhost" or an IP literal.
type listenAddress string

func (a *listenAddress) String() string {
	if a == nil {
		return ""
	}
	return string(*a)
}

func (a *listenAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form host:port: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", portStr)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	*a = listenAddress(net.JoinHostPort(host, portStr))
	return nil
}
