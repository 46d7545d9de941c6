// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-redis redis session store address
//	-c/-config json file path with configs
//	-env deployment environment (production, development, test)
//	-cookie-name session cookie name
//	-cookie-hash-key session cookie signing key
//	-session-expires-in session lifetime, 0 for no expiry (e.g. "720h")
//	-csrf-dev-host-prefix host prefix exempted from the CSRF origin check
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("auth-server", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, redisAddress string
	var jsonConfigPath string
	var environment, cookieName, cookieHashKey, csrfDevHostPrefix string
	var sessionExpiresIn, requestTimeout time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&redisAddress, "redis", "", "Redis session store address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&environment, "env", "", "Deployment environment")
	fs.StringVar(&cookieName, "cookie-name", "", "Session cookie name")
	fs.StringVar(&cookieHashKey, "cookie-hash-key", "", "Session cookie signing key")
	fs.DurationVar(&sessionExpiresIn, "session-expires-in", 0, "Session lifetime, 0 for no expiry")
	fs.StringVar(&csrfDevHostPrefix, "csrf-dev-host-prefix", "", "Host prefix exempted from the CSRF origin check")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Environment:       environment,
			CookieName:        cookieName,
			CookieHashKey:     cookieHashKey,
			SessionExpiresIn:  sessionExpiresIn,
			CSRFDevHostPrefix: csrfDevHostPrefix,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
