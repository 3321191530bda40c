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

// ParseFlags parses the gateway's command-line flags from args (normally
// os.Args[1:]).
//
// Flags:
//
//	-a                  server address in format [host]:[port]
//	-d                  database DSN
//	-c / -config        YAML or JSON config file path
//	-log-level          zerolog level name
//	-auth-issuer        expected token issuer
//	-auth-audience      expected token audience
//	-jwks-url           JWKS document URL
//	-rate-limit         partner requests per window
//	-rate-window        partner rate-limit window (e.g. "1m")
//	-request-timeout    request timeout (e.g. "30s")
//	-migrate            apply embedded migrations at startup
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("go-tenant-gateway", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN, configPath, logLevel string
	var issuer, audience, jwksURL string
	var rateLimit int
	var rateWindow, requestTimeout time.Duration
	var migrate bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&issuer, "auth-issuer", "", "Expected token issuer")
	fs.StringVar(&audience, "auth-audience", "", "Expected token audience")
	fs.StringVar(&jwksURL, "jwks-url", "", "JWKS document URL")
	fs.IntVar(&rateLimit, "rate-limit", 0, "Partner requests per window")
	fs.DurationVar(&rateWindow, "rate-window", 0, "Partner rate-limit window (e.g., 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&migrate, "migrate", false, "Apply embedded migrations at startup")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Auth: Auth{
			Issuer:   issuer,
			Audience: audience,
			JWKSURL:  jwksURL,
		},
		RateLimit: RateLimit{
			Limit:  rateLimit,
			Window: rateWindow,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		ConfigFilePath: configPath,
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
// An empty host listens on all interfaces. A non-empty host must be
// "localhost" or a valid IP address.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
