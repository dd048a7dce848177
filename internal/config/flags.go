// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
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

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-backend-url hosted backend base URL
//	-backend-key hosted backend API key
//	-backend-timeout per-call backend timeout (e.g., "10s")
//	-secret-key session signing secret
//	-d database DSN (direct SQL access to the tables)
//	-migrate apply database migrations at startup
//	-session-backend memory, redis or sqlite
//	-session-max-age session lifetime (e.g., "24h")
//	-redis-addr redis address for the redis session backend
//	-sqlite-dsn database file for the sqlite session backend
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-log-level zerolog level name
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("portal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	var backendURL, backendKey, secretKey string
	var backendTimeout, requestTimeout, sessionMaxAge time.Duration
	var databaseDSN string
	var migrate bool
	var sessionBackend, redisAddr, sqliteDSN string
	var logLevel string
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&backendURL, "backend-url", "", "Hosted backend base URL")
	fs.StringVar(&backendKey, "backend-key", "", "Hosted backend API key")
	fs.DurationVar(&backendTimeout, "backend-timeout", 0, "Backend call timeout (e.g., 10s)")
	fs.StringVar(&secretKey, "secret-key", "", "Session signing secret")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Apply database migrations at startup")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session backend: memory, redis or sqlite")
	fs.DurationVar(&sessionMaxAge, "session-max-age", 0, "Session lifetime (e.g., 24h)")
	fs.StringVar(&redisAddr, "redis-addr", "", "Redis address host:port")
	fs.StringVar(&sqliteDSN, "sqlite-dsn", "", "SQLite session database file")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			SecretKey: secretKey,
			LogLevel:  logLevel,
		},
		Backend: Backend{
			URL:            backendURL,
			Key:            backendKey,
			RequestTimeout: backendTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Session: Session{
			Backend: sessionBackend,
			MaxAge:  sessionMaxAge,
			Redis:   Redis{Addr: redisAddr},
			SQLite:  SQLite{DSN: sqliteDSN},
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
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
