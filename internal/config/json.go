// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		SecretKey string `json:"secret_key"`
		Version   string `json:"version"`
		LogLevel  string `json:"log_level"`
	} `json:"app,omitempty"`

	Backend struct {
		URL            string   `json:"url"`
		Key            string   `json:"key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Storage struct {
		DB struct {
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Session struct {
		Backend      string   `json:"backend"`
		MaxAge       Duration `json:"max_age"`
		SecureCookie bool     `json:"secure_cookie"`
		Redis        struct {
			Addr     string `json:"addr"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
		SQLite struct {
			DSN string `json:"dsn"`
		} `json:"sqlite,omitempty"`
	} `json:"session,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		SessionSweepInterval Duration `json:"session_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SecretKey: jsonCfg.App.SecretKey,
			Version:   jsonCfg.App.Version,
			LogLevel:  jsonCfg.App.LogLevel,
		},
		Backend: Backend{
			URL:            jsonCfg.Backend.URL,
			Key:            jsonCfg.Backend.Key,
			RequestTimeout: time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
		},
		Session: Session{
			Backend:      jsonCfg.Session.Backend,
			MaxAge:       time.Duration(jsonCfg.Session.MaxAge),
			SecureCookie: jsonCfg.Session.SecureCookie,
			Redis: Redis{
				Addr:     jsonCfg.Session.Redis.Addr,
				Password: jsonCfg.Session.Redis.Password,
				DB:       jsonCfg.Session.Redis.DB,
			},
			SQLite: SQLite{
				DSN: jsonCfg.Session.SQLite.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
