// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Environment        string   `json:"environment"`
		CookieName         string   `json:"cookie_name"`
		CookieHashKey      string   `json:"cookie_hash_key"`
		SessionExpiresIn   Duration `json:"session_expires_in"`
		CSRFDevHostPrefix  string   `json:"csrf_dev_host_prefix"`
		ArgonMemory        uint32   `json:"argon_memory"`
		ArgonIterations    uint32   `json:"argon_iterations"`
		ArgonParallelism   uint8    `json:"argon_parallelism"`
		HashConcurrency    int64    `json:"hash_concurrency"`
		LoginRatePerMinute int      `json:"login_rate_per_minute"`
		LoginBurst         int      `json:"login_burst"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`
	} `json:"storage,omitempty"`

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
			Environment:        jsonCfg.App.Environment,
			CookieName:         jsonCfg.App.CookieName,
			CookieHashKey:      jsonCfg.App.CookieHashKey,
			SessionExpiresIn:   time.Duration(jsonCfg.App.SessionExpiresIn),
			CSRFDevHostPrefix:  jsonCfg.App.CSRFDevHostPrefix,
			ArgonMemory:        jsonCfg.App.ArgonMemory,
			ArgonIterations:    jsonCfg.App.ArgonIterations,
			ArgonParallelism:   jsonCfg.App.ArgonParallelism,
			HashConcurrency:    jsonCfg.App.HashConcurrency,
			LoginRatePerMinute: jsonCfg.App.LoginRatePerMinute,
			LoginBurst:         jsonCfg.App.LoginBurst,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			SessionSweepInterval: time.Duration(jsonCfg.Workers.SessionSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
