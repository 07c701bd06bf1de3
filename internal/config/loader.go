// SPDX-License-Identifier: MIT

// Package config loads levyprice scenario files.
//
// Files are YAML decoded strictly (unknown keys are errors) into the YAML*
// DTOs, then mapped to batch scenarios. A "defaults" block fills the fields
// a scenario leaves unset. Environment variables override the file:
//
//	LEVYPRICE_WORKERS  batch parallelism
//	LEVYPRICE_RECORD   SQLite database receiving the priced rows
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/levyproj/internal/batch"
)

// ErrInvalidConfig wraps every validation failure of a scenario file.
var ErrInvalidConfig = errors.New("config: invalid")

const (
	EnvWorkers = "LEVYPRICE_WORKERS"
	EnvRecord  = "LEVYPRICE_RECORD"
)

// Config is a loaded scenario file.
type Config struct {
	// Workers is the batch parallelism; 0 means one per CPU.
	Workers   int
	Places    int32
	Record    string
	Scenarios []batch.Scenario
}

// Load reads, decodes and maps the file at path, then applies environment overrides.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var dto YAMLFile
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: parse: %v: %w", path, err, ErrInvalidConfig)
	}

	cfg, err := MapFile(path, dto)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%s=%q: %w", EnvWorkers, v, ErrInvalidConfig)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvRecord); v != "" {
		c.Record = v
	}
	return nil
}
