package main

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" default:"./data/audit"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"ERROR"`
	// AUDIT_COLOURS turns the status column colors off for piping
	Colours bool `envconfig:"AUDIT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
