package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

func ReadConfig(file string) BuildConfig {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config BuildConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		slog.Error("failed to parse config file: " + err.Error())
		panic(err)
	}
	return config
}

// BuildConfig is the top-level YAML configuration for a contraction run.
type BuildConfig struct {
	Build struct {
		Graph      string     `yaml:"graph"`
		Output     string     `yaml:"output"`
		Dimensions int        `yaml:"dimensions"`
		LP         LPOptions  `yaml:"lp"`
	} `yaml:"build"`
	Workers       int     `yaml:"workers"`
	QueueCapacity int     `yaml:"queue-capacity"`
	RestPercent   float64 `yaml:"rest-percent"`
}

// LPOptions configures the separation-LP cutting-plane loop.
type LPOptions struct {
	MaxIterations int `yaml:"max-iterations"`
}

func DefaultConfig() BuildConfig {
	var c BuildConfig
	c.Build.Dimensions = 2
	c.Build.LP.MaxIterations = 64
	c.Workers = 8
	c.QueueCapacity = 64
	c.RestPercent = 2.0
	return c
}
