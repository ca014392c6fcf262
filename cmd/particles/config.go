package main

import (
	"github.com/BurntSushi/toml"
)

// Config holds the various parameters required for running a simulation.
type Config struct {
	// Count is the number of particles. It is set from the command
	// line, never from the config file.
	Count int `toml:"-"`

	// Steps is the number of steps to run in headless mode.
	// Zero means an interactive OpenGL simulation.
	Steps int

	Dt              float64 // duration of time steps
	FramesPerSecond int     // frame pacing of the interactive window
}

// DefaultConf are the default parameters.
var DefaultConf = &Config{
	Count:           20,
	Steps:           0,
	Dt:              1.0,
	FramesPerSecond: 15,
}

// ParseConfig parses the TOML config file whose path is provided.
func ParseConfig(path string) (*Config, error) {
	// config file overwrites default parameters
	conf := DefaultConf
	_, err := toml.DecodeFile(path, conf)
	return conf, err
}
