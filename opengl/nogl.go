//go:build nogl
// +build nogl

// Package opengl renders particle simulations in an OpenGL window.
package opengl

import (
	"fmt"
	"os"
	"time"

	particlesim "github.com/dStern98/particle-simulator"
)

// A Sprite is the fixed appearance of one particle, keyed by particle id.
type Sprite struct {
	Radius float64    // radius of the filled circle
	Color  [4]float32 // RGBA fill color
}

// Config holds the parameters of the OpenGL driver.
type Config struct {
	MaxParticles int               // maximum particle set size
	Step         func()            // go to next step
	FrameDelay   time.Duration     // pause between steps
	Sprites      map[uint64]Sprite // sprite store, one per particle id
	ForcePause   bool              // step manually only?

	// bounds of default viewport
	Xmin float64
	Ymin float64
	Xmax float64
	Ymax float64
}

// Run returns an error explaining that OpenGL support is disabled.
func Run(s *particlesim.Simulation, conf *Config) error {
	return fmt.Errorf("%s was built without OpenGL support", os.Args[0])
}
