// Command particles runs an elastic collision simulation of bouncing circles.
//
// Usage
//
// The particles command takes two optional arguments:
//  particles [count] [config_file]
// The first is the number of particles to simulate. If it is missing or
// not an integer, 20 particles are simulated. The count is capped at 52.
// The second is the path to a TOML config file with the remaining
// simulation parameters.
//
// Interactive mode
//
// In interactive mode, the simulation can be paused/resumed with space.
// While in pause, pressing right arrow will perform a single step.
// Pressing R resets the viewport and scrolling zooms around the cursor.
// Pressing Esc or closing the window will quit.
//
// Headless mode
//
// With Steps > 0 in the config file, no window opens: the simulation
// advances that many steps and prints the total momentum and kinetic
// energy of the final state on the standard output.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	particlesim "github.com/dStern98/particle-simulator"
	"github.com/dStern98/particle-simulator/opengl"
)

const usage = `Usage: particles [count] [config_file]

The first argument is the number of particles (default 20, max 52).
The second argument is the path to a TOML config file.
If no config file is specified, an interactive simulation
with default parameters will run in an OpenGL window.
`

func init() {
	// Most OpenGL functions have to run from the main thread.
	// This is needed to arrange that main() runs on main thread.
	// See https://github.com/golang/go/wiki/LockOSThread for more info.
	runtime.LockOSThread()

	// We are using the global PRNG so we must seed it here.
	rand.Seed(time.Now().UnixNano())
}

func main() {
	conf := DefaultConf
	var err error
	switch len(os.Args) {
	case 1:
	case 2:
		conf.Count = readCount(os.Args[1])
	case 3:
		conf, err = ParseConfig(os.Args[2])
		if err == nil {
			conf.Count = readCount(os.Args[1])
		}
	default:
		err = fmt.Errorf("%d arguments provided (0 required, 2 optional)\n\n%s", len(os.Args)-1, usage)
	}
	if err != nil {
		Fatal(err)
	}

	// setup simulation
	sim := &particlesim.Simulation{
		Particles: particlesim.RandomParticles(conf.Count),
		Dt:        conf.Dt,
	}

	// every sprite keeps its radius and a random color for the whole run
	sprites := make(map[uint64]opengl.Sprite, len(sim.Particles))
	for _, p := range sim.Particles {
		sprites[p.ID] = opengl.Sprite{Radius: p.Radius, Color: randomColor()}
	}

	// run interactively or not depending on config
	if conf.FramesPerSecond <= 0 {
		conf.FramesPerSecond = 15
	}
	if conf.Steps == 0 {
		err = opengl.Run(sim, &opengl.Config{
			MaxParticles: particlesim.MaxParticles,
			Step:         sim.Step,
			FrameDelay:   time.Second / time.Duration(conf.FramesPerSecond),
			Sprites:      sprites,
			Xmin:         0,
			Ymin:         0,
			Xmax:         particlesim.Width,
			Ymax:         particlesim.Height,
		})
	} else {
		err = RunHeadless(sim, conf)
	}
	if err != nil {
		Fatal(err)
	}
}

// readCount parses the desired particle count, defaulting to 20 when the
// argument is not an integer and capping the result at MaxParticles.
func readCount(arg string) int {
	count, err := strconv.Atoi(arg)
	if err != nil {
		count = 20
	}
	if count < 0 {
		count = 0
	}
	if count > particlesim.MaxParticles {
		count = particlesim.MaxParticles
	}
	return count
}

// randomColor returns a random opaque color for rendering purposes.
func randomColor() [4]float32 {
	return [4]float32{rand.Float32(), rand.Float32(), rand.Float32(), 1}
}

// Fatal prints an error on the standard output and exits with a non-zero status.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}
