package main

import (
	"fmt"

	particlesim "github.com/dStern98/particle-simulator"
)

// RunHeadless advances the simulation conf.Steps times without opening a
// window, then prints aggregate kinematics of the final state.
func RunHeadless(s *particlesim.Simulation, conf *Config) error {
	for i := 0; i < conf.Steps; i++ {
		s.Step()
	}

	px, py, ke := Aggregates(s.Particles)
	fmt.Printf("steps: %d particles: %d\n", conf.Steps, len(s.Particles))
	fmt.Printf("total momentum: (%g, %g)\n", px, py)
	fmt.Printf("total kinetic energy: %g\n", ke)
	return nil
}

// Aggregates returns the total momentum and kinetic energy of a particle set.
func Aggregates(particles []particlesim.Particle) (px, py, ke float64) {
	for _, p := range particles {
		px += p.Mass * p.Vel.X
		py += p.Mass * p.Vel.Y
		ke += 0.5 * p.Mass * p.Vel.Dot(p.Vel)
	}
	return px, py, ke
}
