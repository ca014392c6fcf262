// Package particlesim simulates circular particles bouncing around a box.
//
// A fixed number of circular particles move in a 2D box under constant
// velocity. They reflect off the walls of the box and collide elastically
// with each other. Collision detection runs in two phases: a sweep-and-prune
// broad phase sorted along the x axis, then an exact pairwise overlap check.
package particlesim

// A Simulation contains the full state of a simulation.
type Simulation struct {
	// Particles is the particle set. The broad phase reorders it in
	// place; identity is carried by Particle.ID, not slice position.
	Particles []Particle

	// Dt is the time step of the simulation.
	Dt float64
}

// Step advances the simulation by one time step.
//
// Every particle first moves in free flight, reflecting off walls.
// The broad phase then sorts the set along x and emits candidate pairs,
// the narrow phase keeps the pairs that geometrically overlap, and the
// resolver applies the elastic velocity updates in emission order.
func (s *Simulation) Step() {
	for i := range s.Particles {
		s.Particles[i].Update(s.Dt)
	}

	candidates := SweepAndPrune(s.Particles)
	collisions := FilterCollisions(s.Particles, candidates)
	ApplyCollisions(s.Particles, collisions)
}
