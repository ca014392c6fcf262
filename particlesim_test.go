package particlesim

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepPreservesIDs(t *testing.T) {
	s := &Simulation{Particles: randomSet(52, 3), Dt: 1.0}

	before := ids(s.Particles)
	for i := 0; i < 100; i++ {
		s.Step()
	}
	assert.Equal(t, before, ids(s.Particles), "steps neither add nor drop particles")
}

func TestStepPreservesRadiusAndMass(t *testing.T) {
	s := &Simulation{Particles: randomSet(52, 5), Dt: 1.0}

	type shape struct{ radius, mass float64 }
	before := make(map[uint64]shape)
	for _, p := range s.Particles {
		before[p.ID] = shape{p.Radius, p.Mass}
	}

	for i := 0; i < 100; i++ {
		s.Step()
	}
	for _, p := range s.Particles {
		if before[p.ID] != (shape{p.Radius, p.Mass}) {
			t.Errorf("particle %d changed shape: %+v -> {%g %g}",
				p.ID, before[p.ID], p.Radius, p.Mass)
		}
	}
}

func TestStepFreeFlight(t *testing.T) {
	// two distant particles never interact: a step is pure free flight
	s := &Simulation{
		Particles: []Particle{
			New(1, 1.0, Vec2{100, 100}, Vec2{2.5, 3.5}),
			New(2, 1.0, Vec2{900, 900}, Vec2{-2.5, -3.5}),
		},
		Dt: 1.0,
	}
	s.Step()

	assert.Equal(t, Vec2{102.5, 103.5}, s.Particles[0].Pos)
	assert.Equal(t, Vec2{897.5, 896.5}, s.Particles[1].Pos)
	assert.Equal(t, Vec2{2.5, 3.5}, s.Particles[0].Vel)
	assert.Equal(t, Vec2{-2.5, -3.5}, s.Particles[1].Vel)
}

func TestStepResolvesCollision(t *testing.T) {
	// head-on equal-mass pair: one step moves them and swaps velocities
	s := &Simulation{
		Particles: []Particle{
			New(1, 5.0, Vec2{500, 500}, Vec2{1, 0}),
			New(2, 5.0, Vec2{508, 500}, Vec2{-1, 0}),
		},
		Dt: 1.0,
	}
	s.Step()

	// slice was re-sorted by x, find them by id
	var left, right Particle
	for _, p := range s.Particles {
		if p.ID == 1 {
			left = p
		} else {
			right = p
		}
	}
	assert.InDelta(t, -1.0, left.Vel.X, 1e-12)
	assert.InDelta(t, 1.0, right.Vel.X, 1e-12)
}

func TestStepEmptySet(t *testing.T) {
	s := &Simulation{Particles: nil, Dt: 1.0}
	assert.NotPanics(t, s.Step)
}

func ids(particles []Particle) []uint64 {
	out := make([]uint64, len(particles))
	for i, p := range particles {
		out[i] = p.ID
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
