package particlesim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepSortsAlongX(t *testing.T) {
	particles := []Particle{
		New(1, 0.1, Vec2{1.0, 1.0}, Vec2{}),
		New(2, 0.1, Vec2{0.5, 0.5}, Vec2{}),
		New(3, 0.1, Vec2{3.2, 3.2}, Vec2{}),
	}
	SweepAndPrune(particles)

	xs := make([]float64, len(particles))
	for i, p := range particles {
		xs[i] = p.Pos.X
	}
	assert.Equal(t, []float64{0.5, 1.0, 3.2}, xs)
}

func TestSweepCandidatesIntersectOnX(t *testing.T) {
	particles := randomSet(52, 11)
	for _, c := range SweepAndPrune(particles) {
		a, b := particles[c.A], particles[c.B]
		if a.Pos.X+a.Radius <= b.Pos.X-b.Radius {
			t.Errorf("candidate (%d, %d) has disjoint x extents", c.A, c.B)
		}
	}
}

func TestSweepCompleteness(t *testing.T) {
	// every actually overlapping pair must appear among the candidates
	particles := randomSet(52, 23)
	candidates := make(map[Pair]bool)
	for _, c := range SweepAndPrune(particles) {
		candidates[c] = true
	}

	for _, c := range overlappingPairs(particles) {
		if !candidates[c] {
			t.Errorf("overlapping pair (%d, %d) missing from candidates", c.A, c.B)
		}
	}
}

func TestFilterCollisionsExact(t *testing.T) {
	// after narrow-phase filtering, the result is exactly the set of
	// geometrically overlapping pairs
	particles := randomSet(52, 37)
	collisions := FilterCollisions(particles, SweepAndPrune(particles))

	assert.Equal(t, overlappingPairs(particles), collisions)
}

func TestApplyCollisionsSequential(t *testing.T) {
	// a particle in two pairs enters its second collision with the
	// velocity produced by the first
	particles := []Particle{
		New(1, 1.0, Vec2{0, 0}, Vec2{2, 0}),
		New(2, 1.0, Vec2{1.5, 0}, Vec2{-1, 0}),
		New(3, 1.0, Vec2{0.5, 1.2}, Vec2{0, -1}),
	}
	collisions := []Pair{{0, 1}, {0, 2}}

	want := append([]Particle{}, particles...)
	v1, v2 := want[0].React(&want[1])
	want[0].Vel, want[1].Vel = v1, v2
	v1, v3 := want[0].React(&want[2])
	want[0].Vel, want[2].Vel = v1, v3

	ApplyCollisions(particles, collisions)
	assert.Equal(t, want, particles)
}

func TestApplyCollisionsKeepsPositions(t *testing.T) {
	particles := randomSet(20, 41)
	pos := make([]Vec2, len(particles))
	collisions := FilterCollisions(particles, SweepAndPrune(particles))
	for i, p := range particles {
		pos[i] = p.Pos
	}

	ApplyCollisions(particles, collisions)
	for i, p := range particles {
		if p.Pos != pos[i] {
			t.Errorf("%d) resolver moved particle from %+v to %+v", i+1, pos[i], p.Pos)
		}
	}
}

// randomSet builds a reproducible particle set without touching the
// global PRNG.
func randomSet(n int, seed int64) []Particle {
	rng := rand.New(rand.NewSource(seed))
	particles := make([]Particle, n)
	for i := range particles {
		radius := rng.Float64() * RadiusUpperBound
		particles[i] = New(uint64(i), radius,
			Vec2{rng.Float64() * Width, rng.Float64() * Height},
			Vec2{rng.Float64() * VelocityUpperBound, rng.Float64() * VelocityUpperBound})
	}
	return particles
}

// overlappingPairs is the naive quadratic reference for the two-phase
// detector.
func overlappingPairs(particles []Particle) []Pair {
	var pairs []Pair
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			if particles[i].Overlaps(&particles[j]) {
				pairs = append(pairs, Pair{i, j})
			}
		}
	}
	return pairs
}
