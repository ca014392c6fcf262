package particlesim

import "sort"

// A Pair holds the indices of two particles in the set, first < second.
type Pair struct {
	A int
	B int
}

// SweepAndPrune sorts the particle set in place along the x axis and
// returns the index pairs whose x extents intersect. The result contains
// every actually colliding pair and possibly some non-colliding ones;
// FilterCollisions removes the false positives.
//
// Floats have no total order because of NaN, so the comparator is
// explicit. NaN never reaches positions here; ties in x stay in
// whatever order the sort leaves them.
func SweepAndPrune(particles []Particle) []Pair {
	sort.Slice(particles, func(i, j int) bool {
		return particles[i].Pos.X < particles[j].Pos.X
	})

	var candidates []Pair
	for i := range particles {
		for j := i + 1; j < len(particles); j++ {
			a, b := &particles[i], &particles[j]

			// x extents intersect: possible collision
			if a.Pos.X+a.Radius > b.Pos.X-b.Radius {
				candidates = append(candidates, Pair{i, j})
			}

			// Once the gap between a's right edge and b's left edge
			// exceeds the largest possible radius, no particle after b
			// can reach back to a: the set is sorted and no radius
			// exceeds RadiusUpperBound.
			if (b.Pos.X-b.Radius)-(a.Pos.X+a.Radius) > RadiusUpperBound {
				break
			}
		}
	}
	return candidates
}

// FilterCollisions keeps the candidate pairs that geometrically overlap.
func FilterCollisions(particles []Particle, candidates []Pair) []Pair {
	var collisions []Pair
	for _, c := range candidates {
		if particles[c.A].Overlaps(&particles[c.B]) {
			collisions = append(collisions, c)
		}
	}
	return collisions
}

// ApplyCollisions applies the elastic response to each colliding pair,
// in order. A particle in several pairs enters its second collision with
// the velocity from its first: updates are sequential, not simultaneous.
func ApplyCollisions(particles []Particle, collisions []Pair) {
	for _, c := range collisions {
		v1, v2 := particles[c.A].React(&particles[c.B])
		particles[c.A].Vel = v1
		particles[c.B].Vel = v2
	}
}
