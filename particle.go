package particlesim

import (
	"math"
	"math/rand"
)

// Bounds of the box and of randomly generated particles.
const (
	Width              = 1000.0
	Height             = 1000.0
	VelocityUpperBound = 25.0
	RadiusUpperBound   = 50.0

	// MaxParticles caps the size of the particle set.
	MaxParticles = 52
)

// A Particle is a circular particle with a position and a velocity.
type Particle struct {
	// ID identifies the particle across reorderings of the set.
	// The renderer keys its sprites on it, so if two particles share
	// an id their sprites will spontaneously swap on screen.
	ID uint64

	// Radius is the radius of the disk, in [0, RadiusUpperBound].
	Radius float64

	// Mass is proportional to the area of the disk. It is derived
	// from the radius and must never be set independently.
	Mass float64

	Pos Vec2
	Vel Vec2
}

// New returns a particle with mass derived from the radius by the area law.
func New(id uint64, radius float64, pos, vel Vec2) Particle {
	return Particle{
		ID:     id,
		Radius: radius,
		Mass:   math.Pi * radius * radius,
		Pos:    pos,
		Vel:    vel,
	}
}

// NewRandom returns a random particle whose radius, position and velocity
// are bounded by RadiusUpperBound, the box dimensions and VelocityUpperBound.
func NewRandom() Particle {
	radius := rand.Float64() * RadiusUpperBound
	return Particle{
		ID:     rand.Uint64(),
		Radius: radius,
		Mass:   math.Pi * radius * radius,
		Pos:    Vec2{rand.Float64() * Width, rand.Float64() * Height},
		Vel:    Vec2{rand.Float64() * VelocityUpperBound, rand.Float64() * VelocityUpperBound},
	}
}

// RandomParticles generates count random particles.
// The count is clamped to MaxParticles.
func RandomParticles(count int) []Particle {
	if count > MaxParticles {
		count = MaxParticles
	}
	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = NewRandom()
	}
	return particles
}

// Update moves the particle in free flight for dt and reflects its
// velocity off any wall it has reached or crossed.
//
// A wall only reflects a particle moving into it. A particle that has
// drifted past a wall but is already heading back into the box must keep
// its velocity, otherwise it would reflect forever and stay trapped
// outside. Position is never clamped; overshoot self-corrects on the
// next step through the reflected velocity.
func (p *Particle) Update(dt float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))

	if p.Pos.X+p.Radius >= Width && p.Vel.X > 0 ||
		p.Pos.X-p.Radius <= 0 && p.Vel.X < 0 {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y+p.Radius >= Height && p.Vel.Y > 0 ||
		p.Pos.Y-p.Radius <= 0 && p.Vel.Y < 0 {
		p.Vel.Y = -p.Vel.Y
	}
}

// Overlaps reports whether two disks overlap. Two disks overlap when
// their centre distance is strictly less than the sum of their radii;
// exact contact does not count.
func (p *Particle) Overlaps(q *Particle) bool {
	return p.Pos.Distance(q.Pos) < p.Radius+q.Radius
}

// React computes the elastic collision response between two overlapping
// particles and returns the new velocities for p and q. Positions are
// not touched.
//
// Pairs that cannot clear each other's area before the next step would
// otherwise collide again and stick together. To prevent that, particles
// already moving apart keep their velocities: only particles moving
// towards each other collide, the rest are recoiling.
func (p *Particle) React(q *Particle) (Vec2, Vec2) {
	v1, x1 := p.Vel, p.Pos
	v2, x2 := q.Vel, q.Pos

	const dt = 1e-6
	if x1.Add(v1.Scale(dt)).Distance(x2.Add(v2.Scale(dt)))-x1.Distance(x2) > 0 {
		return v1, v2
	}

	// Coincident centres make the formula divide by zero.
	if x1 == x2 {
		return v1, v2
	}

	// https://en.wikipedia.org/wiki/Elastic_collision
	d1 := x1.Sub(x2)
	w1 := v1.Sub(d1.Scale(2 * q.Mass / (p.Mass + q.Mass) * v1.Sub(v2).Dot(d1) / d1.Dot(d1)))

	d2 := x2.Sub(x1)
	w2 := v2.Sub(d2.Scale(2 * p.Mass / (p.Mass + q.Mass) * v2.Sub(v1).Dot(d2) / d2.Dot(d2)))

	return w1, w2
}
