// Package effects generates the decorative particle field drawn behind the
// hero banner. The browser animates its own copy; the server uses the same
// model for the social preview image.
package effects

import (
	"math"
	"math/rand/v2"
)

// Config describes a particle field. Zero values take defaults.
type Config struct {
	Count     int
	Width     float64
	Height    float64
	Seed      uint64
	MaxSpeed  float64 // pixels per second
	MinRadius float64
	MaxRadius float64
}

func (c *Config) setDefaults() {
	if c.Count <= 0 {
		c.Count = 100
	}
	if c.Width <= 0 {
		c.Width = 1200
	}
	if c.Height <= 0 {
		c.Height = 630
	}
	if c.MaxSpeed <= 0 {
		c.MaxSpeed = 30
	}
	if c.MinRadius <= 0 {
		c.MinRadius = 0.5
	}
	if c.MaxRadius < c.MinRadius {
		c.MaxRadius = c.MinRadius + 3
	}
}

// Particle is one point in the field.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Alpha  float64
}

// Link joins two particles closer than the link distance. Alpha fades
// linearly from 1 at zero distance to 0 at the limit.
type Link struct {
	A, B  int
	Alpha float64
}

// Field is a set of particles moving inside a rectangle.
type Field struct {
	cfg       Config
	Particles []Particle
}

// NewField generates a field. The same Config always yields the same field.
func NewField(cfg Config) *Field {
	cfg.setDefaults()
	f := &Field{cfg: cfg}
	f.generate()
	return f
}

// Config returns the effective configuration.
func (f *Field) Config() Config {
	return f.cfg
}

func (f *Field) generate() {
	rng := rand.New(rand.NewPCG(f.cfg.Seed, f.cfg.Seed^0x9e3779b97f4a7c15))
	f.Particles = make([]Particle, f.cfg.Count)
	for i := range f.Particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := rng.Float64() * f.cfg.MaxSpeed
		f.Particles[i] = Particle{
			X:      rng.Float64() * f.cfg.Width,
			Y:      rng.Float64() * f.cfg.Height,
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle) * speed,
			Radius: f.cfg.MinRadius + rng.Float64()*(f.cfg.MaxRadius-f.cfg.MinRadius),
			Alpha:  0.1 + rng.Float64()*0.3,
		}
	}
}

// Resize regenerates the particles for a new canvas size.
func (f *Field) Resize(width, height float64) {
	f.cfg.Width, f.cfg.Height = width, height
	f.cfg.setDefaults()
	f.generate()
}

// Step advances the field by dt seconds. Particles bounce off the edges.
func (f *Field) Step(dt float64) {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X, p.VX = reflect(p.X+p.VX*dt, p.VX, f.cfg.Width)
		p.Y, p.VY = reflect(p.Y+p.VY*dt, p.VY, f.cfg.Height)
	}
}

// reflect folds pos back into [0, limit], flipping v on every bounce.
func reflect(pos, v, limit float64) (float64, float64) {
	if limit <= 0 {
		return 0, v
	}
	period := 2 * limit
	pos = math.Mod(pos, period)
	if pos < 0 {
		pos += period
	}
	if pos > limit {
		return period - pos, -v
	}
	return pos, v
}

// Repel pushes particles within radius of (px, py) away from it. The push
// falls off linearly with distance.
func (f *Field) Repel(px, py, radius, strength float64) {
	if radius <= 0 {
		return
	}
	for i := range f.Particles {
		p := &f.Particles[i]
		dx, dy := p.X-px, p.Y-py
		d := math.Hypot(dx, dy)
		if d == 0 || d >= radius {
			continue
		}
		push := strength * (1 - d/radius)
		p.X = clamp(p.X+dx/d*push, 0, f.cfg.Width)
		p.Y = clamp(p.Y+dy/d*push, 0, f.cfg.Height)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Links returns every pair of particles closer than maxDist.
func (f *Field) Links(maxDist float64) []Link {
	if maxDist <= 0 {
		return nil
	}
	var links []Link
	for i := 0; i < len(f.Particles); i++ {
		for j := i + 1; j < len(f.Particles); j++ {
			a, b := f.Particles[i], f.Particles[j]
			d := math.Hypot(a.X-b.X, a.Y-b.Y)
			if d < maxDist {
				links = append(links, Link{A: i, B: j, Alpha: 1 - d/maxDist})
			}
		}
	}
	return links
}
