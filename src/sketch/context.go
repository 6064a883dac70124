/*
Package sketch is the seam between the vector library and a host sketch
runtime. A Context stands in for the host object: it owns the random
generator and the angle mode, and hands out vectors and vector statics that
honour both.
*/

package sketch

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/xernobyl/pvector/src/units"
	"github.com/xernobyl/pvector/src/vec"
)

type AngleMode uint8

const (
	Radians AngleMode = iota
	Degrees
)

func (m AngleMode) String() string {
	if m == Degrees {
		return "degrees"
	}
	return "radians"
}

// Context is safe for concurrent use.
type Context struct {
	mu        sync.Mutex
	src       vec.Source
	angleMode AngleMode
	log       *zap.Logger
}

type Option func(*Context)

// WithSource makes the context draw random values from src.
func WithSource(src vec.Source) Option {
	return func(c *Context) { c.src = src }
}

func WithSeed(seed uint64) Option {
	return func(c *Context) { c.src = seeded(seed) }
}

func WithAngleMode(m AngleMode) Option {
	return func(c *Context) { c.angleMode = m }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Context) { c.log = l }
}

func New(opts ...Option) *Context {
	c := &Context{log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return c
}

func seeded(seed uint64) vec.Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Float64 makes the context itself a vec.Source.
func (c *Context) Float64() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.src.Float64()
}

// Random returns a uniform value in [lo, hi).
func (c *Context) Random(lo, hi float64) float64 {
	return lo + (hi-lo)*c.Float64()
}

// RandomSeed restarts the context's generator from seed.
func (c *Context) RandomSeed(seed uint64) {
	c.mu.Lock()
	c.src = seeded(seed)
	c.mu.Unlock()
	c.log.Debug("random seed set", zap.Uint64("seed", seed))
}

func (c *Context) AngleMode() AngleMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.angleMode
}

func (c *Context) SetAngleMode(m AngleMode) {
	c.mu.Lock()
	c.angleMode = m
	c.mu.Unlock()
	c.log.Debug("angle mode set", zap.Stringer("mode", m))
}

// Radians converts an angle given in the context's mode to radians.
func (c *Context) Radians(a units.Ang) units.Rad {
	if c.AngleMode() == Degrees {
		return units.Deg(a).Rad()
	}
	return units.Rad(a)
}

// Angle converts radians to the context's mode.
func (c *Context) Angle(r units.Rad) units.Ang {
	if c.AngleMode() == Degrees {
		return units.Ang(r.Deg())
	}
	return units.Ang(r)
}
