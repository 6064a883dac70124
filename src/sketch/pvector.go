package sketch

import (
	"github.com/xernobyl/pvector/src/units"
	"github.com/xernobyl/pvector/src/vec"
)

// PVector is the constructor a sketch sees. Up to three coordinates, the rest
// default to 0.
func (c *Context) PVector(coords ...float64) *vec.PVector {
	v := vec.New(coords...)
	return &v
}

// FromAngle reads angle in the context's angle mode.
func (c *Context) FromAngle(angle units.Ang) vec.PVector {
	return vec.FromAngle(c.Radians(angle))
}

func (c *Context) Random2D() vec.PVector {
	return vec.Random2D(c)
}

func (c *Context) Random3D() vec.PVector {
	return vec.Random3D(c)
}

// AngleBetween is reported in the context's angle mode.
func (c *Context) AngleBetween(a, b vec.PVector) units.Ang {
	return c.Angle(vec.AngleBetween(a, b))
}

func (c *Context) Heading(v vec.PVector) units.Ang {
	return c.Angle(v.Heading())
}

func (c *Context) Rotate(v vec.PVector, angle units.Ang) vec.PVector {
	return vec.Rotate(v, c.Radians(angle))
}

func (c *Context) Lerp(a, b vec.PVector, t units.Pct) vec.PVector {
	return vec.Lerp(a, b, float64(t))
}
