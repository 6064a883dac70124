package vec

import "github.com/xernobyl/pvector/src/units"

// In place operations. Each one overwrites the receiver and returns it, so
// calls chain: p.Add(q).Mult(2).Limit(10).

func (p *PVector) Set(x, y, z float64) *PVector {
	p.X, p.Y, p.Z = x, y, z
	return p
}

// SetXY leaves Z untouched.
func (p *PVector) SetXY(x, y float64) *PVector {
	p.X, p.Y = x, y
	return p
}

func (p *PVector) SetFrom(o PVector) *PVector {
	*p = o
	return p
}

// SetArray takes x and y from a (0 when absent) and z only when present.
func (p *PVector) SetArray(a []float64) *PVector {
	var x, y float64
	if len(a) > 0 {
		x = a[0]
	}
	if len(a) > 1 {
		y = a[1]
	}
	p.X, p.Y = x, y
	if len(a) > 2 {
		p.Z = a[2]
	}
	return p
}

func (p *PVector) Add(o PVector) *PVector {
	p.X += o.X
	p.Y += o.Y
	p.Z += o.Z
	return p
}

func (p *PVector) AddScalar(n float64) *PVector {
	p.X += n
	p.Y += n
	p.Z += n
	return p
}

func (p *PVector) AddXYZ(x, y, z float64) *PVector {
	return p.Add(PVector{x, y, z})
}

func (p *PVector) Sub(o PVector) *PVector {
	p.X -= o.X
	p.Y -= o.Y
	p.Z -= o.Z
	return p
}

func (p *PVector) SubScalar(n float64) *PVector {
	return p.AddScalar(-n)
}

func (p *PVector) SubXYZ(x, y, z float64) *PVector {
	return p.Sub(PVector{x, y, z})
}

// SubInv replaces p with o - p.
func (p *PVector) SubInv(o PVector) *PVector {
	*p = Sub(o, *p)
	return p
}

func (p *PVector) SubInvScalar(n float64) *PVector {
	return p.SubInv(PVector{n, n, n})
}

func (p *PVector) SubInvXYZ(x, y, z float64) *PVector {
	return p.SubInv(PVector{x, y, z})
}

func (p *PVector) Mult(n float64) *PVector {
	p.X *= n
	p.Y *= n
	p.Z *= n
	return p
}

func (p *PVector) MultV(o PVector) *PVector {
	p.X *= o.X
	p.Y *= o.Y
	p.Z *= o.Z
	return p
}

func (p *PVector) Div(n float64) *PVector {
	p.X /= n
	p.Y /= n
	p.Z /= n
	return p
}

func (p *PVector) DivV(o PVector) *PVector {
	p.X /= o.X
	p.Y /= o.Y
	p.Z /= o.Z
	return p
}

func (p *PVector) Mod(n float64) *PVector {
	*p = Mod(*p, n)
	return p
}

func (p *PVector) ModV(o PVector) *PVector {
	*p = ModV(*p, o)
	return p
}

func (p *PVector) Negate() *PVector {
	*p = Negate(*p)
	return p
}

func (p *PVector) Clear() *PVector {
	*p = PVector{}
	return p
}

func (p *PVector) Normalize() *PVector {
	*p = Normalize(*p)
	return p
}

func (p *PVector) Limit(max float64) *PVector {
	*p = Limit(*p, max)
	return p
}

func (p *PVector) SetMag(length float64) *PVector {
	*p = SetMag(*p, length)
	return p
}

func (p *PVector) Rotate(angle units.Rad) *PVector {
	*p = Rotate(*p, angle)
	return p
}

func (p *PVector) RotateZ(angle units.Rad) *PVector {
	return p.Rotate(angle)
}

func (p *PVector) RotateX(angle units.Rad) *PVector {
	*p = RotateX(*p, angle)
	return p
}

func (p *PVector) RotateY(angle units.Rad) *PVector {
	*p = RotateY(*p, angle)
	return p
}

// FromAngle overwrites p with the unit vector at angle in the XY plane.
func (p *PVector) FromAngle(angle units.Rad) *PVector {
	*p = FromAngle(angle)
	return p
}

// Lerp moves p towards o by t.
func (p *PVector) Lerp(o PVector, t float64) *PVector {
	*p = Lerp(*p, o, t)
	return p
}

func (p *PVector) LerpXYZ(x, y, z, t float64) *PVector {
	return p.Lerp(PVector{x, y, z}, t)
}

// LerpValues takes up to three target coordinates followed by the amount,
// so (x, t), (x, y, t) and (x, y, z, t) are all valid. Axes without a target
// keep their value. Fewer than two values is an *ArgsError.
func (p *PVector) LerpValues(vals ...float64) error {
	if len(vals) < 2 {
		return argsErr("lerp", len(vals), 2)
	}

	t := vals[len(vals)-1]
	target := *p
	coords := vals[:min(len(vals)-1, 3)]
	for i, c := range coords {
		switch i {
		case 0:
			target.X = c
		case 1:
			target.Y = c
		case 2:
			target.Z = c
		}
	}

	p.Lerp(target, t)
	return nil
}
