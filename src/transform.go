package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/xernobyl/pvector/src/sketch"
	"github.com/xernobyl/pvector/src/units"
	"github.com/xernobyl/pvector/src/vec"
)

// Step is one operation of a transform pipeline, as written in the config
// file or on the command line.
type Step struct {
	Op     string  `mapstructure:"op"`
	Angle  float64 `mapstructure:"angle"`
	Amount float64 `mapstructure:"amount"`
	X      float64 `mapstructure:"x"`
	Y      float64 `mapstructure:"y"`
	Z      float64 `mapstructure:"z"`
}

func (s Step) String() string {
	var b strings.Builder
	b.WriteString(s.Op)
	sep := ":"
	for _, kv := range []struct {
		k string
		v float64
	}{{"angle", s.Angle}, {"amount", s.Amount}, {"x", s.X}, {"y", s.Y}, {"z", s.Z}} {
		if kv.v != 0 {
			b.WriteString(sep + kv.k + "=" + strconv.FormatFloat(kv.v, 'g', -1, 64))
			sep = ","
		}
	}
	return b.String()
}

// ParseStep reads "op" or "op:key=value,key=value", the inverse of String.
func ParseStep(s string) (Step, error) {
	op, params, _ := strings.Cut(strings.TrimSpace(s), ":")
	step := Step{Op: op}
	if op == "" {
		return step, fmt.Errorf("empty step %q", s)
	}
	if params == "" {
		return step, nil
	}

	for _, kv := range strings.Split(params, ",") {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return step, fmt.Errorf("step %q: expected key=value, got %q", s, kv)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return step, fmt.Errorf("step %q: %w", s, err)
		}
		switch strings.TrimSpace(k) {
		case "angle":
			step.Angle = f
		case "amount":
			step.Amount = f
		case "x":
			step.X = f
		case "y":
			step.Y = f
		case "z":
			step.Z = f
		default:
			return step, fmt.Errorf("step %q: unknown parameter %q", s, k)
		}
	}
	return step, nil
}

type stepFunc func(*vec.PVector)

// Compile turns steps into vertex functions. Angles are read in the
// context's angle mode; jitter draws from the context's generator.
func Compile(steps []Step, sk *sketch.Context) ([]stepFunc, error) {
	fns := make([]stepFunc, 0, len(steps))
	for _, s := range steps {
		xyz := vec.PVector{X: s.X, Y: s.Y, Z: s.Z}
		angle := sk.Radians(units.Ang(s.Angle))
		amount := s.Amount

		var fn stepFunc
		switch strings.ToLower(s.Op) {
		case "translate", "add":
			fn = func(p *vec.PVector) { p.Add(xyz) }
		case "scale":
			fn = func(p *vec.PVector) { p.Mult(amount) }
		case "mult":
			fn = func(p *vec.PVector) { p.MultV(xyz) }
		case "div":
			if amount == 0 {
				return nil, fmt.Errorf("step %s: div needs a non zero amount", s)
			}
			fn = func(p *vec.PVector) { p.Div(amount) }
		case "mod":
			if amount == 0 {
				return nil, fmt.Errorf("step %s: mod needs a non zero amount", s)
			}
			fn = func(p *vec.PVector) { p.Mod(amount) }
		case "rotate", "rotatez":
			fn = func(p *vec.PVector) { p.RotateZ(angle) }
		case "rotatex":
			fn = func(p *vec.PVector) { p.RotateX(angle) }
		case "rotatey":
			fn = func(p *vec.PVector) { p.RotateY(angle) }
		case "normalize":
			fn = func(p *vec.PVector) { p.Normalize() }
		case "limit":
			fn = func(p *vec.PVector) { p.Limit(amount) }
		case "setmag":
			fn = func(p *vec.PVector) { p.SetMag(amount) }
		case "negate":
			fn = func(p *vec.PVector) { p.Negate() }
		case "lerp":
			fn = func(p *vec.PVector) { p.Lerp(xyz, amount) }
		case "jitter":
			fn = func(p *vec.PVector) { p.Add(vec.Mult(sk.Random3D(), amount)) }
		default:
			return nil, fmt.Errorf("unknown step %q", s.Op)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

// hasJitter reports whether any step draws random values.
func hasJitter(steps []Step) bool {
	for _, s := range steps {
		if strings.EqualFold(s.Op, "jitter") {
			return true
		}
	}
	return false
}

// Apply runs fns over every vertex, splitting vs into chunks handled by at
// most workers goroutines.
func Apply(ctx context.Context, vs []vec.PVector, fns []stepFunc, workers int) error {
	if len(fns) == 0 || len(vs) == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(vs) + workers*4 - 1) / (workers * 4)
	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(vs); start += chunk {
		part := vs[start:min(start+chunk, len(vs))]
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			for i := range part {
				for _, fn := range fns {
					fn(&part[i])
				}
			}
			return nil
		})
	}

	return g.Wait()
}
