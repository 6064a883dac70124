/*
Named numeric types for sketch call sites. They carry no behaviour beyond
angle conversion, they only say what a number means.
*/

package units

import "math"

// Fixed width aliases, as the host language names them.
type (
	Int8    = int8
	Int16   = int16
	Int32   = int32
	Int64   = int64
	Uint8   = uint8
	Uint16  = uint16
	Uint32  = uint32
	Uint64  = uint64
	Float32 = float32
	Float64 = float64

	Byte   = Int8
	UByte  = Uint8
	Short  = Int16
	UShort = Uint16
	Int    = Int32
	UInt   = Uint32
	Long   = Int64
	ULong  = Uint64
	Float  = Float32
	Double = Float64
	Char   = string // one character, kept as text
	URL    = string
	Truthy = bool
	Falsy  = bool
)

// Semantic roles. Distinct types, so mixing them needs an explicit conversion.
type (
	Coord float64 // position along an axis
	Size  float64 // extent along an axis
	Pct   float64 // normalized amount, usually in [0, 1]
	Ang   float64 // angle in the sketch's current angle mode
	Rad   float64
	Deg   float64
)

type (
	XY  [2]Coord
	XYZ [3]Coord
	WH  [2]Size
	WHD [3]Size
)

type Callback func()

const (
	Tau      = 2 * math.Pi
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi
)

func (d Deg) Rad() Rad { return Rad(float64(d) * DegToRad) }

func (r Rad) Deg() Deg { return Deg(float64(r) * RadToDeg) }
