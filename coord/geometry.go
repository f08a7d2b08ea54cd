package coord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Point is an integer point in design coordinates.
type Point struct {
	X, Y int
}

// PointF is a point with fractional coordinates.
type PointF struct {
	X, Y float64
}

// PointF3D is a point in 3D space, used for transformations.
type PointF3D struct {
	X, Y, Z float64
}

// Rect is a rectangle given by its edges.
type Rect struct {
	Left, Top, Right, Bottom int
}

// RectFromSize creates a rectangle from an origin and an extent.
func RectFromSize(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Right: left + width, Bottom: top + height}
}

// Width returns the horizontal extent.
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent.
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// IsEmpty is true if the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Scaled multiplies all edges by factor, rounding to the nearest integer.
func (r Rect) Scaled(factor float64) Rect {
	if factor == 1 {
		return r
	}
	return Rect{
		Left:   round(float64(r.Left) * factor),
		Top:    round(float64(r.Top) * factor),
		Right:  round(float64(r.Right) * factor),
		Bottom: round(float64(r.Bottom) * factor),
	}
}

// Dimen converts the rectangle to layout units, counting pixels as
// dimen.PX.
func (r Rect) Dimen() dimen.Rect {
	return dimen.Rect{
		TopL: dimen.Point{X: dimen.DU(r.Left) * dimen.PX, Y: dimen.DU(r.Top) * dimen.PX},
		BotR: dimen.Point{X: dimen.DU(r.Right) * dimen.PX, Y: dimen.DU(r.Bottom) * dimen.PX},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", r.Left, r.Top, r.Width(), r.Height())
}

// DesignRect holds four design coordinates: left, top, width and height.
type DesignRect struct {
	Left, Top, Width, Height DesignCoord
}

func (d DesignRect) String() string {
	return d.Left.String() + "," + d.Top.String() + "," + d.Width.String() + "," + d.Height.String()
}

// Fields splits a comma separated list of exactly n fields.
// It returns nil if the number of fields does not match.
func Fields(s string, n int) []string {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// ScanInts parses a comma separated list of exactly len(out) numbers.
// Fields may carry a '%' suffix, which is ignored; fractional values are
// rounded. ScanInts reports false and leaves out untouched on failure.
func ScanInts(s string, out []int) bool {
	fields := Fields(s, len(out))
	if fields == nil {
		return false
	}
	tmp := make([]int, len(out))
	for i, f := range fields {
		f = strings.TrimSuffix(f, "%")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false
		}
		tmp[i] = round(v)
	}
	copy(out, tmp)
	return true
}

// ScanFloats parses a comma separated list of exactly len(out) numbers.
func ScanFloats(s string, out []float64) bool {
	fields := Fields(s, len(out))
	if fields == nil {
		return false
	}
	tmp := make([]float64, len(out))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return false
		}
		tmp[i] = v
	}
	copy(out, tmp)
	return true
}

func round(x float64) int {
	if x < 0 {
		return int(x - 0.5)
	}
	return int(x + 0.5)
}
