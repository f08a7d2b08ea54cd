package attrs

import (
	"strconv"
	"strings"

	"github.com/npillmayer/skinwiz/coord"
)

// Int returns an integer attribute or def.
func Int(a Attributes, name string, def int) int {
	return Get(a, name).Int(def)
}

// Float returns a float attribute or def.
func Float(a Attributes, name string, def float64) float64 {
	return Get(a, name).Float(def)
}

// Bool returns a boolean attribute. Absent or empty attributes yield def.
func Bool(a Attributes, name string, def bool) bool {
	return Get(a, name).Bool(def)
}

// Rect reads an attribute of the form "left,top,right,bottom".
func Rect(a Attributes, name string) (coord.Rect, bool) {
	var v [4]int
	if !coord.ScanInts(Get(a, name).String(), v[:]) {
		return coord.Rect{}, false
	}
	return coord.Rect{Left: v[0], Top: v[1], Right: v[2], Bottom: v[3]}, true
}

// Size reads an attribute of the form "left,top,width,height".
func Size(a Attributes, name string) (coord.Rect, bool) {
	var v [4]int
	if !coord.ScanInts(Get(a, name).String(), v[:]) {
		return coord.Rect{}, false
	}
	return coord.RectFromSize(v[0], v[1], v[2], v[3]), true
}

// DesignSize reads an attribute of the form "left,top,width,height", where
// every field is a design coordinate ("auto", "50%", "12").
func DesignSize(a Attributes, name string) (coord.DesignRect, bool) {
	f := coord.Fields(Get(a, name).String(), 4)
	if f == nil {
		return coord.DesignRect{}, false
	}
	return coord.DesignRect{
		Left:   coord.Parse(f[0]),
		Top:    coord.Parse(f[1]),
		Width:  coord.Parse(f[2]),
		Height: coord.Parse(f[3]),
	}, true
}

// Point reads an attribute of the form "x,y".
func Point(a Attributes, name string) (coord.Point, bool) {
	var v [2]int
	if !coord.ScanInts(Get(a, name).String(), v[:]) {
		return coord.Point{}, false
	}
	return coord.Point{X: v[0], Y: v[1]}, true
}

// PointF reads an attribute of the form "x,y" with fractional values.
func PointF(a Attributes, name string) (coord.PointF, bool) {
	var v [2]float64
	if !coord.ScanFloats(Get(a, name).String(), v[:]) {
		return coord.PointF{}, false
	}
	return coord.PointF{X: v[0], Y: v[1]}, true
}

// PointF3D reads an attribute of the form "x,y,z".
func PointF3D(a Attributes, name string) (coord.PointF3D, bool) {
	var v [3]float64
	if !coord.ScanFloats(Get(a, name).String(), v[:]) {
		return coord.PointF3D{}, false
	}
	return coord.PointF3D{X: v[0], Y: v[1], Z: v[2]}, true
}

// --- Setters ---------------------------------------------------------------

func SetInt(a Attributes, name string, n int) error {
	return a.SetString(name, strconv.Itoa(n))
}

func SetFloat(a Attributes, name string, f float64) error {
	return a.SetString(name, strconv.FormatFloat(f, 'f', -1, 64))
}

func SetBool(a Attributes, name string, b bool) error {
	return a.SetString(name, strconv.FormatBool(b))
}

// SetRect writes "left,top,right,bottom".
func SetRect(a Attributes, name string, r coord.Rect) error {
	return a.SetString(name, joinInts(r.Left, r.Top, r.Right, r.Bottom))
}

// SetSize writes "left,top,width,height".
func SetSize(a Attributes, name string, r coord.Rect) error {
	return a.SetString(name, joinInts(r.Left, r.Top, r.Width(), r.Height()))
}

func SetPoint(a Attributes, name string, p coord.Point) error {
	return a.SetString(name, joinInts(p.X, p.Y))
}

func joinInts(n ...int) string {
	s := make([]string, len(n))
	for i, x := range n {
		s[i] = strconv.Itoa(x)
	}
	return strings.Join(s, ",")
}
