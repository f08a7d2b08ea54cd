package coord

import (
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Unit classifies a design coordinate.
type Unit uint8

// Design coordinates are either undefined, left to the layout, fixed, or
// relative to the container.
const (
	Undefined Unit = iota // no value given
	Auto                  // "auto"
	Fixed                 // plain coordinate
	Percent               // value suffixed with '%'
)

func (u Unit) String() string {
	switch u {
	case Auto:
		return "auto"
	case Fixed:
		return "coord"
	case Percent:
		return "percent"
	}
	return "undefined"
}

// DesignCoord is an option type for coordinates found in skin attributes.
type DesignCoord struct {
	value float64
	unit  Unit
}

// Coord creates a fixed design coordinate.
func Coord(x float64) DesignCoord {
	return DesignCoord{value: x, unit: Fixed}
}

// Percentage creates a design coordinate relative to the container.
func Percentage(p float64) DesignCoord {
	return DesignCoord{value: p, unit: Percent}
}

// AutoCoord creates a design coordinate to be determined by the layout.
func AutoCoord() DesignCoord {
	return DesignCoord{unit: Auto}
}

// Parse reads a design coordinate from a string.
// The empty string and "undefined" produce an undefined coordinate,
// "auto" an auto coordinate, a number suffixed with '%' a percentage and
// a plain number a fixed coordinate. Unparsable input is undefined.
func Parse(s string) DesignCoord {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "undefined":
		return DesignCoord{}
	case "auto":
		return AutoCoord()
	}
	unit := Fixed
	if strings.HasSuffix(s, "%") {
		unit = Percent
		s = strings.TrimSpace(s[:len(s)-1])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return DesignCoord{}
	}
	return DesignCoord{value: v, unit: unit}
}

// Unit returns the kind of the coordinate.
func (d DesignCoord) Unit() Unit {
	return d.unit
}

// Value returns the numeric value; it is 0 for undefined and auto coordinates.
func (d DesignCoord) Value() float64 {
	return d.value
}

// IsDefined is false for undefined coordinates only.
func (d DesignCoord) IsDefined() bool {
	return d.unit != Undefined
}

// Scaled returns d with a fixed value multiplied by factor. Other units
// are not affected by zooming.
func (d DesignCoord) Scaled(factor float64) DesignCoord {
	if d.unit == Fixed {
		d.value *= factor
	}
	return d
}

// Resolve computes the coordinate relative to a container extent. Undefined
// and auto coordinates resolve to def. Percentages are taken as whole
// numbers between 0 and 100.
func (d DesignCoord) Resolve(extent float64, def float64) float64 {
	switch d.unit {
	case Fixed:
		return d.value
	case Percent:
		return extent * float64(d.Percentage()) / 100
	}
	return def
}

// Dimen converts a fixed coordinate into layout units, counting design
// coordinates as pixels.
func (d DesignCoord) Dimen() dimen.DU {
	if d.unit != Fixed {
		return 0
	}
	return dimen.DU(math.Round(d.value * float64(dimen.PX)))
}

// Percentage returns the percentage of a %-relative coordinate, rounded to
// an integral percentage and clipped to 0…100.
func (d DesignCoord) Percentage() percent.Percent {
	if d.unit != Percent {
		return percent.FromInt(0)
	}
	return percent.FromInt(int(math.Round(d.value)))
}

func (d DesignCoord) String() string {
	switch d.unit {
	case Auto:
		return "auto"
	case Fixed:
		return strconv.FormatFloat(d.value, 'f', -1, 64)
	case Percent:
		return strconv.FormatFloat(d.value, 'f', -1, 64) + "%"
	}
	return ""
}

// --- Matching --------------------------------------------------------------

// Match starts a type switch on a design coordinate:
//
//     var x float64
//     switch m := d.Match(); m {
//     case m.Fixed(&x):
//         …
//     case m.IsKind(coord.AutoCoord()):
//         …
//     }
//
func (d DesignCoord) Match() *Matcher {
	return &Matcher{coord: d}
}

// Matcher is a helper type for matching design coordinates.
type Matcher struct {
	coord DesignCoord
}

// IsKind matches if the coordinate has the same unit as d.
func (m *Matcher) IsKind(d DesignCoord) *Matcher {
	if m.coord.unit == d.unit {
		return m
	}
	return nil
}

// Fixed matches fixed coordinates and extracts their value.
func (m *Matcher) Fixed(x *float64) *Matcher {
	if m.coord.unit == Fixed {
		if x != nil {
			*x = m.coord.value
		}
		return m
	}
	return nil
}

// Percent matches percentage coordinates and extracts the percentage.
func (m *Matcher) Percent(p *float64) *Matcher {
	if m.coord.unit == Percent {
		if p != nil {
			*p = m.coord.value
		}
		return m
	}
	return nil
}

// Patterns maps units to results, see OneOf.
type Patterns[T any] struct {
	Undefined T
	Auto      T
	Fixed     T
	Percent   T
}

// OneOf selects the pattern value matching the unit of d.
func OneOf[T any](d DesignCoord, patterns Patterns[T]) T {
	switch d.unit {
	case Auto:
		return patterns.Auto
	case Fixed:
		return patterns.Fixed
	case Percent:
		return patterns.Percent
	}
	return patterns.Undefined
}
