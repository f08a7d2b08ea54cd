package coord_test

import (
	"testing"

	"github.com/npillmayer/skinwiz/coord"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
)

func TestParseUnits(t *testing.T) {
	cases := []struct {
		in   string
		unit coord.Unit
		val  float64
	}{
		{"", coord.Undefined, 0},
		{"undefined", coord.Undefined, 0},
		{"auto", coord.Auto, 0},
		{"AUTO", coord.Auto, 0},
		{"12", coord.Fixed, 12},
		{" -3.5 ", coord.Fixed, -3.5},
		{"50%", coord.Percent, 50},
		{"x%", coord.Undefined, 0},
	}
	for _, c := range cases {
		d := coord.Parse(c.in)
		assert.Equal(t, c.unit, d.Unit(), "unit of %q", c.in)
		assert.Equal(t, c.val, d.Value(), "value of %q", c.in)
	}
}

func TestMatchDesignCoord(t *testing.T) {
	ten := coord.Coord(10)
	var x float64
	switch m := ten.Match(); m {
	case m.Fixed(&x):
		t.Logf("x = %v", x)
	default:
		t.Errorf("expected Coord(10) to be a fixed value, isn't: %#v", ten)
	}
	if x != 10 {
		t.Errorf("expected x to be 10, is %v", x)
	}
	auto := coord.AutoCoord()
	switch m := auto.Match(); m {
	case m.IsKind(coord.AutoCoord()):
		t.Logf("coord is auto")
	default:
		t.Errorf("expected auto to match auto, isn't: %#v", auto)
	}
	kind := coord.OneOf(coord.Percentage(20), coord.Patterns[string]{
		Fixed:   "fixed",
		Percent: "percent",
	})
	if kind != "percent" {
		t.Errorf("expected pattern to select percent, is %q", kind)
	}
}

func TestScaleAndResolve(t *testing.T) {
	d := coord.Coord(10).Scaled(1.5)
	assert.Equal(t, 15.0, d.Value())
	p := coord.Percentage(50).Scaled(2)
	assert.Equal(t, 50.0, p.Value(), "percentages do not zoom")
	assert.Equal(t, 100.0, p.Resolve(200, 0))
	assert.Equal(t, 7.0, coord.AutoCoord().Resolve(200, 7))
	assert.Equal(t, "50%", p.String())
}

func TestScanInts(t *testing.T) {
	out := make([]int, 4)
	if !coord.ScanInts("1, 2,30%,4", out) {
		t.Fatalf("expected 4 fields to be scanned")
	}
	assert.Equal(t, []int{1, 2, 30, 4}, out)
	if coord.ScanInts("1,2,3", out) {
		t.Errorf("expected 3 fields not to match 4 outputs")
	}
	r := coord.RectFromSize(10, 20, 30, 40)
	assert.Equal(t, 40, r.Right)
	assert.Equal(t, 60, r.Bottom)
	assert.Equal(t, coord.Rect{Left: 20, Top: 40, Right: 80, Bottom: 120}, r.Scaled(2))
}

func TestLayoutUnits(t *testing.T) {
	assert.Equal(t, 10*dimen.PX, coord.Coord(10).Dimen())
	assert.Equal(t, dimen.Zero, coord.Percentage(10).Dimen(), "only fixed coordinates have a dimension")
	assert.Equal(t, percent.Percent(100), coord.Percentage(120).Percentage())
	assert.Equal(t, percent.Percent(13), coord.Percentage(12.6).Percentage())
	assert.Equal(t, 200.0, coord.Percentage(120).Resolve(200, 0))
	r := coord.RectFromSize(1, 2, 3, 4).Dimen()
	assert.Equal(t, 1*dimen.PX, r.TopL.X)
	assert.Equal(t, 3*dimen.PX, r.Width())
	assert.Equal(t, 4*dimen.PX, r.Height())
}
