package attrs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var colorNames = map[string]color.RGBA{
	"black":       {0, 0, 0, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"green":       {0, 0xff, 0, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"cyan":        {0, 0xff, 0xff, 0xff},
	"magenta":     {0xff, 0, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
	"transparent": {0, 0, 0, 0},
}

// ParseColor converts a color code to RGBA. Recognized are
// "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)", "rgba(r,g,b,a)" and a
// small set of color names. Symbolic skin colors are not resolved here.
func ParseColor(s string) (color.RGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, true
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[5:len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[4:len(s)-1], 3)
	}
	return color.RGBA{}, false
}

func parseHex(h string) (color.RGBA, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, true
}

// parseFunc reads comma separated components. The alpha component may be
// given as a fraction (0.5) or as a byte value.
func parseFunc(args string, n int) (color.RGBA, bool) {
	f := strings.Split(args, ",")
	if len(f) != n {
		return color.RGBA{}, false
	}
	var c [4]uint8
	c[3] = 0xff
	for i, x := range f {
		x = strings.TrimSpace(x)
		if i == 3 && strings.Contains(x, ".") {
			a, err := strconv.ParseFloat(x, 64)
			if err != nil || a < 0 || a > 1 {
				return color.RGBA{}, false
			}
			c[3] = uint8(a*255 + 0.5)
			continue
		}
		v, err := strconv.Atoi(x)
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, false
		}
		c[i] = uint8(v)
	}
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}, true
}

// ColorCode reads a color attribute.
func ColorCode(a Attributes, name string) (color.RGBA, bool) {
	return ParseColor(a.String(name))
}

// ColorString formats a color as "#rrggbb", or "#rrggbbaa" if it is not
// fully opaque.
func ColorString(c color.Color) string {
	if c == nil {
		return ""
	}
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	if rgba.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}
