package skin

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"strconv"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/style"
)

// ImageElement is an image resource. Images are decoded lazily; only the
// image header is read to determine format and dimensions.
type ImageElement struct {
	ElementBase
	URL    string
	Frames int
	Tile   string
	data   *imageData
}

type imageData struct {
	path   string
	format string
	width  int
	height int
}

// Meta is part of interface Element.
func (img *ImageElement) Meta() *MetaElement { return MetaImage }

// SetAttributes is part of interface Element.
func (img *ImageElement) SetAttributes(a attrs.Attributes) bool {
	img.ElementBase.SetAttributes(a)
	img.URL = a.String("url")
	img.Frames = attrs.Int(a, "frames", 1)
	img.Tile = a.String("tile")
	return true
}

// GetAttributes is part of interface Element.
func (img *ImageElement) GetAttributes(a attrs.Attributes) bool {
	img.ElementBase.GetAttributes(a)
	_ = a.SetString("url", img.URL)
	if img.Frames > 1 {
		_ = attrs.SetInt(a, "frames", img.Frames)
	}
	if img.Tile != "" {
		_ = a.SetString("tile", img.Tile)
	}
	return true
}

// IsLoaded is true after the image has been decoded.
func (img *ImageElement) IsLoaded() bool {
	return img.data != nil
}

// Load reads the image header from the skin package.
func (img *ImageElement) Load() error {
	m := ModelOf(img)
	if m == nil {
		return fmt.Errorf("image %q is not part of a model", img.Name())
	}
	if img.URL == "" {
		return fmt.Errorf("image %q has no url", img.Name())
	}
	f, p, err := m.Open(img.Dir(), img.URL)
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("%s: %w", p, err)
	}
	img.data = &imageData{path: p, format: format, width: cfg.Width, height: cfg.Height}
	tracer().Debugf("image %s: %s %dx%d", p, format, cfg.Width, cfg.Height)
	return nil
}

func (img *ImageElement) adopt(prev *ImageElement) {
	img.data = prev.data
}

// Width is part of interface style.Image. Frames are stacked vertically.
func (img *ImageElement) Width() int {
	if img.data == nil {
		return 0
	}
	return img.data.width
}

// Height returns the height of one frame.
func (img *ImageElement) Height() int {
	if img.data == nil {
		return 0
	}
	if img.Frames > 1 {
		return img.data.height / img.Frames
	}
	return img.data.height
}

// Format returns the image format, e.g. "png".
func (img *ImageElement) Format() string {
	if img.data == nil {
		return ""
	}
	return img.data.format
}

var _ style.Image = &ImageElement{}

// Gradient is the runtime form of a gradient resource.
type Gradient struct {
	Start, End color.RGBA
	Vertical   bool
}

// GradientElement is a gradient resource. Start and end colors may be color
// codes or names of color resources.
type GradientElement struct {
	ElementBase
	Start, End string
	Direction  string
	gradient   *Gradient
}

// Meta is part of interface Element.
func (g *GradientElement) Meta() *MetaElement { return MetaGradient }

// SetAttributes is part of interface Element.
func (g *GradientElement) SetAttributes(a attrs.Attributes) bool {
	g.ElementBase.SetAttributes(a)
	g.Start = a.String("start")
	g.End = a.String("end")
	g.Direction = a.String("direction")
	g.gradient = nil
	return true
}

// GetAttributes is part of interface Element.
func (g *GradientElement) GetAttributes(a attrs.Attributes) bool {
	g.ElementBase.GetAttributes(a)
	_ = a.SetString("start", g.Start)
	_ = a.SetString("end", g.End)
	if g.Direction != "" {
		_ = a.SetString("direction", g.Direction)
	}
	return true
}

// IsLoaded is true if the runtime gradient exists.
func (g *GradientElement) IsLoaded() bool { return g.gradient != nil }

// Load creates the runtime gradient.
func (g *GradientElement) Load() error {
	m := ModelOf(g)
	if m == nil {
		return fmt.Errorf("gradient %q is not part of a model", g.Name())
	}
	g.gradient = nil
	if g.Gradient(m) == nil {
		return fmt.Errorf("gradient %q has invalid colors", g.Name())
	}
	return nil
}

// Gradient returns the runtime gradient.
func (g *GradientElement) Gradient(m *Model) *Gradient {
	if g.gradient != nil {
		return g.gradient
	}
	start, ok1 := colorValue(m, g.Start, g)
	end, ok2 := colorValue(m, g.End, g)
	if !ok1 || !ok2 {
		return nil
	}
	g.gradient = &Gradient{Start: start, End: end, Vertical: g.Direction != "horizontal"}
	return g.gradient
}

func colorValue(m *Model, s string, caller Element) (color.RGBA, bool) {
	if c, ok := attrs.ParseColor(s); ok {
		return c, true
	}
	return m.Color(s, caller)
}

// ColorElement is a named color.
type ColorElement struct {
	ElementBase
	Code string
}

// Meta is part of interface Element.
func (c *ColorElement) Meta() *MetaElement { return MetaColor }

// SetAttributes is part of interface Element.
func (c *ColorElement) SetAttributes(a attrs.Attributes) bool {
	c.ElementBase.SetAttributes(a)
	c.Code = a.String("color")
	return true
}

// GetAttributes is part of interface Element.
func (c *ColorElement) GetAttributes(a attrs.Attributes) bool {
	c.ElementBase.GetAttributes(a)
	_ = a.SetString("color", c.Code)
	return true
}

// resolve converts the color code, following references to other color
// resources up to a fixed depth.
func (c *ColorElement) resolve(m *Model, depth int) (color.RGBA, bool) {
	if rgba, ok := attrs.ParseColor(c.Code); ok {
		return rgba, true
	}
	if depth > 8 || c.Code == c.Name() {
		return color.RGBA{}, false
	}
	return m.color(c.Code, c, depth+1)
}

// FontElement is a named font.
type FontElement struct {
	ElementBase
	Face  string
	Size  float64
	Style int
}

// FontStyles enumerates font style options.
var FontStyles = &Enumeration{
	Name: "FontStyle",
	Defs: []attrs.StyleDef{
		{Name: "normal", Value: 0},
		{Name: "bold", Value: 1},
		{Name: "italic", Value: 2},
		{Name: "underline", Value: 4},
		{Name: "strikeout", Value: 8},
	},
}

// Meta is part of interface Element.
func (f *FontElement) Meta() *MetaElement { return MetaFont }

// SetAttributes is part of interface Element.
func (f *FontElement) SetAttributes(a attrs.Attributes) bool {
	f.ElementBase.SetAttributes(a)
	f.Face = a.String("face")
	f.Size = attrs.Float(a, "size", 0)
	f.Style = attrs.Options(a, "style", FontStyles.All(), false, 0)
	return true
}

// GetAttributes is part of interface Element.
func (f *FontElement) GetAttributes(a attrs.Attributes) bool {
	f.ElementBase.GetAttributes(a)
	_ = a.SetString("face", f.Face)
	if f.Size != 0 {
		_ = attrs.SetFloat(a, "size", f.Size)
	}
	if f.Style != 0 {
		_ = attrs.SetOptions(a, "style", f.Style, FontStyles.All(), false)
	}
	return true
}

// Font returns the runtime font.
func (f *FontElement) Font() style.Font {
	return style.Font{Face: f.Face, Size: f.Size, Style: f.Style}
}

// MetricElement is a named number.
type MetricElement struct {
	ElementBase
	Value float64
}

// Meta is part of interface Element.
func (x *MetricElement) Meta() *MetaElement { return MetaMetric }

// SetAttributes is part of interface Element.
func (x *MetricElement) SetAttributes(a attrs.Attributes) bool {
	x.ElementBase.SetAttributes(a)
	x.Value = attrs.Float(a, "value", 0)
	return true
}

// GetAttributes is part of interface Element.
func (x *MetricElement) GetAttributes(a attrs.Attributes) bool {
	x.ElementBase.GetAttributes(a)
	_ = a.SetString("value", strconv.FormatFloat(x.Value, 'f', -1, 64))
	return true
}

// OptionsElement is a named string option of a style.
type OptionsElement struct {
	ElementBase
	Options string
}

// Meta is part of interface Element.
func (o *OptionsElement) Meta() *MetaElement { return MetaOptions }

// SetAttributes is part of interface Element.
func (o *OptionsElement) SetAttributes(a attrs.Attributes) bool {
	o.ElementBase.SetAttributes(a)
	o.Options = a.String("options")
	return true
}

// GetAttributes is part of interface Element.
func (o *OptionsElement) GetAttributes(a attrs.Attributes) bool {
	o.ElementBase.GetAttributes(a)
	_ = a.SetString("options", o.Options)
	return true
}
