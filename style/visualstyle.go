package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/trigger"
)

// Font describes a font of a style.
type Font struct {
	Face  string
	Size  float64
	Style int // bold, italic, … as option flags
}

// Image is an image resource used by a style.
type Image interface {
	Width() int
	Height() int
}

// VisualStyle is a named set of visual attributes.
type VisualStyle struct {
	Name     string
	Parent   *VisualStyle
	AppStyle bool // defined by the application rather than the skin

	colors     map[string]color.RGBA
	metrics    map[string]float64
	fonts      map[string]Font
	images     map[string]Image
	options    map[string]string
	triggers   []*trigger.Trigger
	animations map[string]*trigger.Animation
}

// New creates an empty style.
func New(name string) *VisualStyle {
	return &VisualStyle{
		Name:       name,
		colors:     make(map[string]color.RGBA),
		metrics:    make(map[string]float64),
		fonts:      make(map[string]Font),
		images:     make(map[string]Image),
		options:    make(map[string]string),
		animations: make(map[string]*trigger.Animation),
	}
}

func (vs *VisualStyle) String() string {
	if vs == nil {
		return "<no style>"
	}
	return "style " + vs.Name
}

// SetColor defines a color.
func (vs *VisualStyle) SetColor(name string, c color.RGBA) {
	vs.colors[strings.ToLower(name)] = c
}

// Color looks up a color, cascading to parent styles.
func (vs *VisualStyle) Color(name string) (color.RGBA, bool) {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if c, ok := s.colors[name]; ok {
			return c, true
		}
	}
	return color.RGBA{}, false
}

// SetMetric defines a metric.
func (vs *VisualStyle) SetMetric(name string, x float64) {
	vs.metrics[strings.ToLower(name)] = x
}

// Metric looks up a metric, cascading to parent styles.
func (vs *VisualStyle) Metric(name string) (float64, bool) {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if x, ok := s.metrics[name]; ok {
			return x, true
		}
	}
	return 0, false
}

// SetFont defines a font.
func (vs *VisualStyle) SetFont(name string, f Font) {
	vs.fonts[strings.ToLower(name)] = f
}

// Font looks up a font, cascading to parent styles.
func (vs *VisualStyle) Font(name string) (Font, bool) {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if f, ok := s.fonts[name]; ok {
			return f, true
		}
	}
	return Font{}, false
}

// SetImage defines an image.
func (vs *VisualStyle) SetImage(name string, img Image) {
	vs.images[strings.ToLower(name)] = img
}

// Image looks up an image, cascading to parent styles.
func (vs *VisualStyle) Image(name string) (Image, bool) {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if img, ok := s.images[name]; ok {
			return img, true
		}
	}
	return nil, false
}

// SetOption defines a string option.
func (vs *VisualStyle) SetOption(name, value string) {
	vs.options[strings.ToLower(name)] = value
}

// Option looks up a string option, cascading to parent styles.
func (vs *VisualStyle) Option(name string) (string, bool) {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if o, ok := s.options[name]; ok {
			return o, true
		}
	}
	return "", false
}

// Keys returns the number of entries defined by this style itself.
func (vs *VisualStyle) Keys() int {
	return len(vs.colors) + len(vs.metrics) + len(vs.fonts) + len(vs.images) + len(vs.options)
}

// AddTrigger adds a trigger prototype.
func (vs *VisualStyle) AddTrigger(t *trigger.Trigger) {
	vs.triggers = append(vs.triggers, t)
}

// Triggers returns the trigger prototypes of this style and its parents,
// parents first.
func (vs *VisualStyle) Triggers() []*trigger.Trigger {
	if vs == nil {
		return nil
	}
	return append(vs.Parent.Triggers(), vs.triggers...)
}

// AddAnimation defines a named animation.
func (vs *VisualStyle) AddAnimation(a *trigger.Animation) {
	vs.animations[strings.ToLower(a.Name)] = a
}

// Animation looks up an animation, cascading to parent styles.
func (vs *VisualStyle) Animation(name string) *trigger.Animation {
	name = strings.ToLower(name)
	for s := vs; s != nil; s = s.Parent {
		if a, ok := s.animations[name]; ok {
			return a
		}
	}
	return nil
}

// ApplyTriggers clones every trigger prototype and activates the clone on
// target. The active clones are returned; the caller deactivates them when
// target goes away.
func (vs *VisualStyle) ApplyTriggers(target object.Object, env *trigger.Env) []*trigger.Trigger {
	protos := vs.Triggers()
	if len(protos) == 0 {
		return nil
	}
	if env != nil && env.Animations == nil {
		env.Animations = vs.Animation
	}
	active := make([]*trigger.Trigger, 0, len(protos))
	for _, p := range protos {
		t := p.Clone()
		if err := t.Activate(target, env); err != nil {
			tracer().Debugf("cannot activate %s: %v", t, err)
			t.Release()
			continue
		}
		active = append(active, t)
	}
	return active
}

// ApplyCSS adds inline CSS declarations ("color: #fff; margin: 4px") to the
// style. Color values become colors, numbers (optionally with unit "px")
// become metrics, everything else becomes an option.
func (vs *VisualStyle) ApplyCSS(text string) error {
	// douceur drops the value of a last declaration without ';'
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return fmt.Errorf("style %s: %w", vs.Name, err)
	}
	for _, d := range decls {
		value := strings.TrimSpace(d.Value)
		if c, ok := attrs.ParseColor(value); ok {
			vs.SetColor(d.Property, c)
			continue
		}
		if x, err := strconv.ParseFloat(strings.TrimSuffix(value, "px"), 64); err == nil {
			vs.SetMetric(d.Property, x)
			continue
		}
		vs.SetOption(d.Property, value)
	}
	return nil
}
