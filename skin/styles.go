package skin

import (
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/trigger"
)

// StyleElement defines a visual style. CSS declarations are taken from
// attribute "css" or, if missing, from the element's text.
type StyleElement struct {
	ElementBase
	Inherit  string
	CSS      string
	AppStyle bool
	vs       *style.VisualStyle
	building bool
}

// Meta is part of interface Element.
func (s *StyleElement) Meta() *MetaElement { return MetaStyle }

// SetAttributes is part of interface Element.
func (s *StyleElement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Inherit = a.String("inherit")
	s.CSS = a.String("css")
	s.AppStyle = attrs.Bool(a, "appstyle", false)
	s.vs = nil
	return true
}

// GetAttributes is part of interface Element.
func (s *StyleElement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	if s.Inherit != "" {
		_ = a.SetString("inherit", s.Inherit)
	}
	if s.CSS != "" {
		_ = a.SetString("css", s.CSS)
	}
	if s.AppStyle {
		_ = attrs.SetBool(a, "appstyle", true)
	}
	return true
}

func (s *StyleElement) reset() {
	s.vs = nil
}

// VisualStyle returns the runtime style, creating it on first use.
func (s *StyleElement) VisualStyle(m *Model) *style.VisualStyle {
	if s.vs != nil {
		return s.vs
	}
	if s.building {
		SinkOf(s).Warn(s.Origin(), "style %q inherits from itself", s.Name())
		return nil
	}
	s.building = true
	defer func() { s.building = false }()
	vs := style.New(s.Name())
	vs.AppStyle = s.AppStyle
	sink := SinkOf(s)
	if s.Inherit != "" {
		switch pe := m.StyleElement(s.Inherit, s); {
		case pe == nil:
			sink.Warn(s.Origin(), "style %q: parent style %q not found", s.Name(), s.Inherit)
		case pe.building:
			sink.Warn(s.Origin(), "style %q: inheritance cycle through %q", s.Name(), s.Inherit)
		default:
			vs.Parent = pe.VisualStyle(m)
		}
	}
	css := s.CSS
	if css == "" {
		css = strings.TrimSpace(s.Text())
	}
	if css != "" {
		if err := vs.ApplyCSS(css); err != nil {
			sink.Warn(s.Origin(), "%v", err)
		}
	}
	for _, ch := range s.Children() {
		name := ch.Base().Name()
		switch e := ch.(type) {
		case *ColorElement:
			if c, ok := e.resolve(m, 0); ok {
				vs.SetColor(name, c)
			} else {
				sink.Warn(e.Origin(), "style %q: invalid color %q", s.Name(), e.Code)
			}
		case *MetricElement:
			vs.SetMetric(name, e.Value)
		case *FontElement:
			vs.SetFont(name, e.Font())
		case *ImageElement:
			if img := styleImage(m, e); img != nil {
				vs.SetImage(name, img)
			} else {
				sink.Warn(e.Origin(), "style %q: image %q not found", s.Name(), name)
			}
		case *OptionsElement:
			vs.SetOption(name, e.Options)
		case *TriggerListElement:
			for _, t := range e.Children() {
				if te, ok := t.(*TriggerElement); ok {
					vs.AddTrigger(te.Prototype())
				}
			}
		case *AnimationListElement:
			for _, x := range e.Children() {
				if ae, ok := x.(*AnimationElement); ok {
					vs.AddAnimation(ae.Animation())
				}
			}
		case *AnimationElement:
			vs.AddAnimation(e.Animation())
		}
	}
	s.vs = vs
	return vs
}

// styleImage loads an image defined inside a style. It either carries its
// own url or references an image resource with attribute "image".
func styleImage(m *Model, e *ImageElement) style.Image {
	if ref := e.Attributes().String("image"); ref != "" {
		if img := m.Image(ref, e); img != nil {
			return img
		}
		return nil
	}
	if !e.IsLoaded() {
		if err := e.Load(); err != nil {
			return nil
		}
	}
	return e
}

// --- Triggers --------------------------------------------------------------

// TriggerListElement holds the triggers of a style.
type TriggerListElement struct {
	ElementBase
}

// Meta is part of interface Element.
func (t *TriggerListElement) Meta() *MetaElement { return MetaTriggers }

// TriggerElement is the prototype of a trigger.
type TriggerElement struct {
	ElementBase
	Property string
	Value    string
	Event    string
	proto    *trigger.Trigger
}

// Meta is part of interface Element.
func (t *TriggerElement) Meta() *MetaElement { return MetaTrigger }

// SetAttributes is part of interface Element.
func (t *TriggerElement) SetAttributes(a attrs.Attributes) bool {
	t.ElementBase.SetAttributes(a)
	t.Property = a.String("property")
	t.Value = a.String("value")
	t.Event = a.String("event")
	t.proto = nil
	return true
}

// GetAttributes is part of interface Element.
func (t *TriggerElement) GetAttributes(a attrs.Attributes) bool {
	t.ElementBase.GetAttributes(a)
	if t.Event != "" {
		_ = a.SetString("event", t.Event)
		return true
	}
	_ = a.SetString("property", t.Property)
	_ = a.SetString("value", t.Value)
	return true
}

// Prototype returns the trigger prototype, creating it on first use.
// All activations of the trigger share the prototype's actions.
func (t *TriggerElement) Prototype() *trigger.Trigger {
	if t.proto != nil {
		return t.proto
	}
	if t.Event != "" {
		t.proto = trigger.NewEventTrigger(t.Event)
	} else {
		t.proto = trigger.NewPropertyTrigger(t.Property, t.Value)
	}
	for _, ch := range t.Children() {
		if a, ok := ch.(ActionElement); ok {
			t.proto.AddAction(a.Action())
		}
	}
	return t.proto
}

// ActionElement is an element describing a trigger action.
type ActionElement interface {
	Element
	Action() trigger.Action
}

// SetterElement sets a property.
type SetterElement struct {
	ElementBase
	Property, Value, Target string
}

// Meta is part of interface Element.
func (s *SetterElement) Meta() *MetaElement { return MetaSetter }

// SetAttributes is part of interface Element.
func (s *SetterElement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Property = a.String("property")
	s.Value = a.String("value")
	s.Target = a.String("target")
	return true
}

// GetAttributes is part of interface Element.
func (s *SetterElement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("property", s.Property)
	_ = a.SetString("value", s.Value)
	if s.Target != "" {
		_ = a.SetString("target", s.Target)
	}
	return true
}

// Action is part of interface ActionElement.
func (s *SetterElement) Action() trigger.Action {
	return &trigger.PropertySetter{Target: s.Target, Property: s.Property,
		Value: Literal(s.Value), Origin: s.Origin()}
}

// ParameterElement sets a parameter.
type ParameterElement struct {
	ElementBase
	Value, Target string
}

// Meta is part of interface Element.
func (p *ParameterElement) Meta() *MetaElement { return MetaParameter }

// SetAttributes is part of interface Element.
func (p *ParameterElement) SetAttributes(a attrs.Attributes) bool {
	p.ElementBase.SetAttributes(a)
	p.Value = a.String("value")
	p.Target = a.String("target")
	return true
}

// GetAttributes is part of interface Element.
func (p *ParameterElement) GetAttributes(a attrs.Attributes) bool {
	p.ElementBase.GetAttributes(a)
	_ = a.SetString("value", p.Value)
	if p.Target != "" {
		_ = a.SetString("target", p.Target)
	}
	return true
}

// Action is part of interface ActionElement.
func (p *ParameterElement) Action() trigger.Action {
	return &trigger.ParameterSetter{Target: p.Target, Name: p.Name(),
		Value: Literal(p.Value), Origin: p.Origin()}
}

// InvokeElement calls a method.
type InvokeElement struct {
	ElementBase
	Method, Args, Target string
}

// Meta is part of interface Element.
func (i *InvokeElement) Meta() *MetaElement { return MetaInvoke }

// SetAttributes is part of interface Element.
func (i *InvokeElement) SetAttributes(a attrs.Attributes) bool {
	i.ElementBase.SetAttributes(a)
	i.Method = a.String("method")
	i.Args = a.String("args")
	i.Target = a.String("target")
	return true
}

// GetAttributes is part of interface Element.
func (i *InvokeElement) GetAttributes(a attrs.Attributes) bool {
	i.ElementBase.GetAttributes(a)
	_ = a.SetString("method", i.Method)
	if i.Args != "" {
		_ = a.SetString("args", i.Args)
	}
	if i.Target != "" {
		_ = a.SetString("target", i.Target)
	}
	return true
}

// Action is part of interface ActionElement.
func (i *InvokeElement) Action() trigger.Action {
	var args []interface{}
	if strings.TrimSpace(i.Args) != "" {
		for _, x := range strings.Split(i.Args, ",") {
			args = append(args, Literal(strings.TrimSpace(x)))
		}
	}
	return &trigger.MethodInvoker{Target: i.Target, Method: i.Method, Args: args, Origin: i.Origin()}
}

// AnimationActionElement starts or stops an animation.
type AnimationActionElement struct {
	ElementBase
	Animation string
	Stop      bool
}

// Meta is part of interface Element.
func (a *AnimationActionElement) Meta() *MetaElement {
	if a.Stop {
		return MetaStopAnimation
	}
	return MetaStartAnimation
}

// SetAttributes is part of interface Element.
func (a *AnimationActionElement) SetAttributes(at attrs.Attributes) bool {
	a.ElementBase.SetAttributes(at)
	a.Animation = at.String("animation")
	return true
}

// GetAttributes is part of interface Element.
func (a *AnimationActionElement) GetAttributes(at attrs.Attributes) bool {
	a.ElementBase.GetAttributes(at)
	_ = at.SetString("animation", a.Animation)
	return true
}

// Action is part of interface ActionElement.
func (a *AnimationActionElement) Action() trigger.Action {
	if a.Stop {
		return &trigger.StopAnimation{Animation: a.Animation, Origin: a.Origin()}
	}
	return &trigger.StartAnimation{Animation: a.Animation, Origin: a.Origin()}
}

// --- Animations ------------------------------------------------------------

// AnimationListElement holds the animations of a style.
type AnimationListElement struct {
	ElementBase
}

// Meta is part of interface Element.
func (a *AnimationListElement) Meta() *MetaElement { return MetaAnimations }

// AnimationElement describes a property animation. Durations are given in
// milliseconds.
type AnimationElement struct {
	ElementBase
	Property string
	From, To float64
	Duration int
	Repeat   int
	Reverse  bool
	Timing   string
}

// Meta is part of interface Element.
func (a *AnimationElement) Meta() *MetaElement { return MetaAnimation }

// SetAttributes is part of interface Element.
func (a *AnimationElement) SetAttributes(at attrs.Attributes) bool {
	a.ElementBase.SetAttributes(at)
	a.Property = at.String("property")
	a.From = attrs.Float(at, "from", 0)
	a.To = attrs.Float(at, "to", 1)
	a.Duration = attrs.Int(at, "duration", 0)
	a.Repeat = attrs.Int(at, "repeat", 1)
	a.Reverse = attrs.Bool(at, "reverse", false)
	a.Timing = strings.ReplaceAll(strings.ToLower(at.String("timing")), "-", "")
	return true
}

// GetAttributes is part of interface Element.
func (a *AnimationElement) GetAttributes(at attrs.Attributes) bool {
	a.ElementBase.GetAttributes(at)
	_ = at.SetString("property", a.Property)
	_ = attrs.SetFloat(at, "from", a.From)
	_ = attrs.SetFloat(at, "to", a.To)
	_ = attrs.SetInt(at, "duration", a.Duration)
	_ = attrs.SetInt(at, "repeat", a.Repeat)
	if a.Reverse {
		_ = attrs.SetBool(at, "reverse", true)
	}
	if a.Timing != "" {
		_ = at.SetString("timing", a.Timing)
	}
	return true
}

// Animation returns the runtime animation.
func (a *AnimationElement) Animation() *trigger.Animation {
	return &trigger.Animation{
		Name:     a.Name(),
		Property: a.Property,
		From:     a.From,
		To:       a.To,
		Duration: time.Duration(a.Duration) * time.Millisecond,
		Repeat:   a.Repeat,
		Reverse:  a.Reverse,
		Timing:   trigger.TimingNames[a.Timing],
	}
}

// Literal converts an attribute value to a typed value: integers, floats
// and booleans are recognized, everything else stays a string.
func Literal(s string) interface{} {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	return s
}
