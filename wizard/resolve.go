package wizard

import (
	"strconv"
	"strings"

	"github.com/npillmayer/skinwiz/expr"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/vars"
)

// env is the environment for directives: the wizard's variables and the
// current controller.
type env struct {
	w          *Wizard
	controller object.Object
}

func (e env) Value(name string) (interface{}, bool) {
	v, ok := e.w.vars.Lookup(name)
	if !ok {
		return nil, false
	}
	return v.Value, true
}

func (e env) Substitute(s string) string {
	return e.w.vars.Substitute(s)
}

func (e env) Property(path string) (interface{}, bool) {
	if object.IsAbsolute(path) {
		if e.w.objects == nil {
			return nil, false
		}
		return e.w.objects.Property(path)
	}
	if e.controller == nil {
		return nil, false
	}
	return object.GetProperty(e.controller, path)
}

// ResolveString substitutes variable references in s.
func (w *Wizard) ResolveString(s string) string {
	return w.vars.Substitute(s)
}

// ResolveName substitutes variable references in a name. References left
// unresolved are traced.
func (w *Wizard) ResolveName(s string) string {
	r := w.vars.Substitute(s)
	if strings.Contains(r, vars.Prefix) {
		tracer().Debugf("name %q contains unresolved variables", r)
	}
	return r
}

// ResolveTitle substitutes variables in a title and translates it.
func (w *Wizard) ResolveTitle(s string) string {
	r := w.vars.Substitute(s)
	if w.strings != nil {
		return w.strings.Translate(w.skinID, r)
	}
	return r
}

// ResolveNumber resolves s to a number. s may be a literal, contain
// variable references or name a property of controller. def is returned if
// s cannot be resolved.
func (w *Wizard) ResolveNumber(s string, controller object.Object, def float64) float64 {
	s = strings.TrimSpace(w.ResolveString(s))
	if s == "" {
		return def
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if v, ok := (env{w: w, controller: controller}).Property(s); ok {
		if f, err := strconv.ParseFloat(vars.Format(v), 64); err == nil {
			return f
		}
	}
	tracer().Debugf("cannot resolve %q to a number", s)
	return def
}

// ResolveDefine evaluates the value of a define: "@property:path",
// "@select:$var:a,b,c", "@eval:expression" or a string with variable
// references.
func (w *Wizard) ResolveDefine(s string, controller object.Object) (string, error) {
	var theme expr.Theme
	if w.theme != nil {
		theme = w.theme
	}
	return expr.Parse(s).Resolve(env{w: w, controller: controller}, theme)
}

// LookupController resolves a controller path: an absolute object table
// path ("proto://Root/path"), a variable holding a controller ("$name"), or
// a path relative to current.
func (w *Wizard) LookupController(path string, current object.Object) object.Object {
	path = strings.TrimSpace(path)
	switch {
	case path == "":
		return current
	case object.IsAbsolute(path):
		return w.objects.Lookup(path)
	case strings.HasPrefix(path, vars.Prefix):
		if v, ok := w.vars.Object(path); ok {
			if obj, ok := v.(object.Object); ok {
				return obj
			}
		}
		path = w.ResolveString(path)
		if strings.HasPrefix(path, vars.Prefix) {
			return nil
		}
	}
	if current == nil {
		return nil
	}
	return object.Lookup(current, path)
}

// LookupStyle resolves a style reference: a variable holding a style or
// style alias ("$name"), or the name of a style of the skin, searched from
// caller's model.
func (w *Wizard) LookupStyle(ref string, caller skin.Element) (*style.VisualStyle, *style.Alias) {
	if v, ok := w.vars.Object(ref); ok {
		switch s := v.(type) {
		case *style.Alias:
			return s.Style(), s
		case *style.VisualStyle:
			return s, nil
		}
	}
	name := w.ResolveString(ref)
	m := w.currentModel()
	if caller != nil {
		if cm := skin.ModelOf(caller); cm != nil {
			m = cm
		}
	}
	if m == nil {
		return nil, nil
	}
	return m.Style(name, caller), nil
}
