package style

import (
	"strconv"
	"strings"

	"github.com/npillmayer/skinwiz/object"
)

// Selector selects one of a list of styles by the numeric value of a
// parameter or property, and publishes the selection through an alias.
type Selector struct {
	alias    *Alias
	styles   []*VisualStyle
	param    *object.Parameter
	obj      object.Object
	property string
}

// NewParameterSelector creates a selector driven by a parameter.
func NewParameterSelector(p *object.Parameter, styles []*VisualStyle, name string) *Selector {
	sel := &Selector{param: p, styles: styles}
	sel.alias = NewAlias(name, nil)
	sel.Select()
	p.AddObserver(sel)
	return sel
}

// NewPropertySelector creates a selector driven by a property of obj.
// If obj is not observable, the selection is made once.
func NewPropertySelector(obj object.Object, property string, styles []*VisualStyle, name string) *Selector {
	sel := &Selector{obj: obj, property: property, styles: styles}
	sel.alias = NewAlias(name, nil)
	sel.Select()
	if s, ok := obj.(object.Subject); ok {
		s.AddObserver(sel)
	}
	return sel
}

// Alias returns the alias published by the selector.
func (sel *Selector) Alias() *Alias {
	return sel.alias
}

func (sel *Selector) value() (interface{}, bool) {
	if sel.param != nil {
		return sel.param.Value(), true
	}
	if sel.obj != nil {
		return sel.obj.Property(sel.property)
	}
	return nil, false
}

// Select re-evaluates the selection.
func (sel *Selector) Select() {
	v, ok := sel.value()
	if !ok {
		return
	}
	i, ok := Index(v)
	if !ok || i < 0 || i >= len(sel.styles) {
		tracer().Debugf("style selector %s: index %v out of range", sel.alias.Name, v)
		return
	}
	sel.alias.SetStyle(sel.styles[i])
}

// Notify is part of interface object.Observer.
func (sel *Selector) Notify(subject object.Subject, msg object.Message) {
	switch msg.ID {
	case object.MsgChanged:
		sel.Select()
	case object.MsgPropertyChanged:
		if sel.param == nil && msg.Property == sel.property {
			sel.Select()
		}
	}
}

// Close unsubscribes the selector from its source.
func (sel *Selector) Close() error {
	if sel.param != nil {
		sel.param.RemoveObserver(sel)
	} else if s, ok := sel.obj.(object.Subject); ok {
		s.RemoveObserver(sel)
	}
	return nil
}

// Index converts a parameter or property value to an index.
func Index(v interface{}) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		return int(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		return n, err == nil
	}
	return 0, false
}
