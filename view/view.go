package view

import (
	"fmt"
	"io"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/coord"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/tree"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/npillmayer/tyse/core/dimen"
)

// View is a node of the live view tree.
type View struct {
	tree.Node[*View] // we build on top of general purpose tree
	object.Signals

	Class      string
	Title      string
	Attrs      *attrs.Mutable   // resolved attributes of the creating element
	Size       coord.Rect       // zoomed size in pixels
	DesignSize coord.DesignRect // size as given by the skin
	Zoom       float64
	Controller object.Object

	name        string
	style       *style.VisualStyle
	alias       *style.Alias
	props       map[string]interface{}
	retained    []io.Closer
	triggers    []*trigger.Trigger
	animator    *trigger.Animator
	layoutItems []*View
	destroyed   bool
}

// New creates a view of a class.
func New(class, name string) *View {
	v := &View{Class: class, name: name, Zoom: 1, Attrs: attrs.NewMutable()}
	v.Payload = v // Payload will always reference the view itself
	v.props = make(map[string]interface{})
	return v
}

// Of gets the view from a generic tree node.
func Of(n *tree.Node[*View]) *View {
	if n == nil {
		return nil
	}
	return n.Payload
}

func (v *View) String() string {
	if v == nil {
		return "<nil view>"
	}
	if v.name == "" {
		return v.Class
	}
	return fmt.Sprintf("%s %q", v.Class, v.name)
}

// Name returns the name of the view.
func (v *View) Name() string {
	return v.name
}

// Extent returns the zoomed size of the view in layout units.
func (v *View) Extent() dimen.Rect {
	return v.Size.Dimen()
}

// SetName renames the view.
func (v *View) SetName(name string) {
	v.name = name
}

// AddView appends a child view.
func (v *View) AddView(child *View) {
	v.AddChild(&child.Node)
}

// RemoveView detaches a child view without destroying it.
func (v *View) RemoveView(child *View) {
	if child.ParentView() == v {
		child.Isolate()
	}
}

// ParentView returns the enclosing view.
func (v *View) ParentView() *View {
	return Of(v.Parent())
}

// Views returns the child views in order.
func (v *View) Views() []*View {
	children := v.Children()
	views := make([]*View, len(children))
	for i, ch := range children {
		views[i] = ch.Payload
	}
	return views
}

// ViewAt returns the child view at position i.
func (v *View) ViewAt(i int) *View {
	ch, ok := v.Node.Child(i)
	if !ok {
		return nil
	}
	return ch.Payload
}

// Find searches the view tree below v (including v) for a named view.
func (v *View) Find(name string) *View {
	var found *View
	_ = tree.TopDown(&v.Node, func(n, parent *tree.Node[*View], pos int) error {
		if n.Payload.name == name {
			found = n.Payload
			return errFound
		}
		return nil
	})
	return found
}

var errFound = fmt.Errorf("found")

// Count returns the number of views in the tree starting at v.
func (v *View) Count() int {
	return tree.Count(&v.Node)
}

// --- Object ----------------------------------------------------------------

// Property is part of interface object.Object.
func (v *View) Property(name string) (interface{}, bool) {
	switch name {
	case "name":
		return v.name, true
	case "title":
		return v.Title, true
	case "class":
		return v.Class, true
	case "width":
		return v.Size.Width(), true
	case "height":
		return v.Size.Height(), true
	}
	p, ok := v.props[name]
	return p, ok
}

// SetProperty is part of interface object.Object. Every change is signalled
// to observers.
func (v *View) SetProperty(name string, value interface{}) bool {
	switch name {
	case "name":
		v.name = fmt.Sprint(value)
	case "title":
		v.Title = fmt.Sprint(value)
	case "class", "width", "height":
		return false
	default:
		v.props[name] = value
	}
	v.Signal(v, object.Message{ID: object.MsgPropertyChanged, Property: name, Value: value})
	return true
}

// Child is part of interface object.Container: it finds a direct child
// view by name. Positional access is provided by View.Node.Child.
func (v *View) Child(name string) object.Object {
	for _, ch := range v.Views() {
		if ch.name == name {
			return ch
		}
	}
	return nil
}

// ParentObject is part of interface object.Parented.
func (v *View) ParentObject() object.Object {
	if p := v.ParentView(); p != nil {
		return p
	}
	return nil
}

// --- Styles ----------------------------------------------------------------

// Style returns the effective style: the current style of the alias, if the
// view uses one, else its own style.
func (v *View) Style() *style.VisualStyle {
	if v.alias != nil {
		if s := v.alias.Style(); s != nil {
			return s
		}
	}
	return v.style
}

// SetStyle sets a fixed style.
func (v *View) SetStyle(s *style.VisualStyle) {
	v.style = s
}

// SetStyleAlias makes the view a client of a style alias.
func (v *View) SetStyleAlias(a *style.Alias) {
	if v.alias == a {
		return
	}
	if v.alias != nil {
		v.alias.RemoveClient(v)
	}
	v.alias = a
	if a != nil {
		a.AddClient(v)
	}
}

// StyleAlias returns the alias the view is a client of.
func (v *View) StyleAlias() *style.Alias {
	return v.alias
}

// StyleChanged is part of interface style.Client.
func (v *View) StyleChanged(a *style.Alias) {
	tracer().Debugf("%s: style changed to %s", v, a.Style())
	v.Signal(v, object.Message{ID: object.MsgChanged, Property: "style", Value: a.Style()})
}

// ActivateTriggers clones the triggers of the view's style onto the view.
func (v *View) ActivateTriggers(env *trigger.Env) {
	s := v.Style()
	if s == nil {
		return
	}
	if env != nil {
		v.animator = env.Animator
	}
	v.triggers = append(v.triggers, s.ApplyTriggers(v, env)...)
}

// Triggers returns the active triggers of the view.
func (v *View) Triggers() []*trigger.Trigger {
	return v.triggers
}

// --- Lifecycle -------------------------------------------------------------

// Retain keeps c alive for the lifetime of the view; it is closed on
// Destroy.
func (v *View) Retain(c io.Closer) {
	v.retained = append(v.retained, c)
}

// AddLayoutItem registers a child view with the layout of v.
func (v *View) AddLayoutItem(item *View) {
	v.layoutItems = append(v.layoutItems, item)
}

// LayoutItems returns the registered layout items.
func (v *View) LayoutItems() []*View {
	return v.layoutItems
}

// IsDestroyed is true after Destroy.
func (v *View) IsDestroyed() bool {
	return v.destroyed
}

// Destroy tears down the view tree starting at v: child views are destroyed
// first, then triggers are deactivated, the alias is left, retained
// objects are closed and the view is detached from its parent.
func (v *View) Destroy() {
	if v.destroyed {
		return
	}
	for _, ch := range v.Views() {
		ch.Destroy()
	}
	for _, t := range v.triggers {
		t.Release()
	}
	v.triggers = nil
	if v.animator != nil {
		v.animator.StopAll(v)
	}
	v.SetStyleAlias(nil)
	for i := len(v.retained) - 1; i >= 0; i-- {
		if err := v.retained[i].Close(); err != nil {
			tracer().Errorf("%s: %v", v, err)
		}
	}
	v.retained = nil
	v.destroyed = true
	v.Signal(v, object.Message{ID: object.MsgDestroyed})
	v.Isolate()
}
