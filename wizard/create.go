package wizard

import (
	"fmt"
	"strings"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/npillmayer/skinwiz/vars"
	"github.com/npillmayer/skinwiz/view"
)

// maxFormDepth limits forms instantiated within forms through delegates.
const maxFormDepth = 32

// CreateView instantiates a form of the loaded skin with a controller.
// Forms are searched in the current scope first.
func (w *Wizard) CreateView(form string, controller object.Object) (*view.View, error) {
	m := w.currentModel()
	if m == nil {
		return nil, ErrNotLoaded
	}
	f := m.Form(w.ResolveName(form), nil)
	if f == nil {
		return nil, fmt.Errorf("%q: %w", form, ErrFormNotFound)
	}
	v := w.CreateViewFrom(f, controller, nil, nil)
	if v == nil {
		return nil, fmt.Errorf("form %q created no view", form)
	}
	return v, nil
}

// CreateWindow instantiates the form of a window class. The window's
// title is the class's title if one is given. A workspace named by the
// class has to be defined, otherwise a warning is issued.
func (w *Wizard) CreateWindow(class string, controller object.Object) (*view.View, error) {
	m := w.currentModel()
	if m == nil {
		return nil, ErrNotLoaded
	}
	wc := m.WindowClass(w.ResolveName(class), nil)
	if wc == nil {
		return nil, fmt.Errorf("%q: %w", class, ErrWindowClassNotFound)
	}
	if wc.Workspace != "" && m.Workspace(w.ResolveName(wc.Workspace), wc) == nil {
		w.sink.Warn(wc.Origin(), "workspace %q not found", wc.Workspace)
	}
	f := m.Form(w.ResolveName(wc.Form), wc)
	if f == nil {
		return nil, fmt.Errorf("window class %q: form %q: %w", class, wc.Form, ErrFormNotFound)
	}
	v := w.CreateViewFrom(f, controller, nil, nil)
	if v == nil {
		return nil, fmt.Errorf("window class %q created no view", class)
	}
	if wc.Title != "" {
		v.Title = w.ResolveTitle(wc.Title)
	}
	return v, nil
}

// CreateViewFrom interprets element e. Views created are added to parent,
// which has been created by parentElement. The view created by e itself is
// returned; statements return nil.
func (w *Wizard) CreateViewFrom(e skin.Element, controller object.Object, parent *view.View, parentElement skin.Element) *view.View {
	switch s := e.(type) {
	case *skin.UsingStatement:
		w.using(s, controller, parent, parentElement)
	case *skin.IfStatement:
		w.createAll(w.ifBranch(s, controller), controller, parent, parentElement)
	case *skin.SwitchStatement:
		value, ok := w.testValue(&s.Test, controller)
		w.createAll(w.caseBranch(s, value, ok), controller, parent, parentElement)
	case *skin.CaseStatement, *skin.DefaultStatement:
		w.createChildren(e, controller, parent, parentElement)
	case *skin.ForEachStatement:
		w.forEach(s, controller, parent, parentElement)
	case *skin.DefineStatement:
		w.define(s, controller, parent, parentElement)
	case *skin.ZoomStatement:
		w.zoomScope(s, controller, parent, parentElement)
	case *skin.StyleSelectorStatement:
		w.styleSelector(s, controller, parent, parentElement)
	case skin.ViewCreator:
		return w.createView(s, controller, parent, parentElement)
	default:
		tracer().Debugf("%s %q creates no view", e.Meta().Name, e.Base().Name())
	}
	return nil
}

func (w *Wizard) createChildren(e skin.Element, controller object.Object, parent *view.View, parentElement skin.Element) {
	w.createAll(e.Base().Children(), controller, parent, parentElement)
}

func (w *Wizard) createAll(elements []skin.Element, controller object.Object, parent *view.View, parentElement skin.Element) {
	for _, ch := range elements {
		w.CreateViewFrom(ch, controller, parent, parentElement)
	}
}

// createView lets a view element create its view, creates the children
// into it and adds it to the parent.
func (w *Wizard) createView(vc skin.ViewCreator, controller object.Object, parent *view.View, parentElement skin.Element) *view.View {
	ctx := w.createContext(vc, controller)
	ctx.Parent = parent
	v := vc.CreateView(ctx)
	container, containerElement := parent, parentElement
	if v != nil {
		container, containerElement = v, vc
	}
	w.createChildren(vc, ctx.Controller, container, containerElement)
	if v == nil {
		return nil
	}
	vc.ViewCreated(v, ctx)
	if parent != nil {
		parent.AddView(v)
		if pc, ok := parentElement.(skin.ViewCreator); ok {
			pc.ViewAdded(parent, v, vc, ctx)
		}
	}
	return v
}

func (w *Wizard) createContext(e skin.Element, controller object.Object) *skin.CreateContext {
	m := skin.ModelOf(e)
	if m == nil {
		m = w.currentModel()
	}
	ctx := &skin.CreateContext{
		Attrs:        attrs.NewResolved(e.Base().Attributes(), attrs.ResolverFunc(w.ResolveString)),
		Controller:   controller,
		Zoom:         w.zoom,
		Model:        m,
		Sink:         w.sink,
		Triggers:     &trigger.Env{Sink: w.sink, Animator: w.animator},
		ResolveTitle: w.ResolveTitle,
		LookupStyle:  w.LookupStyle,
		CreateForm: func(form string, c object.Object) *view.View {
			return w.createForm(form, c, e)
		},
	}
	if d, ok := e.(*skin.DelegateElement); ok && d.Controller != "" {
		path := w.ResolveString(d.Controller)
		if c := w.LookupController(path, controller); c != nil {
			ctx.Controller = c
		} else {
			w.sink.Warn(d.Origin(), "delegate: controller %q not found", path)
		}
	}
	return ctx
}

func (w *Wizard) createForm(name string, controller object.Object, caller skin.Element) *view.View {
	m := skin.ModelOf(caller)
	if m == nil {
		m = w.currentModel()
	}
	f := m.Form(name, caller)
	if f == nil {
		w.sink.Warn(caller.Base().Origin(), "form %q not found", name)
		return nil
	}
	if w.formDepth >= maxFormDepth {
		w.sink.Warn(caller.Base().Origin(), "form %q nested too deeply", name)
		return nil
	}
	w.formDepth++
	defer func() { w.formDepth-- }()
	defer w.vars.Scope()()
	return w.CreateViewFrom(f, controller, nil, nil)
}

// --- Statements ------------------------------------------------------------

func (w *Wizard) using(s *skin.UsingStatement, controller object.Object, parent *view.View, parentElement skin.Element) {
	path := w.ResolveString(s.Controller)
	c := w.LookupController(path, controller)
	if c == nil {
		if !s.Optional {
			w.sink.Warn(s.Origin(), "using: controller %q not found", path)
		}
		return
	}
	w.createChildren(s, c, parent, parentElement)
}

// testValue computes the value tested by switch and if statements. ok is
// false if no value could be determined.
func (w *Wizard) testValue(t *skin.Test, controller object.Object) (value string, ok bool) {
	switch {
	case t.Defined != "":
		return fmt.Sprint(w.vars.IsDefined(t.Defined)), true
	case t.NotDefined != "":
		return fmt.Sprint(!w.vars.IsDefined(t.NotDefined)), true
	case t.Property != "":
		obj := controller
		if t.Controller != "" {
			obj = w.LookupController(w.ResolveString(t.Controller), controller)
		}
		if obj == nil {
			return "", false
		}
		v, found := object.GetProperty(obj, w.ResolveString(t.Property))
		if !found {
			return "", false
		}
		return vars.Format(v), true
	case t.Variable != "":
		if v, found := w.vars.Lookup(t.Variable); found {
			return v.String(), true
		}
	}
	return "", false
}

// caseBranch selects the children of the first matching case, or of the
// first default statement.
func (w *Wizard) caseBranch(s skin.Element, value string, ok bool) []skin.Element {
	var fallback []skin.Element
	haveDefault := false
	for _, ch := range s.Base().Children() {
		switch c := ch.(type) {
		case *skin.CaseStatement:
			if ok && c.Matches(value) {
				return c.Children()
			}
		case *skin.DefaultStatement:
			if !haveDefault {
				fallback, haveDefault = c.Children(), true
			}
		}
	}
	return fallback
}

// ifBranch selects the children of an if statement. With case children it
// behaves like a switch. Otherwise the non-default children are selected if
// the test holds, the default children if not.
func (w *Wizard) ifBranch(s *skin.IfStatement, controller object.Object) []skin.Element {
	value, ok := w.testValue(&s.Test, controller)
	if s.FindChildOfType(skin.MetaCase) != nil {
		return w.caseBranch(s, value, ok)
	}
	holds := false
	if ok {
		if s.Value != "" {
			holds = value == w.ResolveString(s.Value)
		} else {
			holds = attrs.Value(value).Bool(false)
		}
	}
	var branch []skin.Element
	for _, ch := range s.Children() {
		d, isDefault := ch.(*skin.DefaultStatement)
		switch {
		case holds && !isDefault:
			branch = append(branch, ch)
		case !holds && isDefault:
			branch = append(branch, d.Children()...)
		}
	}
	return branch
}

func (w *Wizard) forEach(s *skin.ForEachStatement, controller object.Object, parent *view.View, parentElement skin.Element) {
	if s.Variable == "" {
		w.sink.Warn(s.Origin(), "foreach without variable")
		return
	}
	defer w.vars.Scope()()
	if !s.IsCounted() {
		in := w.ResolveString(s.In)
		if v, ok := (env{w: w, controller: controller}).Property(in); ok {
			in = vars.Format(v)
		}
		loop := w.vars.Push(s.Variable, "")
		for _, token := range strings.Fields(in) {
			loop.Value = token
			w.createChildren(s, controller, parent, parentElement)
		}
		return
	}
	start := int(w.ResolveNumber(s.Start, controller, 0))
	count := int(w.ResolveNumber(s.Count, controller, 0))
	loop := w.vars.Push(s.Variable, start)
	for i := start; i < start+count; i++ {
		loop.Value = i
		w.createChildren(s, controller, parent, parentElement)
	}
}

func (w *Wizard) define(s *skin.DefineStatement, controller object.Object, parent *view.View, parentElement skin.Element) {
	defer w.vars.Scope()()
	if s.Defines != nil {
		for i := 0; i < s.Defines.Count(); i++ {
			name, raw := s.Defines.NameAt(i), s.Defines.StringAt(i)
			value, err := w.ResolveDefine(raw, controller)
			if err != nil {
				w.sink.Warn(s.Origin(), "define %s: %v", name, err)
			}
			w.vars.Push(name, value)
		}
	}
	w.createChildren(s, controller, parent, parentElement)
}

func (w *Wizard) zoomScope(s *skin.ZoomStatement, controller object.Object, parent *view.View, parentElement skin.Element) {
	factor := w.ResolveNumber(s.Factor, controller, 1)
	if s.Relative {
		factor *= w.zoom
	}
	if factor <= 0 {
		w.sink.Warn(s.Origin(), "invalid zoom factor %q", s.Factor)
		factor = w.zoom
	}
	saved := w.zoom
	w.zoom = factor
	defer func() { w.zoom = saved }()
	w.createChildren(s, controller, parent, parentElement)
}

func (w *Wizard) styleSelector(s *skin.StyleSelectorStatement, controller object.Object, parent *view.View, parentElement skin.Element) {
	defer w.vars.Scope()()
	if sel := w.newSelector(s, controller); sel != nil {
		if parent != nil {
			parent.Retain(sel)
		}
		w.vars.Push(s.Variable, sel.Alias())
	}
	w.createChildren(s, controller, parent, parentElement)
}

func (w *Wizard) newSelector(s *skin.StyleSelectorStatement, controller object.Object) *style.Selector {
	if s.Variable == "" {
		w.sink.Warn(s.Origin(), "styleselector without variable")
		return nil
	}
	styles := make([]*style.VisualStyle, len(s.Styles))
	for i, name := range s.Styles {
		if styles[i], _ = w.LookupStyle(name, s); styles[i] == nil {
			w.sink.Warn(s.Origin(), "styleselector: style %q not found", name)
		}
	}
	obj := controller
	if s.Controller != "" {
		obj = w.LookupController(w.ResolveString(s.Controller), controller)
	}
	if obj == nil {
		w.sink.Warn(s.Origin(), "styleselector: no controller")
		return nil
	}
	name := strings.TrimPrefix(s.Variable, vars.Prefix)
	switch {
	case s.Parameter != "":
		p := object.FindParameter(obj, w.ResolveString(s.Parameter))
		if p == nil {
			w.sink.Warn(s.Origin(), "styleselector: parameter %q not found", s.Parameter)
			return nil
		}
		return style.NewParameterSelector(p, styles, name)
	case s.Property != "":
		return style.NewPropertySelector(obj, w.ResolveString(s.Property), styles, name)
	}
	w.sink.Warn(s.Origin(), "styleselector needs a parameter or a property")
	return nil
}
