package skin

import (
	"math"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/coord"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/npillmayer/skinwiz/view"
)

// CreateContext is handed to elements creating views. The wizard fills it
// for every element it instantiates.
type CreateContext struct {
	Attrs      attrs.Attributes // resolved attributes of the element
	Controller object.Object
	Parent     *view.View // container of the view to create, may be nil
	Zoom       float64
	Model      *Model
	Sink       *diag.Sink
	Triggers   *trigger.Env

	ResolveTitle func(title string) string
	LookupStyle  func(ref string, caller Element) (*style.VisualStyle, *style.Alias)
	CreateForm   func(form string, controller object.Object) *view.View
}

func (ctx *CreateContext) title(s string) string {
	if ctx.ResolveTitle == nil {
		return s
	}
	return ctx.ResolveTitle(s)
}

// ViewCreator is implemented by elements producing views.
type ViewCreator interface {
	Element
	CreateView(ctx *CreateContext) *view.View
	ViewCreated(v *view.View, ctx *CreateContext)
	ViewAdded(parent, child *view.View, childElement Element, ctx *CreateContext)
}

// ViewElement is the generic view element. Concrete kinds (Button, Label,
// …) share it and differ in their meta element. Unknown tags produce view
// elements with the tag as class.
type ViewElement struct {
	ElementBase
	meta  *MetaElement
	class string
}

func newViewElement(meta *MetaElement) *ViewElement {
	v := &ViewElement{meta: meta}
	v.Init(v)
	return v
}

// NewViewElement creates a view element of a custom class.
func NewViewElement(class string) *ViewElement {
	v := newViewElement(MetaView)
	v.class = class
	return v
}

// Meta is part of interface Element.
func (ve *ViewElement) Meta() *MetaElement { return ve.meta }

// Class returns the class of views created.
func (ve *ViewElement) Class() string {
	if ve.class != "" {
		return ve.class
	}
	return ve.meta.Name
}

// SetAttributes is part of interface Element.
func (ve *ViewElement) SetAttributes(a attrs.Attributes) bool {
	ve.ElementBase.SetAttributes(a)
	if c := a.String("class"); c != "" && ve.meta == MetaView {
		ve.class = c
	}
	return true
}

// GetAttributes is part of interface Element.
func (ve *ViewElement) GetAttributes(a attrs.Attributes) bool {
	ve.ElementBase.GetAttributes(a)
	if ve.class != "" {
		_ = a.SetString("class", ve.class)
	}
	return true
}

// CreateView is part of interface ViewCreator.
func (ve *ViewElement) CreateView(ctx *CreateContext) *view.View {
	v := view.New(ve.Class(), ctx.Attrs.String("name"))
	ve.Apply(v, ctx)
	return v
}

// Apply transfers the resolved attributes to a view: name, title, size,
// style and controller binding.
func (ve *ViewElement) Apply(v *view.View, ctx *CreateContext) {
	a := ctx.Attrs
	_ = attrs.CopyAll(v.Attrs, a)
	v.Zoom = ctx.Zoom
	v.Controller = ctx.Controller
	if t := a.String("title"); t != "" {
		v.Title = ctx.title(t)
	}
	applySize(v, a, ctx)
	// style references are resolved by the lookup; "$var" may name an alias
	if name := ve.Attributes().String("style"); name != "" {
		var s *style.VisualStyle
		var alias *style.Alias
		if ctx.LookupStyle != nil {
			s, alias = ctx.LookupStyle(name, ve.Self())
		}
		switch {
		case alias != nil:
			v.SetStyleAlias(alias)
		case s != nil:
			v.SetStyle(s)
		default:
			ctx.Sink.Warn(ve.Origin(), "style %q not found", name)
		}
	}
	if ve.meta.CanCast(MetaControl) && ctx.Controller != nil {
		if p := object.FindParameter(ctx.Controller, v.Name()); p != nil {
			v.SetProperty("value", p.Value())
		}
	}
	if ve.meta == MetaImageView {
		if name := a.String("image"); name != "" && ctx.Model != nil {
			if img := ctx.Model.Image(name, ve.Self()); img != nil {
				v.SetProperty("image", img)
			} else {
				ctx.Sink.Warn(ve.Origin(), "image %q not found", name)
			}
		}
	}
}

// applySize sets the design size and the zoomed size of a view.
// Percentages are relative to the container's size.
func applySize(v *view.View, a attrs.Attributes, ctx *CreateContext) {
	zoom := ctx.Zoom
	if zoom == 0 {
		zoom = 1
	}
	ds, ok := attrs.DesignSize(a, "size")
	if !ok {
		ds = coord.DesignRect{Left: coord.Coord(0), Top: coord.Coord(0)}
	}
	if attrs.Exists(a, "width") {
		ds.Width = coord.Parse(a.String("width"))
	}
	if attrs.Exists(a, "height") {
		ds.Height = coord.Parse(a.String("height"))
	}
	v.DesignSize = ds
	var extent coord.Rect
	if ctx.Parent != nil {
		extent = ctx.Parent.Size
	}
	scaled := func(d coord.DesignCoord, extent int) int {
		return int(math.Round(d.Scaled(zoom).Resolve(float64(extent), 0)))
	}
	v.Size = coord.RectFromSize(
		scaled(ds.Left, extent.Width()), scaled(ds.Top, extent.Height()),
		scaled(ds.Width, extent.Width()), scaled(ds.Height, extent.Height()))
}

// ViewCreated is part of interface ViewCreator. It activates the triggers of
// the view's style.
func (ve *ViewElement) ViewCreated(v *view.View, ctx *CreateContext) {
	if ctx.Triggers == nil || v.Style() == nil {
		return
	}
	env := *ctx.Triggers
	v.ActivateTriggers(&env)
}

// ViewAdded is part of interface ViewCreator. Layouts register the child.
func (ve *ViewElement) ViewAdded(parent, child *view.View, childElement Element, ctx *CreateContext) {
	if ve.meta.CanCast(MetaLayout) {
		parent.AddLayoutItem(child)
	}
}

// FormElement is a named, reusable view hierarchy.
type FormElement struct {
	ViewElement
	Title       string
	FirstFocus  string
	WindowStyle string
}

func newForm() Element {
	f := &FormElement{}
	f.meta = MetaForm
	f.Init(f)
	return f
}

// SetAttributes is part of interface Element.
func (f *FormElement) SetAttributes(a attrs.Attributes) bool {
	f.ViewElement.SetAttributes(a)
	f.Title = a.String("title")
	f.FirstFocus = a.String("firstfocus")
	f.WindowStyle = a.String("windowstyle")
	return true
}

// GetAttributes is part of interface Element.
func (f *FormElement) GetAttributes(a attrs.Attributes) bool {
	f.ViewElement.GetAttributes(a)
	if f.Title != "" {
		_ = a.SetString("title", f.Title)
	}
	if f.FirstFocus != "" {
		_ = a.SetString("firstfocus", f.FirstFocus)
	}
	if f.WindowStyle != "" {
		_ = a.SetString("windowstyle", f.WindowStyle)
	}
	return true
}

// CreateView is part of interface ViewCreator.
func (f *FormElement) CreateView(ctx *CreateContext) *view.View {
	name := ctx.Attrs.String("name")
	if name == "" {
		name = f.Name()
	}
	v := view.New(f.Class(), name)
	f.Apply(v, ctx)
	if f.FirstFocus != "" {
		v.SetProperty("firstfocus", f.FirstFocus)
	}
	return v
}

// DelegateElement instantiates another form in place.
type DelegateElement struct {
	ViewElement
	Form       string
	Controller string
}

func newDelegate() Element {
	d := &DelegateElement{}
	d.meta = MetaDelegate
	d.Init(d)
	return d
}

// SetAttributes is part of interface Element.
func (d *DelegateElement) SetAttributes(a attrs.Attributes) bool {
	d.ViewElement.SetAttributes(a)
	d.Form = a.String("form")
	d.Controller = a.String("controller")
	return true
}

// GetAttributes is part of interface Element.
func (d *DelegateElement) GetAttributes(a attrs.Attributes) bool {
	d.ViewElement.GetAttributes(a)
	_ = a.SetString("form", d.Form)
	if d.Controller != "" {
		_ = a.SetString("controller", d.Controller)
	}
	return true
}

// CreateView is part of interface ViewCreator. The controller attribute is
// resolved by the wizard before the context is handed in.
func (d *DelegateElement) CreateView(ctx *CreateContext) *view.View {
	form := ctx.Attrs.String("form")
	if ctx.CreateForm == nil || form == "" {
		ctx.Sink.Warn(d.Origin(), "delegate without form")
		return nil
	}
	v := ctx.CreateForm(form, ctx.Controller)
	if v == nil { // reported by the form creator
		return nil
	}
	if name := ctx.Attrs.String("name"); name != "" {
		v.SetName(name)
	}
	if ds, ok := attrs.DesignSize(ctx.Attrs, "size"); ok {
		v.DesignSize = ds
		applySize(v, ctx.Attrs, ctx)
	}
	return v
}

// --- Window classes and workspaces -----------------------------------------

// WindowClassElement binds a form to a window.
type WindowClassElement struct {
	ElementBase
	Form      string
	Title     string
	Workspace string
}

// Meta is part of interface Element.
func (w *WindowClassElement) Meta() *MetaElement { return MetaWindowClass }

// SetAttributes is part of interface Element.
func (w *WindowClassElement) SetAttributes(a attrs.Attributes) bool {
	w.ElementBase.SetAttributes(a)
	w.Form = a.String("form")
	w.Title = a.String("title")
	w.Workspace = a.String("workspace")
	return true
}

// GetAttributes is part of interface Element.
func (w *WindowClassElement) GetAttributes(a attrs.Attributes) bool {
	w.ElementBase.GetAttributes(a)
	_ = a.SetString("form", w.Form)
	if w.Title != "" {
		_ = a.SetString("title", w.Title)
	}
	if w.Workspace != "" {
		_ = a.SetString("workspace", w.Workspace)
	}
	return true
}

// WorkspaceElement groups frames of an application workspace.
type WorkspaceElement struct {
	ElementBase
	Perspective string
}

// Meta is part of interface Element.
func (w *WorkspaceElement) Meta() *MetaElement { return MetaWorkspace }

// SetAttributes is part of interface Element.
func (w *WorkspaceElement) SetAttributes(a attrs.Attributes) bool {
	w.ElementBase.SetAttributes(a)
	w.Perspective = a.String("perspective")
	return true
}

// GetAttributes is part of interface Element.
func (w *WorkspaceElement) GetAttributes(a attrs.Attributes) bool {
	w.ElementBase.GetAttributes(a)
	if w.Perspective != "" {
		_ = a.SetString("perspective", w.Perspective)
	}
	return true
}

// Frames returns the frames of the workspace.
func (w *WorkspaceElement) Frames() []*FrameElement {
	var frames []*FrameElement
	for _, e := range Descendants(w, MetaFrame) {
		if f, ok := e.(*FrameElement); ok {
			frames = append(frames, f)
		}
	}
	return frames
}

// FrameElement is a place for window classes within a workspace.
type FrameElement struct {
	ElementBase
	WindowClass string
}

// Meta is part of interface Element.
func (f *FrameElement) Meta() *MetaElement { return MetaFrame }

// SetAttributes is part of interface Element.
func (f *FrameElement) SetAttributes(a attrs.Attributes) bool {
	f.ElementBase.SetAttributes(a)
	f.WindowClass = a.String("windowclass")
	return true
}

// GetAttributes is part of interface Element.
func (f *FrameElement) GetAttributes(a attrs.Attributes) bool {
	f.ElementBase.GetAttributes(a)
	if f.WindowClass != "" {
		_ = a.SetString("windowclass", f.WindowClass)
	}
	return true
}
