package skin

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/style"
)

// FileName is the name of the main document of a skin package.
const FileName = "skin.xml"

// ErrNoSkinFile is returned if a package does not contain a skin document.
var ErrNoSkinFile = errors.New("no skin.xml found")

// ErrRootMismatch is returned if a document's root tag does not match the
// expected role of the document.
var ErrRootMismatch = errors.New("root element does not match document role")

// Translator translates user visible strings.
type Translator interface {
	Translate(scope, text string) string
}

// Theme provides named metrics, addressed as $Theme.<name> in skins.
type Theme interface {
	Metric(name string) (float64, bool)
}

// Context is the environment of a skin model.
type Context interface {
	FileSystem() fs.FS // skin package contents
	Dir() string       // folder of the skin package within FileSystem
	Translations() Translator
	Theme() Theme
	Sink() *diag.Sink
	Library() *Library
	SkinID() string
}

// PackageContext is a plain implementation of Context.
type PackageContext struct {
	FS      fs.FS
	Root    string
	ID      string
	Strings Translator
	Metrics Theme
	Diag    *diag.Sink
	Lib     *Library
}

func (pc *PackageContext) FileSystem() fs.FS        { return pc.FS }
func (pc *PackageContext) Translations() Translator { return pc.Strings }
func (pc *PackageContext) Theme() Theme             { return pc.Metrics }
func (pc *PackageContext) Sink() *diag.Sink         { return pc.Diag }
func (pc *PackageContext) SkinID() string           { return pc.ID }

// Dir returns the package folder, "." if none is set.
func (pc *PackageContext) Dir() string {
	if pc.Root == "" {
		return "."
	}
	return pc.Root
}

// Library returns the element library, creating a default one on first use.
func (pc *PackageContext) Library() *Library {
	if pc.Lib == nil {
		pc.Lib = DefaultLibrary()
	}
	return pc.Lib
}

// sectioned is implemented by elements with pre-created section children.
type sectioned interface {
	Section(tag string) Element
}

// Model is the root of a skin document.
type Model struct {
	ElementBase
	ctx      Context
	owner    *Model // root model of a scope model
	sections map[string]*Section
	imported []string
	models   []*Model
	loading  bool
	loaded   bool
}

var sectionMetas = []**MetaElement{
	&MetaIncludes, &MetaImports, &MetaResources, &MetaStyles,
	&MetaForms, &MetaWindowClasses, &MetaWorkspaces,
}

// NewModel creates a model with all sections.
func NewModel(ctx Context) *Model {
	m := &Model{ctx: ctx, sections: make(map[string]*Section)}
	m.Init(m)
	for _, meta := range sectionMetas {
		s := newSection(*meta)
		m.sections[strings.ToLower((*meta).Name)] = s
		m.AddChild(s, -1)
	}
	return m
}

// Meta is part of interface Element.
func (m *Model) Meta() *MetaElement { return MetaModel }

// MergeElements merges another model section by section.
func (m *Model) MergeElements(other Element) bool {
	o, ok := other.(*Model)
	if !ok {
		return false
	}
	m.Merge(o)
	return true
}

// Section returns the section for a tag, or nil.
func (m *Model) Section(tag string) Element {
	if s, ok := m.sections[strings.ToLower(tag)]; ok {
		return s
	}
	return nil
}

func (m *Model) section(meta *MetaElement) *Section {
	return m.sections[strings.ToLower(meta.Name)]
}

func (m *Model) Includes() *Section      { return m.section(MetaIncludes) }
func (m *Model) Imports() *Section       { return m.section(MetaImports) }
func (m *Model) Resources() *Section     { return m.section(MetaResources) }
func (m *Model) Styles() *Section        { return m.section(MetaStyles) }
func (m *Model) Forms() *Section         { return m.section(MetaForms) }
func (m *Model) WindowClasses() *Section { return m.section(MetaWindowClasses) }
func (m *Model) Workspaces() *Section    { return m.section(MetaWorkspaces) }

// Context returns the model's environment.
func (m *Model) Context() Context {
	if m.ctx == nil && m.owner != nil {
		return m.owner.Context()
	}
	return m.ctx
}

// SetContext replaces the environment.
func (m *Model) SetContext(ctx Context) {
	m.ctx = ctx
}

// SetSortedSections switches the sorted name index of all sections.
func (m *Model) SetSortedSections(on bool) {
	for _, s := range m.sections {
		s.SetSorted(on)
	}
}

func (m *Model) sink() *diag.Sink {
	if ctx := m.Context(); ctx != nil {
		return ctx.Sink()
	}
	return nil
}

// Root returns the root model for scope models, m itself otherwise.
func (m *Model) Root() *Model {
	r := m
	for r.owner != nil {
		r = r.owner
	}
	return r
}

// ModelOf finds the model an element belongs to.
func ModelOf(e Element) *Model {
	if e == nil {
		return nil
	}
	if m, ok := e.(*Model); ok {
		return m
	}
	m, _ := Ancestor(e, MetaModel).(*Model)
	return m
}

// --- Scopes ----------------------------------------------------------------

// ScopeModel returns a named sub-model of the root model, or nil.
func (m *Model) ScopeModel(name string) *Model {
	for _, sm := range m.Root().models {
		if strings.EqualFold(sm.Name(), name) {
			return sm
		}
	}
	return nil
}

// AddScopeModel returns the named sub-model, creating it if needed.
func (m *Model) AddScopeModel(name string) *Model {
	root := m.Root()
	if sm := root.ScopeModel(name); sm != nil {
		return sm
	}
	sm := NewModel(nil)
	sm.SetName(name)
	sm.owner = root
	root.models = append(root.models, sm)
	tracer().Debugf("scope model %q created", name)
	return sm
}

// Models returns the scope models.
func (m *Model) Models() []*Model {
	return m.Root().models
}

// ImportedPaths returns the paths of imported skin packages.
func (m *Model) ImportedPaths() []string {
	return m.imported
}

// AddImportedPath records an imported skin package.
func (m *Model) AddImportedPath(p string) {
	m.imported = append(m.imported, p)
}

// Merge combines another model into m, section by section. Scope models of
// other are merged into scope models of m with the same name.
func (m *Model) Merge(other *Model) {
	sink := m.sink()
	for key, src := range other.sections {
		if dst, ok := m.sections[key]; ok {
			dst.TakeElements(src, sink)
		}
	}
	for _, sm := range other.models {
		m.AddScopeModel(sm.Name()).Merge(sm)
	}
	m.imported = append(m.imported, other.imported...)
	m.loaded = false
}

// --- Lookup ----------------------------------------------------------------

// find looks for a named element in a section. Names of the form
// "scope/name" address a scope model. Otherwise the model of caller is
// searched first, then the root model.
func (m *Model) find(name string, sec *MetaElement, kind *MetaElement, caller Element) Element {
	if name == "" {
		return nil
	}
	root := m.Root()
	if i := strings.IndexByte(name, '/'); i > 0 {
		if sm := root.ScopeModel(name[:i]); sm != nil {
			return sm.findLocal(name[i+1:], sec, kind)
		}
	}
	start := m
	if caller != nil {
		if cm := ModelOf(caller); cm != nil {
			start = cm
		}
	}
	if e := start.findLocal(name, sec, kind); e != nil {
		return e
	}
	if start != root {
		return root.findLocal(name, sec, kind)
	}
	return nil
}

func (m *Model) findLocal(name string, sec *MetaElement, kind *MetaElement) Element {
	s := m.section(sec)
	if s == nil {
		return nil
	}
	if e := s.FindElement(name); e != nil && e.Meta().CanCast(kind) {
		return e
	}
	// names may be used for elements of different kinds
	return s.FindElementOfType(name, kind)
}

// Resource finds a resource element by name.
func (m *Model) Resource(name string, caller Element) Element {
	return m.find(name, MetaResources, MetaResource, caller)
}

// Image finds and loads an image resource.
func (m *Model) Image(name string, caller Element) *ImageElement {
	img, _ := m.find(name, MetaResources, MetaImage, caller).(*ImageElement)
	if img != nil && !img.IsLoaded() {
		if err := img.Load(); err != nil {
			m.sink().Warn(img.Origin(), "image %q: %v", name, err)
		}
	}
	return img
}

// Gradient finds a gradient resource.
func (m *Model) Gradient(name string, caller Element) *Gradient {
	g, _ := m.find(name, MetaResources, MetaGradient, caller).(*GradientElement)
	if g == nil {
		return nil
	}
	return g.Gradient(m)
}

// Color resolves a named color resource.
func (m *Model) Color(name string, caller Element) (color.RGBA, bool) {
	return m.color(name, caller, 0)
}

func (m *Model) color(name string, caller Element, depth int) (color.RGBA, bool) {
	c, _ := m.find(name, MetaResources, MetaColor, caller).(*ColorElement)
	if c == nil {
		return color.RGBA{}, false
	}
	return c.resolve(m, depth)
}

// Font finds a font resource.
func (m *Model) Font(name string, caller Element) (style.Font, bool) {
	f, _ := m.find(name, MetaResources, MetaFont, caller).(*FontElement)
	if f == nil {
		return style.Font{}, false
	}
	return f.Font(), true
}

// Metric finds a metric resource.
func (m *Model) Metric(name string, caller Element) (float64, bool) {
	x, _ := m.find(name, MetaResources, MetaMetric, caller).(*MetricElement)
	if x == nil {
		return 0, false
	}
	return x.Value, true
}

// StyleElement finds a style definition.
func (m *Model) StyleElement(name string, caller Element) *StyleElement {
	s, _ := m.find(name, MetaStyles, MetaStyle, caller).(*StyleElement)
	return s
}

// Style returns the runtime style of a named style definition, creating it
// on first use.
func (m *Model) Style(name string, caller Element) *style.VisualStyle {
	s := m.StyleElement(name, caller)
	if s == nil {
		return nil
	}
	return s.VisualStyle(m)
}

// Form finds a form.
func (m *Model) Form(name string, caller Element) *FormElement {
	f, _ := m.find(name, MetaForms, MetaForm, caller).(*FormElement)
	return f
}

// WindowClass finds a window class.
func (m *Model) WindowClass(name string, caller Element) *WindowClassElement {
	w, _ := m.find(name, MetaWindowClasses, MetaWindowClass, caller).(*WindowClassElement)
	return w
}

// Workspace finds a workspace.
func (m *Model) Workspace(name string, caller Element) *WorkspaceElement {
	w, _ := m.find(name, MetaWorkspaces, MetaWorkspace, caller).(*WorkspaceElement)
	return w
}

// --- Resources -------------------------------------------------------------

// resource is implemented by elements loading runtime data.
type resource interface {
	Element
	Load() error
	IsLoaded() bool
}

// LoadResources walks the resource and style sections and creates the
// runtime objects. Images are decoded only if loadAllImages is set; others
// are loaded on first use. Unless force is set, a loaded model is not
// loaded again. Recursive invocation is ignored.
func (m *Model) LoadResources(force, loadAllImages bool) error {
	if m.loading {
		tracer().Debugf("LoadResources: already loading")
		return nil
	}
	if m.loaded && !force {
		return nil
	}
	m.loading = true
	defer func() { m.loading = false }()
	sink := m.sink()
	var failed int
	_ = Walk(m.Resources(), func(e Element) error {
		r, ok := e.(resource)
		if !ok {
			return nil
		}
		if _, isImage := r.(*ImageElement); isImage && !loadAllImages {
			return nil
		}
		if force || !r.IsLoaded() {
			if err := r.Load(); err != nil {
				failed++
				sink.Warn(e.Base().Origin(), "resource %q: %v", e.Base().Name(), err)
			}
		}
		return nil
	})
	for _, e := range m.Styles().Children() {
		if s, ok := e.(*StyleElement); ok {
			if force {
				s.reset()
			}
			s.VisualStyle(m)
		}
	}
	if m.owner == nil {
		for _, sm := range m.models {
			if err := sm.LoadResources(force, loadAllImages); err != nil {
				return err
			}
		}
	}
	m.loaded = true
	tracer().Debugf("resources loaded, %d failures", failed)
	return nil
}

// ReuseResources adopts decoded images of a previous generation of the
// model, for images with the same name and URL. It returns the number of
// images reused.
func (m *Model) ReuseResources(old *Model) int {
	if old == nil {
		return 0
	}
	n := 0
	_ = Walk(m.Resources(), func(e Element) error {
		img, ok := e.(*ImageElement)
		if !ok || img.IsLoaded() {
			return nil
		}
		prev, _ := old.findLocal(img.Name(), MetaResources, MetaImage).(*ImageElement)
		if prev != nil && prev.IsLoaded() && prev.URL == img.URL {
			img.adopt(prev)
			n++
		}
		return nil
	})
	for _, sm := range m.models {
		n += sm.ReuseResources(old.ScopeModel(sm.Name()))
	}
	tracer().Debugf("%d images reused", n)
	return n
}

// --- Files -----------------------------------------------------------------

// Open opens a file of the skin package, relative to dir (a folder within
// the package) unless the path is absolute within the package.
func (m *Model) Open(dir, name string) (fs.File, string, error) {
	ctx := m.Context()
	if ctx == nil || ctx.FileSystem() == nil {
		return nil, "", fmt.Errorf("cannot open %q: model has no file system", name)
	}
	p := name
	if !strings.HasPrefix(name, "/") {
		p = path.Join(dir, name)
	} else {
		p = path.Join(ctx.Dir(), strings.TrimPrefix(name, "/"))
	}
	p = path.Clean(p)
	f, err := ctx.FileSystem().Open(p)
	return f, p, err
}
