package wizard

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/registry"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/npillmayer/skinwiz/vars"
)

// ErrNotLoaded is returned if views are requested before a skin is loaded.
var ErrNotLoaded = errors.New("no skin loaded")

// ErrFormNotFound is returned by CreateView for unknown forms.
var ErrFormNotFound = errors.New("form not found")

// ErrWindowClassNotFound is returned by CreateWindow for unknown window classes.
var ErrWindowClassNotFound = errors.New("window class not found")

// Wizard loads a skin and creates views from it.
type Wizard struct {
	fsys     fs.FS
	registry *registry.Registry
	lib      *skin.Library
	sink     *diag.Sink
	theme    skin.Theme
	strings  skin.Translator
	objects  *object.Table
	animator *trigger.Animator
	conf     schuko.Configuration
	sorted   bool

	url           string
	fixedID       string // identity given by WithSkinID
	skinID        string
	dir           string // package folder within fsys
	model         *skin.Model
	scope         *skin.Model
	loadAllImages bool
	session       *session
	overlays      []string
	onReload      []func(*skin.Model)

	vars      vars.Stack
	zoom      float64
	formDepth int
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithRegistry shares a registry between wizards.
func WithRegistry(r *registry.Registry) Option {
	return func(w *Wizard) { w.registry = r }
}

// WithLibrary sets the element kinds known to the parser.
func WithLibrary(lib *skin.Library) Option {
	return func(w *Wizard) { w.lib = lib }
}

// WithSink sets the receiver of skin warnings.
func WithSink(sink *diag.Sink) Option {
	return func(w *Wizard) { w.sink = sink }
}

// WithTheme provides metrics for $Theme references.
func WithTheme(theme skin.Theme) Option {
	return func(w *Wizard) { w.theme = theme }
}

// WithTranslations sets the translator for titles.
func WithTranslations(t skin.Translator) Option {
	return func(w *Wizard) { w.strings = t }
}

// WithObjectTable sets the table for absolute controller paths.
func WithObjectTable(t *object.Table) Option {
	return func(w *Wizard) { w.objects = t }
}

// WithAnimator sets the animator started by trigger actions.
func WithAnimator(a *trigger.Animator) Option {
	return func(w *Wizard) { w.animator = a }
}

// WithSkinID sets the identity of the skin; it defaults to the name of the
// package folder.
func WithSkinID(id string) Option {
	return func(w *Wizard) { w.fixedID, w.skinID = id, id }
}

// WithConfiguration applies configuration keys to the sink, the registry
// and the wizard ("skin.sortedsections").
func WithConfiguration(conf schuko.Configuration) Option {
	return func(w *Wizard) { w.conf = conf }
}

// New creates a wizard for skin packages in fsys.
func New(fsys fs.FS, opts ...Option) *Wizard {
	w := &Wizard{fsys: fsys, zoom: 1}
	for _, opt := range opts {
		opt(w)
	}
	if w.registry == nil {
		w.registry = registry.New()
	}
	if w.lib == nil {
		w.lib = skin.DefaultLibrary()
	}
	if w.sink == nil {
		w.sink = diag.NewSink()
	}
	if w.animator == nil {
		w.animator = trigger.NewAnimator()
	}
	if w.conf != nil {
		diag.Configure(w.sink, w.conf)
		w.registry.Configure(w.conf)
		w.sorted = w.conf.GetBool("skin.sortedsections")
	}
	w.vars.Theme = w.theme
	return w
}

// nested creates a wizard for an imported package. It shares the
// environment and the load session, but has its own variables and scope.
func (w *Wizard) nested() *Wizard {
	n := &Wizard{
		fsys:     w.fsys,
		registry: w.registry,
		lib:      w.lib,
		sink:     w.sink,
		theme:    w.theme,
		strings:  w.strings,
		objects:  w.objects,
		animator: w.animator,
		sorted:   w.sorted,
		session:  w.session,
		zoom:     1,
	}
	n.vars.Theme = w.theme
	return n
}

// Model returns the loaded skin.
func (w *Wizard) Model() *skin.Model {
	return w.model
}

// SkinID returns the identity of the loaded skin.
func (w *Wizard) SkinID() string {
	return w.skinID
}

// Registry returns the registry the wizard registers skins with.
func (w *Wizard) Registry() *registry.Registry {
	return w.registry
}

// Sink returns the receiver of skin warnings.
func (w *Wizard) Sink() *diag.Sink {
	return w.sink
}

// Animator returns the animator used by trigger actions.
func (w *Wizard) Animator() *trigger.Animator {
	return w.animator
}

// Zoom returns the current zoom factor.
func (w *Wizard) Zoom() float64 {
	return w.zoom
}

// SetZoom sets the base zoom factor.
func (w *Wizard) SetZoom(f float64) {
	if f > 0 {
		w.zoom = f
	}
}

// Variables returns the variable stack.
func (w *Wizard) Variables() *vars.Stack {
	return &w.vars
}

// SetScope selects a scope model for form lookups. The empty name selects
// the root model.
func (w *Wizard) SetScope(name string) error {
	if name == "" {
		w.scope = nil
		return nil
	}
	if w.model == nil {
		return ErrNotLoaded
	}
	sm := w.model.ScopeModel(name)
	if sm == nil {
		return fmt.Errorf("scope %q not found", name)
	}
	w.scope = sm
	return nil
}

func (w *Wizard) currentModel() *skin.Model {
	if w.scope != nil {
		return w.scope
	}
	return w.model
}

// PushOverlay registers a skin package merged into the skin at the next
// (re)load, after the overlays of the registry.
func (w *Wizard) PushOverlay(url string) {
	w.overlays = append(w.overlays, url)
}

// PopOverlay removes the most recent overlay.
func (w *Wizard) PopOverlay() {
	if len(w.overlays) > 0 {
		w.overlays = w.overlays[:len(w.overlays)-1]
	}
}

// OnReload registers a function called with the new model after every
// successful reload.
func (w *Wizard) OnReload(fn func(*skin.Model)) {
	w.onReload = append(w.onReload, fn)
}
