package wizard

import (
	"fmt"
	"path"
	"strings"

	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/skin"
)

// session tracks the documents and packages resolved within one load.
type session struct {
	resolved map[string]bool
}

func newSession() *session {
	return &session{resolved: make(map[string]bool)}
}

// enter marks p as resolved. It returns false if p has been resolved
// before.
func (s *session) enter(p string) bool {
	p = path.Clean(p)
	if s.resolved[p] {
		return false
	}
	s.resolved[p] = true
	return true
}

// LoadSkin loads a skin package. url is a symbolic name ("@name"), a URL
// ("scheme://path") or a folder within the wizard's file system. If
// keepImages is set, decoded images of a previously loaded generation are
// reused. Images are decoded during loading only if loadAllImages is set.
func (w *Wizard) LoadSkin(url string, keepImages, loadAllImages bool) error {
	old := w.model
	w.skinID = w.fixedID
	w.session = newSession()
	defer func() { w.session = nil }()
	m, err := w.load(url, "")
	if err != nil {
		return err
	}
	w.applyOverlays(m)
	if keepImages && old != nil {
		m.ReuseResources(old)
	}
	if err := m.LoadResources(false, loadAllImages); err != nil {
		return err
	}
	w.url, w.loadAllImages = url, loadAllImages
	w.model, w.scope = m, nil
	w.registry.Register(w.skinID, m)
	tracer().Infof("skin %q loaded from %s", w.skinID, w.dir)
	return nil
}

// ReloadSkin loads the current skin again, for live editing. The registry
// is flagged as reloading meanwhile.
func (w *Wizard) ReloadSkin(keepImages bool) error {
	if w.url == "" {
		return ErrNotLoaded
	}
	w.registry.SetReloading(true)
	defer w.registry.SetReloading(false)
	scope := ""
	if w.scope != nil {
		scope = w.scope.Name()
	}
	if err := w.LoadSkin(w.url, keepImages, w.loadAllImages); err != nil {
		return err
	}
	if scope != "" {
		if err := w.SetScope(scope); err != nil {
			tracer().Infof("reload: %v", err)
		}
	}
	for _, fn := range w.onReload {
		fn(w.model)
	}
	return nil
}

// load locates and loads a package, expanding its imports and includes.
func (w *Wizard) load(ref, importerDir string) (*skin.Model, error) {
	dir, err := w.registry.Locate(ref, importerDir, w.fsys)
	if err != nil {
		return nil, err
	}
	return w.loadPackage(dir)
}

func (w *Wizard) loadPackage(dir string) (*skin.Model, error) {
	if w.skinID == "" {
		w.skinID = strings.TrimSuffix(path.Base(dir), ".skin")
	}
	w.dir = dir
	w.session.enter(dir)
	file := path.Join(dir, skin.FileName)
	w.session.enter(file)
	ctx := &skin.PackageContext{
		FS:      w.fsys,
		Root:    dir,
		ID:      w.skinID,
		Strings: w.strings,
		Metrics: w.theme,
		Diag:    w.sink,
		Lib:     w.lib,
	}
	f, err := w.fsys.Open(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, skin.ErrNoSkinFile)
	}
	defer f.Close()
	m, err := skin.ParseModel(f, file, ctx)
	if err != nil {
		return nil, err
	}
	m.SetSortedSections(w.sorted)
	w.expand(m, m)
	return m, nil
}

// expand resolves the imports of doc and merges its includes into target,
// or into scope models of target.
func (w *Wizard) expand(doc, target *skin.Model) {
	w.loadImports(doc)
	w.loadIncludes(doc, target)
}

// loadImports loads imported packages with nested wizards, in document
// order, and merges them into doc.
func (w *Wizard) loadImports(doc *skin.Model) {
	for _, e := range doc.Imports().Children() {
		imp, ok := e.(*skin.Import)
		if !ok {
			continue
		}
		w.importPackage(doc, imp.URL, imp.Dir(), imp.Origin())
	}
}

func (w *Wizard) importPackage(doc *skin.Model, ref, importerDir string, origin diag.Origin) {
	dir, err := w.registry.Locate(ref, importerDir, w.fsys)
	if err != nil {
		w.sink.Warn(origin, "import %q: %v", ref, err)
		return
	}
	if w.session.resolved[path.Clean(dir)] {
		w.sink.Warn(origin, "crosswise include/import of %q skipped", ref)
		return
	}
	n := w.nested()
	n.skinID = w.skinID
	imported, err := n.loadPackage(dir)
	if err != nil {
		w.sink.Warn(origin, "import %q: %v", ref, err)
		return
	}
	doc.Merge(imported)
	doc.AddImportedPath(dir)
	tracer().Debugf("imported %s", dir)
}

// loadIncludes parses the included fragments of doc, in document order,
// and merges them into target or a scope of target.
func (w *Wizard) loadIncludes(doc, target *skin.Model) {
	for _, e := range doc.Includes().Children() {
		inc, ok := e.(*skin.Include)
		if !ok {
			continue
		}
		w.include(doc, target, inc)
	}
}

func (w *Wizard) include(doc, target *skin.Model, inc *skin.Include) {
	if inc.URL == "" {
		w.sink.Warn(inc.Origin(), "include without url")
		return
	}
	frag, err := doc.ParseFile(inc.Dir(), inc.URL)
	if err != nil {
		w.sink.Warn(inc.Origin(), "include %q: %v", inc.URL, err)
		return
	}
	if !w.session.enter(frag.FileName()) {
		w.sink.Warn(inc.Origin(), "crosswise include/import of %q skipped", inc.URL)
		return
	}
	frag.SetSortedSections(w.sorted)
	dest := target
	if inc.Scope != "" {
		dest = target.AddScopeModel(inc.Scope)
	}
	w.expand(frag, dest)
	dest.Merge(frag)
	tracer().Debugf("included %s", frag.FileName())
}

// applyOverlays imports the overlays registered for the skin, then the
// overlays pushed to the wizard.
func (w *Wizard) applyOverlays(m *skin.Model) {
	refs := append(w.registry.Overlays(w.skinID), w.overlays...)
	for _, ref := range refs {
		w.importPackage(m, ref, w.dir, diag.Origin{File: "overlay " + ref})
	}
}
