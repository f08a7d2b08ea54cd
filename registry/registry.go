package registry

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/skinwiz/skin"
)

// ErrNotFound is returned if a skin reference cannot be located.
var ErrNotFound = errors.New("skin package not found")

// PackageSuffix is appended to symbolic names when searching packages.
const PackageSuffix = ".skin"

// Registry holds loaded skins, overlays and search locations.
type Registry struct {
	mu        sync.RWMutex
	skins     map[string]*skin.Model
	order     []string
	overlays  map[string][]string
	search    []string
	dev       []string
	skinsDir  string
	appDir    string
	fwDir     string
	schemes   map[string]string
	reloading bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		skins:    make(map[string]*skin.Model),
		overlays: make(map[string][]string),
		schemes:  make(map[string]string),
	}
}

// Register adds a loaded skin under its ID, replacing a previous generation.
func (r *Registry) Register(id string, m *skin.Model) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skins[id]; !ok {
		r.order = append(r.order, id)
	}
	r.skins[id] = m
	tracer().Debugf("skin %q registered", id)
}

// Unregister removes a skin.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.skins[id]; !ok {
		return
	}
	delete(r.skins, id)
	for i, x := range r.order {
		if x == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Lookup finds a loaded skin.
func (r *Registry) Lookup(id string) (*skin.Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.skins[id]
	return m, ok
}

// Skins returns the IDs of all loaded skins in order of registration.
func (r *Registry) Skins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// AddOverlay registers a skin package to be imported into every skin
// loaded with the given ID.
func (r *Registry) AddOverlay(id, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.overlays[id] = append(r.overlays[id], url)
}

// RemoveOverlay removes an overlay registration.
func (r *Registry) RemoveOverlay(id, url string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	urls := r.overlays[id]
	for i, u := range urls {
		if u == url {
			r.overlays[id] = append(urls[:i], urls[i+1:]...)
			return
		}
	}
}

// Overlays returns the overlays registered for a skin.
func (r *Registry) Overlays(id string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.overlays[id]...)
}

// AddSearchLocation adds a folder searched for symbolic imports.
func (r *Registry) AddSearchLocation(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.search = appendUnique(r.search, clean(dir))
}

// AddDevLocation adds a developer override folder. Developer locations take
// precedence over all other locations.
func (r *Registry) AddDevLocation(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dev = appendUnique(r.dev, clean(dir))
}

// SetSkinsFolder sets the conventional folder of installed skins.
func (r *Registry) SetSkinsFolder(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skinsDir = clean(dir)
}

// SetAppResources sets the application's resource folder.
func (r *Registry) SetAppResources(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appDir = clean(dir)
}

// SetFrameworkResources sets the framework's resource folder.
func (r *Registry) SetFrameworkResources(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fwDir = clean(dir)
}

// MapScheme maps URLs of the form "scheme://path" to a folder.
func (r *Registry) MapScheme(scheme, root string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes[strings.ToLower(scheme)] = clean(root)
}

// SetReloading flags a skin reload in progress.
func (r *Registry) SetReloading(on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reloading = on
}

// IsReloading is true while a skin reload is in progress.
func (r *Registry) IsReloading() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.reloading
}

// SearchPaths returns the folders searched for symbolic imports from a
// package in importerDir, in order of precedence.
func (r *Registry) SearchPaths(importerDir string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var paths []string
	paths = appendUnique(paths, r.dev...)
	paths = appendUnique(paths, r.search...)
	for _, dir := range []string{r.skinsDir, clean(importerDir), r.appDir, r.fwDir} {
		if dir != "" {
			paths = appendUnique(paths, dir)
		}
	}
	return paths
}

// Locate resolves a skin reference to the folder of a skin package within
// fsys. References are symbolic ("@name"), URLs ("scheme://path") or paths
// relative to importerDir; a leading '/' makes a path absolute.
func (r *Registry) Locate(ref, importerDir string, fsys fs.FS) (string, error) {
	switch {
	case strings.HasPrefix(ref, "@"):
		name := ref[1:]
		for _, dir := range r.SearchPaths(importerDir) {
			for _, cand := range []string{path.Join(dir, name), path.Join(dir, name+PackageSuffix)} {
				if isPackage(fsys, cand) {
					tracer().Debugf("located %s at %s", ref, cand)
					return cand, nil
				}
			}
		}
		return "", fmt.Errorf("%s: %w", ref, ErrNotFound)
	case strings.Contains(ref, "://"):
		i := strings.Index(ref, "://")
		r.mu.RLock()
		root, ok := r.schemes[strings.ToLower(ref[:i])]
		r.mu.RUnlock()
		if !ok {
			return "", fmt.Errorf("%s: unknown scheme: %w", ref, ErrNotFound)
		}
		return checked(fsys, ref, path.Join(root, ref[i+3:]))
	case strings.HasPrefix(ref, "/"):
		return checked(fsys, ref, clean(ref))
	}
	return checked(fsys, ref, path.Join(clean(importerDir), ref))
}

func checked(fsys fs.FS, ref, dir string) (string, error) {
	if isPackage(fsys, dir) {
		return dir, nil
	}
	if isPackage(fsys, dir+PackageSuffix) {
		return dir + PackageSuffix, nil
	}
	return "", fmt.Errorf("%s: %w", ref, ErrNotFound)
}

func isPackage(fsys fs.FS, dir string) bool {
	_, err := fs.Stat(fsys, path.Join(dir, skin.FileName))
	return err == nil
}

// Configure applies configuration keys "skin.searchpaths", "skin.devpaths"
// (space separated lists), "skin.skinsfolder", "skin.appresources" and
// "skin.fwresources".
func (r *Registry) Configure(conf schuko.Configuration) {
	if conf == nil {
		return
	}
	for _, dir := range strings.Fields(conf.GetString("skin.searchpaths")) {
		r.AddSearchLocation(dir)
	}
	for _, dir := range strings.Fields(conf.GetString("skin.devpaths")) {
		r.AddDevLocation(dir)
	}
	if conf.IsSet("skin.skinsfolder") {
		r.SetSkinsFolder(conf.GetString("skin.skinsfolder"))
	}
	if conf.IsSet("skin.appresources") {
		r.SetAppResources(conf.GetString("skin.appresources"))
	}
	if conf.IsSet("skin.fwresources") {
		r.SetFrameworkResources(conf.GetString("skin.fwresources"))
	}
}

// clean converts a folder name to a path within a skin file system.
func clean(dir string) string {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return ""
	}
	return path.Clean(strings.TrimPrefix(dir, "/"))
}

func appendUnique(list []string, items ...string) []string {
outer:
	for _, item := range items {
		for _, x := range list {
			if x == item {
				continue outer
			}
		}
		list = append(list, item)
	}
	return list
}
