package skin

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/npillmayer/skinwiz/attrs"
)

// Member declares an attribute of an element kind.
type Member struct {
	Name string
	Type string // "string", "int", "float", "bool", "rect", "size", "color", "options", "url", …
	Enum string // enumeration for options
}

// MetaElement describes a kind of element.
type MetaElement struct {
	Name         string
	Parent       *MetaElement
	Abstract     bool
	New          func() Element // nil for abstract kinds
	Members      []Member
	ChildGroup   string   // schema group children must belong to; empty accepts all
	SchemaGroups []string // schema groups of this kind
}

func (m *MetaElement) String() string {
	return m.Name
}

// CanCast is true if m is meta or derives from it.
func (m *MetaElement) CanCast(meta *MetaElement) bool {
	if meta == nil {
		return true
	}
	for x := m; x != nil; x = x.Parent {
		if x == meta {
			return true
		}
	}
	return false
}

// AllMembers returns the declared members of m and its ancestors, ancestors
// first.
func (m *MetaElement) AllMembers() []Member {
	if m == nil {
		return nil
	}
	return append(m.Parent.AllMembers(), m.Members...)
}

// InGroup checks membership in a schema group, including inherited groups.
func (m *MetaElement) InGroup(group string) bool {
	for x := m; x != nil; x = x.Parent {
		for _, g := range x.SchemaGroups {
			if strings.EqualFold(g, group) {
				return true
			}
		}
	}
	return false
}

// Accepts checks if an element of kind child may be a child of kind m.
func (m *MetaElement) Accepts(child *MetaElement) bool {
	for x := m; x != nil; x = x.Parent {
		if x.ChildGroup != "" {
			return child.InGroup(x.ChildGroup)
		}
	}
	return true
}

// Enumeration is a named table of option definitions. Enumerations may
// extend a parent enumeration.
type Enumeration struct {
	Name      string
	Parent    *Enumeration
	Defs      []attrs.StyleDef
	Exclusive bool
}

// All returns the definitions of e and its ancestors, ancestors first.
func (e *Enumeration) All() []attrs.StyleDef {
	if e == nil {
		return nil
	}
	return append(e.Parent.All(), e.Defs...)
}

// --- Library ---------------------------------------------------------------

// Library is a registry of element kinds and enumerations.
type Library struct {
	mu    sync.RWMutex
	metas map[string]*MetaElement
	order []*MetaElement
	enums map[string]*Enumeration
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{
		metas: make(map[string]*MetaElement),
		enums: make(map[string]*Enumeration),
	}
}

// DefaultLibrary creates a library containing all built-in element kinds.
func DefaultLibrary() *Library {
	lib := NewLibrary()
	if err := RegisterBuiltins(lib); err != nil {
		panic(err) // built-in kinds are unique
	}
	return lib
}

// Register adds an element kind. Every kind may be registered once.
func (lib *Library) Register(m *MetaElement) error {
	key := strings.ToLower(m.Name)
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if _, dup := lib.metas[key]; dup {
		return fmt.Errorf("element kind %q registered twice", m.Name)
	}
	if !m.Abstract && m.New == nil {
		return fmt.Errorf("element kind %q has no constructor", m.Name)
	}
	lib.metas[key] = m
	lib.order = append(lib.order, m)
	return nil
}

// Lookup finds an element kind by tag name, ignoring case.
func (lib *Library) Lookup(tag string) (*MetaElement, bool) {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	m, ok := lib.metas[strings.ToLower(tag)]
	return m, ok
}

// New creates an element for a tag name. Abstract and unknown kinds
// return false.
func (lib *Library) New(tag string) (Element, bool) {
	m, ok := lib.Lookup(tag)
	if !ok || m.Abstract {
		return nil, false
	}
	e := m.New()
	if e.Base().node == nil {
		e.Base().Init(e)
	}
	return e, true
}

// Metas returns all registered kinds in order of registration.
func (lib *Library) Metas() []*MetaElement {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return append([]*MetaElement(nil), lib.order...)
}

// DerivedFrom returns all registered kinds deriving from m, sorted by name.
func (lib *Library) DerivedFrom(m *MetaElement) []*MetaElement {
	var r []*MetaElement
	for _, x := range lib.Metas() {
		if x != m && x.CanCast(m) {
			r = append(r, x)
		}
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Name < r[j].Name })
	return r
}

// RegisterEnumeration adds an enumeration.
func (lib *Library) RegisterEnumeration(e *Enumeration) error {
	key := strings.ToLower(e.Name)
	lib.mu.Lock()
	defer lib.mu.Unlock()
	if _, dup := lib.enums[key]; dup {
		return fmt.Errorf("enumeration %q registered twice", e.Name)
	}
	lib.enums[key] = e
	return nil
}

// Enumeration finds an enumeration by name.
func (lib *Library) Enumeration(name string) *Enumeration {
	lib.mu.RLock()
	defer lib.mu.RUnlock()
	return lib.enums[strings.ToLower(name)]
}
