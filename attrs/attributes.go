package attrs

import (
	"errors"
	"strings"
)

// ErrReadOnly is returned when trying to modify read-only attributes.
var ErrReadOnly = errors.New("attributes are read-only")

// Attributes is the contract of an attribute store.
type Attributes interface {
	String(name string) string
	SetString(name, value string) error
	Count() int
	NameAt(i int) string
	StringAt(i int) string
}

// Exists checks if an attribute is present, even if it is empty.
func Exists(a Attributes, name string) bool {
	if a == nil {
		return false
	}
	if h, ok := a.(interface{ Has(string) bool }); ok {
		return h.Has(name)
	}
	for i := 0; i < a.Count(); i++ {
		if strings.EqualFold(a.NameAt(i), name) {
			return true
		}
	}
	return false
}

// Get returns an attribute as a Value.
func Get(a Attributes, name string) Value {
	if a == nil {
		return NullValue
	}
	return Value(a.String(name))
}

// CopyAll copies every attribute of src to dst.
func CopyAll(dst, src Attributes) error {
	for i := 0; i < src.Count(); i++ {
		if err := dst.SetString(src.NameAt(i), src.StringAt(i)); err != nil {
			return err
		}
	}
	return nil
}

// --- Mutable ---------------------------------------------------------------

type entry struct {
	name  string
	value string
}

// Mutable is an ordered attribute store. Names are matched
// case-insensitively unless CaseSensitive is set.
type Mutable struct {
	CaseSensitive bool
	entries       []entry
}

// NewMutable creates a store, optionally pre-filled with name/value pairs.
// A trailing name without value is ignored.
func NewMutable(pairs ...string) *Mutable {
	m := &Mutable{}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Set(pairs[i], pairs[i+1])
	}
	return m
}

func (m *Mutable) match(a, b string) bool {
	if m.CaseSensitive {
		return a == b
	}
	return strings.EqualFold(a, b)
}

func (m *Mutable) find(name string) int {
	for i, e := range m.entries {
		if m.match(e.name, name) {
			return i
		}
	}
	return -1
}

// Has is true if the attribute exists.
func (m *Mutable) Has(name string) bool {
	return m.find(name) >= 0
}

func (m *Mutable) String(name string) string {
	if i := m.find(name); i >= 0 {
		return m.entries[i].value
	}
	return ""
}

// Set sets an attribute, replacing an existing value in place.
func (m *Mutable) Set(name, value string) {
	if i := m.find(name); i >= 0 {
		m.entries[i].value = value
		return
	}
	m.entries = append(m.entries, entry{name: name, value: value})
}

// SetString is part of interface Attributes. It never fails.
func (m *Mutable) SetString(name, value string) error {
	m.Set(name, value)
	return nil
}

// Remove deletes an attribute. It reports whether the attribute existed.
func (m *Mutable) Remove(name string) bool {
	i := m.find(name)
	if i < 0 {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return true
}

func (m *Mutable) Count() int {
	return len(m.entries)
}

func (m *Mutable) NameAt(i int) string {
	if i < 0 || i >= len(m.entries) {
		return ""
	}
	return m.entries[i].name
}

func (m *Mutable) StringAt(i int) string {
	if i < 0 || i >= len(m.entries) {
		return ""
	}
	return m.entries[i].value
}

// Names returns the attribute names in insertion order.
func (m *Mutable) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.name
	}
	return names
}

// Copy returns an independent copy of m.
func (m *Mutable) Copy() *Mutable {
	c := &Mutable{CaseSensitive: m.CaseSensitive}
	c.entries = append([]entry(nil), m.entries...)
	return c
}

// --- Resolved --------------------------------------------------------------

// Resolver substitutes variable references in strings.
type Resolver interface {
	ResolveString(s string) string
}

// ResolverFunc adapts a function to interface Resolver.
type ResolverFunc func(string) string

// ResolveString calls f(s).
func (f ResolverFunc) ResolveString(s string) string {
	return f(s)
}

// Resolved is a read-only view on an attribute store which substitutes
// variables in every value it returns.
type Resolved struct {
	attrs    Attributes
	resolver Resolver
}

// NewResolved decorates a with resolver r.
func NewResolved(a Attributes, r Resolver) *Resolved {
	return &Resolved{attrs: a, resolver: r}
}

func (r *Resolved) resolve(s string) string {
	if r.resolver == nil || s == "" {
		return s
	}
	return r.resolver.ResolveString(s)
}

// Has is true if the underlying store has the attribute.
func (r *Resolved) Has(name string) bool {
	return Exists(r.attrs, name)
}

func (r *Resolved) String(name string) string {
	return r.resolve(r.attrs.String(name))
}

// SetString always fails with ErrReadOnly.
func (r *Resolved) SetString(name, value string) error {
	tracer().Errorf("attempt to set attribute %q on resolved attributes", name)
	return ErrReadOnly
}

func (r *Resolved) Count() int {
	return r.attrs.Count()
}

func (r *Resolved) NameAt(i int) string {
	return r.attrs.NameAt(i)
}

func (r *Resolved) StringAt(i int) string {
	return r.resolve(r.attrs.StringAt(i))
}
