package object

import (
	"strings"
	"sync"
)

// Lookup resolves a slash-separated object path relative to start.
// ".." addresses the parent, "." and empty segments are ignored.
func Lookup(start Object, path string) Object {
	obj := start
	for _, seg := range strings.Split(path, "/") {
		if obj == nil {
			return nil
		}
		switch seg {
		case "", ".":
			continue
		case "..":
			p, ok := obj.(Parented)
			if !ok {
				return nil
			}
			obj = p.ParentObject()
		default:
			c, ok := obj.(Container)
			if !ok {
				return nil
			}
			obj = c.Child(seg)
		}
	}
	return obj
}

// SplitPath splits a property path into the object path and the name of
// the property, which is the last segment.
func SplitPath(path string) (objectPath, name string) {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}

// GetProperty reads a property addressed by path relative to start.
func GetProperty(start Object, path string) (interface{}, bool) {
	op, name := SplitPath(path)
	obj := Lookup(start, op)
	if obj == nil || name == "" {
		return nil, false
	}
	return obj.Property(name)
}

// SetProperty writes a property addressed by path relative to start.
func SetProperty(start Object, path string, value interface{}) bool {
	op, name := SplitPath(path)
	obj := Lookup(start, op)
	if obj == nil || name == "" {
		return false
	}
	return obj.SetProperty(name, value)
}

// FindParameter finds a parameter addressed by path relative to start.
func FindParameter(start Object, path string) *Parameter {
	op, name := SplitPath(path)
	h, ok := Lookup(start, op).(ParameterHolder)
	if !ok {
		return nil
	}
	return h.Parameter(name)
}

// --- Object table ----------------------------------------------------------

// IsAbsolute is true for paths of the form "proto://Root/path".
func IsAbsolute(path string) bool {
	return strings.Contains(path, "://")
}

// Table resolves absolute object paths "proto://Root/path". The scheme is
// not interpreted; Root names a registered object.
type Table struct {
	mu    sync.RWMutex
	roots map[string]Object
}

// NewTable creates an empty object table.
func NewTable() *Table {
	return &Table{roots: make(map[string]Object)}
}

// Register makes obj available as root name.
func (t *Table) Register(name string, obj Object) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.roots[name] = obj
}

// Unregister removes a root.
func (t *Table) Unregister(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.roots, name)
}

// Lookup resolves an absolute object path.
func (t *Table) Lookup(url string) Object {
	if t == nil {
		return nil
	}
	i := strings.Index(url, "://")
	if i < 0 {
		return nil
	}
	rest := url[i+3:]
	root, path := rest, ""
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		root, path = rest[:j], rest[j+1:]
	}
	t.mu.RLock()
	obj := t.roots[root]
	t.mu.RUnlock()
	if obj == nil {
		tracer().Debugf("object table has no root %q", root)
		return nil
	}
	return Lookup(obj, path)
}

// Property reads a property addressed by an absolute path.
func (t *Table) Property(url string) (interface{}, bool) {
	op, name := SplitPath(url)
	obj := t.Lookup(op)
	if obj == nil {
		return nil, false
	}
	return obj.Property(name)
}
