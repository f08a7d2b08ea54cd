package skin

import (
	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/diag"
)

// Section is one of the fixed containers of a model. Sections with the same
// tag merge their children when documents are combined.
type Section struct {
	ElementBase
	meta *MetaElement
}

func newSection(meta *MetaElement) *Section {
	s := &Section{meta: meta}
	s.Init(s)
	return s
}

// Meta is part of interface Element.
func (s *Section) Meta() *MetaElement {
	return s.meta
}

// MergeElements absorbs the children of another section.
func (s *Section) MergeElements(other Element) bool {
	o, ok := other.(*Section)
	if !ok || o.meta != s.meta {
		return false
	}
	s.TakeElements(o, SinkOf(s))
	return true
}

// SinkOf returns the diagnostics sink of the model e belongs to.
func SinkOf(e Element) *diag.Sink {
	if m := ModelOf(e); m != nil {
		return m.sink()
	}
	return nil
}

// Include references an XML fragment of the same skin package. A scope
// name merges the fragment into a named sub-model.
type Include struct {
	ElementBase
	URL   string
	Scope string
}

// Meta is part of interface Element.
func (i *Include) Meta() *MetaElement { return MetaInclude }

// SetAttributes is part of interface Element.
func (i *Include) SetAttributes(a attrs.Attributes) bool {
	i.ElementBase.SetAttributes(a)
	i.URL = a.String("url")
	i.Scope = a.String("scope")
	return true
}

// GetAttributes is part of interface Element.
func (i *Include) GetAttributes(a attrs.Attributes) bool {
	i.ElementBase.GetAttributes(a)
	_ = a.SetString("url", i.URL)
	if i.Scope != "" {
		_ = a.SetString("scope", i.Scope)
	}
	return true
}

// Import references another skin package, by symbolic name ("@name"),
// absolute URL ("scheme://…") or path relative to the importing document.
type Import struct {
	ElementBase
	URL string
}

// Meta is part of interface Element.
func (i *Import) Meta() *MetaElement { return MetaImport }

// SetAttributes is part of interface Element.
func (i *Import) SetAttributes(a attrs.Attributes) bool {
	i.ElementBase.SetAttributes(a)
	i.URL = a.String("url")
	return true
}

// GetAttributes is part of interface Element.
func (i *Import) GetAttributes(a attrs.Attributes) bool {
	i.ElementBase.GetAttributes(a)
	_ = a.SetString("url", i.URL)
	return true
}
