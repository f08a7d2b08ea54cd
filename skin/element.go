package skin

import (
	"path"
	"sort"
	"strings"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/tree"
)

// Element is a node of a skin document.
type Element interface {
	Base() *ElementBase
	Meta() *MetaElement
	SetAttributes(a attrs.Attributes) bool // read typed state from attributes
	GetAttributes(a attrs.Attributes) bool // write typed state to attributes
	MergeElements(other Element) bool      // absorb a same-named element
}

// ElementBase carries the state common to all elements. Concrete element
// types embed it and call Init with themselves.
type ElementBase struct {
	node       *tree.Node[Element]
	name       string
	comment    string
	fileName   string
	lineNumber int
	text       string
	raw        *attrs.Mutable
	override   bool
	sorted     bool
	index      []Element // sorted by name, nil if stale
	bulk       int
}

// Init connects the base to the element embedding it. It must be called
// once, before the element is used.
func (b *ElementBase) Init(self Element) {
	b.node = tree.NewNode(self)
	b.raw = attrs.NewMutable()
}

// Base is part of interface Element.
func (b *ElementBase) Base() *ElementBase {
	return b
}

// Self returns the element embedding b.
func (b *ElementBase) Self() Element {
	return b.node.Payload
}

// Name returns the element's name, which may be empty.
func (b *ElementBase) Name() string {
	return b.name
}

// SetName renames the element.
func (b *ElementBase) SetName(name string) {
	b.name = name
	if p := b.Parent(); p != nil {
		p.Base().index = nil
	}
}

func (b *ElementBase) Comment() string           { return b.comment }
func (b *ElementBase) SetComment(comment string) { b.comment = comment }
func (b *ElementBase) FileName() string          { return b.fileName }
func (b *ElementBase) LineNumber() int           { return b.lineNumber }

// SetOrigin sets the source file provenance.
func (b *ElementBase) SetOrigin(fileName string, line int) {
	b.fileName, b.lineNumber = fileName, line
}

// Origin returns the provenance for diagnostics. Elements without own
// provenance report the origin of the nearest ancestor having one.
func (b *ElementBase) Origin() diag.Origin {
	for e := b; e != nil; {
		if e.fileName != "" {
			return diag.Origin{File: e.fileName, Line: e.lineNumber}
		}
		p := e.Parent()
		if p == nil {
			break
		}
		e = p.Base()
	}
	return diag.Origin{}
}

// Dir returns the folder of the element's source file.
func (b *ElementBase) Dir() string {
	o := b.Origin()
	if o.File == "" {
		return "."
	}
	return path.Dir(o.File)
}

// Text returns character data of the element.
func (b *ElementBase) Text() string {
	return b.text
}

// AppendText adds character data.
func (b *ElementBase) AppendText(s string) {
	if b.text != "" {
		b.text += " "
	}
	b.text += s
}

// Attributes returns the raw attributes as found in the document.
func (b *ElementBase) Attributes() *attrs.Mutable {
	return b.raw
}

// OverrideEnabled is true for elements marked to silently replace
// same-named elements.
func (b *ElementBase) OverrideEnabled() bool {
	return b.override
}

// SetOverride marks the element as override-enabled.
func (b *ElementBase) SetOverride(on bool) {
	b.override = on
}

// SetAttributes reads the attributes common to all elements.
func (b *ElementBase) SetAttributes(a attrs.Attributes) bool {
	if attrs.Exists(a, "name") {
		b.SetName(a.String("name"))
	}
	if c := a.String("comment"); c != "" {
		b.comment = c
	}
	b.override = attrs.Bool(a, "override", b.override)
	return true
}

// GetAttributes writes the raw attributes and then the attributes common
// to all elements.
func (b *ElementBase) GetAttributes(a attrs.Attributes) bool {
	if b.raw != nil && a != attrs.Attributes(b.raw) {
		_ = attrs.CopyAll(a, b.raw)
	}
	if b.name != "" {
		_ = a.SetString("name", b.name)
	}
	if b.comment != "" {
		_ = a.SetString("comment", b.comment)
	}
	if b.override {
		_ = attrs.SetBool(a, "override", true)
	}
	return true
}

// MergeElements declines merging by default.
func (b *ElementBase) MergeElements(other Element) bool {
	return false
}

// --- Tree operations -------------------------------------------------------

// Parent returns the enclosing element.
func (b *ElementBase) Parent() Element {
	if p := b.node.Parent(); p != nil {
		return p.Payload
	}
	return nil
}

// Count returns the number of children.
func (b *ElementBase) Count() int {
	return b.node.ChildCount()
}

// ChildAt returns the child at position i, or nil.
func (b *ElementBase) ChildAt(i int) Element {
	if ch, ok := b.node.Child(i); ok {
		return ch.Payload
	}
	return nil
}

// Children returns the children in document order.
func (b *ElementBase) Children() []Element {
	nodes := b.node.Children()
	r := make([]Element, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

// IndexOf returns the position of a child, or -1.
func (b *ElementBase) IndexOf(e Element) int {
	return b.node.IndexOfChild(e.Base().node)
}

// AddChild inserts e at position index; a negative index appends.
// e is removed from its previous parent.
func (b *ElementBase) AddChild(e Element, index int) {
	if index < 0 {
		b.node.AddChild(e.Base().node)
	} else {
		b.node.InsertChildAt(index, e.Base().node)
	}
	b.index = nil
}

// RemoveChild detaches a child.
func (b *ElementBase) RemoveChild(e Element) bool {
	if e.Base().node.Parent() != b.node {
		return false
	}
	e.Base().node.Isolate()
	b.index = nil
	return true
}

// ReplaceChild puts e at the position of old.
func (b *ElementBase) ReplaceChild(old, e Element) bool {
	ok := b.node.ReplaceChild(old.Base().node, e.Base().node)
	b.index = nil
	return ok
}

// SetSorted switches the secondary name index on or off.
func (b *ElementBase) SetSorted(on bool) {
	b.sorted = on
	b.index = nil
}

// IsSorted is true if name lookups use the sorted index.
func (b *ElementBase) IsSorted() bool {
	return b.sorted
}

// BeginBulk suspends maintenance of the sorted index until the returned
// function is called. Calls may nest.
//
//     defer e.Base().BeginBulk()()
//
func (b *ElementBase) BeginBulk() func() {
	b.bulk++
	return func() {
		if b.bulk > 0 {
			b.bulk--
		}
		b.index = nil
	}
}

func (b *ElementBase) sortedIndex() []Element {
	if b.index == nil {
		b.index = b.Children()
		sort.SliceStable(b.index, func(i, j int) bool {
			return b.index[i].Base().name < b.index[j].Base().name
		})
	}
	return b.index
}

// FindElement finds a child by name. It uses binary search on the sorted
// index if enabled, otherwise a linear scan.
func (b *ElementBase) FindElement(name string) Element {
	if name == "" {
		return nil
	}
	if b.sorted && b.bulk == 0 {
		idx := b.sortedIndex()
		i := sort.Search(len(idx), func(i int) bool { return idx[i].Base().name >= name })
		if i < len(idx) && idx[i].Base().name == name {
			return idx[i]
		}
		return nil
	}
	for _, ch := range b.Children() {
		if ch.Base().name == name {
			return ch
		}
	}
	return nil
}

// FindElementOfType finds a named child of a given kind (or a kind derived
// from it).
func (b *ElementBase) FindElementOfType(name string, meta *MetaElement) Element {
	for _, ch := range b.Children() {
		if ch.Base().name == name && ch.Meta().CanCast(meta) {
			return ch
		}
	}
	return nil
}

// FindChildOfType finds the first child of a given kind.
func (b *ElementBase) FindChildOfType(meta *MetaElement) Element {
	for _, ch := range b.Children() {
		if ch.Meta().CanCast(meta) {
			return ch
		}
	}
	return nil
}

// Path returns the names of the element and its ancestors, separated by '/'.
func (b *ElementBase) Path() string {
	var segs []string
	for e := Element(b.Self()); e != nil; e = e.Base().Parent() {
		n := e.Base().name
		if n == "" {
			n = e.Meta().Name
		}
		segs = append(segs, n)
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, "/")
}

// TakeElements moves all children of source into b. A child with the same
// non-empty name as an existing element is offered to the existing element
// for merging; if it declines, the child replaces it. Replacements are
// warned about unless the child is override-enabled.
func (b *ElementBase) TakeElements(source Element, sink *diag.Sink) {
	defer b.BeginBulk()()
	for _, ch := range source.Base().Children() {
		name := ch.Base().name
		existing := b.FindElement(name)
		if existing == nil {
			b.AddChild(ch, -1)
			continue
		}
		if existing.MergeElements(ch) {
			tracer().Debugf("element %q merged", name)
			ch.Base().node.Isolate()
			continue
		}
		if !ch.Base().OverrideEnabled() {
			sink.Warn(ch.Base().Origin(), "%s %q replaces element defined in %s",
				ch.Meta().Name, name, existing.Base().Origin())
		}
		b.ReplaceChild(existing, ch)
	}
}

// --- Helpers ---------------------------------------------------------------

// Clone deep-copies an element through its attribute contract. Source file
// provenance is not copied.
func Clone(e Element) Element {
	c := e.Meta().New()
	if c.Base().node == nil {
		c.Base().Init(c)
	}
	a := attrs.NewMutable()
	e.GetAttributes(a)
	c.SetAttributes(a)
	c.Base().raw = e.Base().raw.Copy()
	c.Base().text = e.Base().text
	c.Base().comment = e.Base().comment
	c.Base().sorted = e.Base().sorted
	sec, hasSections := c.(sectioned)
	for _, ch := range e.Base().Children() {
		if hasSections {
			if s := sec.Section(ch.Meta().Name); s != nil {
				s.Base().TakeElements(Clone(ch), nil)
				continue
			}
		}
		c.Base().AddChild(Clone(ch), -1)
	}
	return c
}

// Ancestor returns the nearest ancestor of e (excluding e) of a given kind.
func Ancestor(e Element, meta *MetaElement) Element {
	n, _ := tree.AncestorWith(e.Base().node, ofKind(meta))
	if n == nil {
		return nil
	}
	return n.Payload
}

// Descendants collects the elements below e which are of kind meta, in
// document order.
func Descendants(e Element, meta *MetaElement) []Element {
	nodes, _ := tree.DescendentsWith(e.Base().node, ofKind(meta))
	found := make([]Element, len(nodes))
	for i, n := range nodes {
		found[i] = n.Payload
	}
	return found
}

func ofKind(meta *MetaElement) tree.Predicate[Element] {
	return func(test, node *tree.Node[Element]) (*tree.Node[Element], error) {
		if test.Payload != nil && test.Payload.Meta().CanCast(meta) {
			return test, nil
		}
		return nil, nil
	}
}

// Walk visits e and its descendants top-down.
func Walk(e Element, visit func(e Element) error) error {
	return tree.TopDown(e.Base().node, func(n, parent *tree.Node[Element], pos int) error {
		return visit(n.Payload)
	})
}

// SkipChildren may be returned from a Walk visitor.
var SkipChildren = tree.SkipChildren
