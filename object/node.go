package object

import (
	"fmt"
	"sort"
)

// Method is the signature of methods of generic controllers.
type Method func(args ...interface{}) (interface{}, error)

// Node is a generic controller. It has properties, parameters, methods and
// named child controllers.
type Node struct {
	Signals
	name     string
	parent   *Node
	children []*Node
	props    map[string]interface{}
	params   map[string]*Parameter
	methods  map[string]Method
}

// NewNode creates an empty controller.
func NewNode(name string) *Node {
	return &Node{
		name:    name,
		props:   make(map[string]interface{}),
		params:  make(map[string]*Parameter),
		methods: make(map[string]Method),
	}
}

// Name returns the controller's name.
func (n *Node) Name() string {
	return n.name
}

func (n *Node) String() string {
	return "controller " + n.name
}

// AddChild appends a child controller and returns n.
func (n *Node) AddChild(ch *Node) *Node {
	ch.parent = n
	n.children = append(n.children, ch)
	return n
}

// Children returns the child controllers.
func (n *Node) Children() []*Node {
	return n.children
}

// Child is part of interface Container.
func (n *Node) Child(name string) Object {
	for _, ch := range n.children {
		if ch.name == name {
			return ch
		}
	}
	return nil
}

// ParentObject is part of interface Parented.
func (n *Node) ParentObject() Object {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Property returns a property. Parameters are visible as properties with
// their current value.
func (n *Node) Property(name string) (interface{}, bool) {
	if v, ok := n.props[name]; ok {
		return v, true
	}
	if p, ok := n.params[name]; ok {
		return p.Value(), true
	}
	return nil, false
}

// SetProperty sets a property and signals MsgPropertyChanged. Setting a
// parameter's name sets the parameter's value.
func (n *Node) SetProperty(name string, value interface{}) bool {
	if p, ok := n.params[name]; ok {
		p.SetValue(value)
		n.Signal(n, Message{ID: MsgPropertyChanged, Property: name, Value: value})
		return true
	}
	if old, ok := n.props[name]; ok && old == value {
		return true
	}
	n.props[name] = value
	n.Signal(n, Message{ID: MsgPropertyChanged, Property: name, Value: value})
	return true
}

// PropertyNames returns the names of all properties, sorted.
func (n *Node) PropertyNames() []string {
	names := make([]string, 0, len(n.props))
	for k := range n.props {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// AddParameter creates a parameter.
func (n *Node) AddParameter(name string, value interface{}) *Parameter {
	p := NewParameter(name, value)
	n.params[name] = p
	return p
}

// Parameter is part of interface ParameterHolder.
func (n *Node) Parameter(name string) *Parameter {
	return n.params[name]
}

// AddMethod registers a method.
func (n *Node) AddMethod(name string, m Method) {
	n.methods[name] = m
}

// Invoke is part of interface Invoker.
func (n *Node) Invoke(method string, args ...interface{}) (interface{}, error) {
	m, ok := n.methods[method]
	if !ok {
		return nil, fmt.Errorf("controller %q has no method %q", n.name, method)
	}
	return m(args...)
}
