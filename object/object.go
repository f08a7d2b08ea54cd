package object

import (
	"fmt"
	"sync"
)

// Object has named properties.
type Object interface {
	Property(name string) (interface{}, bool)
	SetProperty(name string, value interface{}) bool
}

// Invoker is an object with methods.
type Invoker interface {
	Invoke(method string, args ...interface{}) (interface{}, error)
}

// Container is an object with named child objects.
type Container interface {
	Child(name string) Object
}

// Parented is an object which knows its parent.
type Parented interface {
	ParentObject() Object
}

// ParameterHolder is an object exposing parameters.
type ParameterHolder interface {
	Parameter(name string) *Parameter
}

// --- Messages --------------------------------------------------------------

// Message IDs sent by objects.
const (
	MsgChanged         = "changed"         // a parameter changed its value
	MsgPropertyChanged = "propertyChanged" // a property changed, Property is set
	MsgDestroyed       = "destroyed"       // the subject is going away
)

// Message is sent from subjects to observers.
type Message struct {
	ID       string
	Property string
	Value    interface{}
}

func (m Message) String() string {
	if m.Property == "" {
		return m.ID
	}
	return fmt.Sprintf("%s(%s=%v)", m.ID, m.Property, m.Value)
}

// Observer receives messages of subjects.
type Observer interface {
	Notify(subject Subject, msg Message)
}

// ObserverFunc adapts a function to interface Observer. As functions are
// not comparable, an ObserverFunc must be registered as a pointer to be
// removable.
type ObserverFunc func(subject Subject, msg Message)

// Notify calls f.
func (f *ObserverFunc) Notify(subject Subject, msg Message) {
	(*f)(subject, msg)
}

// Subject is an object observers may subscribe to.
type Subject interface {
	AddObserver(o Observer)
	RemoveObserver(o Observer)
}

// Signals implements the observer list of a subject. It is meant to be
// embedded. Observers are notified in order of registration.
type Signals struct {
	mu        sync.Mutex
	observers []Observer
}

// AddObserver registers o. Registering an observer twice has no effect.
func (s *Signals) AddObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, x := range s.observers {
		if x == o {
			return
		}
	}
	s.observers = append(s.observers, o)
}

// RemoveObserver unregisters o.
func (s *Signals) RemoveObserver(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, x := range s.observers {
		if x == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of registered observers.
func (s *Signals) ObserverCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observers)
}

// Signal sends msg to all observers. Observers may unregister while being
// notified.
func (s *Signals) Signal(subject Subject, msg Message) {
	s.mu.Lock()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()
	for _, o := range observers {
		o.Notify(subject, msg)
	}
}

// --- Parameters ------------------------------------------------------------

// Parameter is an observable value of a controller.
type Parameter struct {
	Signals
	name  string
	value interface{}
}

// NewParameter creates a parameter with an initial value.
func NewParameter(name string, value interface{}) *Parameter {
	return &Parameter{name: name, value: value}
}

// Name returns the parameter's name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the current value.
func (p *Parameter) Value() interface{} {
	return p.value
}

// SetValue changes the value and signals MsgChanged if it differs.
func (p *Parameter) SetValue(v interface{}) {
	if p.value == v {
		return
	}
	p.value = v
	p.Signal(p, Message{ID: MsgChanged, Property: p.name, Value: v})
}

// Property is part of interface Object: "value" and "name" are properties
// of a parameter.
func (p *Parameter) Property(name string) (interface{}, bool) {
	switch name {
	case "value":
		return p.value, true
	case "name":
		return p.name, true
	}
	return nil, false
}

// SetProperty sets the "value" property.
func (p *Parameter) SetProperty(name string, value interface{}) bool {
	if name != "value" {
		return false
	}
	p.SetValue(value)
	return true
}

func (p *Parameter) String() string {
	return fmt.Sprintf("%v", p.value)
}
