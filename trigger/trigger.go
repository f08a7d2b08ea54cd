package trigger

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/skinwiz/object"
)

// Kind distinguishes property triggers from event triggers.
type Kind uint8

// Kinds of triggers.
const (
	OnProperty Kind = iota
	OnEvent
)

// Actions is a list of actions shared between a trigger prototype and its
// clones.
type Actions struct {
	refs  int32
	items []Action
}

// Refs returns the number of triggers sharing the list.
func (a *Actions) Refs() int {
	return int(atomic.LoadInt32(&a.refs))
}

// Items returns the actions in declaration order.
func (a *Actions) Items() []Action {
	return a.items
}

// Trigger fires actions on a property value or an event.
type Trigger struct {
	Kind     Kind
	Property string // property to watch, for OnProperty
	Value    string // value to match, for OnProperty
	Event    string // message ID, for OnEvent

	actions *Actions
	target  object.Object
	subject object.Subject
	env     *Env
}

// NewPropertyTrigger creates a trigger firing when property takes value.
func NewPropertyTrigger(property, value string) *Trigger {
	return &Trigger{Kind: OnProperty, Property: property, Value: value, actions: &Actions{refs: 1}}
}

// NewEventTrigger creates a trigger firing on a named message.
func NewEventTrigger(event string) *Trigger {
	return &Trigger{Kind: OnEvent, Event: event, actions: &Actions{refs: 1}}
}

func (t *Trigger) String() string {
	if t.Kind == OnEvent {
		return fmt.Sprintf("trigger(on %s)", t.Event)
	}
	return fmt.Sprintf("trigger(%s=%s)", t.Property, t.Value)
}

// AddAction appends an action. Adding actions to a trigger changes all
// triggers sharing its actions.
func (t *Trigger) AddAction(a Action) {
	t.actions.items = append(t.actions.items, a)
}

// Actions returns the shared action list.
func (t *Trigger) Actions() *Actions {
	return t.actions
}

// Clone creates an inactive trigger sharing the actions of t.
func (t *Trigger) Clone() *Trigger {
	atomic.AddInt32(&t.actions.refs, 1)
	return &Trigger{
		Kind:     t.Kind,
		Property: t.Property,
		Value:    t.Value,
		Event:    t.Event,
		actions:  t.actions,
	}
}

// ErrNotSubject is returned when activating a trigger on an object which
// does not send messages.
var ErrNotSubject = errors.New("trigger target is not observable")

// Activate binds the trigger to a target object.
func (t *Trigger) Activate(target object.Object, env *Env) error {
	s, ok := target.(object.Subject)
	if !ok {
		return ErrNotSubject
	}
	t.Deactivate()
	t.target, t.subject, t.env = target, s, env
	s.AddObserver(t)
	tracer().Debugf("%s activated", t)
	return nil
}

// Deactivate unbinds the trigger from its target and releases the shared
// actions.
func (t *Trigger) Deactivate() {
	if t.subject == nil {
		return
	}
	t.subject.RemoveObserver(t)
	t.subject, t.target, t.env = nil, nil, nil
}

// Release drops the reference of t on its actions.
func (t *Trigger) Release() {
	t.Deactivate()
	atomic.AddInt32(&t.actions.refs, -1)
}

// IsActive is true if the trigger is bound to a target.
func (t *Trigger) IsActive() bool {
	return t.subject != nil
}

// Notify is part of interface object.Observer.
func (t *Trigger) Notify(subject object.Subject, msg object.Message) {
	if t.target == nil {
		return
	}
	switch t.Kind {
	case OnProperty:
		if msg.ID != object.MsgPropertyChanged || msg.Property != t.Property {
			return
		}
		if fmt.Sprint(msg.Value) != t.Value {
			return
		}
	case OnEvent:
		if msg.ID != t.Event {
			return
		}
	}
	t.Fire()
}

// Fire executes the actions in declaration order.
func (t *Trigger) Fire() {
	tracer().Debugf("%s fires %d actions", t, len(t.actions.items))
	for _, a := range t.actions.items {
		a.Execute(t.target, t.env)
	}
}
