package trigger

import (
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
)

// Env is the environment actions execute in.
type Env struct {
	Sink       *diag.Sink
	Animator   *Animator
	Animations func(name string) *Animation // animations of the style
}

func (env *Env) warn(origin diag.Origin, format string, args ...interface{}) {
	if env == nil {
		return
	}
	env.Sink.Warn(origin, format, args...)
}

// Action is executed on a target object.
type Action interface {
	Execute(target object.Object, env *Env)
}

// resolve finds the object an action operates on. path may be empty, an
// object path relative to target, or a path starting with ".." to cross
// to a sibling controller.
func resolve(target object.Object, path string) object.Object {
	if path == "" {
		return target
	}
	return object.Lookup(target, path)
}

// PropertySetter sets a property of the target.
type PropertySetter struct {
	Target   string // optional object path
	Property string // property path
	Value    interface{}
	Origin   diag.Origin
}

// Execute is part of interface Action.
func (a *PropertySetter) Execute(target object.Object, env *Env) {
	obj := resolve(target, a.Target)
	if obj == nil || !object.SetProperty(obj, a.Property, a.Value) {
		env.warn(a.Origin, "property %q not found for trigger setter", a.Property)
		return
	}
	tracer().Debugf("trigger set %s = %v", a.Property, a.Value)
}

// ParameterSetter sets the value of a parameter of the target.
type ParameterSetter struct {
	Target string
	Name   string // parameter path
	Value  interface{}
	Origin diag.Origin
}

// Execute is part of interface Action.
func (a *ParameterSetter) Execute(target object.Object, env *Env) {
	obj := resolve(target, a.Target)
	var p *object.Parameter
	if obj != nil {
		p = object.FindParameter(obj, a.Name)
	}
	if p == nil {
		env.warn(a.Origin, "parameter %q not found for trigger", a.Name)
		return
	}
	p.SetValue(a.Value)
}

// MethodInvoker calls a method of the target.
type MethodInvoker struct {
	Target string
	Method string
	Args   []interface{}
	Origin diag.Origin
}

// Execute is part of interface Action.
func (a *MethodInvoker) Execute(target object.Object, env *Env) {
	inv, ok := resolve(target, a.Target).(object.Invoker)
	if !ok {
		env.warn(a.Origin, "cannot invoke %q: no target", a.Method)
		return
	}
	if _, err := inv.Invoke(a.Method, a.Args...); err != nil {
		env.warn(a.Origin, "invoke %q failed: %v", a.Method, err)
	}
}

// StartAnimation starts a named animation of the style on the target.
type StartAnimation struct {
	Animation string
	Origin    diag.Origin
}

// Execute is part of interface Action.
func (a *StartAnimation) Execute(target object.Object, env *Env) {
	if env == nil || env.Animator == nil || env.Animations == nil {
		tracer().Debugf("no animator to start %q", a.Animation)
		return
	}
	anim := env.Animations(a.Animation)
	if anim == nil {
		env.warn(a.Origin, "animation %q not found", a.Animation)
		return
	}
	env.Animator.Start(anim, target)
}

// StopAnimation stops a named animation on the target.
type StopAnimation struct {
	Animation string
	Origin    diag.Origin
}

// Execute is part of interface Action.
func (a *StopAnimation) Execute(target object.Object, env *Env) {
	if env == nil || env.Animator == nil {
		return
	}
	env.Animator.Stop(a.Animation, target)
}
