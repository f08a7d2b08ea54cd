package trigger

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
	"github.com/stretchr/testify/assert"
)

func TestPropertyTriggerFires(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.trigger")
	defer teardown()
	//
	target := object.NewNode("button")
	proto := NewPropertyTrigger("state", "pressed")
	proto.AddAction(&PropertySetter{Property: "color", Value: "red"})
	tr := proto.Clone()
	if err := tr.Activate(target, &Env{}); err != nil {
		t.Fatal(err)
	}
	target.SetProperty("state", "normal")
	if _, ok := target.Property("color"); ok {
		t.Errorf("expected trigger not to fire for state=normal")
	}
	target.SetProperty("state", "pressed")
	if c, _ := target.Property("color"); c != "red" {
		t.Errorf("expected trigger to set color=red, is %v", c)
	}
	tr.Deactivate()
	assert.Equal(t, 0, target.ObserverCount())
}

func TestClonesShareActions(t *testing.T) {
	proto := NewEventTrigger("click")
	proto.AddAction(&MethodInvoker{Method: "toggle"})
	c1, c2 := proto.Clone(), proto.Clone()
	if c1.Actions() != proto.Actions() || c2.Actions() != proto.Actions() {
		t.Errorf("expected clones to share the action list")
	}
	assert.Equal(t, 3, proto.Actions().Refs())
	c1.Release()
	assert.Equal(t, 2, proto.Actions().Refs())
	var n1, n2 int
	a, b := object.NewNode("a"), object.NewNode("b")
	a.AddMethod("toggle", func(...interface{}) (interface{}, error) { n1++; return nil, nil })
	b.AddMethod("toggle", func(...interface{}) (interface{}, error) { n2++; return nil, nil })
	c1 = proto.Clone()
	_ = c1.Activate(a, nil)
	_ = c2.Activate(b, nil)
	a.Signal(a, object.Message{ID: "click"})
	a.Signal(a, object.Message{ID: "click"})
	b.Signal(b, object.Message{ID: "other"})
	if n1 != 2 || n2 != 0 {
		t.Errorf("expected only a to be toggled twice, counts are %d/%d", n1, n2)
	}
}

func TestUnresolvedTargetWarns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.trigger")
	defer teardown()
	//
	sink := diag.NewSink()
	target := object.NewNode("x")
	tr := NewEventTrigger("go")
	tr.AddAction(&ParameterSetter{Target: "../nothing", Name: "level", Value: 1})
	tr.AddAction(&PropertySetter{Target: "missing", Property: "p", Value: 1})
	_ = tr.Activate(target, &Env{Sink: sink})
	target.Signal(target, object.Message{ID: "go"})
	if sink.Count() != 2 {
		t.Errorf("expected 2 warnings for unresolved targets, have %d", sink.Count())
	}
}

func TestAnimator(t *testing.T) {
	target := object.NewNode("knob")
	anim := &Animation{Name: "fade", Property: "alpha", From: 0, To: 1, Duration: time.Second}
	an := NewAnimator()
	env := &Env{Animator: an, Animations: func(name string) *Animation {
		if name == "fade" {
			return anim
		}
		return nil
	}}
	(&StartAnimation{Animation: "fade"}).Execute(target, env)
	assert.Equal(t, 1, an.Running())
	an.Step(500 * time.Millisecond)
	v, _ := target.Property("alpha")
	assert.InDelta(t, 0.5, v, 1e-9)
	an.Step(600 * time.Millisecond)
	v, _ = target.Property("alpha")
	assert.Equal(t, 1.0, v)
	assert.Equal(t, 0, an.Running())
	//
	bounce := &Animation{Name: "b", Property: "y", From: 0, To: 10, Duration: time.Second,
		Reverse: true, Repeat: -1}
	y, done := bounce.ValueAt(1500 * time.Millisecond)
	assert.False(t, done)
	assert.InDelta(t, 5.0, y, 1e-9)
	an.Start(bounce, target)
	(&StopAnimation{Animation: "b"}).Execute(target, env)
	assert.Equal(t, 0, an.Running())
}
