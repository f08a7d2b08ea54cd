package view

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/style"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/stretchr/testify/assert"
)

type closer struct{ closed *int }

func (c closer) Close() error {
	*c.closed++
	return nil
}

func TestViewTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.view")
	defer teardown()
	//
	form := New("Form", "Main")
	row := New("Horizontal", "")
	ok, cancel := New("Button", "ok"), New("Button", "cancel")
	form.AddView(row)
	row.AddView(ok)
	row.AddView(cancel)
	if form.Find("cancel") != cancel {
		t.Errorf("expected to find cancel button")
	}
	if cancel.ParentView() != row || row.ViewAt(1) != cancel {
		t.Errorf("expected cancel to be second child of row")
	}
	assert.Equal(t, 4, form.Count())
	if object.Lookup(ok, "../cancel") != cancel {
		t.Errorf("expected object path ../cancel to resolve from ok")
	}
	row.RemoveView(ok)
	assert.Equal(t, 1, len(row.Views()))
}

func TestDestroyReleasesResources(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.view")
	defer teardown()
	//
	var closed int
	alias := style.NewAlias("$s", style.New("a"))
	form := New("Form", "f")
	child := New("Label", "l")
	form.AddView(child)
	child.SetStyleAlias(alias)
	child.Retain(closer{&closed})
	form.Retain(closer{&closed})
	assert.Equal(t, 1, alias.ClientCount())
	form.Destroy()
	assert.Equal(t, 2, closed)
	assert.Equal(t, 0, alias.ClientCount())
	assert.True(t, child.IsDestroyed())
}

func TestStyleTriggersOnView(t *testing.T) {
	s := style.New("btn")
	proto := trigger.NewEventTrigger("click")
	proto.AddAction(&trigger.PropertySetter{Property: "pressed", Value: true})
	s.AddTrigger(proto)
	v := New("Button", "b")
	v.SetStyle(s)
	v.ActivateTriggers(&trigger.Env{})
	v.Signal(v, object.Message{ID: "click"})
	p, _ := v.Property("pressed")
	assert.Equal(t, true, p)
	v.Destroy()
	assert.Equal(t, 1, proto.Actions().Refs())
}

func TestAliasNotifiesView(t *testing.T) {
	alias := style.NewAlias("$s", style.New("a"))
	v := New("View", "v")
	v.SetStyleAlias(alias)
	var changed int
	obs := object.ObserverFunc(func(s object.Subject, m object.Message) {
		if m.Property == "style" {
			changed++
		}
	})
	v.AddObserver(&obs)
	alias.SetStyle(style.New("b"))
	assert.Equal(t, 1, changed)
	assert.Equal(t, "b", v.Style().Name)
}
