package object

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const controllerJSON = `{
	"selected": 1,
	"title": "Main",
	"parameters": { "volume": 0.5 },
	"transport": {
		"playing": false,
		"position": { "seconds": 12 }
	}
}`

func TestFromJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.object")
	defer teardown()
	//
	root, err := FromJSON("app", []byte(controllerJSON))
	require.NoError(t, err)
	v, ok := root.Property("selected")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	v, _ = root.Property("volume")
	assert.Equal(t, 0.5, v)
	v, ok = GetProperty(root, "transport/position/seconds")
	assert.True(t, ok)
	assert.Equal(t, 12, v)
	_, err = FromJSON("x", []byte("[1,2"))
	assert.Error(t, err)
}

func TestPathLookup(t *testing.T) {
	root := NewNode("root")
	a, b := NewNode("a"), NewNode("b")
	root.AddChild(a).AddChild(b)
	b.SetProperty("x", 7)
	if Lookup(a, "../b") != b {
		t.Errorf("expected ../b from a to be b")
	}
	if Lookup(root, "a/missing") != nil {
		t.Errorf("expected missing child to resolve to nil")
	}
	v, ok := GetProperty(a, "../b/x")
	if !ok || v != 7 {
		t.Errorf("expected property ../b/x to be 7, is %v", v)
	}
	assert.True(t, SetProperty(root, "b/x", 8))
	v, _ = b.Property("x")
	assert.Equal(t, 8, v)
}

func TestObjectTable(t *testing.T) {
	root := NewNode("Application")
	sub := NewNode("Transport")
	root.AddChild(sub)
	sub.SetProperty("playing", true)
	table := NewTable()
	table.Register("Application", root)
	if table.Lookup("object://Application/Transport") != sub {
		t.Errorf("expected absolute path to resolve to Transport")
	}
	v, ok := table.Property("object://Application/Transport/playing")
	assert.True(t, ok)
	assert.Equal(t, true, v)
	assert.Nil(t, table.Lookup("object://Nope"))
	assert.True(t, IsAbsolute("object://x"))
}

func TestSignals(t *testing.T) {
	n := NewNode("c")
	p := n.AddParameter("level", 1)
	var msgs []Message
	obs := ObserverFunc(func(s Subject, m Message) { msgs = append(msgs, m) })
	n.AddObserver(&obs)
	p.AddObserver(&obs)
	n.SetProperty("level", 2)
	if len(msgs) != 2 || msgs[0].ID != MsgChanged || msgs[1].ID != MsgPropertyChanged {
		t.Errorf("expected changed + propertyChanged, have %v", msgs)
	}
	n.RemoveObserver(&obs)
	n.SetProperty("other", 1)
	if len(msgs) != 2 {
		t.Errorf("expected no message after RemoveObserver, have %v", msgs)
	}
	_, err := n.Invoke("nothing")
	assert.Error(t, err)
}
