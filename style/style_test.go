package style

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/trigger"
	"github.com/stretchr/testify/assert"
)

func TestCascade(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.style")
	defer teardown()
	//
	base := New("Base")
	base.SetColor("TextColor", color.RGBA{1, 2, 3, 255})
	base.SetMetric("padding", 4)
	button := New("Button")
	button.Parent = base
	button.SetMetric("padding", 6)
	c, ok := button.Color("textcolor")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c)
	p, _ := button.Metric("padding")
	assert.Equal(t, 6.0, p)
	_, ok = button.Font("missing")
	assert.False(t, ok)
}

func TestApplyCSS(t *testing.T) {
	s := New("inline")
	err := s.ApplyCSS("color: #ff0000; margin: 4px; text-align: center")
	assert.NoError(t, err)
	c, _ := s.Color("color")
	assert.Equal(t, uint8(0xff), c.R)
	m, _ := s.Metric("margin")
	assert.Equal(t, 4.0, m)
	o, _ := s.Option("text-align")
	assert.Equal(t, "center", o)
	assert.NoError(t, s.ApplyCSS("padding: 2"))
	p, ok := s.Metric("padding")
	assert.True(t, ok, "single declaration without ';'")
	assert.Equal(t, 2.0, p)
}

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) StyleChanged(a *Alias) {
	*r.log = append(*r.log, r.name+":"+a.Style().Name)
}

func TestAliasFanOutOrder(t *testing.T) {
	var log []string
	a := NewAlias("$look", New("light"))
	r1, r2, r3 := &recorder{"v1", &log}, &recorder{"v2", &log}, &recorder{"v3", &log}
	a.AddClient(r1)
	a.AddClient(r2)
	a.AddClient(r3)
	a.AddClient(r2)
	a.RemoveClient(r1)
	a.SetStyle(New("dark"))
	if len(log) != 2 || log[0] != "v2:dark" || log[1] != "v3:dark" {
		t.Errorf("expected v2 then v3 to be notified of dark, have %v", log)
	}
}

func TestSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.style")
	defer teardown()
	//
	ctrl := object.NewNode("c")
	p := ctrl.AddParameter("mode", 0)
	styles := []*VisualStyle{New("off"), New("on")}
	sel := NewParameterSelector(p, styles, "$modeStyle")
	assert.Equal(t, "off", sel.Alias().Style().Name)
	p.SetValue(1)
	assert.Equal(t, "on", sel.Alias().Style().Name)
	p.SetValue(5)
	assert.Equal(t, "on", sel.Alias().Style().Name, "out of range keeps selection")
	_ = sel.Close()
	p.SetValue(0)
	assert.Equal(t, "on", sel.Alias().Style().Name, "closed selector does not follow")
	//
	ctrl.SetProperty("flag", true)
	psel := NewPropertySelector(ctrl, "flag", styles, "$flagStyle")
	assert.Equal(t, "on", psel.Alias().Style().Name)
	ctrl.SetProperty("flag", false)
	assert.Equal(t, "off", psel.Alias().Style().Name)
}

func TestApplyTriggers(t *testing.T) {
	s := New("btn")
	proto := trigger.NewPropertyTrigger("hover", "true")
	proto.AddAction(&trigger.PropertySetter{Property: "highlight", Value: 1})
	s.AddTrigger(proto)
	target := object.NewNode("v")
	active := s.ApplyTriggers(target, &trigger.Env{})
	assert.Len(t, active, 1)
	target.SetProperty("hover", true)
	h, _ := target.Property("highlight")
	assert.Equal(t, 1, h)
}
