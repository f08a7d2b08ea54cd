package expr

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

type testEnv map[string]interface{}

func (e testEnv) Value(name string) (interface{}, bool) {
	v, ok := e[name]
	return v, ok
}

func (e testEnv) Substitute(s string) string {
	for k, v := range e {
		if str, ok := v.(string); ok {
			s = strings.ReplaceAll(s, k, str)
		}
	}
	return s
}

func (e testEnv) Property(path string) (interface{}, bool) {
	if path == "volume" {
		return 0.75, true
	}
	return nil, false
}

type theme map[string]float64

func (t theme) Metric(name string) (float64, bool) {
	x, ok := t[name]
	return x, ok
}

func TestEvaluateBindsVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.expr")
	defer teardown()
	//
	env := testEnv{"$w": "10", "$n": 3}
	s, err := EvaluateString("$w * 2 + $n", env, nil)
	assert.NoError(t, err)
	assert.Equal(t, "23", s)
	s, err = EvaluateString("$w / 4", env, nil)
	assert.NoError(t, err)
	assert.Equal(t, "2.5", s)
	s, err = EvaluateString("max($w, $Theme.margin) - min(1, 2)", env, theme{"margin": 12})
	assert.NoError(t, err)
	assert.Equal(t, "11", s)
	_, err = EvaluateString("$undefined + 1", env, nil)
	assert.Error(t, err)
	_, err = Evaluate("  ", env, nil)
	if !errors.Is(err, ErrEmptyExpression) {
		t.Errorf("expected ErrEmptyExpression, is %v", err)
	}
}

func TestDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.expr")
	defer teardown()
	//
	env := testEnv{"$sel": "1", "$name": "big"}
	cases := []struct {
		in, out string
		kind    Kind
	}{
		{"@select:$sel:small,$name,huge", "big", Select},
		{"@select:$sel:only", "", Select},
		{"@property:volume", "0.75", Property},
		{"@property:nothing", "", Property},
		{"@eval:1 + 2", "3", Eval},
		{"plain $name", "plain big", Literal},
	}
	for _, c := range cases {
		d := Parse(c.in)
		if d.Kind != c.kind {
			t.Errorf("expected %q to be a %v directive, is %v", c.in, c.kind, d.Kind)
		}
		out, err := d.Resolve(env, nil)
		assert.NoError(t, err, c.in)
		assert.Equal(t, c.out, out, c.in)
	}
}
