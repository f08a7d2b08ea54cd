package diag

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSinkDisabled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.diag")
	defer teardown()
	//
	s := &Sink{}
	s.Record(true)
	s.Warn(Origin{File: "skin.xml", Line: 3}, "unknown style %q", "x")
	if s.Count() != 0 || len(s.Warnings()) != 0 {
		t.Errorf("expected disabled sink to drop warnings, has %d", s.Count())
	}
	var nilSink *Sink
	nilSink.Warn(Origin{}, "nothing") // must not panic
}

func TestSinkBreakOnWarning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.diag")
	defer teardown()
	//
	s := NewSink()
	s.Record(true)
	var handled, broken int
	s.Handler = func(Warning) { handled++ }
	s.Break = func(Warning) { broken++ }
	s.Warn(Origin{File: "a.xml", Line: 1}, "first")
	s.BreakOnWarning = true
	s.Warn(Origin{File: "a.xml", Line: 2}, "second")
	if handled != 2 || broken != 1 {
		t.Errorf("expected 2 handled and 1 break, have %d and %d", handled, broken)
	}
	w := s.Warnings()
	if len(w) != 2 || w[1].String() != "a.xml:2: second" {
		t.Errorf("expected second warning to read 'a.xml:2: second', is %v", w)
	}
}

func TestConfigure(t *testing.T) {
	conf := testconfig.Conf{
		"skin.warnings":       false,
		"skin.breakonwarning": true,
	}
	s := NewSink()
	Configure(s, conf)
	if s.Enabled || !s.BreakOnWarning {
		t.Errorf("expected configuration to disable warnings and enable breaks, is %v/%v",
			s.Enabled, s.BreakOnWarning)
	}
}
