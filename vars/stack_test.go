package vars

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type metrics map[string]float64

func (m metrics) Metric(name string) (float64, bool) {
	x, ok := m[name]
	return x, ok
}

func TestLastBindingWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.vars")
	defer teardown()
	//
	s := &Stack{}
	s.Push("w", "10")
	s.Push("$w", 20)
	if v, _ := s.Lookup("$w"); v.String() != "20" {
		t.Errorf("expected inner binding of $w to win, is %v", v)
	}
	s.Pop()
	if v, _ := s.Lookup("w"); v.String() != "10" {
		t.Errorf("expected outer binding of $w after pop, is %v", v)
	}
}

func TestSubstitution(t *testing.T) {
	s := &Stack{Theme: metrics{"spacing": 4}}
	s.Push("$i", 2)
	s.Push("$item", "x")
	cases := map[string]string{
		"item$i":              "item2",
		"$item-$i":            "x-2",
		"$unknown":            "$unknown",
		"$Theme.spacing px":   "4 px",
		"$Theme.missing":      "$Theme.missing",
		"price $":             "price $",
		"no variables at all": "no variables at all",
	}
	for in, expected := range cases {
		if out := s.Substitute(in); out != expected {
			t.Errorf("expected %q to resolve to %q, is %q", in, expected, out)
		}
	}
}

func TestScopeGuard(t *testing.T) {
	s := &Stack{}
	s.Push("$a", 1)
	func() {
		defer s.Scope()()
		s.Push("$b", 2)
		s.Push("$c", 3)
	}()
	if s.Len() != 1 {
		t.Errorf("expected scope guard to restore depth 1, is %d", s.Len())
	}
	if s.IsDefined("$b") {
		t.Errorf("expected $b to be out of scope")
	}
}

func TestMutateInPlace(t *testing.T) {
	s := &Stack{}
	v := s.Push("$i", 0)
	var seen []string
	for i := 0; i < 3; i++ {
		v.Value = i
		seen = append(seen, s.Substitute("item$i"))
	}
	if seen[0] != "item0" || seen[2] != "item2" {
		t.Errorf("expected item0..item2, have %v", seen)
	}
	if obj, ok := s.Object(" $i "); !ok || obj != 2 {
		t.Errorf("expected object of $i to be 2, is %v", obj)
	}
}
