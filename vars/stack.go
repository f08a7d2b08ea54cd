package vars

import (
	"fmt"
	"strconv"
	"strings"
)

// Prefix starts every variable name.
const Prefix = "$"

// ThemePrefix starts references to theme metrics.
const ThemePrefix = "$Theme."

// Variable is a named value. Values are strings, numbers or shared objects,
// such as a style alias.
type Variable struct {
	Name  string
	Value interface{}
}

// String formats the value of a variable for substitution.
func (v *Variable) String() string {
	return Format(v.Value)
}

// Format converts a variable value to its textual form.
func Format(value interface{}) string {
	switch x := value.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case fmt.Stringer:
		return x.String()
	}
	return fmt.Sprint(value)
}

// Normalize prepends the variable prefix if it is missing.
func Normalize(name string) string {
	if strings.HasPrefix(name, Prefix) {
		return name
	}
	return Prefix + name
}

// Theme provides named metrics for $Theme.<metric> references.
type Theme interface {
	Metric(name string) (float64, bool)
}

// Stack is a stack of variable bindings. The zero value is ready to use.
type Stack struct {
	Theme Theme
	vars  []*Variable
}

// Push binds a new variable and returns it. The returned variable may be
// mutated in place, e.g. by a loop.
func (s *Stack) Push(name string, value interface{}) *Variable {
	v := &Variable{Name: Normalize(name), Value: value}
	s.vars = append(s.vars, v)
	tracer().Debugf("push %s = %v", v.Name, value)
	return v
}

// Pop removes the most recent binding.
func (s *Stack) Pop() {
	if len(s.vars) == 0 {
		tracer().Errorf("pop on empty variable stack")
		return
	}
	s.vars[len(s.vars)-1] = nil
	s.vars = s.vars[:len(s.vars)-1]
}

// Len returns the number of bindings.
func (s *Stack) Len() int {
	return len(s.vars)
}

// Truncate drops all bindings above depth n.
func (s *Stack) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	for i := n; i < len(s.vars); i++ {
		s.vars[i] = nil
	}
	if n < len(s.vars) {
		s.vars = s.vars[:n]
	}
}

// Scope marks the current depth and returns a function restoring it.
// Use it with defer:
//
//     defer stack.Scope()()
//
func (s *Stack) Scope() func() {
	n := len(s.vars)
	return func() {
		s.Truncate(n)
	}
}

// Lookup finds the most recent binding of name.
func (s *Stack) Lookup(name string) (*Variable, bool) {
	name = Normalize(name)
	for i := len(s.vars) - 1; i >= 0; i-- {
		if s.vars[i].Name == name {
			return s.vars[i], true
		}
	}
	return nil, false
}

// IsDefined is true if a binding for name exists.
func (s *Stack) IsDefined(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Object returns the value of a variable if ref is exactly a variable
// reference, like "$style".
func (s *Stack) Object(ref string) (interface{}, bool) {
	ref = strings.TrimSpace(ref)
	if !strings.HasPrefix(ref, Prefix) {
		return nil, false
	}
	if v, ok := s.Lookup(ref); ok {
		return v.Value, true
	}
	return nil, false
}

// Variables returns the bindings, oldest first.
func (s *Stack) Variables() []Variable {
	r := make([]Variable, len(s.vars))
	for i, v := range s.vars {
		r[i] = *v
	}
	return r
}

// Substitute replaces variable references in str by their values.
// At every occurrence of the prefix, the longest variable name matching the
// text wins; among bindings of the same name, the most recent one wins.
// References without binding are left untouched. A string without any
// reference is returned unchanged.
func (s *Stack) Substitute(str string) string {
	if !strings.Contains(str, Prefix) {
		return str
	}
	var b strings.Builder
	for i := 0; i < len(str); {
		if !strings.HasPrefix(str[i:], Prefix) {
			j := strings.Index(str[i:], Prefix)
			if j < 0 {
				j = len(str) - i
			}
			b.WriteString(str[i : i+j])
			i += j
			continue
		}
		rest := str[i:]
		if s.Theme != nil && strings.HasPrefix(rest, ThemePrefix) {
			n := identLen(rest[len(ThemePrefix):])
			metric := rest[len(ThemePrefix) : len(ThemePrefix)+n]
			if x, ok := s.Theme.Metric(metric); ok && n > 0 {
				b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
				i += len(ThemePrefix) + n
				continue
			}
		}
		if v := s.longestMatch(rest); v != nil {
			b.WriteString(v.String())
			i += len(v.Name)
			continue
		}
		b.WriteString(Prefix)
		i += len(Prefix)
	}
	return b.String()
}

func (s *Stack) longestMatch(text string) *Variable {
	var best *Variable
	for i := len(s.vars) - 1; i >= 0; i-- {
		v := s.vars[i]
		if strings.HasPrefix(text, v.Name) && (best == nil || len(v.Name) > len(best.Name)) {
			best = v
		}
	}
	return best
}

func identLen(s string) int {
	for i, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return i
		}
	}
	return len(s)
}
