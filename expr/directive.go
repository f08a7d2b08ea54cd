package expr

import (
	"strconv"
	"strings"
)

// Kind classifies a directive.
type Kind uint8

// Kinds of directives.
const (
	Literal  Kind = iota // plain string with variable substitution
	Property             // @property:path
	Select               // @select:$var:a,b,c
	Eval                 // @eval:expression
)

func (k Kind) String() string {
	switch k {
	case Property:
		return "@property"
	case Select:
		return "@select"
	case Eval:
		return "@eval"
	}
	return "literal"
}

// Directive is a parsed value.
type Directive struct {
	Kind    Kind
	Text    string   // literal text, property path or expression
	Var     string   // selector variable of @select
	Options []string // options of @select
}

// Parse reads a value. Strings not starting with a known directive are
// literals.
func Parse(s string) Directive {
	switch {
	case strings.HasPrefix(s, "@property:"):
		return Directive{Kind: Property, Text: strings.TrimSpace(s[len("@property:"):])}
	case strings.HasPrefix(s, "@eval:"):
		return Directive{Kind: Eval, Text: s[len("@eval:"):]}
	case strings.HasPrefix(s, "@select:"):
		rest := s[len("@select:"):]
		d := Directive{Kind: Select}
		if i := strings.IndexByte(rest, ':'); i >= 0 {
			d.Var = strings.TrimSpace(rest[:i])
			for _, opt := range strings.Split(rest[i+1:], ",") {
				d.Options = append(d.Options, strings.TrimSpace(opt))
			}
		} else {
			d.Var = strings.TrimSpace(rest)
		}
		return d
	}
	return Directive{Kind: Literal, Text: s}
}

// Env is the environment directives are evaluated in.
type Env interface {
	Variables
	Substitute(s string) string               // textual variable substitution
	Property(path string) (interface{}, bool) // controller property lookup
}

// Resolve evaluates a directive to a string. Unresolvable properties and
// out-of-range selections yield the empty string.
func (d Directive) Resolve(env Env, theme Theme) (string, error) {
	switch d.Kind {
	case Property:
		path := env.Substitute(d.Text)
		v, ok := env.Property(path)
		if !ok {
			tracer().Debugf("@property: cannot resolve %q", path)
			return "", nil
		}
		return FormatResult(v), nil
	case Select:
		index := -1
		if v, ok := env.Value(d.Var); ok {
			if f, ok := number(v).(float64); ok {
				index = int(f)
			}
		} else if n, err := strconv.Atoi(env.Substitute(d.Var)); err == nil {
			index = n
		}
		if index < 0 || index >= len(d.Options) {
			tracer().Debugf("@select: index %d out of range for %s", index, d.Var)
			return "", nil
		}
		return env.Substitute(d.Options[index]), nil
	case Eval:
		return EvaluateString(d.Text, env, theme)
	}
	return env.Substitute(d.Text), nil
}
