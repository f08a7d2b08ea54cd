package expr

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/gval"
)

// ErrEmptyExpression is returned for an @eval directive without expression.
var ErrEmptyExpression = errors.New("empty expression")

// Variables provides values for variable references in expressions.
type Variables interface {
	Value(name string) (interface{}, bool)
}

// Theme provides values for $Theme.<metric> references.
type Theme interface {
	Metric(name string) (float64, bool)
}

var language = gval.Full(
	gval.Function("min", minimum),
	gval.Function("max", maximum),
	gval.Function("round", unary(math.Round)),
	gval.Function("floor", unary(math.Floor)),
	gval.Function("ceil", unary(math.Ceil)),
	gval.Function("abs", unary(math.Abs)),
)

// Evaluate computes an expression. References "$name" are bound to the
// values of vars, "$Theme.name" to theme metrics. Numeric strings are passed
// to the expression as numbers.
func Evaluate(expression string, vars Variables, theme Theme) (interface{}, error) {
	if strings.TrimSpace(expression) == "" {
		return nil, ErrEmptyExpression
	}
	rewritten, params, err := bind(expression, vars, theme)
	if err != nil {
		return nil, err
	}
	eval, err := language.NewEvaluable(rewritten)
	if err != nil {
		return nil, fmt.Errorf("cannot parse expression %q: %w", expression, err)
	}
	tracer().Debugf("eval %q as %q with %v", expression, rewritten, params)
	return eval(context.Background(), params)
}

// EvaluateString computes an expression and formats the result.
func EvaluateString(expression string, vars Variables, theme Theme) (string, error) {
	r, err := Evaluate(expression, vars, theme)
	if err != nil {
		return "", err
	}
	return FormatResult(r), nil
}

// FormatResult formats expression results. Integral numbers have no
// fractional part.
func FormatResult(r interface{}) string {
	switch x := r.(type) {
	case nil:
		return ""
	case float64:
		if x == math.Trunc(x) && math.Abs(x) < 1e15 {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	case string:
		return x
	}
	return fmt.Sprint(r)
}

// bind replaces variable references by generated parameter names.
func bind(expression string, vars Variables, theme Theme) (string, map[string]interface{}, error) {
	params := make(map[string]interface{})
	bound := make(map[string]string)
	var b strings.Builder
	for i := 0; i < len(expression); {
		c := expression[i]
		if c != '$' {
			b.WriteByte(c)
			i++
			continue
		}
		n := identLen(expression[i+1:])
		if n == 0 {
			return "", nil, fmt.Errorf("invalid variable reference at position %d in %q", i, expression)
		}
		name := expression[i+1 : i+1+n]
		i += 1 + n
		if name == "Theme" && i < len(expression) && expression[i] == '.' {
			m := identLen(expression[i+1:])
			metric := expression[i+1 : i+1+m]
			if theme == nil {
				return "", nil, fmt.Errorf("no theme to resolve $Theme.%s", metric)
			}
			x, ok := theme.Metric(metric)
			if !ok {
				return "", nil, fmt.Errorf("unknown theme metric %q", metric)
			}
			b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
			i += 1 + m
			continue
		}
		param, ok := bound[name]
		if !ok {
			var v interface{}
			if vars != nil {
				v, ok = vars.Value("$" + name)
			}
			if !ok {
				return "", nil, fmt.Errorf("undefined variable $%s in %q", name, expression)
			}
			param = "skinvar" + strconv.Itoa(len(bound))
			bound[name] = param
			params[param] = number(v)
		}
		b.WriteString(param)
	}
	return b.String(), params, nil
}

// number converts numeric strings to float64.
func number(v interface{}) interface{} {
	switch x := v.(type) {
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	case int:
		return float64(x)
	case fmt.Stringer:
		return number(x.String())
	}
	return v
}

func identLen(s string) int {
	for i, r := range s {
		if !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9') {
			return i
		}
	}
	return len(s)
}

// --- Functions -------------------------------------------------------------

func toFloat(arg interface{}) (float64, error) {
	switch x := number(arg).(type) {
	case float64:
		return x, nil
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	}
	return 0, fmt.Errorf("not a number: %v", arg)
}

func unary(f func(float64) float64) func(args ...interface{}) (interface{}, error) {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, have %d", len(args))
		}
		x, err := toFloat(args[0])
		if err != nil {
			return nil, err
		}
		return f(x), nil
	}
}

func minimum(args ...interface{}) (interface{}, error) {
	return fold(args, math.Min)
}

func maximum(args ...interface{}) (interface{}, error) {
	return fold(args, math.Max)
}

func fold(args []interface{}, f func(a, b float64) float64) (interface{}, error) {
	if len(args) == 0 {
		return nil, errors.New("function needs at least one argument")
	}
	r, err := toFloat(args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		x, err := toFloat(a)
		if err != nil {
			return nil, err
		}
		r = f(r, x)
	}
	return r, nil
}
