package attrs

import (
	"strings"
)

// StyleDef names an option value.
type StyleDef struct {
	Name  string
	Value int
}

// LookupDef finds a definition by name, ignoring case.
func LookupDef(defs []StyleDef, name string) (StyleDef, bool) {
	for _, d := range defs {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return StyleDef{}, false
}

// ParseOptions converts a space separated list of option names into a value.
// In exclusive mode the first known name determines the value; otherwise
// the values of all known names are or-ed. Unknown names are ignored.
func ParseOptions(s string, defs []StyleDef, exclusive bool) (int, bool) {
	value, found := 0, false
	for _, tok := range strings.Fields(s) {
		d, ok := LookupDef(defs, tok)
		if !ok {
			tracer().Debugf("unknown option %q", tok)
			continue
		}
		if exclusive {
			return d.Value, true
		}
		value |= d.Value
		found = true
	}
	return value, found
}

// FormatOptions is the inverse of ParseOptions.
func FormatOptions(value int, defs []StyleDef, exclusive bool) string {
	if exclusive {
		for _, d := range defs {
			if d.Value == value {
				return d.Name
			}
		}
		return ""
	}
	var names []string
	covered := 0
	for _, d := range defs {
		if d.Value != 0 && value&d.Value == d.Value && covered&d.Value != d.Value {
			names = append(names, d.Name)
			covered |= d.Value
		}
	}
	return strings.Join(names, " ")
}

// Options reads an options attribute. Absent attributes or attributes
// without any known option name yield def.
func Options(a Attributes, name string, defs []StyleDef, exclusive bool, def int) int {
	if v, ok := ParseOptions(a.String(name), defs, exclusive); ok {
		return v
	}
	return def
}

// SetOptions writes value as option names.
func SetOptions(a Attributes, name string, value int, defs []StyleDef, exclusive bool) error {
	return a.SetString(name, FormatOptions(value, defs, exclusive))
}
