package skin

import (
	"strings"

	"github.com/npillmayer/skinwiz/attrs"
)

// Statements are control-flow elements interpreted while views are created.
// Their attributes are kept unresolved; they may reference variables bound
// by enclosing statements.

// Statement is implemented by all control-flow elements.
type Statement interface {
	Element
	isStatement()
}

type statementBase struct {
	ElementBase
}

func (s *statementBase) isStatement() {}

// UsingStatement switches the current controller for its subtree.
type UsingStatement struct {
	statementBase
	Controller string
	Optional   bool
}

// Meta is part of interface Element.
func (s *UsingStatement) Meta() *MetaElement { return MetaUsing }

// SetAttributes is part of interface Element.
func (s *UsingStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Controller = a.String("controller")
	s.Optional = attrs.Bool(a, "optional", false)
	return true
}

// GetAttributes is part of interface Element.
func (s *UsingStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("controller", s.Controller)
	if s.Optional {
		_ = attrs.SetBool(a, "optional", true)
	}
	return true
}

// Test holds the selector of switch and if statements. Exactly one of its
// fields is normally set.
type Test struct {
	Defined    string // variable name tested for existence
	NotDefined string // variable name tested for absence
	Property   string // property path relative to the controller
	Controller string // optional sub-controller the property is read from
	Variable   string // variable whose value is tested
}

func (t *Test) read(a attrs.Attributes) {
	t.Defined = a.String("defined")
	t.NotDefined = a.String("not.defined")
	t.Property = a.String("property")
	t.Controller = a.String("controller")
	t.Variable = a.String("variable")
}

func (t *Test) write(a attrs.Attributes) {
	for _, kv := range [][2]string{
		{"defined", t.Defined}, {"not.defined", t.NotDefined},
		{"property", t.Property}, {"controller", t.Controller},
		{"variable", t.Variable},
	} {
		if kv[1] != "" {
			_ = a.SetString(kv[0], kv[1])
		}
	}
}

// IsDefinedTest is true for tests on the existence of a variable.
func (t *Test) IsDefinedTest() bool {
	return t.Defined != "" || t.NotDefined != ""
}

// SwitchStatement selects one of its case children.
type SwitchStatement struct {
	statementBase
	Test
}

// Meta is part of interface Element.
func (s *SwitchStatement) Meta() *MetaElement { return MetaSwitch }

// SetAttributes is part of interface Element.
func (s *SwitchStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Test.read(a)
	return true
}

// GetAttributes is part of interface Element.
func (s *SwitchStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	s.Test.write(a)
	return true
}

// IfStatement is a switch with a boolean outcome. Without case children,
// the non-default children are used if the test holds, the default
// children otherwise. Value, if set, is compared against the tested value.
type IfStatement struct {
	SwitchStatement
	Value string
}

// Meta is part of interface Element.
func (s *IfStatement) Meta() *MetaElement { return MetaIf }

// SetAttributes is part of interface Element.
func (s *IfStatement) SetAttributes(a attrs.Attributes) bool {
	s.SwitchStatement.SetAttributes(a)
	s.Value = a.String("value")
	return true
}

// GetAttributes is part of interface Element.
func (s *IfStatement) GetAttributes(a attrs.Attributes) bool {
	s.SwitchStatement.GetAttributes(a)
	if s.Value != "" {
		_ = a.SetString("value", s.Value)
	}
	return true
}

// CaseStatement is a branch of a switch, accepting a list of values.
type CaseStatement struct {
	statementBase
	Values []string
}

// Meta is part of interface Element.
func (s *CaseStatement) Meta() *MetaElement { return MetaCase }

// SetAttributes is part of interface Element.
func (s *CaseStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Values = attrs.Get(a, "value").Tokens()
	return true
}

// GetAttributes is part of interface Element.
func (s *CaseStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("value", strings.Join(s.Values, " "))
	return true
}

// Matches is true if value is one of the accepted values.
func (s *CaseStatement) Matches(value string) bool {
	for _, v := range s.Values {
		if v == value {
			return true
		}
	}
	return false
}

// DefaultStatement is the fallback branch of a switch.
type DefaultStatement struct {
	statementBase
}

// Meta is part of interface Element.
func (s *DefaultStatement) Meta() *MetaElement { return MetaDefault }

// ForEachStatement repeats its subtree, either counted or over tokens.
type ForEachStatement struct {
	statementBase
	Variable string
	Start    string
	Count    string
	In       string
}

// Meta is part of interface Element.
func (s *ForEachStatement) Meta() *MetaElement { return MetaForEach }

// SetAttributes is part of interface Element.
func (s *ForEachStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Variable = a.String("variable")
	s.Start = a.String("start")
	s.Count = a.String("count")
	s.In = a.String("in")
	return true
}

// GetAttributes is part of interface Element.
func (s *ForEachStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("variable", s.Variable)
	for _, kv := range [][2]string{{"start", s.Start}, {"count", s.Count}, {"in", s.In}} {
		if kv[1] != "" {
			_ = a.SetString(kv[0], kv[1])
		}
	}
	return true
}

// IsCounted is true for counted loops, false for loops over tokens.
func (s *ForEachStatement) IsCounted() bool {
	return s.In == ""
}

// DefineStatement binds variables for its subtree. Every attribute apart
// from the common ones names a variable.
type DefineStatement struct {
	statementBase
	Defines *attrs.Mutable
}

// Meta is part of interface Element.
func (s *DefineStatement) Meta() *MetaElement { return MetaDefine }

// SetAttributes is part of interface Element.
func (s *DefineStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Defines = attrs.NewMutable()
	for i := 0; i < a.Count(); i++ {
		switch name := a.NameAt(i); strings.ToLower(name) {
		case "name", "comment", "override":
		default:
			s.Defines.Set(name, a.StringAt(i))
		}
	}
	return true
}

// GetAttributes is part of interface Element.
func (s *DefineStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	if s.Defines != nil {
		_ = attrs.CopyAll(a, s.Defines)
	}
	return true
}

// ZoomStatement changes the zoom factor for its subtree.
type ZoomStatement struct {
	statementBase
	Factor   string
	Relative bool
}

// Meta is part of interface Element.
func (s *ZoomStatement) Meta() *MetaElement { return MetaZoom }

// SetAttributes is part of interface Element.
func (s *ZoomStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Factor = a.String("factor")
	s.Relative = attrs.Bool(a, "relative", false)
	return true
}

// GetAttributes is part of interface Element.
func (s *ZoomStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("factor", s.Factor)
	if s.Relative {
		_ = attrs.SetBool(a, "relative", true)
	}
	return true
}

// StyleSelectorStatement binds a style alias to a variable. The alias
// follows a parameter or property, choosing among Styles by index.
type StyleSelectorStatement struct {
	statementBase
	Variable   string
	Styles     []string
	Parameter  string
	Property   string
	Controller string
}

// Meta is part of interface Element.
func (s *StyleSelectorStatement) Meta() *MetaElement { return MetaStyleSelector }

// SetAttributes is part of interface Element.
func (s *StyleSelectorStatement) SetAttributes(a attrs.Attributes) bool {
	s.ElementBase.SetAttributes(a)
	s.Variable = a.String("variable")
	s.Styles = attrs.Get(a, "styles").Tokens()
	s.Parameter = a.String("parameter")
	s.Property = a.String("property")
	s.Controller = a.String("controller")
	return true
}

// GetAttributes is part of interface Element.
func (s *StyleSelectorStatement) GetAttributes(a attrs.Attributes) bool {
	s.ElementBase.GetAttributes(a)
	_ = a.SetString("variable", s.Variable)
	_ = a.SetString("styles", strings.Join(s.Styles, " "))
	for _, kv := range [][2]string{{"parameter", s.Parameter}, {"property", s.Property}, {"controller", s.Controller}} {
		if kv[1] != "" {
			_ = a.SetString(kv[0], kv[1])
		}
	}
	return true
}
