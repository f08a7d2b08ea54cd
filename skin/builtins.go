package skin

import "github.com/npillmayer/skinwiz/attrs"

// Schema groups of the built-in element kinds.
const (
	GroupViewsAndStatements = "ViewsAndStatements"
	GroupResources          = "Resources"
	GroupActions            = "Actions"
)

// Built-in element kinds. Constructors are connected in init to keep the
// descriptors free of initialization cycles.
var (
	MetaElementBase = &MetaElement{Name: "Element", Abstract: true,
		Members: []Member{{Name: "name", Type: "string"}, {Name: "comment", Type: "string"}, {Name: "override", Type: "bool"}}}

	MetaModel         = &MetaElement{Name: "Skin", Parent: MetaElementBase}
	MetaSection       = &MetaElement{Name: "Section", Parent: MetaElementBase, Abstract: true}
	MetaIncludes      = &MetaElement{Name: "Includes", Parent: MetaSection}
	MetaImports       = &MetaElement{Name: "Imports", Parent: MetaSection}
	MetaResources     = &MetaElement{Name: "Resources", Parent: MetaSection, ChildGroup: GroupResources}
	MetaStyles        = &MetaElement{Name: "Styles", Parent: MetaSection}
	MetaForms         = &MetaElement{Name: "Forms", Parent: MetaSection}
	MetaWindowClasses = &MetaElement{Name: "WindowClasses", Parent: MetaSection}
	MetaWorkspaces    = &MetaElement{Name: "Workspaces", Parent: MetaSection}

	MetaInclude = &MetaElement{Name: "Include", Parent: MetaElementBase,
		Members: []Member{{Name: "url", Type: "url"}, {Name: "scope", Type: "string"}}}
	MetaImport = &MetaElement{Name: "Import", Parent: MetaElementBase,
		Members: []Member{{Name: "url", Type: "url"}}}

	MetaResource = &MetaElement{Name: "Resource", Parent: MetaElementBase, Abstract: true,
		SchemaGroups: []string{GroupResources}}
	MetaImage = &MetaElement{Name: "Image", Parent: MetaResource,
		Members: []Member{{Name: "url", Type: "url"}, {Name: "frames", Type: "int"}, {Name: "tile", Type: "bool"}}}
	MetaGradient = &MetaElement{Name: "Gradient", Parent: MetaResource,
		Members: []Member{{Name: "start", Type: "color"}, {Name: "end", Type: "color"}, {Name: "direction", Type: "string"}}}
	MetaColor = &MetaElement{Name: "Color", Parent: MetaResource,
		Members: []Member{{Name: "color", Type: "color"}}}
	MetaFont = &MetaElement{Name: "Font", Parent: MetaResource,
		Members: []Member{{Name: "face", Type: "string"}, {Name: "size", Type: "float"}, {Name: "style", Type: "options", Enum: "FontStyle"}}}
	MetaMetric = &MetaElement{Name: "Metric", Parent: MetaResource,
		Members: []Member{{Name: "value", Type: "float"}}}

	MetaOptions = &MetaElement{Name: "Options", Parent: MetaElementBase,
		Members: []Member{{Name: "options", Type: "string"}}}
	MetaStyle = &MetaElement{Name: "Style", Parent: MetaElementBase,
		Members: []Member{{Name: "inherit", Type: "string"}, {Name: "css", Type: "string"}, {Name: "appstyle", Type: "bool"}}}

	MetaTriggers = &MetaElement{Name: "Triggers", Parent: MetaElementBase}
	MetaTrigger  = &MetaElement{Name: "Trigger", Parent: MetaElementBase, ChildGroup: GroupActions,
		Members: []Member{{Name: "property", Type: "string"}, {Name: "value", Type: "string"}, {Name: "event", Type: "string"}}}
	MetaAction = &MetaElement{Name: "Action", Parent: MetaElementBase, Abstract: true,
		SchemaGroups: []string{GroupActions}}
	MetaSetter = &MetaElement{Name: "Setter", Parent: MetaAction,
		Members: []Member{{Name: "property", Type: "string"}, {Name: "value", Type: "string"}, {Name: "target", Type: "string"}}}
	MetaParameter = &MetaElement{Name: "Parameter", Parent: MetaAction,
		Members: []Member{{Name: "value", Type: "string"}, {Name: "target", Type: "string"}}}
	MetaInvoke = &MetaElement{Name: "Invoke", Parent: MetaAction,
		Members: []Member{{Name: "method", Type: "string"}, {Name: "args", Type: "string"}, {Name: "target", Type: "string"}}}
	MetaStartAnimation = &MetaElement{Name: "StartAnimation", Parent: MetaAction,
		Members: []Member{{Name: "animation", Type: "string"}}}
	MetaStopAnimation = &MetaElement{Name: "StopAnimation", Parent: MetaAction,
		Members: []Member{{Name: "animation", Type: "string"}}}
	MetaAnimations = &MetaElement{Name: "Animations", Parent: MetaElementBase}
	MetaAnimation  = &MetaElement{Name: "Animation", Parent: MetaElementBase,
		Members: []Member{{Name: "property", Type: "string"}, {Name: "from", Type: "float"}, {Name: "to", Type: "float"},
			{Name: "duration", Type: "int"}, {Name: "repeat", Type: "int"}, {Name: "reverse", Type: "bool"}, {Name: "timing", Type: "string"}}}

	MetaView = &MetaElement{Name: "View", Parent: MetaElementBase,
		ChildGroup: GroupViewsAndStatements, SchemaGroups: []string{GroupViewsAndStatements},
		Members: []Member{{Name: "size", Type: "size"}, {Name: "width", Type: "coord"}, {Name: "height", Type: "coord"},
			{Name: "title", Type: "string"}, {Name: "style", Type: "string"}}}
	MetaForm = &MetaElement{Name: "Form", Parent: MetaView,
		Members: []Member{{Name: "firstfocus", Type: "string"}, {Name: "windowstyle", Type: "string"}}}
	MetaLayout     = &MetaElement{Name: "Layout", Parent: MetaView, Abstract: true}
	MetaHorizontal = &MetaElement{Name: "Horizontal", Parent: MetaLayout}
	MetaVertical   = &MetaElement{Name: "Vertical", Parent: MetaLayout}
	MetaTable      = &MetaElement{Name: "Table", Parent: MetaLayout,
		Members: []Member{{Name: "columns", Type: "int"}, {Name: "spacing", Type: "int"}, {Name: "margin", Type: "int"}}}
	MetaControl   = &MetaElement{Name: "Control", Parent: MetaView, Abstract: true}
	MetaButton    = &MetaElement{Name: "Button", Parent: MetaControl}
	MetaToggle    = &MetaElement{Name: "Toggle", Parent: MetaControl}
	MetaLabel     = &MetaElement{Name: "Label", Parent: MetaControl}
	MetaEditBox   = &MetaElement{Name: "EditBox", Parent: MetaControl}
	MetaSlider    = &MetaElement{Name: "Slider", Parent: MetaControl}
	MetaImageView = &MetaElement{Name: "ImageView", Parent: MetaControl,
		Members: []Member{{Name: "image", Type: "string"}}}
	MetaDivider    = &MetaElement{Name: "Divider", Parent: MetaView}
	MetaSpace      = &MetaElement{Name: "Space", Parent: MetaView}
	MetaScrollView = &MetaElement{Name: "ScrollView", Parent: MetaView}
	MetaDelegate   = &MetaElement{Name: "Delegate", Parent: MetaView,
		Members: []Member{{Name: "form", Type: "string"}, {Name: "controller", Type: "string"}}}

	MetaWindowClass = &MetaElement{Name: "WindowClass", Parent: MetaElementBase,
		Members: []Member{{Name: "form", Type: "string"}, {Name: "title", Type: "string"}, {Name: "workspace", Type: "string"}}}
	MetaWorkspace = &MetaElement{Name: "Workspace", Parent: MetaElementBase,
		Members: []Member{{Name: "perspective", Type: "string"}}}
	MetaFrame = &MetaElement{Name: "Frame", Parent: MetaElementBase,
		Members: []Member{{Name: "windowclass", Type: "string"}}}

	MetaStatement = &MetaElement{Name: "Statement", Parent: MetaElementBase, Abstract: true,
		ChildGroup: GroupViewsAndStatements, SchemaGroups: []string{GroupViewsAndStatements}}
	MetaUsing = &MetaElement{Name: "Using", Parent: MetaStatement,
		Members: []Member{{Name: "controller", Type: "string"}, {Name: "optional", Type: "bool"}}}
	MetaSwitch = &MetaElement{Name: "Switch", Parent: MetaStatement,
		Members: []Member{{Name: "defined", Type: "string"}, {Name: "not.defined", Type: "string"},
			{Name: "property", Type: "string"}, {Name: "controller", Type: "string"}, {Name: "variable", Type: "string"}}}
	MetaIf = &MetaElement{Name: "If", Parent: MetaSwitch,
		Members: []Member{{Name: "value", Type: "string"}}}
	MetaCase = &MetaElement{Name: "Case", Parent: MetaStatement,
		Members: []Member{{Name: "value", Type: "string"}}}
	MetaDefault = &MetaElement{Name: "Default", Parent: MetaStatement}
	MetaForEach = &MetaElement{Name: "ForEach", Parent: MetaStatement,
		Members: []Member{{Name: "variable", Type: "string"}, {Name: "start", Type: "int"}, {Name: "count", Type: "int"}, {Name: "in", Type: "string"}}}
	MetaDefine = &MetaElement{Name: "Define", Parent: MetaStatement}
	MetaZoom   = &MetaElement{Name: "Zoom", Parent: MetaStatement,
		Members: []Member{{Name: "factor", Type: "float"}, {Name: "relative", Type: "bool"}}}
	MetaStyleSelector = &MetaElement{Name: "StyleSelector", Parent: MetaStatement,
		Members: []Member{{Name: "variable", Type: "string"}, {Name: "styles", Type: "string"},
			{Name: "parameter", Type: "string"}, {Name: "property", Type: "string"}, {Name: "controller", Type: "string"}}}
)

var viewMetas = []*MetaElement{
	MetaView, MetaHorizontal, MetaVertical, MetaTable,
	MetaButton, MetaToggle, MetaLabel, MetaEditBox, MetaSlider, MetaImageView,
	MetaDivider, MetaSpace, MetaScrollView,
}

func init() {
	MetaModel.New = func() Element { return NewModel(nil) }
	for _, m := range []*MetaElement{MetaIncludes, MetaImports, MetaResources, MetaStyles,
		MetaForms, MetaWindowClasses, MetaWorkspaces} {
		m := m
		m.New = func() Element { return newSection(m) }
	}
	for _, m := range viewMetas {
		m := m
		m.New = func() Element { return newViewElement(m) }
	}
	MetaForm.New = newForm
	MetaDelegate.New = newDelegate
	MetaStartAnimation.New = construct(func() Element { return &AnimationActionElement{} })
	MetaStopAnimation.New = construct(func() Element { return &AnimationActionElement{Stop: true} })

	MetaInclude.New = construct(func() Element { return &Include{} })
	MetaImport.New = construct(func() Element { return &Import{} })
	MetaImage.New = construct(func() Element { return &ImageElement{} })
	MetaGradient.New = construct(func() Element { return &GradientElement{} })
	MetaColor.New = construct(func() Element { return &ColorElement{} })
	MetaFont.New = construct(func() Element { return &FontElement{} })
	MetaMetric.New = construct(func() Element { return &MetricElement{} })
	MetaOptions.New = construct(func() Element { return &OptionsElement{} })
	MetaStyle.New = construct(func() Element { return &StyleElement{} })
	MetaTriggers.New = construct(func() Element { return &TriggerListElement{} })
	MetaTrigger.New = construct(func() Element { return &TriggerElement{} })
	MetaSetter.New = construct(func() Element { return &SetterElement{} })
	MetaParameter.New = construct(func() Element { return &ParameterElement{} })
	MetaInvoke.New = construct(func() Element { return &InvokeElement{} })
	MetaAnimations.New = construct(func() Element { return &AnimationListElement{} })
	MetaAnimation.New = construct(func() Element { return &AnimationElement{To: 1, Repeat: 1} })
	MetaWindowClass.New = construct(func() Element { return &WindowClassElement{} })
	MetaWorkspace.New = construct(func() Element { return &WorkspaceElement{} })
	MetaFrame.New = construct(func() Element { return &FrameElement{} })
	MetaUsing.New = construct(func() Element { return &UsingStatement{} })
	MetaSwitch.New = construct(func() Element { return &SwitchStatement{} })
	MetaIf.New = construct(func() Element { return &IfStatement{} })
	MetaCase.New = construct(func() Element { return &CaseStatement{} })
	MetaDefault.New = construct(func() Element { return &DefaultStatement{} })
	MetaForEach.New = construct(func() Element { return &ForEachStatement{} })
	MetaDefine.New = construct(func() Element { return &DefineStatement{Defines: attrs.NewMutable()} })
	MetaZoom.New = construct(func() Element { return &ZoomStatement{} })
	MetaStyleSelector.New = construct(func() Element { return &StyleSelectorStatement{} })
}

func construct(f func() Element) func() Element {
	return func() Element {
		e := f()
		e.Base().Init(e)
		return e
	}
}

// Builtins returns all built-in element kinds, bases first.
func Builtins() []*MetaElement {
	return []*MetaElement{
		MetaElementBase, MetaModel, MetaSection, MetaIncludes, MetaImports, MetaResources,
		MetaStyles, MetaForms, MetaWindowClasses, MetaWorkspaces,
		MetaInclude, MetaImport,
		MetaResource, MetaImage, MetaGradient, MetaColor, MetaFont, MetaMetric,
		MetaOptions, MetaStyle, MetaTriggers, MetaTrigger,
		MetaAction, MetaSetter, MetaParameter, MetaInvoke, MetaStartAnimation, MetaStopAnimation,
		MetaAnimations, MetaAnimation,
		MetaView, MetaForm, MetaLayout, MetaHorizontal, MetaVertical, MetaTable,
		MetaControl, MetaButton, MetaToggle, MetaLabel, MetaEditBox, MetaSlider, MetaImageView,
		MetaDivider, MetaSpace, MetaScrollView, MetaDelegate,
		MetaWindowClass, MetaWorkspace, MetaFrame,
		MetaStatement, MetaUsing, MetaSwitch, MetaIf, MetaCase, MetaDefault,
		MetaForEach, MetaDefine, MetaZoom, MetaStyleSelector,
	}
}

// RegisterBuiltins adds the built-in element kinds and enumerations to lib.
func RegisterBuiltins(lib *Library) error {
	for _, m := range Builtins() {
		if err := lib.Register(m); err != nil {
			return err
		}
	}
	return lib.RegisterEnumeration(FontStyles)
}
