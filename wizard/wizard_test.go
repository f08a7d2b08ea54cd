package wizard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/diag"
	"github.com/npillmayer/skinwiz/object"
	"github.com/npillmayer/skinwiz/registry"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/view"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func form(body string) fstest.MapFS {
	return fstest.MapFS{
		"main/skin.xml": file(`<Skin><Forms><Form name="Main">` + body + `</Form></Forms></Skin>`),
	}
}

func newWizard(t *testing.T, fsys fstest.MapFS) (*Wizard, *diag.Sink) {
	sink := diag.NewSink()
	sink.Record(true)
	w := New(fsys, WithSink(sink))
	require.NoError(t, w.LoadSkin("main", false, false))
	return w, sink
}

func create(t *testing.T, body string, controller object.Object) (*view.View, *Wizard, *diag.Sink) {
	w, sink := newWizard(t, form(body))
	v, err := w.CreateView("Main", controller)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Variables().Len(), "variable stack is balanced")
	return v, w, sink
}

func names(v *view.View) []string {
	var r []string
	for _, ch := range v.Views() {
		r = append(r, ch.Name())
	}
	return r
}

func TestDefineResolvesVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, _, _ := create(t, `<define w="10"><View name="v" width="$w" height="20"/></define>`, nil)
	require.Len(t, v.Views(), 1)
	ch := v.ViewAt(0)
	assert.Equal(t, "10", ch.Attrs.String("width"))
	assert.Equal(t, 10, ch.Size.Width())
	assert.Equal(t, 20, ch.Size.Height())
}

func TestForEachCounted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, _, _ := create(t, `<foreach variable="$i" count="3"><View name="item$i"/></foreach>`, nil)
	assert.Equal(t, []string{"item0", "item1", "item2"}, names(v))
	v, _, _ = create(t, `<foreach variable="$i" start="2" count="2"><View name="n$i"/></foreach>`, nil)
	assert.Equal(t, []string{"n2", "n3"}, names(v))
}

func TestForEachTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	ctrl := object.NewNode("c")
	ctrl.AddParameter("modes", "low high")
	v, _, _ := create(t, `
		<foreach variable="$c" in="red green"><View name="$c"/></foreach>
		<foreach variable="$m" in="modes"><View name="mode-$m"/></foreach>`, ctrl)
	assert.Equal(t, []string{"red", "green", "mode-low", "mode-high"}, names(v))
}

func TestSwitchSelectsCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	doc := `<switch property="selected"><case value="1"><A/></case><default><B/></default></switch>`
	ctrl := object.NewNode("c")
	p := ctrl.AddParameter("selected", 1)
	v, _, _ := create(t, doc, ctrl)
	require.Len(t, v.Views(), 1)
	assert.Equal(t, "A", v.ViewAt(0).Class)
	p.SetValue(0)
	v, _, _ = create(t, doc, ctrl)
	require.Len(t, v.Views(), 1)
	assert.Equal(t, "B", v.ViewAt(0).Class)
	v, _, _ = create(t, doc, nil)
	require.Len(t, v.Views(), 1, "unresolved value selects default")
	assert.Equal(t, "B", v.ViewAt(0).Class)
}

func TestIfStatement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, _, _ := create(t, `
		<define x="1">
			<if defined="$x"><Yes/><default><No/></default></if>
		</define>
		<if defined="$x"><Yes/><default><No/></default></if>
		<if not.defined="$x"><Absent/></if>
		<define mode="edit"><if variable="$mode" value="edit"><Edit/></if></define>`, nil)
	var classes []string
	for _, ch := range v.Views() {
		classes = append(classes, ch.Class)
	}
	assert.Equal(t, []string{"Yes", "No", "Absent", "Edit"}, classes)
}

func TestUsingController(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	root, child := object.NewNode("root"), object.NewNode("volume")
	root.AddChild(child)
	child.AddParameter("level", 7)
	v, _, sink := create(t, `
		<using controller="volume"><Slider name="level"/></using>
		<using controller="missing"><View name="x"/></using>
		<using controller="missing" optional="true"><View name="y"/></using>`, root)
	require.Len(t, v.Views(), 1)
	level, _ := v.ViewAt(0).Property("value")
	assert.Equal(t, 7, level)
	assert.Same(t, child, v.ViewAt(0).Controller)
	assert.Equal(t, 1, sink.Count(), "only the non-optional miss warns")
}

func TestZoomScopes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, w, _ := create(t, `
		<zoom factor="2">
			<View name="a" size="0,0,10,5"/>
			<zoom factor="1.5" relative="true"><View name="b" width="10"/></zoom>
		</zoom>
		<View name="c" width="10"/>`, nil)
	assert.Equal(t, 20, v.Find("a").Size.Width())
	assert.Equal(t, 10, v.Find("a").Size.Height())
	assert.Equal(t, 30, v.Find("b").Size.Width())
	assert.Equal(t, 3.0, v.Find("b").Zoom)
	assert.Equal(t, 10, v.Find("c").Size.Width())
	assert.Equal(t, 1.0, w.Zoom())
}

func TestDirectives(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	ctrl := object.NewNode("c")
	ctrl.AddParameter("count", 4)
	v, _, _ := create(t, `
		<define mode="1" w="20">
			<define label="@select:$mode:off,on,auto" wide="@eval:$w * 2 + 1" n="@property:count">
				<View name="$label" width="$wide" title="$n items"/>
			</define>
		</define>`, ctrl)
	require.Len(t, v.Views(), 1)
	ch := v.ViewAt(0)
	assert.Equal(t, "on", ch.Name())
	assert.Equal(t, 41, ch.Size.Width())
	assert.Equal(t, "4 items", ch.Title)
}

func TestDelegateForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	fsys := fstest.MapFS{"main/skin.xml": file(`<Skin><Forms>
		<Form name="Main"><Delegate name="inner" form="Sub" controller="child"/><Delegate form="Nope"/></Form>
		<Form name="Sub"><Label name="caption"/></Form>
		<Form name="Self"><Delegate form="Self"/></Form>
	</Forms></Skin>`)}
	w, sink := newWizard(t, fsys)
	root, child := object.NewNode("root"), object.NewNode("child")
	root.AddChild(child)
	child.AddParameter("caption", "hello")
	v, err := w.CreateView("Main", root)
	require.NoError(t, err)
	require.Len(t, v.Views(), 1)
	inner := v.ViewAt(0)
	assert.Equal(t, "inner", inner.Name())
	caption, _ := inner.Find("caption").Property("value")
	assert.Equal(t, "hello", caption)
	assert.Equal(t, 1, sink.Count(), "missing form is warned about")
	sink.Reset()
	_, err = w.CreateView("Self", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, sink.Count(), "recursion is cut")
}

func TestStyleSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	fsys := fstest.MapFS{"main/skin.xml": file(`<Skin>
	<Styles><Style name="Normal"/><Style name="Alert"/></Styles>
	<Forms><Form name="Main">
		<styleselector variable="$s" styles="Normal Alert" parameter="state">
			<View name="a" style="$s"/><View name="b" style="$s"/>
		</styleselector>
		<View name="c" style="Normal"/>
	</Form></Forms></Skin>`)}
	w, sink := newWizard(t, fsys)
	ctrl := object.NewNode("c")
	state := ctrl.AddParameter("state", 0)
	v, err := w.CreateView("Main", ctrl)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Variables().Len())
	a, b := v.Find("a"), v.Find("b")
	require.NotNil(t, a.StyleAlias())
	assert.Same(t, a.StyleAlias(), b.StyleAlias())
	assert.Equal(t, "Normal", a.Style().Name)
	var changed []string
	obs := object.ObserverFunc(func(subject object.Subject, msg object.Message) {
		if msg.ID == object.MsgChanged {
			changed = append(changed, subject.(*view.View).Name())
		}
	})
	a.AddObserver(&obs)
	b.AddObserver(&obs)
	state.SetValue(1)
	assert.Equal(t, "Alert", b.Style().Name)
	assert.Equal(t, []string{"a", "b"}, changed, "clients are notified in order")
	assert.Equal(t, "Normal", v.Find("c").Style().Name)
	assert.Equal(t, 0, sink.Count())
	alias := a.StyleAlias()
	v.Destroy()
	assert.Equal(t, 0, alias.ClientCount())
}

func TestTriggersOnViews(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	fsys := fstest.MapFS{"main/skin.xml": file(`<Skin>
	<Styles><Style name="Hover">
		<Triggers><Trigger property="hover" value="true"><Setter property="alpha" value="0.5"/></Trigger></Triggers>
	</Style></Styles>
	<Forms><Form name="Main"><Button name="b1" style="Hover"/><Button name="b2" style="Hover"/></Form></Forms>
	</Skin>`)}
	w, _ := newWizard(t, fsys)
	v, err := w.CreateView("Main", nil)
	require.NoError(t, err)
	b1 := v.Find("b1")
	require.Len(t, b1.Triggers(), 1)
	b1.SetProperty("hover", true)
	alpha, _ := b1.Property("alpha")
	assert.Equal(t, 0.5, alpha)
	_, set := v.Find("b2").Property("alpha")
	assert.False(t, set, "triggers are per view")
	assert.Equal(t, 3, b1.Triggers()[0].Actions().Refs())
}

func TestLayoutRegistersItems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, _, _ := create(t, `<Horizontal name="h"><foreach variable="$i" count="2"><Button name="b$i"/></foreach></Horizontal>`, nil)
	h := v.Find("h")
	require.NotNil(t, h)
	assert.Len(t, h.LayoutItems(), 2)
	assert.Len(t, v.LayoutItems(), 0, "forms are no layouts")
}

func TestIncludesAndImports(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"main/skin.xml": file(`<Skin>
			<Imports><Import url="@shared"/></Imports>
			<Includes><Include url="parts/a.xml"/><Include url="parts/panel.xml" scope="Panel"/></Includes>
			<Forms><Form name="Main"><View name="main"/></Form></Forms>
		</Skin>`),
		"main/parts/a.xml": file(`<Skin>
			<Includes><Include url="b.xml"/></Includes>
			<Resources><Metric name="a" value="1"/></Resources>
		</Skin>`),
		"main/parts/b.xml": file(`<Skin>
			<Includes><Include url="a.xml"/></Includes>
			<Resources><Metric name="b" value="2"/></Resources>
		</Skin>`),
		"main/parts/panel.xml": file(`<Skin><Forms><Form name="Main"><View name="panel"/></Form></Forms></Skin>`),
		"skins/shared/skin.xml": file(`<Skin>
			<Imports><Import url="../../main"/></Imports>
			<Forms><Form name="Shared"/></Forms>
		</Skin>`),
	}
	sink := diag.NewSink()
	sink.Record(true)
	reg := registry.New()
	reg.SetSkinsFolder("skins")
	w := New(fsys, WithSink(sink), WithRegistry(reg))
	require.NoError(t, w.LoadSkin("main", false, false))
	m := w.Model()
	a, _ := m.Metric("a", nil)
	b, _ := m.Metric("b", nil)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 2.0, b)
	assert.NotNil(t, m.Form("Shared", nil), "imported form")
	assert.Equal(t, []string{"skins/shared"}, m.ImportedPaths())
	crosswise := 0
	for _, warning := range sink.Warnings() {
		if assert.Contains(t, warning.Message, "crosswise") {
			crosswise++
		}
	}
	assert.Equal(t, 2, crosswise, "include cycle and import cycle")
	//
	v, err := w.CreateView("Main", nil)
	require.NoError(t, err)
	assert.Equal(t, "main", v.ViewAt(0).Name())
	require.NoError(t, w.SetScope("Panel"))
	v, err = w.CreateView("Main", nil)
	require.NoError(t, err)
	assert.Equal(t, "panel", v.ViewAt(0).Name())
	assert.Error(t, w.SetScope("Nope"))
	m2, ok := reg.Lookup("main")
	require.True(t, ok)
	assert.Same(t, m, m2)
}

func TestLoadErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	fsys := fstest.MapFS{"bad/skin.xml": file(`<Form/>`), "empty/readme.txt": file("x")}
	w := New(fsys)
	err := w.LoadSkin("nothere", false, false)
	assert.True(t, errors.Is(err, registry.ErrNotFound))
	err = w.LoadSkin("bad", false, false)
	assert.True(t, errors.Is(err, skin.ErrRootMismatch))
	_, err = w.CreateView("Main", nil)
	assert.True(t, errors.Is(err, ErrNotLoaded))
	assert.Equal(t, ErrNotLoaded, w.ReloadSkin(false))
}

func TestReloadKeepsImagesAndAppliesOverlays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 8, 8))))
	fsys := fstest.MapFS{
		"main/skin.xml": file(`<Skin>
			<Resources><Image name="icon" url="icon.png"/></Resources>
			<Forms><Form name="Main"><ImageView name="img" image="icon"/></Form></Forms>
		</Skin>`),
		"main/icon.png": &fstest.MapFile{Data: buf.Bytes()},
		"debug/skin.xml": file(`<Skin><Forms>
			<Form name="Main" override="true"><View name="debug"/></Form>
		</Forms></Skin>`),
	}
	conf := testconfig.Conf{"skin.warnings": "true", "skin.sortedsections": "true"}
	w := New(fsys, WithConfiguration(conf))
	require.NoError(t, w.LoadSkin("main", false, true))
	first := w.Model()
	assert.True(t, first.Forms().IsSorted())
	v, err := w.CreateView("Main", nil)
	require.NoError(t, err)
	img, _ := v.Find("img").Property("image")
	require.NotNil(t, img)
	var reloaded *skin.Model
	w.OnReload(func(m *skin.Model) { reloaded = m })
	delete(fsys, "main/icon.png")
	w.PushOverlay("/debug")
	require.NoError(t, w.ReloadSkin(true))
	assert.NotSame(t, first, w.Model())
	assert.Same(t, w.Model(), reloaded)
	assert.True(t, w.Model().Image("icon", nil).IsLoaded(), "decoded image is carried over")
	assert.Equal(t, 0, w.Sink().Count())
	v, err = w.CreateView("Main", nil)
	require.NoError(t, err)
	assert.Equal(t, "debug", v.ViewAt(0).Name(), "overlay replaces form")
	assert.False(t, w.Registry().IsReloading())
}

func TestPercentSizesFollowContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	v, _, _ := create(t, `
		<View name="box" size="0,0,200,100"><View name="half" size="10%,0,50%,25%"/></View>
		<zoom factor="2">
			<View name="big" size="0,0,200,100"><View name="part" size="0,0,50%,150%"/></View>
		</zoom>
		<View name="loose" width="50%"/>`, nil)
	half := v.Find("half").Size
	assert.Equal(t, 20, half.Left)
	assert.Equal(t, 100, half.Width())
	assert.Equal(t, 25, half.Height())
	part := v.Find("part").Size
	assert.Equal(t, 200, part.Width(), "percentages are not zoomed")
	assert.Equal(t, 200, part.Height(), "percentages are clipped to 100")
	assert.Equal(t, 0, v.Find("loose").Size.Width(), "form has no extent")
	ext := v.Find("half").Extent()
	assert.Equal(t, 100*dimen.PX, ext.Width())
	assert.Equal(t, 25*dimen.PX, ext.Height())
}

func TestCreateWindow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.wizard")
	defer teardown()
	//
	w, sink := newWizard(t, fstest.MapFS{"main/skin.xml": file(`<Skin>
		<Forms><Form name="Main" title="form"><Label name="l"/></Form></Forms>
		<WindowClasses>
			<WindowClass name="MainWindow" form="Main" title="Editor" workspace="desk"/>
			<WindowClass name="Lost" form="Main" workspace="nowhere"/>
			<WindowClass name="Broken" form="Nope"/>
		</WindowClasses>
		<Workspaces><Workspace name="desk"><Frame name="left" windowclass="MainWindow"/></Workspace></Workspaces>
	</Skin>`)})
	v, err := w.CreateWindow("MainWindow", nil)
	require.NoError(t, err)
	assert.Equal(t, "Main", v.Name())
	assert.Equal(t, "Editor", v.Title)
	require.Len(t, v.Views(), 1)
	assert.Equal(t, 0, sink.Count())
	v, err = w.CreateWindow("Lost", nil)
	require.NoError(t, err)
	assert.Equal(t, "form", v.Title)
	assert.Equal(t, 1, sink.Count(), "unknown workspace is warned about")
	_, err = w.CreateWindow("Broken", nil)
	assert.True(t, errors.Is(err, ErrFormNotFound))
	_, err = w.CreateWindow("Nothing", nil)
	assert.True(t, errors.Is(err, ErrWindowClassNotFound))
}
