package skindbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<Skin>
	<Styles><Style name="Plain"/></Styles>
	<Forms><Form name="Main"><Horizontal name="row"><Fancy name="custom" title="a &lt;b&gt;"/></Horizontal></Form></Forms>
</Skin>`

func parse(t *testing.T) *skin.Model {
	m, err := skin.ParseModel(strings.NewReader(doc), "skin.xml", &skin.PackageContext{})
	require.NoError(t, err)
	return m
}

func TestElementTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.skindbg")
	defer teardown()
	//
	s := ElementTree(parse(t))
	t.Logf("\n%s", s)
	assert.True(t, strings.HasPrefix(s, "[Skin]"), "root is labelled with its kind")
	assert.Contains(t, s, "[Form]  Main")
	assert.Contains(t, s, "custom (Fancy)")
}

func TestViewTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.skindbg")
	defer teardown()
	//
	root := view.New("Form", "Main")
	row := view.New("Horizontal", "row")
	root.AddView(row)
	row.AddView(view.New("Button", "ok"))
	s := ViewTree(root)
	t.Logf("\n%s", s)
	assert.True(t, strings.HasPrefix(s, "[Form]  Main"))
	assert.Contains(t, s, "[Horizontal]  row")
	assert.Contains(t, s, "[Button]  ok")
}

func TestToGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.skindbg")
	defer teardown()
	//
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(parse(t), &buf, true))
	dot := buf.String()
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, "node00001 -> node00002")
	assert.Contains(t, dot, "&lt;b&gt;", "attribute values are escaped")
	assert.Contains(t, dot, "title", "raw attributes of view elements are listed")
	buf.Reset()
	require.NoError(t, ToGraphViz(parse(t), &buf, false))
	assert.NotContains(t, buf.String(), "_attrs")
}
