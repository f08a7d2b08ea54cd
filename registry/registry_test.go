package registry

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pkg = &fstest.MapFile{Data: []byte("<Skin/>")}

func TestSearchPathPrecedence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.registry")
	defer teardown()
	//
	r := New()
	r.SetFrameworkResources("fw")
	r.SetAppResources("app")
	r.SetSkinsFolder("skins")
	r.AddSearchLocation("extra")
	r.AddDevLocation("/dev/work")
	r.AddSearchLocation("extra")
	paths := r.SearchPaths("themes/main")
	assert.Equal(t, []string{"dev/work", "extra", "skins", "themes/main", "app", "fw"}, paths)
}

func TestLocateSymbolic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.registry")
	defer teardown()
	//
	fsys := fstest.MapFS{
		"fw/shared.skin/skin.xml":   pkg,
		"app/shared/skin.xml":       pkg,
		"main/local/skin.xml":       pkg,
		"dev/shared/skin.xml":       pkg,
		"themes/dark.skin/skin.xml": pkg,
	}
	r := New()
	r.SetAppResources("app")
	r.SetFrameworkResources("fw")
	p, err := r.Locate("@shared", "main", fsys)
	require.NoError(t, err)
	assert.Equal(t, "app/shared", p, "application resources before framework")
	r.AddDevLocation("dev")
	p, _ = r.Locate("@shared", "main", fsys)
	assert.Equal(t, "dev/shared", p, "developer locations first")
	p, _ = r.Locate("@local", "main", fsys)
	assert.Equal(t, "main/local", p)
	_, err = r.Locate("@missing", "main", fsys)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, is %v", err)
	}
	r.MapScheme("theme", "themes")
	p, err = r.Locate("theme://dark", "main", fsys)
	require.NoError(t, err)
	assert.Equal(t, "themes/dark.skin", p)
	p, err = r.Locate("../themes/dark", "main", fsys)
	require.NoError(t, err)
	assert.Equal(t, "themes/dark.skin", p)
	_, err = r.Locate("nope://x", "main", fsys)
	assert.Error(t, err)
}

func TestRegisterAndOverlays(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.registry")
	defer teardown()
	//
	r := New()
	m1, m2 := skin.NewModel(nil), skin.NewModel(nil)
	r.Register("a", m1)
	r.Register("b", m2)
	r.Register("a", m2)
	assert.Equal(t, []string{"a", "b"}, r.Skins())
	m, ok := r.Lookup("a")
	require.True(t, ok)
	assert.Same(t, m2, m)
	r.Unregister("a")
	assert.Equal(t, []string{"b"}, r.Skins())
	r.AddOverlay("b", "@debug")
	r.AddOverlay("b", "@extra")
	r.RemoveOverlay("b", "@debug")
	assert.Equal(t, []string{"@extra"}, r.Overlays("b"))
	r.SetReloading(true)
	assert.True(t, r.IsReloading())
}

func TestConfigure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.registry")
	defer teardown()
	//
	conf := testconfig.Conf{
		"skin.searchpaths": "a b",
		"skin.devpaths":    "d",
		"skin.skinsfolder": "skins",
	}
	r := New()
	r.Configure(conf)
	assert.Equal(t, []string{"d", "a", "b", "skins"}, r.SearchPaths(""))
}

func TestReadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "skinwiz.registry")
	defer teardown()
	//
	r := New()
	err := r.ReadConfig(strings.NewReader(`
searchpaths: [shared]
fwresources: fw
schemes:
  theme: themes
overlays:
  main: ["@debug"]
`))
	require.NoError(t, err)
	assert.Equal(t, []string{"shared", "x", "fw"}, r.SearchPaths("x"))
	assert.Equal(t, []string{"@debug"}, r.Overlays("main"))
	fsys := fstest.MapFS{"themes/t/skin.xml": pkg}
	p, err := r.Locate("theme://t", "", fsys)
	require.NoError(t, err)
	assert.Equal(t, "themes/t", p)
	if err := r.ReadConfig(strings.NewReader("searchpaths: {")); err == nil {
		t.Errorf("expected malformed YAML to fail")
	}
}
