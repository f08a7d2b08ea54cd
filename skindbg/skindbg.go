package skindbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/skinwiz/attrs"
	"github.com/npillmayer/skinwiz/skin"
	"github.com/npillmayer/skinwiz/view"
	tp "github.com/xlab/treeprint"
)

// ElementTree renders the element tree under e as indented text. Every
// element is listed with its kind and name.
func ElementTree(e skin.Element) string {
	p := tp.New()
	p.SetMetaValue(e.Meta().Name)
	p.SetValue(elementLabel(e))
	for _, ch := range e.Base().Children() {
		elements(p, ch)
	}
	return p.String()
}

func elements(p tp.Tree, e skin.Element) {
	if e.Base().Count() == 0 {
		p.AddMetaNode(e.Meta().Name, elementLabel(e))
		return
	}
	branch := p.AddMetaBranch(e.Meta().Name, elementLabel(e))
	for _, ch := range e.Base().Children() {
		elements(branch, ch)
	}
}

func elementLabel(e skin.Element) string {
	if ve, ok := e.(interface{ Class() string }); ok && ve.Class() != e.Meta().Name {
		return fmt.Sprintf("%s (%s)", e.Base().Name(), ve.Class())
	}
	return e.Base().Name()
}

// ViewTree renders a view tree as indented text.
func ViewTree(v *view.View) string {
	p := tp.New()
	p.SetMetaValue(v.Class)
	p.SetValue(viewLabel(v))
	for _, ch := range v.Views() {
		views(p, ch)
	}
	return p.String()
}

func views(p tp.Tree, v *view.View) {
	if v.Count() == 0 {
		p.AddMetaNode(v.Class, viewLabel(v))
		return
	}
	branch := p.AddMetaBranch(v.Class, viewLabel(v))
	for _, ch := range v.Views() {
		views(branch, ch)
	}
}

func viewLabel(v *view.View) string {
	label := v.Name()
	if !v.Size.IsEmpty() {
		label += " [" + v.Size.String() + "]"
	}
	if s := v.Style(); s != nil {
		label += " style=" + s.Name
	}
	return label
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParams struct {
	Fontname  string
	NodeTmpl  *template.Template
	EdgeTmpl  *template.Template
	AttrsTmpl *template.Template
	WithAttrs bool
}

type node struct {
	E    skin.Element
	Name string
}

type edge struct {
	N1, N2 node
}

type attrTable struct {
	Name  string
	Pairs [][2]string
}

// ToGraphViz outputs a diagram for a skin element tree in GraphViz (DOT)
// format. If withAttrs is set, every element is connected to a table of
// its attributes.
func ToGraphViz(e skin.Element, w io.Writer, withAttrs bool) error {
	head := template.Must(template.New("skin").Parse(graphHeadTmpl))
	params := graphParams{Fontname: "Helvetica", WithAttrs: withAttrs}
	params.NodeTmpl = template.Must(template.New("element").Funcs(
		template.FuncMap{
			"kind": func(e skin.Element) string { return e.Meta().Name },
			"name": func(e skin.Element) string { return shortText(e.Base().Name()) },
		}).Parse(elementNodeTmpl))
	params.EdgeTmpl = template.Must(template.New("edge").Parse(elementEdgeTmpl))
	params.AttrsTmpl = template.Must(template.New("attrs").Parse(attrsTmpl))
	if err := head.Execute(w, params); err != nil {
		return err
	}
	dict := make(map[skin.Element]string, 256)
	if err := nodes(e, w, dict, &params); err != nil {
		return err
	}
	_, err := w.Write([]byte("}\n"))
	return err
}

func nodes(e skin.Element, w io.Writer, dict map[skin.Element]string, params *graphParams) error {
	if err := elementNode(e, w, dict, params); err != nil {
		return err
	}
	for _, ch := range e.Base().Children() {
		if err := nodes(ch, w, dict, params); err != nil {
			return err
		}
		if err := params.EdgeTmpl.Execute(w, edge{node{e, dict[e]}, node{ch, dict[ch]}}); err != nil {
			return err
		}
	}
	return nil
}

func elementNode(e skin.Element, w io.Writer, dict map[skin.Element]string, params *graphParams) error {
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[e] = name
	if err := params.NodeTmpl.Execute(w, &node{e, name}); err != nil {
		return err
	}
	if !params.WithAttrs {
		return nil
	}
	a := attrs.NewMutable()
	e.GetAttributes(a)
	if a.Count() == 0 {
		return nil
	}
	table := attrTable{Name: name}
	for i := 0; i < a.Count(); i++ {
		table.Pairs = append(table.Pairs, [2]string{a.NameAt(i), htmlEscape(a.StringAt(i))})
	}
	return params.AttrsTmpl.Execute(w, table)
}

// Dotty is a helper for testing. Given a skin element and a testing.T, it
// will create a GraphViz image of the element tree under e and write it to
// a file in the current folder, choosing a unique file name. The image is
// in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(e skin.Element, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "skin.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing skin digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(e, tmpfile, true); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func shortText(s string) string {
	if len(s) > 16 {
		s = s[:16] + "..."
	}
	return s
}

var htmlReplacer = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func htmlEscape(s string) string {
	return htmlReplacer.Replace(shortText(s))
}

// --- Templates -------------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const elementNodeTmpl = `{{ .Name }}	[ label={{ printf "%s\n%s" (kind .E) (name .E) | printf "%q" }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
`

const elementEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`

const attrsTmpl = `{{ .Name }}_attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range .Pairs }}
      <tr><td align="right">{{ index . 0 }}:</td><td>{{ index . 1 }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ .Name }} -> {{ .Name }}_attrs [dir=none weight=1 style="dashed"] ;
`
