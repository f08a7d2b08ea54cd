package skin

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/skinwiz/diag"
)

// Parser reads skin XML into element trees. Tags are mapped to element kinds
// through a library; unknown tags produce generic view elements.
type Parser struct {
	Lib      *Library
	Sink     *diag.Sink
	FileName string // provenance recorded in every element
	Model    *Model // if set, children of the root go into this model
}

// Parse reads a document and returns its root element.
func (p *Parser) Parse(r io.Reader) (Element, error) {
	if p.Lib == nil {
		p.Lib = DefaultLibrary()
	}
	dec := xml.NewDecoder(r)
	var stack []Element
	var root Element
	var comment string
	for {
		line, _ := dec.InputPos()
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.FileName, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var parent Element
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			e := p.element(t, parent, root == nil)
			e.Base().SetOrigin(p.FileName, line)
			p.readAttributes(e, t)
			if comment != "" && e.Base().Comment() == "" {
				e.Base().SetComment(comment)
			}
			comment = ""
			if parent != nil && e.Base().Parent() == nil {
				if !parent.Meta().Accepts(e.Meta()) {
					p.Sink.Warn(e.Base().Origin(), "%s not expected inside %s", e.Meta().Name, parent.Meta().Name)
				}
				parent.Base().AddChild(e, -1)
			}
			if root == nil {
				root = e
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			if s := strings.TrimSpace(string(t)); s != "" && len(stack) > 0 {
				stack[len(stack)-1].Base().AppendText(s)
			}
		case xml.Comment:
			comment = strings.TrimSpace(string(t))
		}
	}
	if root == nil {
		return nil, fmt.Errorf("%s: document is empty", p.FileName)
	}
	tracer().Debugf("parsed %s", p.FileName)
	return root, nil
}

// element creates the element for a start tag. Section tags directly below
// a model resolve to the model's existing section.
func (p *Parser) element(t xml.StartElement, parent Element, isRoot bool) Element {
	tag := t.Name.Local
	if isRoot && p.Model != nil && strings.EqualFold(tag, MetaModel.Name) {
		return p.Model
	}
	if m, ok := parent.(*Model); ok {
		if s := m.Section(tag); s != nil {
			return s
		}
	}
	if e, ok := p.Lib.New(tag); ok {
		return e
	}
	tracer().Debugf("unknown tag <%s>, creating generic view", tag)
	return NewViewElement(tag)
}

func (p *Parser) readAttributes(e Element, t xml.StartElement) {
	raw := e.Base().Attributes()
	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
			continue
		}
		raw.Set(a.Name.Local, a.Value)
	}
	e.SetAttributes(raw)
}

// ParseModel reads a skin document into a new model. The root element
// must be <Skin>.
func ParseModel(r io.Reader, fileName string, ctx Context) (*Model, error) {
	m := NewModel(ctx)
	p := &Parser{FileName: fileName, Model: m}
	if ctx != nil {
		p.Lib, p.Sink = ctx.Library(), ctx.Sink()
	}
	root, err := p.Parse(r)
	if err != nil {
		return nil, err
	}
	if root != Element(m) {
		return nil, fmt.Errorf("%s: <%s>: %w", fileName, root.Meta().Name, ErrRootMismatch)
	}
	return m, nil
}

// ParseFile opens a document relative to dir within the model's package and
// parses it into a new model sharing m's context.
func (m *Model) ParseFile(dir, name string) (*Model, error) {
	f, path, err := m.Open(dir, name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseModel(f, path, m.Context())
}
