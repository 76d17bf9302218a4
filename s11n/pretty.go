package s11n

import (
	"fmt"
	"io"
	"strings"

	"github.com/lestrrat-go/xmlom/internal/stack"
	"github.com/lestrrat-go/xmlom/node"
)

// PrettyPrinter is a node.Visitor that produces the same output as
// Dumper.DumpDoc when driven by node.Walk.
type PrettyPrinter struct {
	dumper Dumper
	w      writer
	open   stack.Stack[*node.Entity]
	// the start tag of pending has been written but not yet closed,
	// because its attributes arrive as separate callbacks
	pending *node.Entity
}

var _ node.Visitor = (*PrettyPrinter)(nil)

func NewPrettyPrinter(out io.Writer, options ...DumpOption) *PrettyPrinter {
	return &PrettyPrinter{
		dumper: *NewDumper(options...),
		w:      writer{out: out},
	}
}

func (p *PrettyPrinter) indent() string {
	return strings.Repeat(p.dumper.indentString(), p.open.Len())
}

func (p *PrettyPrinter) VisitDocument(doc *node.Document) error {
	p.w.writeString(declaration(doc))
	return p.w.err
}

func (p *PrettyPrinter) VisitEntity(e *node.Entity) error {
	p.closeStartTag()
	p.w.writeString(p.indent())
	p.w.writeString("<")
	p.w.writeString(e.Name())
	p.pending = e
	p.open.Push(e)
	return p.w.err
}

func (p *PrettyPrinter) VisitAttribute(attr *node.Attribute) error {
	writeAttribute(&p.w, attr)
	return p.w.err
}

func (p *PrettyPrinter) LeaveEntity(e *node.Entity) error {
	p.closeStartTag()
	if top, ok := p.open.PopLast(); !ok || top != e {
		return fmt.Errorf("unbalanced LeaveEntity for %s", e.Name())
	}
	switch {
	case e.HasChildren():
		p.w.writeString(p.indent())
		fallthrough
	case e.Text() != "":
		p.w.writeString("</")
		p.w.writeString(e.Name())
		p.w.writeString(">\n")
	}
	return p.w.err
}

func (p *PrettyPrinter) closeStartTag() {
	e := p.pending
	if e == nil {
		return
	}
	p.pending = nil

	if isEmpty(e) {
		p.w.writeString("/>\n")
		return
	}
	p.w.writeString(">")
	p.w.writeString(e.Text())
	if e.HasChildren() {
		p.w.writeString("\n")
	}
}
