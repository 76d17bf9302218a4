// Package s11n serializes entity trees to text. Attribute values and text
// are written verbatim; no escaping is performed.
package s11n

import (
	"io"
	"strings"

	"github.com/lestrrat-go/xmlom/node"
)

const DefaultIndent = "  "

// Dumper writes documents and entities. The zero value indents with
// DefaultIndent.
type Dumper struct {
	indent    string
	indentSet bool
}

func NewDumper(options ...DumpOption) *Dumper {
	var d Dumper
	for _, option := range options {
		switch option.Ident() {
		case identIndent{}:
			d.indent = option.Value().(string)
			d.indentSet = true
		}
	}
	return &d
}

func (d *Dumper) indentString() string {
	if !d.indentSet {
		return DefaultIndent
	}
	return d.indent
}

// writer remembers the first write error so that the dump routines can
// write unconditionally and check once at the end.
type writer struct {
	out io.Writer
	err error
}

func (w *writer) writeString(s string) {
	if w.err != nil {
		return
	}
	_, w.err = io.WriteString(w.out, s)
}

func declaration(doc *node.Document) string {
	return `<?xml version="` + doc.Version() + `" encoding="` + doc.Encoding() + `"?>` + "\n"
}

func startTag(w *writer, e *node.Entity) {
	w.writeString("<")
	w.writeString(e.Name())
	for _, attr := range e.Attributes() {
		writeAttribute(w, attr)
	}
}

func writeAttribute(w *writer, attr *node.Attribute) {
	w.writeString(" ")
	w.writeString(attr.Name())
	w.writeString(`="`)
	w.writeString(attr.Value())
	w.writeString(`"`)
}

func isEmpty(e *node.Entity) bool {
	return !e.HasChildren() && e.Text() == ""
}

// DumpDoc writes the XML declaration followed by the indented tree.
func (d *Dumper) DumpDoc(out io.Writer, doc *node.Document) error {
	w := &writer{out: out}
	w.writeString(declaration(doc))
	d.dumpEntity(w, doc.Root(), 0)
	return w.err
}

// DumpEntity writes e and its subtree, indenting e itself depth times.
func (d *Dumper) DumpEntity(out io.Writer, e *node.Entity, depth int) error {
	w := &writer{out: out}
	d.dumpEntity(w, e, depth)
	return w.err
}

func (d *Dumper) dumpEntity(w *writer, e *node.Entity, depth int) {
	indent := strings.Repeat(d.indentString(), depth)
	w.writeString(indent)
	startTag(w, e)

	if isEmpty(e) {
		w.writeString("/>\n")
		return
	}

	w.writeString(">")
	w.writeString(e.Text())
	if e.HasChildren() {
		w.writeString("\n")
		for _, child := range e.Children() {
			d.dumpEntity(w, child, depth+1)
		}
		w.writeString(indent)
	}
	w.writeString("</")
	w.writeString(e.Name())
	w.writeString(">\n")
}

// DumpFragment writes e and its subtree on a single line, without a
// declaration and without indentation.
func (d *Dumper) DumpFragment(out io.Writer, e *node.Entity) error {
	w := &writer{out: out}
	dumpFragment(w, e)
	return w.err
}

func dumpFragment(w *writer, e *node.Entity) {
	startTag(w, e)
	if isEmpty(e) {
		w.writeString("/>")
		return
	}
	w.writeString(">")
	w.writeString(e.Text())
	for _, child := range e.Children() {
		dumpFragment(w, child)
	}
	w.writeString("</")
	w.writeString(e.Name())
	w.writeString(">")
}

// DumpStructure writes a human readable listing of the tree: one line per
// entity with its text, followed by one line per attribute.
func (d *Dumper) DumpStructure(out io.Writer, doc *node.Document) error {
	w := &writer{out: out}
	w.writeString("Document (Version: " + doc.Version() + ", Encoding: " + doc.Encoding() + ")\n")
	d.dumpStructure(w, doc.Root(), "")
	return w.err
}

func (d *Dumper) dumpStructure(w *writer, e *node.Entity, prefix string) {
	w.writeString(prefix + e.Name())
	if text := e.Text(); text != "" {
		w.writeString(" " + text)
	}
	w.writeString("\n")
	for _, attr := range e.Attributes() {
		w.writeString(prefix + " " + attr.Name() + ": " + attr.Value() + "\n")
	}
	for _, child := range e.Children() {
		d.dumpStructure(w, child, prefix+d.indentString())
	}
}
