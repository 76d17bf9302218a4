// Package build constructs entity trees declaratively.
//
//	doc, err := build.Document("fuc",
//		build.Attr("codigo", "M4310"),
//		build.Element("avaliacao",
//			build.Element("componente", build.Attr("nome", "Quizzes"), build.Attr("peso", "20%")),
//			build.Element("componente", build.Attr("nome", "Projeto"), build.Attr("peso", "80%")),
//		),
//	)
//
// Every item goes through the regular node API, so a description that
// violates a tree invariant fails with the same error the node package
// reports.
package build

import (
	"github.com/lestrrat-go/xmlom/node"
	"github.com/pkg/errors"
)

// Item is applied to the entity being built, in order.
type Item interface {
	apply(*node.Entity) error
}

type attrItem struct {
	name  string
	value string
}

func (a attrItem) apply(e *node.Entity) error {
	attr, err := node.NewAttribute(a.name, a.value)
	if err != nil {
		return err
	}
	return e.AddAttribute(attr)
}

type textItem string

func (t textItem) apply(e *node.Entity) error {
	return e.SetText(string(t))
}

type elementItem struct {
	name  string
	items []Item
}

func (el elementItem) apply(e *node.Entity) error {
	child, err := Entity(el.name, el.items...)
	if err != nil {
		return err
	}
	return e.AddChildren(child)
}

// Attr adds an attribute.
func Attr(name, value string) Item {
	return attrItem{name: name, value: value}
}

// Text sets the text content.
func Text(text string) Item {
	return textItem(text)
}

// Element adds a child entity built from items.
func Element(name string, items ...Item) Item {
	return elementItem{name: name, items: items}
}

// Entity builds a detached entity. The first failing item aborts the
// build.
func Entity(name string, items ...Item) (*node.Entity, error) {
	e, err := node.NewEntity(name)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.apply(e); err != nil {
			return nil, errors.Wrapf(err, "failed to build %s", name)
		}
	}
	return e, nil
}

// Document builds a version 1.0, UTF-8 document rooted at an entity
// named rootName.
func Document(rootName string, items ...Item) (*node.Document, error) {
	root, err := Entity(rootName, items...)
	if err != nil {
		return nil, err
	}
	return node.NewDocument(root)
}
