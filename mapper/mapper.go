// Package mapper turns Go values into entity trees according to an
// explicit, per type Schema.
package mapper

import (
	"github.com/lestrrat-go/xmlom/node"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

// Transform converts a field value to the string stored in the tree.
type Transform func(any) string

// Percent appends a percent sign to the value.
func Percent(v any) string {
	return cast.ToString(v) + "%"
}

// Adapter receives the mapped entity and returns the entity to use in
// its place.
type Adapter func(*node.Entity) (*node.Entity, error)

// Field maps one part of a T onto the entity being built.
type Field[T any] interface {
	mapField(*node.Entity, T) error
}

// Schema describes how a T becomes an entity named Name. Fields are
// applied in order, then Adapter, if any.
type Schema[T any] struct {
	Name    string
	Fields  []Field[T]
	Adapter Adapter
}

// Map builds the entity for v.
func (s *Schema[T]) Map(v T) (*node.Entity, error) {
	e, err := node.NewEntity(s.Name)
	if err != nil {
		return nil, err
	}

	for _, f := range s.Fields {
		if err := f.mapField(e, v); err != nil {
			return nil, errors.Wrapf(err, "failed to map %s", s.Name)
		}
	}

	if s.Adapter == nil {
		return e, nil
	}
	adapted, err := s.Adapter(e)
	if err != nil {
		return nil, errors.Wrapf(err, "adapter for %s failed", s.Name)
	}
	return adapted, nil
}

// Document maps v and wraps the result in a document.
func Document[T any](s *Schema[T], v T, options ...node.DocumentOption) (*node.Document, error) {
	root, err := s.Map(v)
	if err != nil {
		return nil, err
	}
	return node.NewDocument(root, options...)
}

type valueField[T any] struct {
	name      string
	get       func(T) any
	transform Transform
}

func newValueField[T any](name string, get func(T) any, options []FieldOption) valueField[T] {
	f := valueField[T]{name: name, get: get}
	for _, option := range options {
		switch option.Ident() {
		case identTransform{}:
			f.transform = option.Value().(Transform)
		}
	}
	return f
}

// stringify returns false for nil values, which are not mapped at all.
func (f valueField[T]) stringify(v T) (string, bool, error) {
	value := f.get(v)
	if value == nil {
		return "", false, nil
	}
	if f.transform != nil {
		return f.transform(value), true, nil
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to convert field %s", f.name)
	}
	return s, true, nil
}

type attrField[T any] struct {
	valueField[T]
}

// Attr maps the value returned by get to an attribute. An attribute
// already present on the entity is left alone.
func Attr[T any](name string, get func(T) any, options ...FieldOption) Field[T] {
	return attrField[T]{newValueField(name, get, options)}
}

func (f attrField[T]) mapField(e *node.Entity, v T) error {
	s, ok, err := f.stringify(v)
	if err != nil || !ok {
		return err
	}
	if _, exists := e.Attribute(f.name); exists {
		return nil
	}
	attr, err := node.NewAttribute(f.name, s)
	if err != nil {
		return err
	}
	return e.AddAttribute(attr)
}

type elemField[T any] struct {
	valueField[T]
}

// Elem maps the value returned by get to a child entity holding it as
// text.
func Elem[T any](name string, get func(T) any, options ...FieldOption) Field[T] {
	return elemField[T]{newValueField(name, get, options)}
}

func (f elemField[T]) mapField(e *node.Entity, v T) error {
	s, ok, err := f.stringify(v)
	if err != nil || !ok {
		return err
	}
	child, err := node.NewTextEntity(f.name, s)
	if err != nil {
		return err
	}
	return addChild(e, child)
}

type eachField[T, U any] struct {
	get    func(T) []U
	schema *Schema[U]
}

// Each maps every element of the list returned by get with schema and
// adds the results as children.
func Each[T, U any](get func(T) []U, schema *Schema[U]) Field[T] {
	return eachField[T, U]{get: get, schema: schema}
}

func (f eachField[T, U]) mapField(e *node.Entity, v T) error {
	for _, item := range f.get(v) {
		child, err := f.schema.Map(item)
		if err != nil {
			return err
		}
		if err := addChild(e, child); err != nil {
			return err
		}
	}
	return nil
}

// addChild skips children equivalent to one already present directly
// under e.
func addChild(e, child *node.Entity) error {
	for _, existing := range e.Children() {
		if existing.IsEquivalent(child) {
			return nil
		}
	}
	return e.AddChildren(child)
}
