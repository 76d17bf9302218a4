package node

import (
	"errors"
	"regexp"
	"strings"
)

const (
	DefaultVersion  = "1.0"
	DefaultEncoding = "UTF-8"
)

var versionRx = regexp.MustCompile(`^\d\.\d?$`)

// Document wraps the root entity of a tree together with the version and
// encoding written in the XML declaration.
type Document struct {
	version  string
	encoding string
	root     *Entity
}

// NewDocument creates a document owning root. Only version "1.0" and
// encoding "UTF-8" are accepted.
func NewDocument(root *Entity, options ...DocumentOption) (*Document, error) {
	version := DefaultVersion
	encoding := DefaultEncoding
	for _, option := range options {
		switch option.Ident() {
		case identDocumentVersion{}:
			version = option.Value().(string)
		case identDocumentEncoding{}:
			encoding = option.Value().(string)
		}
	}

	if root == nil {
		return nil, opError("NewDocument", "", ErrInvalidArgument)
	}
	if version != DefaultVersion || !versionRx.MatchString(version) {
		return nil, opError("NewDocument", version, ErrInvalidArgument)
	}
	if encoding != DefaultEncoding {
		return nil, opError("NewDocument", encoding, ErrInvalidArgument)
	}

	return &Document{
		version:  version,
		encoding: encoding,
		root:     root,
	}, nil
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) Encoding() string {
	return d.encoding
}

func (d *Document) Root() *Entity {
	return d.root
}

// AddEntity appends entity under the root. It fails with
// ErrDuplicateEquivalent if an equivalent entity exists anywhere in the
// document, the root included.
func (d *Document) AddEntity(entity *Entity) error {
	if entity == nil {
		return opError("AddEntity", "", ErrInvalidArgument)
	}
	if d.root.ContainsEquivalent(entity) {
		return opError("AddEntity", entity.name, ErrDuplicateEquivalent)
	}
	return d.root.AddChildren(entity)
}

// RemoveEntitiesGlobally removes every entity called name below the root.
func (d *Document) RemoveEntitiesGlobally(name string) error {
	return d.root.RemoveChildren(name)
}

// RenameEntity renames every entity called oldName below the root.
func (d *Document) RenameEntity(oldName, newName string) error {
	return d.root.RenameChildren(oldName, newName)
}

// AddGlobalAttribute sets attr on every entity of the document.
func (d *Document) AddGlobalAttribute(attr *Attribute) {
	d.root.AddAttributeRecursively(attr)
}

// RemoveGlobalAttribute removes the attribute called name from every
// entity of the document.
func (d *Document) RemoveGlobalAttribute(name string) error {
	return d.root.RemoveAttributeRecursively(name)
}

// RenameGlobalAttribute renames the attribute oldName on every entity of
// the document.
func (d *Document) RenameGlobalAttribute(oldName, newName string) error {
	return d.root.RenameAttributeRecursively(oldName, newName)
}

// UpdateGlobalAttributeName applies Entity.UpdateAttributeName to every
// entity of the document, skipping entities that lack oldName.
func (d *Document) UpdateGlobalAttributeName(oldName, newName string) error {
	if err := validateRename(oldName, newName); err != nil {
		return opError("UpdateGlobalAttributeName", oldName, err)
	}
	if conflict := d.root.findRenameConflict(oldName, newName); conflict != nil {
		return opError("UpdateGlobalAttributeName", newName, ErrDuplicateAttribute)
	}
	return WalkEntities(d.root, func(e *Entity) error {
		return skipNotFound(e.UpdateAttributeName(oldName, newName))
	})
}

// UpdateGlobalAttributeValue applies Entity.UpdateAttributeValue to every
// entity of the document, skipping entities that lack name.
func (d *Document) UpdateGlobalAttributeValue(name, value string) error {
	if name == "" {
		return opError("UpdateGlobalAttributeValue", name, ErrEmptyName)
	}
	return WalkEntities(d.root, func(e *Entity) error {
		return skipNotFound(e.UpdateAttributeValue(name, value))
	})
}

func skipNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

// Query evaluates a micro path expression: a list of entity names
// separated by '/', matched starting from the direct children of the
// root. Matches are returned in document order. An expression that
// matches nothing yields an empty result.
func (d *Document) Query(expression string) []*Entity {
	return queryEntities(d.root, strings.Split(expression, "/"))
}

func queryEntities(e *Entity, path []string) []*Entity {
	if len(path) == 0 {
		return nil
	}

	var matched []*Entity
	for _, child := range e.children {
		if child.name == path[0] {
			matched = append(matched, child)
		}
	}
	if len(path) == 1 {
		return matched
	}

	var result []*Entity
	for _, m := range matched {
		result = append(result, queryEntities(m, path[1:])...)
	}
	return result
}
