package node

import (
	"regexp"
	"slices"

	"github.com/lestrrat-go/xmlom/internal/debug"
	"github.com/lestrrat-go/xmlom/internal/orderedmap"
)

var entityNameRx = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9]+$`)

// Entity is a node in the document tree. An entity holds either text or
// child entities, never both.
type Entity struct {
	name     string
	text     string
	attrs    *orderedmap.Map[string, *Attribute]
	children []*Entity
	// parent is only used to answer ancestry questions. The parent owns
	// the child through its children slice, never the other way around.
	parent *Entity
}

// NewEntity creates an orphan entity. The name must start with a letter,
// be at least two characters long, and contain only letters and digits.
func NewEntity(name string) (*Entity, error) {
	if err := validateEntityName(name); err != nil {
		return nil, opError("NewEntity", name, err)
	}
	return &Entity{
		name:  name,
		attrs: orderedmap.New[string, *Attribute](),
	}, nil
}

// NewTextEntity creates an orphan entity holding text.
func NewTextEntity(name, text string) (*Entity, error) {
	e, err := NewEntity(name)
	if err != nil {
		return nil, err
	}
	e.text = text
	return e, nil
}

func validateEntityName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !entityNameRx.MatchString(name) {
		return ErrInvalidArgument
	}
	return nil
}

func (e *Entity) Name() string {
	return e.name
}

func (e *Entity) Text() string {
	return e.text
}

// SetText replaces the text of the entity. Setting non-empty text on an
// entity that already has children fails with ErrTextChildConflict.
func (e *Entity) SetText(text string) error {
	if text != "" && len(e.children) > 0 {
		return opError("SetText", e.name, ErrTextChildConflict)
	}
	e.text = text
	return nil
}

// Parent returns the entity this one was added to, or nil.
func (e *Entity) Parent() *Entity {
	return e.parent
}

// Children returns a copy of the list of direct children.
func (e *Entity) Children() []*Entity {
	return slices.Clone(e.children)
}

func (e *Entity) HasChildren() bool {
	return len(e.children) > 0
}

// IsEquivalent reports whether both entities have the same name, the same
// text and the same set of attributes, regardless of attribute order.
func (e *Entity) IsEquivalent(other *Entity) bool {
	if other == nil {
		return false
	}
	if e.name != other.name || e.text != other.text {
		return false
	}
	if e.attrs.Len() != other.attrs.Len() {
		return false
	}
	for name, attr := range other.attrs.Range() {
		mine, ok := e.attrs.Get(name)
		if !ok || !mine.equal(attr) {
			return false
		}
	}
	return true
}

// ContainsEquivalent reports whether e or any of its descendants is
// equivalent to other.
func (e *Entity) ContainsEquivalent(other *Entity) bool {
	if e.IsEquivalent(other) {
		return true
	}
	for _, child := range e.children {
		if child.ContainsEquivalent(other) {
			return true
		}
	}
	return false
}

// Contains reports whether other is e itself or one of its descendants.
func (e *Entity) Contains(other *Entity) bool {
	if other == nil {
		return false
	}
	return e == other || other.isDescendantOf(e)
}

func (e *Entity) isDescendantOf(ancestor *Entity) bool {
	for cur := e.parent; cur != nil; cur = cur.parent {
		if cur == ancestor {
			return true
		}
	}
	return false
}

// AddChildren appends child to the list of children of e.
//
// The child may not be e, an ancestor of e, or something already below e.
// e may not hold text, and no entity in the subtree rooted at e may be
// equivalent to child. A child that belongs to another parent is moved.
func (e *Entity) AddChildren(child *Entity) error {
	if child == nil {
		return opError("AddChildren", e.name, ErrInvalidArgument)
	}
	if child == e || e.isDescendantOf(child) || child.isDescendantOf(e) {
		return opError("AddChildren", child.name, ErrDescendantCycle)
	}
	if e.text != "" {
		return opError("AddChildren", e.name, ErrTextChildConflict)
	}
	if e.ContainsEquivalent(child) {
		if debug.Enabled {
			debug.Printf("AddChildren: '%s' already has an equivalent of", e.name)
			debug.Dump(child.name, child.text, child.Attributes())
		}
		return opError("AddChildren", child.name, ErrDuplicateEquivalent)
	}

	if debug.Enabled {
		debug.Printf("AddChildren: '%s' -> '%s'", child.name, e.name)
	}

	if child.parent != nil {
		child.parent.detach(child)
	}
	e.children = append(e.children, child)
	child.parent = e
	return nil
}

func (e *Entity) detach(child *Entity) {
	if i := slices.Index(e.children, child); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	child.parent = nil
}

// RemoveChildren removes every entity named name from the subtree below
// e, at any depth. It fails with ErrNotFound if nothing was removed.
func (e *Entity) RemoveChildren(name string) error {
	if name == "" {
		return opError("RemoveChildren", name, ErrEmptyName)
	}
	if !e.removeChildrenNamed(name) {
		return opError("RemoveChildren", name, ErrNotFound)
	}
	return nil
}

func (e *Entity) removeChildrenNamed(name string) bool {
	var removed bool
	kept := make([]*Entity, 0, len(e.children))
	for _, child := range e.children {
		if child.name == name {
			if debug.Enabled {
				debug.Printf("RemoveChildren: detaching '%s' from '%s'", name, e.name)
			}
			child.parent = nil
			removed = true
			continue
		}
		kept = append(kept, child)
	}
	e.children = kept

	for _, child := range kept {
		if child.removeChildrenNamed(name) {
			removed = true
		}
	}
	return removed
}

// RenameChildren renames every entity named oldName in the subtree below
// e. It fails with ErrNotFound if no entity was renamed.
func (e *Entity) RenameChildren(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return opError("RenameChildren", oldName, ErrEmptyName)
	}
	if oldName == newName {
		return opError("RenameChildren", oldName, ErrNoOpRename)
	}
	if err := validateEntityName(newName); err != nil {
		return opError("RenameChildren", newName, err)
	}
	if !e.renameChildrenNamed(oldName, newName) {
		return opError("RenameChildren", oldName, ErrNotFound)
	}
	return nil
}

func (e *Entity) renameChildrenNamed(oldName, newName string) bool {
	var renamed bool
	for _, child := range e.children {
		if child.name == oldName {
			child.name = newName
			renamed = true
		}
	}
	for _, child := range e.children {
		if child.renameChildrenNamed(oldName, newName) {
			renamed = true
		}
	}
	return renamed
}
