package node

import "github.com/lestrrat-go/xmlom/internal/debug"

// Attributes returns the attributes of the entity in insertion order.
func (e *Entity) Attributes() []*Attribute {
	list := make([]*Attribute, 0, e.attrs.Len())
	for _, attr := range e.attrs.Range() {
		list = append(list, attr)
	}
	return list
}

// Attribute looks up an attribute by name.
func (e *Entity) Attribute(name string) (*Attribute, bool) {
	return e.attrs.Get(name)
}

// AddAttribute appends a copy of attr to the entity. It fails with
// ErrDuplicateAttribute if an attribute with the same name exists.
func (e *Entity) AddAttribute(attr *Attribute) error {
	if attr == nil {
		return opError("AddAttribute", e.name, ErrInvalidArgument)
	}
	if err := e.attrs.Set(attr.name, attr.Clone()); err != nil {
		return opError("AddAttribute", attr.name, ErrDuplicateAttribute)
	}
	return nil
}

// AddAttributeRecursively sets attr on e and on every entity below it,
// overwriting the value where an attribute with the same name exists.
func (e *Entity) AddAttributeRecursively(attr *Attribute) {
	if attr == nil {
		return
	}
	e.upsertAttribute(attr)
	for _, child := range e.children {
		child.AddAttributeRecursively(attr)
	}
}

func (e *Entity) upsertAttribute(attr *Attribute) {
	if existing, ok := e.attrs.Get(attr.name); ok {
		existing.value = attr.value
		return
	}
	_ = e.attrs.Set(attr.name, attr.Clone())
}

// RemoveAttributeRecursively removes the attribute called name from e and
// every entity below it. It fails with ErrNotFound if no entity had it.
func (e *Entity) RemoveAttributeRecursively(name string) error {
	if name == "" {
		return opError("RemoveAttributeRecursively", name, ErrEmptyName)
	}
	if !e.removeAttributeEverywhere(name) {
		return opError("RemoveAttributeRecursively", name, ErrNotFound)
	}
	return nil
}

func (e *Entity) removeAttributeEverywhere(name string) bool {
	removed := e.attrs.Delete(name)
	if removed && debug.Enabled {
		debug.Printf("RemoveAttribute: '%s' from '%s'", name, e.name)
	}
	for _, child := range e.children {
		if child.removeAttributeEverywhere(name) {
			removed = true
		}
	}
	return removed
}

// RenameAttributeRecursively renames the attribute oldName to newName on
// e and every entity below it. If any entity carrying oldName already has
// newName the call fails with ErrDuplicateAttribute and nothing is renamed.
// It fails with ErrNotFound if no entity had oldName.
func (e *Entity) RenameAttributeRecursively(oldName, newName string) error {
	const op = "RenameAttributeRecursively"
	if err := validateRename(oldName, newName); err != nil {
		return opError(op, oldName, err)
	}
	if conflict := e.findRenameConflict(oldName, newName); conflict != nil {
		return opError(op, newName, ErrDuplicateAttribute)
	}
	if !e.renameAttributeEverywhere(oldName, newName) {
		return opError(op, oldName, ErrNotFound)
	}
	return nil
}

func validateRename(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return ErrEmptyName
	}
	if oldName == newName {
		return ErrNoOpRename
	}
	return validateAttributeName(newName)
}

// findRenameConflict returns the first entity in the subtree that carries
// both oldName and newName.
func (e *Entity) findRenameConflict(oldName, newName string) *Entity {
	if e.attrs.Has(oldName) && e.attrs.Has(newName) {
		return e
	}
	for _, child := range e.children {
		if found := child.findRenameConflict(oldName, newName); found != nil {
			return found
		}
	}
	return nil
}

func (e *Entity) renameAttributeEverywhere(oldName, newName string) bool {
	renamed := e.renameAttribute(oldName, newName) == nil
	for _, child := range e.children {
		if child.renameAttributeEverywhere(oldName, newName) {
			renamed = true
		}
	}
	return renamed
}

func (e *Entity) renameAttribute(oldName, newName string) error {
	attr, ok := e.attrs.Get(oldName)
	if !ok {
		return ErrNotFound
	}
	if err := e.attrs.Rename(oldName, newName); err != nil {
		return ErrDuplicateAttribute
	}
	attr.name = newName
	return nil
}

// UpdateAttributeName renames a single attribute of e.
func (e *Entity) UpdateAttributeName(oldName, newName string) error {
	const op = "UpdateAttributeName"
	if err := validateRename(oldName, newName); err != nil {
		return opError(op, oldName, err)
	}
	if !e.attrs.Has(oldName) {
		return opError(op, oldName, ErrNotFound)
	}
	if e.attrs.Has(newName) {
		return opError(op, newName, ErrDuplicateAttribute)
	}
	if err := e.renameAttribute(oldName, newName); err != nil {
		return opError(op, oldName, err)
	}
	return nil
}

// UpdateAttributeValue replaces the value of a single attribute of e.
func (e *Entity) UpdateAttributeValue(name, value string) error {
	if name == "" {
		return opError("UpdateAttributeValue", name, ErrEmptyName)
	}
	attr, ok := e.attrs.Get(name)
	if !ok {
		return opError("UpdateAttributeValue", name, ErrNotFound)
	}
	attr.value = value
	return nil
}
