package node

import "errors"

// Visitor receives callbacks from Walk. For each entity, VisitEntity is
// called first, then VisitAttribute for each of its attributes in stored
// order, then the children are walked, then LeaveEntity is called.
type Visitor interface {
	VisitDocument(*Document) error
	VisitEntity(*Entity) error
	VisitAttribute(*Attribute) error
	LeaveEntity(*Entity) error
}

// Walk drives v over the document in pre-order. The first error returned
// by a callback stops the walk.
func Walk(doc *Document, v Visitor) error {
	if doc == nil {
		return errors.New("nil document")
	}
	if err := v.VisitDocument(doc); err != nil {
		return err
	}
	return walkEntity(doc.root, v)
}

func walkEntity(e *Entity, v Visitor) error {
	if err := v.VisitEntity(e); err != nil {
		return err
	}
	for _, attr := range e.attrs.Range() {
		if err := v.VisitAttribute(attr); err != nil {
			return err
		}
	}
	for _, child := range e.children {
		if err := walkEntity(child, v); err != nil {
			return err
		}
	}
	return v.LeaveEntity(e)
}

type WalkFunc func(*Entity) error

// WalkEntities calls f for e and every entity below it, in pre-order.
func WalkEntities(e *Entity, f WalkFunc) error {
	if e == nil {
		return errors.New("nil entity")
	}

	if err := f(e); err != nil {
		return err
	}
	for _, child := range e.children {
		if err := WalkEntities(child, f); err != nil {
			return err
		}
	}
	return nil
}
