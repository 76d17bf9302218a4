package node

import "regexp"

var attributeNameRx = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Attribute is a name/value pair owned by a single Entity.
type Attribute struct {
	name  string
	value string
}

// NewAttribute creates an attribute. The name must be non-empty and
// contain only letters, digits, underscores and dashes.
func NewAttribute(name, value string) (*Attribute, error) {
	if err := validateAttributeName(name); err != nil {
		return nil, opError("NewAttribute", name, err)
	}
	return &Attribute{name: name, value: value}, nil
}

func validateAttributeName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !attributeNameRx.MatchString(name) {
		return ErrInvalidArgument
	}
	return nil
}

func (a *Attribute) Name() string {
	return a.name
}

func (a *Attribute) Value() string {
	return a.value
}

// Clone returns a copy that shares nothing with a.
func (a *Attribute) Clone() *Attribute {
	return &Attribute{name: a.name, value: a.value}
}

func (a *Attribute) equal(other *Attribute) bool {
	return a.name == other.name && a.value == other.value
}
