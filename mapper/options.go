package mapper

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identTransform struct{}

type FieldOption interface {
	Option
	fieldOption()
}

type fieldOption struct{ Option }

func (*fieldOption) fieldOption() {}

// WithTransform replaces the default stringification of a field value.
func WithTransform(f Transform) FieldOption {
	return &fieldOption{option.New(identTransform{}, f)}
}
