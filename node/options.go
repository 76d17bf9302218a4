package node

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identDocumentEncoding struct{}
type identDocumentVersion struct{}

type DocumentOption interface {
	Option
	documentOption()
}

type documentOption struct{ Option }

func (*documentOption) documentOption() {}

// WithEncoding specifies the encoding declared by the document
func WithEncoding(v string) DocumentOption {
	return &documentOption{option.New(identDocumentEncoding{}, v)}
}

// WithVersion specifies the XML version declared by the document
func WithVersion(v string) DocumentOption {
	return &documentOption{option.New(identDocumentVersion{}, v)}
}
