package sink

import (
	"os"

	"github.com/lestrrat-go/option"
)

type Option = option.Interface

type identCharset struct{}
type identPerm struct{}

type FileOption interface {
	Option
	fileOption()
}

type fileOption struct{ Option }

func (*fileOption) fileOption() {}

// WithCharset specifies the charset the text is converted to before it is
// written. The default is UTF-8, which writes the text unchanged.
func WithCharset(v string) FileOption {
	return &fileOption{option.New(identCharset{}, v)}
}

// WithPerm specifies the permission bits used when the file is created
func WithPerm(v os.FileMode) FileOption {
	return &fileOption{option.New(identPerm{}, v)}
}
