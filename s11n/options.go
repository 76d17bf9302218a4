package s11n

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identIndent struct{}

// DumpOption configures a Dumper or a PrettyPrinter
type DumpOption interface {
	Option
	dumpOption()
}

type dumpOption struct{ Option }

func (*dumpOption) dumpOption() {}

// WithIndent specifies the string written once per depth level in front
// of each tag. The default is two spaces.
func WithIndent(v string) DumpOption {
	return &dumpOption{option.New(identIndent{}, v)}
}
