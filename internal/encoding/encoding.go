// Package encoding wraps around the charset support in
// golang.org/x/text/encoding. Documents always declare UTF-8, but a sink
// may be asked to store the serialized text in another charset.
package encoding

import (
	"errors"
	"io"
	"strings"

	enc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnknownCharset = errors.New("unknown charset")

// Load looks up a charset by name. It returns nil for unknown names.
func Load(name string) enc.Encoding {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return unicode.UTF8
	case "utf-16", "utf16":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	case "euc-jp":
		return japanese.EUCJP
	case "shift_jis", "shift-jis", "shiftjis", "cp932":
		return japanese.ShiftJIS
	case "iso-2022-jp":
		return japanese.ISO2022JP
	case "big5":
		return traditionalchinese.Big5
	case "euc-kr":
		return korean.EUCKR
	case "gbk":
		return simplifiedchinese.GBK
	case "iso-8859-1", "latin1", "windows-1252", "windows1252":
		return charmap.Windows1252
	case "iso-8859-15":
		return charmap.ISO8859_15
	case "windows-1250", "windows1250":
		return charmap.Windows1250
	case "windows-1251", "windows1251":
		return charmap.Windows1251
	case "koi8-r", "koi8r":
		return charmap.KOI8R
	case "macintosh":
		return charmap.Macintosh
	}
	return nil
}

// IsUTF8 reports whether name designates UTF-8.
func IsUTF8(name string) bool {
	return Load(name) == unicode.UTF8
}

// NewWriter returns a writer that encodes UTF-8 text into the named
// charset before handing it to out. Callers must Close the returned
// writer to flush buffered output.
func NewWriter(out io.Writer, name string) (io.WriteCloser, error) {
	e := Load(name)
	if e == nil {
		return nil, ErrUnknownCharset
	}
	return transform.NewWriter(out, e.NewEncoder()), nil
}
