// Package sink stores serialized documents.
package sink

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lestrrat-go/xmlom/internal/encoding"
	"github.com/lestrrat-go/xmlom/internal/tracelog"
	"github.com/pkg/errors"
)

// Sink writes text to a named destination.
type Sink interface {
	Write(ctx context.Context, name, content string) error
}

const DefaultPerm os.FileMode = 0o644

// FileSink treats the destination name as a file path. Existing files
// are truncated.
type FileSink struct {
	charset string
	perm    os.FileMode
}

var _ Sink = (*FileSink)(nil)

func NewFileSink(options ...FileOption) (*FileSink, error) {
	s := &FileSink{
		charset: "UTF-8",
		perm:    DefaultPerm,
	}
	for _, option := range options {
		switch option.Ident() {
		case identCharset{}:
			s.charset = option.Value().(string)
		case identPerm{}:
			s.perm = option.Value().(os.FileMode)
		}
	}

	if encoding.Load(s.charset) == nil {
		return nil, errors.Wrapf(encoding.ErrUnknownCharset, "invalid charset %q", s.charset)
	}
	return s, nil
}

func (s *FileSink) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tracelog.TraceEvent(ctx, "writing document",
		slog.String("path", path),
		slog.String("charset", s.charset),
		slog.Int("size", len(content)),
	)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.perm)
	if err != nil {
		tracelog.TraceError(ctx, err, "failed to open destination", slog.String("path", path))
		return errors.Wrapf(err, "failed to open %s", path)
	}

	if err := s.writeTo(f, content); err != nil {
		_ = f.Close()
		tracelog.TraceError(ctx, err, "failed to write destination", slog.String("path", path))
		return errors.Wrapf(err, "failed to write %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}
	return nil
}

func (s *FileSink) writeTo(out io.Writer, content string) error {
	w, err := encoding.NewWriter(out, s.charset)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}
	return w.Close()
}

// WriterSink writes everything to a single io.Writer, ignoring the
// destination name.
type WriterSink struct {
	out io.Writer
}

var _ Sink = (*WriterSink)(nil)

func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

func (s *WriterSink) Write(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tracelog.TraceEvent(ctx, "writing document", slog.String("name", name), slog.Int("size", len(content)))
	if _, err := io.WriteString(s.out, content); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	return nil
}
