// Package xmlom is an in-memory object model for XML-like documents.
//
// Trees are built from node.Entity values, wrapped in a node.Document and
// mutated either entity by entity or document-wide. This package ties the
// tree to its serialized form: pretty printing, micro path queries and
// saving to a sink.
package xmlom

import (
	"bytes"
	"context"
	"log/slog"

	"github.com/lestrrat-go/xmlom/internal/tracelog"
	"github.com/lestrrat-go/xmlom/node"
	"github.com/lestrrat-go/xmlom/s11n"
	"github.com/lestrrat-go/xmlom/sink"
)

const Version = "v0.1.0"

// WithTraceLogger returns a context carrying a logger that the sinks and
// Save report to. A logger already present in ctx takes precedence.
func WithTraceLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return tracelog.WithTraceLogger(ctx, logger)
}

// PrettyPrint returns the declaration line followed by the tree, indented
// two spaces per level.
func PrettyPrint(doc *node.Document) (string, error) {
	var buf bytes.Buffer
	if err := node.Walk(doc, s11n.NewPrettyPrinter(&buf)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// QueryMicroXPath evaluates a slash separated list of child names starting
// below the root and returns each match as a single line fragment. No
// match yields an empty result.
func QueryMicroXPath(doc *node.Document, expression string) ([]string, error) {
	var d s11n.Dumper
	var result []string
	var buf bytes.Buffer
	for _, e := range doc.Query(expression) {
		buf.Reset()
		if err := d.DumpFragment(&buf, e); err != nil {
			return nil, err
		}
		result = append(result, buf.String())
	}
	return result, nil
}

// Write pretty prints doc and hands the result to s under name.
func Write(ctx context.Context, s sink.Sink, name string, doc *node.Document) error {
	content, err := PrettyPrint(doc)
	if err != nil {
		return err
	}
	return s.Write(ctx, name, content)
}

// Save pretty prints doc into the file at path.
func Save(ctx context.Context, doc *node.Document, path string, options ...sink.FileOption) error {
	s, err := sink.NewFileSink(options...)
	if err != nil {
		return err
	}
	if err := Write(ctx, s, path, doc); err != nil {
		tracelog.TraceError(ctx, err, "failed to save document", slog.String("path", path))
		return err
	}
	tracelog.TraceEvent(ctx, "document saved", slog.String("path", path))
	return nil
}
