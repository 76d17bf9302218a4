package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xmlom"
	"github.com/lestrrat-go/xmlom/build"
	"github.com/lestrrat-go/xmlom/internal/cliutil"
	"github.com/lestrrat-go/xmlom/node"
	"github.com/lestrrat-go/xmlom/s11n"
	"github.com/lestrrat-go/xmlom/sink"
	"github.com/pkg/errors"
)

type cmdopts struct {
	Query     []string `short:"q" long:"query" description:"print the fragments matching a slash separated path (repeatable)"`
	Output    string   `short:"o" long:"output" description:"save the document to this file instead of printing it"`
	Charset   string   `long:"charset" default:"UTF-8" description:"charset used when saving with --output"`
	Structure bool     `long:"structure" description:"print an outline of the tree instead of XML"`
	Verbose   bool     `short:"v" long:"verbose" description:"log what is being done to stderr"`
	Version   bool     `long:"version" description:"display the version of the library"`
}

type app struct {
	stdin      io.Reader
	stdinPiped bool
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	a := &app{
		stdin:      os.Stdin,
		stdinPiped: cliutil.StdinIsPiped(),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

func (a *app) showVersion() {
	fmt.Fprintf(a.stdout, "xmlom: using xmlom version %s\n", xmlom.Version)
}

func (a *app) showUsage() {
	fmt.Fprintf(a.stderr, `Usage : xmlom [options] TREEfiles ...
	Build the documents described by the YAML tree files (or stdin)
	and print them as XML
	-q, --query PATH : print the fragments matching PATH, e.g. fuc/avaliacao/componente
	-o, --output FILE : save the document to FILE
	--charset NAME : charset used when saving (default UTF-8)
	--structure : print an outline of the tree
	-v, --verbose : log to stderr
	--version : display the version of the library
`)
}

func (a *app) run(ctx context.Context, argv []string) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, argv)
	if err != nil {
		a.showUsage()
		return 1
	}

	if opts.Version {
		a.showVersion()
		return 0
	}

	if opts.Verbose {
		ctx = xmlom.WithTraceLogger(ctx, slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	var inputs []string
	switch {
	case len(args) > 0: // filename present
		inputs = args
	case a.stdinPiped:
		inputs = []string{"-"}
	default:
		a.showUsage()
		return 1
	}

	if opts.Output != "" && len(inputs) > 1 {
		fmt.Fprintf(a.stderr, "--output accepts a single input, got %d\n", len(inputs))
		return 1
	}

	for _, name := range inputs {
		doc, err := a.load(name)
		if err != nil {
			fmt.Fprintf(a.stderr, "%s\n", err)
			return 1
		}
		if err := a.process(ctx, &opts, doc); err != nil {
			fmt.Fprintf(a.stderr, "%s: %s\n", name, err)
			return 1
		}
	}
	return 0
}

func (a *app) load(name string) (*node.Document, error) {
	if name == "-" {
		return build.ReadYAML(a.stdin)
	}

	fh, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", name)
	}
	defer fh.Close()

	doc, err := build.ReadYAML(fh)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", name)
	}
	return doc, nil
}

func (a *app) process(ctx context.Context, opts *cmdopts, doc *node.Document) error {
	switch {
	case len(opts.Query) > 0:
		for _, expr := range opts.Query {
			fragments, err := xmlom.QueryMicroXPath(doc, expr)
			if err != nil {
				return err
			}
			for _, fragment := range fragments {
				if _, err := fmt.Fprintln(a.stdout, fragment); err != nil {
					return err
				}
			}
		}
		return nil
	case opts.Structure:
		var d s11n.Dumper
		return d.DumpStructure(a.stdout, doc)
	case opts.Output != "":
		return xmlom.Save(ctx, doc, opts.Output, sink.WithCharset(opts.Charset))
	default:
		return xmlom.Write(ctx, sink.NewWriterSink(a.stdout), "stdout", doc)
	}
}
