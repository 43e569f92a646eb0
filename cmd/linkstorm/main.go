// Package main is the entry point for the linkstorm rewrite harness.
//
// The harness reads a document, simulates the host's link capture with a
// URL and description supplied on the command line, dispatches the rewrite
// action, and writes the resulting document to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/linkstorm/internal/config"
	"github.com/dshills/linkstorm/internal/dispatcher"
	"github.com/dshills/linkstorm/internal/dispatcher/execctx"
	"github.com/dshills/linkstorm/internal/dispatcher/handler"
	linkhandler "github.com/dshills/linkstorm/internal/dispatcher/handlers/link"
	"github.com/dshills/linkstorm/internal/engine/buffer"
	"github.com/dshills/linkstorm/internal/engine/cursor"
	"github.com/dshills/linkstorm/internal/input"
	"github.com/dshills/linkstorm/internal/link/format"
	"github.com/dshills/linkstorm/internal/link/org"
	luahost "github.com/dshills/linkstorm/internal/plugin/lua"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	ConfigPath string
	DocType    string
	URL        string
	Desc       string
	File       string
}

// staticDoc reports a fixed document type for the harness buffer.
type staticDoc string

func (d staticDoc) DocType() string { return string(d) }

// flagCapture plays the host's native link-insertion routine, inserting a
// raw bracketed link at the cursor from command-line flags. An empty URL
// behaves like a cancelled capture.
type flagCapture struct {
	buf  *buffer.Buffer
	cur  *cursor.Cursor
	url  string
	desc string
}

func (c *flagCapture) InsertLink() error {
	if c.url == "" {
		return errors.New("capture cancelled: no url")
	}
	end, err := c.buf.Insert(c.cur.Offset(), org.Format(c.url, c.desc))
	if err != nil {
		return err
	}
	c.cur.SetOffset(end)
	return nil
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	registry := format.DefaultRegistry()
	if err := cfg.Apply(registry); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	host, err := luahost.NewHost(registry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer host.Close()

	for _, plugin := range cfg.Plugins {
		if err := host.LoadFile(plugin); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	buf, err := loadBuffer(opts.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cur := cursor.NewAt(buf.Len())

	docType := opts.DocType
	if docType == "" {
		docType = cfg.DefaultDocType
	}

	ctx := execctx.New().
		WithEngine(buf).
		WithCursor(cur).
		WithDocument(staticDoc(docType)).
		WithFormatters(registry).
		WithCapture(&flagCapture{buf: buf, cur: cur, url: opts.URL, desc: opts.Desc})

	d := dispatcher.New()
	d.RegisterNamespace(linkhandler.NewHandler())
	d.SetContext(ctx)

	result := d.Dispatch(input.Action{
		Name:   linkhandler.ActionRewriteLastInserted,
		Source: input.SourceAPI,
	})
	if result.IsError() {
		fmt.Fprintf(os.Stderr, "Error: %v\n", result.Error)
		return 1
	}
	if result.Status == handler.StatusNoOp && result.Message != "" {
		fmt.Fprintln(os.Stderr, result.Message)
	}

	fmt.Print(buf.Text())
	return 0
}

// loadBuffer reads the document from a file, or stdin when path is empty.
func loadBuffer(path string) (*buffer.Buffer, error) {
	if path == "" {
		return buffer.NewBufferFromReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return buffer.NewBufferFromReader(f)
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.DocType, "doctype", "", "Document type of the input (default from config)")
	flag.StringVar(&opts.DocType, "t", "", "Document type of the input (shorthand)")
	flag.StringVar(&opts.URL, "url", "", "URL to capture")
	flag.StringVar(&opts.Desc, "desc", "", "Description for the captured URL")
	flag.StringVar(&opts.File, "file", "", "Document to read (default stdin)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Linkstorm - document-type-aware link rewriting\n\n")
		fmt.Fprintf(os.Stderr, "Usage: linkstorm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  echo 'notes: ' | linkstorm -t text -url https://x.com -desc X\n")
		fmt.Fprintf(os.Stderr, "  linkstorm -file doc.html -t html -url https://x.com -desc X\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("Linkstorm %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	return opts
}
