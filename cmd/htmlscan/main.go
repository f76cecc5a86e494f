// Command htmlscan is a small demonstration driver for the scanner
// package: it reads a document from a file or stdin and prints the
// event sequence the tokenizer produces, one line per event.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlscan/reporter"
	"github.com/heathj/htmlscan/sax"
	"github.com/heathj/htmlscan/scanner"
	"github.com/heathj/htmlscan/source"
)

type options struct {
	Encoding      string `long:"encoding" description:"force the source encoding instead of auto-detecting it"`
	Augmentations bool   `long:"locations" description:"attach begin/end source locations to every event"`
	ReportErrors  bool   `long:"report-errors" description:"log recoverable diagnostics to stderr"`
	NamesElems    string `long:"names-elems" description:"element name case: default, upper, lower"`
	NamesAttrs    string `long:"names-attrs" description:"attribute name case: default, upper, lower"`
	Args          struct {
		Path string `positional-arg-name:"file" description:"HTML file to scan; omit to read stdin"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}

	var in io.Reader = os.Stdin
	if opts.Args.Path != "" {
		f, err := os.Open(opts.Args.Path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	cfg := scanner.DefaultConfig()
	cfg.Augmentations = opts.Augmentations
	cfg.ReportErrors = opts.ReportErrors
	cfg.NamesElems = scanner.ParseNameCase(opts.NamesElems)
	cfg.NamesAttrs = scanner.ParseNameCase(opts.NamesAttrs)

	handler := &printingHandler{}
	sc := scanner.New(cfg,
		scanner.WithHandler(handler),
		scanner.WithReporter(reporter.NewLogrus(logrus.StandardLogger())),
	)

	err := sc.SetInputSource(source.InputSource{
		SystemID: opts.Args.Path,
		Bytes:    in,
		Encoding: opts.Encoding,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := sc.ScanDocument(true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printingHandler is a sax.Handler that writes one line per event to
// stdout, in the style of the original scanner's XNI trace samples.
type printingHandler struct {
	sax.BaseHandler
}

func (printingHandler) StartDocument(loc sax.Locator, encoding string, augs *sax.Augmentations) error {
	fmt.Printf("startDocument encoding=%s\n", encoding)
	return nil
}

func (printingHandler) EndDocument(augs *sax.Augmentations) error {
	fmt.Println("endDocument")
	return nil
}

func (printingHandler) StartElement(name sax.QName, attrs sax.Attributes, augs *sax.Augmentations) error {
	fmt.Printf("startElement %s\n", name.Local)
	for _, a := range attrs {
		fmt.Printf("  %s=%q\n", a.Name.Local, a.Value)
	}
	return nil
}

func (printingHandler) EndElement(name sax.QName, augs *sax.Augmentations) error {
	fmt.Printf("endElement %s\n", name.Local)
	return nil
}

func (printingHandler) Characters(data []rune, augs *sax.Augmentations) error {
	fmt.Printf("characters %q\n", string(data))
	return nil
}

func (printingHandler) Comment(data []rune, augs *sax.Augmentations) error {
	fmt.Printf("comment %q\n", string(data))
	return nil
}
