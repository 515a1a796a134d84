package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// formatFlags holds value formatting flags.
type formatFlags struct {
	locale        string
	dateFormat    string
	currencyPaths []string
	datePaths     []string
}

// outputFlags holds output destination flags.
type outputFlags struct {
	output string
	text   bool // also write .txt
	html   bool // also write .html
	style  string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	format   formatFlags
	out      outputFlags
	context  string
	title    string
	fileName string
	sets     []string
}

// batchFlags holds all flags for the batch command.
type batchFlags struct {
	common  commonFlags
	format  formatFlags
	out     outputFlags
	workers int
	sets    []string
}

// templatesFlags holds flags for the templates command.
type templatesFlags struct {
	format   string
	skeleton bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addFormatFlags adds value formatting flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.StringVarP(&f.locale, "locale", "l", "", "number formatting locale, e.g. en, de-DE")
	fs.StringVarP(&f.dateFormat, "date-format", "d", "", "date preset or format (iso, european, us, long, DD/MM/YYYY)")
	fs.StringSliceVar(&f.currencyPaths, "currency-path", nil, "extra token path formatted as currency (repeatable)")
	fs.StringSliceVar(&f.datePaths, "date-path", nil, "extra token path formatted as a date (repeatable)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file (.pdf) or directory")
	fs.BoolVar(&f.text, "text", false, "also write the plain text rendering")
	fs.BoolVar(&f.html, "html", false, "also write the HTML rendering")
	fs.StringVar(&f.style, "style", "", "HTML stylesheet: letter, plain, none or a name in output.styleDir")
}

// newFlagSet returns a silent FlagSet; parse errors are reported by runMain.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// parseError wraps pflag errors so they map to ExitUsage. ErrHelp passes
// through unchanged.
func parseError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string) (*renderFlags, []string, error) {
	fs := newFlagSet("render")
	f := &renderFlags{}

	fs.StringVarP(&f.context, "context", "x", "", "context file (YAML or JSON, - for stdin)")
	fs.StringVar(&f.title, "title", "", "document title (default: template name)")
	fs.StringVar(&f.fileName, "file-name", "", "PDF file name (default: <template>-<student>.pdf)")
	fs.StringArrayVar(&f.sets, "set", nil, "set a context value: path=value (repeatable)")

	addOutputFlags(fs, &f.out)
	addFormatFlags(fs, &f.format)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseBatchFlags parses batch command flags and returns positional args.
func parseBatchFlags(args []string) (*batchFlags, []string, error) {
	fs := newFlagSet("batch")
	f := &batchFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renders (0 = auto)")
	fs.StringArrayVar(&f.sets, "set", nil, "set a value in every context: path=value (repeatable)")

	addOutputFlags(fs, &f.out)
	addFormatFlags(fs, &f.format)
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}

// parseTemplatesFlags parses templates command flags and returns positional args.
func parseTemplatesFlags(args []string) (*templatesFlags, []string, error) {
	fs := newFlagSet("templates")
	f := &templatesFlags{}

	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, markdown, html")
	fs.BoolVar(&f.skeleton, "skeleton", false, "print a YAML context skeleton for the template")

	if err := fs.Parse(args); err != nil {
		return nil, nil, parseError(err)
	}
	return f, fs.Args(), nil
}
