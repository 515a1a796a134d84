package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admitdoc <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render one document from a template and a context file")
	fmt.Fprintln(w, "  batch       Render a template for many context files")
	fmt.Fprintln(w, "  templates   List templates and the fields they need")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'admitdoc help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admitdoc render <template> -x <context> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one document as PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  template    Template id, e.g. offerLetter or offer-letter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input:")
	fmt.Fprintln(w, "  -x, --context <path>      Context file (YAML or JSON, - for stdin)")
	fmt.Fprintln(w, "      --set <path=value>    Set a context value, repeatable")
	fmt.Fprintln(w, "                            \"auto\" or \"auto:FORMAT\" inserts today's date")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title (default: template name)")
	fmt.Fprintln(w, "      --file-name <s>       PDF file name (default: <template>-<student>.pdf)")
	printOutputFlags(w)
	printFormatFlags(w)
	printCommonFlags(w)
}

// printBatchUsage prints usage for the batch command.
func printBatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admitdoc batch <template> <file|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render one template for every context file found.")
	fmt.Fprintln(w, "Directories are searched recursively for .yaml, .yml and .json files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Batch:")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel renders (0 = auto)")
	fmt.Fprintln(w, "      --set <path=value>    Set a value in every context, repeatable")
	printOutputFlags(w)
	printFormatFlags(w)
	printCommonFlags(w)
}

// printTemplatesUsage prints usage for the templates command.
func printTemplatesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: admitdoc templates [template] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List templates, or describe one with the fields it needs.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, markdown, html")
	fmt.Fprintln(w, "      --skeleton            Print a YAML context skeleton for the template")
}

func printOutputFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (.pdf) or directory")
	fmt.Fprintln(w, "      --text                Also write the plain text rendering")
	fmt.Fprintln(w, "      --html                Also write the HTML rendering")
	fmt.Fprintln(w, "      --style <name>        HTML stylesheet: letter, plain, none (default: letter)")
}

func printFormatFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "  -l, --locale <tag>        Number formatting locale, e.g. en, de-DE")
	fmt.Fprintln(w, "  -d, --date-format <s>     Date format")
	fmt.Fprintln(w, "                            Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D")
	fmt.Fprintln(w, "                            Presets (case-insensitive): iso, european, us, long")
	fmt.Fprintln(w, "                            Use [text] to escape literals: [Due] DD/MM/YYYY")
	fmt.Fprintln(w, "      --currency-path <p>   Extra token path formatted as currency")
	fmt.Fprintln(w, "      --date-path <p>       Extra token path formatted as a date")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Configuration:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "batch":
		printBatchUsage(env.Stdout)
	case "templates":
		printTemplatesUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: admitdoc version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: admitdoc help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
