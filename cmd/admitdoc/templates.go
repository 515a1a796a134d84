package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/catalog"
	"github.com/alnah/go-admitdoc/internal/yamlutil"
)

// Output formats for the templates command.
const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatHTML     = "html"
)

// runTemplates lists the catalog, describes one template or prints a
// context skeleton.
func runTemplates(args []string, env *Environment) error {
	flags, positional, err := parseTemplatesFlags(args)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(positional[1:], " "))
	}

	defs := admitdoc.Templates()
	if len(positional) == 1 {
		id, err := admitdoc.ParseTemplateID(positional[0])
		if err != nil {
			return err
		}
		def, err := admitdoc.GetTemplate(id)
		if err != nil {
			return err
		}
		defs = []admitdoc.TemplateDefinition{def}
	}

	if flags.skeleton {
		if len(positional) == 0 {
			return fmt.Errorf("%w: --skeleton needs a template id", ErrUsage)
		}
		out, err := yamlutil.Marshal(catalog.Skeleton(defs[0]))
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	switch strings.ToLower(flags.format) {
	case formatText:
		if len(positional) == 0 {
			printTemplateList(env.Stdout, defs)
		} else {
			printTemplateDetails(env.Stdout, defs[0])
		}
	case formatMarkdown, "md":
		fmt.Fprint(env.Stdout, catalog.Markdown(defs))
	case formatHTML:
		out, err := catalog.HTML(defs)
		if err != nil {
			return err
		}
		fmt.Fprint(env.Stdout, out)
	default:
		return fmt.Errorf("%w: %q (use %s, %s or %s)", ErrInvalidFormat, flags.format, formatText, formatMarkdown, formatHTML)
	}
	return nil
}

// printTemplateList prints one line per template: id, then name.
func printTemplateList(w io.Writer, defs []admitdoc.TemplateDefinition) {
	width := lo.Max(lo.Map(defs, func(d admitdoc.TemplateDefinition, _ int) int { return len(d.ID) }))
	for _, d := range defs {
		fmt.Fprintf(w, "%-*s  %s\n", width, d.ID, d.Name)
	}
}

// printTemplateDetails prints a template's description and tokens.
func printTemplateDetails(w io.Writer, def admitdoc.TemplateDefinition) {
	fmt.Fprintf(w, "%s (%s)\n", def.Name, def.ID)
	if def.Description != "" {
		fmt.Fprintf(w, "\n%s\n", def.Description)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tokens:")
	width := lo.Max(lo.Map(def.Tokens, func(t admitdoc.TemplateToken, _ int) int { return len(t.Path) }))
	for _, t := range def.Tokens {
		marker := " "
		if t.Required() {
			marker = "*"
		}
		fmt.Fprintf(w, "  %s %-*s  %s\n", marker, width, t.Path, t.Label)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "* required")
}
