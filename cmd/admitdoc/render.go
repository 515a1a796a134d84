package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-admitdoc"
)

// runRender renders one document from a template id and a context file.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseRenderFlags(args)
	if err != nil {
		return err
	}
	if len(positional) == 0 {
		return fmt.Errorf("%w: render needs a template id", ErrUsage)
	}
	if len(positional) > 1 {
		return fmt.Errorf("%w: unexpected arguments: %s", ErrUsage, strings.Join(positional[1:], " "))
	}

	id, err := admitdoc.ParseTemplateID(positional[0])
	if err != nil {
		return err
	}

	s, err := loadSettings(flags.common, flags.format, flags.out, env)
	if err != nil {
		return err
	}
	defer func() { _ = s.logger.Sync() }()

	var data map[string]any
	switch {
	case flags.context != "":
		if data, err = readContext(flags.context, env.Stdin, s.logger); err != nil {
			return err
		}
	case len(flags.sets) == 0:
		return fmt.Errorf("%w: pass a context file with -x or values with --set", ErrNoInput)
	}

	rc, err := buildContext(data, flags.sets, s.cfg.Staff, env.Now())
	if err != nil {
		return err
	}

	start := time.Now()
	doc, err := s.renderer.Render(ctx, id, rc, admitdoc.RenderOptions{
		FileName:      flags.fileName,
		TitleOverride: flags.title,
	})
	if err != nil {
		return err
	}

	pdfPath := resolvePDFPath(flags.out.output, s.cfg.Output.DefaultDir, flags.context, doc.PDF.FileName)
	written, err := writeDocument(doc, pdfPath, s.cfg.Output, s.css)
	if err != nil {
		return err
	}

	s.logger.Info("render complete",
		zap.String("template", string(id)),
		zap.Strings("files", written),
		zap.Duration("duration", time.Since(start)),
	)

	if flags.common.quiet {
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(env.Stdout, "Created %s\n", path)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "%s: %d page(s) in %v\n", id, doc.Pages, time.Since(start).Round(time.Millisecond))
	}
	return nil
}

// resolvePDFPath picks the PDF destination:
//   - -o ending in .pdf is the file itself
//   - -o otherwise is a directory
//   - then the configured default directory
//   - then the context file's directory (current directory for stdin)
func resolvePDFPath(flagOutput, defaultDir, contextPath, fileName string) string {
	if strings.EqualFold(filepath.Ext(flagOutput), ".pdf") {
		return flagOutput
	}

	dir := flagOutput
	if dir == "" {
		dir = defaultDir
	}
	if dir == "" && contextPath != "" && contextPath != stdinPath {
		dir = filepath.Dir(contextPath)
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, fileName)
}
