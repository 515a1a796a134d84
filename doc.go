// Package admitdoc renders admissions correspondence (offer letters,
// interview invitations, rejection feedback and payment balance statements)
// from a plain data context into text, HTML and PDF.
//
// # Quick Start
//
//	doc, err := admitdoc.RenderDocumentTemplate(ctx, admitdoc.OfferLetter, admitdoc.RenderContext{
//	    "student": map[string]any{"fullName": "Jane Mwale"},
//	    "application": map[string]any{
//	        "programName":      "Registered Nursing",
//	        "intake":           "January 2026",
//	        "startDate":        "2026-01-15",
//	        "responseDeadline": "2025-12-01",
//	        "referenceNumber":  "MIHAS000123",
//	        "orientationDate":  "2026-01-10",
//	    },
//	    "staff": map[string]any{
//	        "fullName": "A. Banda",
//	        "title":    "Admissions Officer",
//	        "email":    "a.banda@mihas.edu.zm",
//	    },
//	}, admitdoc.RenderOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(doc.PDF.FileName, doc.PDF.Bytes, 0o644)
//
// # Rendering Pipeline
//
//  1. Template lookup (UnknownTemplateError for ids outside the catalog)
//  2. Required token check (MissingFieldsError listing every missing path)
//  3. Section composition into headings, paragraphs and bullet lists
//  4. Text and escaped HTML renderings of the composed sections
//  5. PDF layout with word wrap and automatic page breaks
//
// Text, HTML and PDF all derive from the same composed sections, so they
// always carry the same content.
//
// # Tokens
//
// Template strings reference the context as {{ namespace.field }}. Bullet
// lists can expand an array field into one bullet per element, with
// {{item}} or {{item.field}} inside the item template. Values are formatted
// by path: currency paths such as payment.amountDue get two decimals
// ("1,500.00"), date paths and ISO dates become long dates
// ("January 15, 2026"), lists are joined with ", ".
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := admitdoc.NewRenderer(
//	    admitdoc.WithLocale(language.German),
//	    admitdoc.WithDateFormat("european"),
//	    admitdoc.WithCurrencyPaths("payment.deposit"),
//	    admitdoc.WithLogger(logger),
//	)
//
// # Batch Rendering
//
// RenderBatch renders many contexts in parallel. Failures are reported per
// job and never cancel the other jobs:
//
//	results := r.RenderBatch(ctx, jobs, 0) // 0 picks a worker count from GOMAXPROCS
package admitdoc
