package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-admitdoc"
	"github.com/alnah/go-admitdoc/internal/config"
	"github.com/alnah/go-admitdoc/internal/dateutil"
	"github.com/alnah/go-admitdoc/internal/hints"
	"github.com/alnah/go-admitdoc/internal/yamlutil"
)

// stdinPath reads the context from standard input.
const stdinPath = "-"

// readContext reads and decodes a YAML or JSON context file. Unquoted
// numbers with leading zeros are logged as warnings.
func readContext(path string, stdin io.Reader, logger *zap.Logger) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == stdinPath {
		data, err = io.ReadAll(io.LimitReader(stdin, int64(yamlutil.MaxInputSize)+1))
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- context path is user-provided
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadContext, path, err)
	}

	ctx, err := yamlutil.DecodeContext(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w%s", ErrInvalidContext, path, err, hints.ForContextFile())
	}
	for _, literal := range yamlutil.LeadingZeroNumbers(data) {
		logger.Warn("number with leading zeros is read as octal, quote it to keep the digits",
			zap.String("context", path),
			zap.String("value", literal),
		)
	}
	return ctx, nil
}

// buildContext applies --set overrides and the configured signatory to ctx.
func buildContext(ctx map[string]any, sets []string, staff config.StaffConfig, now time.Time) (admitdoc.RenderContext, error) {
	if ctx == nil {
		ctx = map[string]any{}
	}
	if err := applySets(ctx, sets, now); err != nil {
		return nil, err
	}
	return admitdoc.RenderContext(staff.MergeStaff(ctx)), nil
}

// applySets writes each "path=value" pair into ctx. Values "auto" and
// "auto:FORMAT" become the current date.
func applySets(ctx map[string]any, sets []string, now time.Time) error {
	for _, set := range sets {
		path, value, ok := strings.Cut(set, "=")
		path = strings.TrimSpace(path)
		if !ok || !validSetPath(path) {
			return fmt.Errorf("%w: %q (expected path=value, e.g. student.fullName=Jane)", ErrInvalidSet, set)
		}

		if isAutoDate(value) {
			resolved, err := dateutil.ResolveDate(value, now)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrInvalidSet, path, err)
			}
			value = resolved
		}

		if err := setPath(ctx, path, value); err != nil {
			return err
		}
	}
	return nil
}

// isAutoDate reports whether value uses the "auto" date syntax. Ordinary
// words such as "Automotive" are left alone.
func isAutoDate(value string) bool {
	lower := strings.ToLower(value)
	return lower == "auto" || strings.HasPrefix(lower, "auto:")
}

func validSetPath(path string) bool {
	if path == "" {
		return false
	}
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// setPath stores value at a dotted path, creating intermediate mappings.
// Overwriting a scalar with a mapping is refused.
func setPath(ctx map[string]any, path string, value string) error {
	parts := strings.Split(path, ".")
	node := ctx
	for i, p := range parts[:len(parts)-1] {
		switch next := node[p].(type) {
		case map[string]any:
			node = next
		case nil:
			child := map[string]any{}
			node[p] = child
			node = child
		default:
			return fmt.Errorf("%w: %s is not a mapping", ErrInvalidSet, strings.Join(parts[:i+1], "."))
		}
	}
	node[parts[len(parts)-1]] = value
	return nil
}
