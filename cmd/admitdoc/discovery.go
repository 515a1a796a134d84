package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-admitdoc/internal/fileutil"
)

// contextFile is one context to render in a batch.
type contextFile struct {
	InputPath string
	OutputDir string
}

// discoverContexts expands inputs into context files. Directories are walked
// recursively and their layout is mirrored under outputDir. Without
// outputDir, documents land next to their context file.
func discoverContexts(inputs []string, outputDir string) ([]contextFile, error) {
	var files []contextFile
	for _, input := range inputs {
		found, err := discoverInput(input, outputDir)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no context files (%s) found in %s",
			ErrNoInput, strings.Join(fileutil.ContextExtensions, ", "), strings.Join(inputs, ", "))
	}
	return files, nil
}

func discoverInput(inputPath, outputDir string) ([]contextFile, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("discovering %s: %w", inputPath, err)
	}

	if !info.IsDir() {
		if !fileutil.IsContextFile(inputPath) {
			return nil, fmt.Errorf("%w: %s: context files must end in %s",
				ErrUsage, inputPath, strings.Join(fileutil.ContextExtensions, ", "))
		}
		return []contextFile{{InputPath: inputPath, OutputDir: resolveOutputDir(inputPath, outputDir, "")}}, nil
	}

	var files []contextFile
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !fileutil.IsContextFile(path) {
			return nil
		}
		files = append(files, contextFile{InputPath: path, OutputDir: resolveOutputDir(path, outputDir, inputPath)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("discovering %s: %w", inputPath, err)
	}
	return files, nil
}

// resolveOutputDir returns the directory a context's documents go to.
func resolveOutputDir(inputPath, outputDir, baseInputDir string) string {
	if outputDir == "" {
		return filepath.Dir(inputPath)
	}
	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath))
		}
	}
	return outputDir
}
