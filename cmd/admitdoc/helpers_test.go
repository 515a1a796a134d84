package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Environment and fixtures
// ---------------------------------------------------------------------------

// fixedNow is the clock used by CLI tests.
var fixedNow = time.Date(2025, time.November, 3, 10, 0, 0, 0, time.UTC)

// testEnv returns an Environment writing to buffers.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{
		Now:    func() time.Time { return fixedNow },
		Stdout: &stdout,
		Stderr: &stderr,
		Stdin:  bytes.NewReader(nil),
	}, &stdout, &stderr
}

const offerContextYAML = `student:
  fullName: Jane Mwale
application:
  programName: Registered Nursing
  intake: January 2026
  startDate: 2026-01-15
  responseDeadline: 2025-12-01
  referenceNumber: MIHAS000123
  orientationDate: 2026-01-10
staff:
  fullName: A. Banda
  title: Admissions Officer
  email: a.banda@mihas.edu.zm
`

// offerContextNoStaff lacks every staff.* field.
const offerContextNoStaff = `student:
  fullName: Peter Zulu
application:
  programName: Clinical Medicine
  intake: January 2026
  startDate: 2026-01-15
  responseDeadline: 2025-12-01
  referenceNumber: MIHAS000124
  orientationDate: 2026-01-10
`

// writeTestFile writes content under dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// assertPDF fails unless path holds a PDF.
func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Errorf("%s does not start with %%PDF-", path)
	}
}
