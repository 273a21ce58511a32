package domain

import (
	"path/filepath"
	"strings"
)

// Layout describes where fixtures, artifacts and outputs live under the harness root
type Layout struct {
	Root        string // Harness working directory
	CasesDir    string // Fixture sources, e.g. "cases"
	CompiledDir string // Compiled artifacts, e.g. "compiled"
	ActualDir   string // Captured run output, e.g. "actual"
	ExpectedDir string // Golden files, e.g. "expected"
	Extension   string // Fixture source extension including the dot, e.g. ".pr"
}

// CasesPath returns the directory scanned for fixtures
func (l Layout) CasesPath() string {
	return filepath.Join(l.Root, l.CasesDir)
}

// NewTestCase derives every path of a case from its name
func (l Layout) NewTestCase(name string) TestCase {
	return TestCase{
		Name:               name,
		SourcePath:         filepath.Join(l.Root, l.CasesDir, name+l.Extension),
		ArtifactPath:       filepath.Join(l.Root, l.CompiledDir, name),
		ActualOutputPath:   filepath.Join(l.Root, l.ActualDir, name+".txt"),
		ExpectedOutputPath: filepath.Join(l.Root, l.ExpectedDir, name+".txt"),
	}
}

// CaseName strips the directory and the fixture extension from a file name.
// The second result is false when the file does not carry the extension.
func (l Layout) CaseName(fileName string) (string, bool) {
	base := filepath.Base(fileName)
	if !strings.HasSuffix(base, l.Extension) {
		return "", false
	}
	name := strings.TrimSuffix(base, l.Extension)
	if name == "" {
		return "", false
	}
	return name, true
}

// TestCase identifies one fixture and the files the harness reads and writes for it
type TestCase struct {
	Name               string // Fixture file name without extension
	SourcePath         string // Input program
	ArtifactPath       string // Binary produced by the compiler
	ActualOutputPath   string // Captured stdout of the artifact
	ExpectedOutputPath string // Golden file
}
