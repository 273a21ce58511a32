package domain

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testLayout() Layout {
	return Layout{
		Root:        "/work/test/integration",
		CasesDir:    "cases",
		CompiledDir: "compiled",
		ActualDir:   "actual",
		ExpectedDir: "expected",
		Extension:   ".pr",
	}
}

func TestLayout_NewTestCase(t *testing.T) {
	tc := testLayout().NewTestCase("hello")

	assert.Equal(t, "hello", tc.Name)
	assert.Equal(t, filepath.FromSlash("/work/test/integration/cases/hello.pr"), tc.SourcePath)
	assert.Equal(t, filepath.FromSlash("/work/test/integration/compiled/hello"), tc.ArtifactPath)
	assert.Equal(t, filepath.FromSlash("/work/test/integration/actual/hello.txt"), tc.ActualOutputPath)
	assert.Equal(t, filepath.FromSlash("/work/test/integration/expected/hello.txt"), tc.ExpectedOutputPath)
}

func TestLayout_NewTestCaseIsDeterministic(t *testing.T) {
	layout := testLayout()
	assert.Equal(t, layout.NewTestCase("fib"), layout.NewTestCase("fib"))
	assert.NotEqual(t, layout.NewTestCase("fib").ArtifactPath, layout.NewTestCase("fact").ArtifactPath)
}

func TestLayout_CaseName(t *testing.T) {
	layout := testLayout()

	tests := []struct {
		name     string
		fileName string
		want     string
		ok       bool
	}{
		{name: "plain fixture", fileName: "hello.pr", want: "hello", ok: true},
		{name: "with directory", fileName: "cases/loop.pr", want: "loop", ok: true},
		{name: "dotted name", fileName: "a.b.pr", want: "a.b", ok: true},
		{name: "wrong extension", fileName: "hello.txt", ok: false},
		{name: "extension only", fileName: ".pr", ok: false},
		{name: "extension as infix", fileName: "hello.pr.bak", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := layout.CaseName(tt.fileName)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommandStep_Describe(t *testing.T) {
	t.Run("compile step with environment", func(t *testing.T) {
		step := CommandStep{
			Program: "../../src/peryan",
			Args:    []string{"cases/hello.pr", "compiled/hello"},
			Env:     map[string]string{"PERYAN_RUNTIME_PATH": "../../runtime"},
		}
		assert.Equal(t, "PERYAN_RUNTIME_PATH=../../runtime ../../src/peryan cases/hello.pr compiled/hello", step.Describe())
		assert.Equal(t, []string{"PERYAN_RUNTIME_PATH=../../runtime"}, step.Environ())
	})

	t.Run("run step with redirect", func(t *testing.T) {
		step := CommandStep{Program: "compiled/hello", Stdout: "actual/hello.txt"}
		assert.Equal(t, "compiled/hello > actual/hello.txt", step.Describe())
		assert.Empty(t, step.Environ())
	})
}

func TestCaseOutcome(t *testing.T) {
	assert.True(t, NewPassed().Passed())

	failed := NewCommandFailed(CompileStep, "peryan x y", "exit status 1")
	assert.False(t, failed.Passed())
	assert.Equal(t, CommandFailed, failed.Kind)
	assert.Equal(t, 1, failed.StepIndex)

	mismatch := NewOutputMismatch("1\n", "2\n")
	assert.False(t, mismatch.Passed())
	assert.Equal(t, "1\n", mismatch.Actual)
	assert.Equal(t, "2\n", mismatch.Expected)

	cmpErr := NewComparisonFailed(errors.New("boom"))
	assert.False(t, cmpErr.Passed())
	assert.Equal(t, "comparison failed", cmpErr.Kind.String())
}

func TestHarnessSummary(t *testing.T) {
	t.Run("zero value succeeds", func(t *testing.T) {
		var s HarnessSummary
		assert.True(t, s.Succeeded())
		assert.Equal(t, 0, s.Total)
	})

	t.Run("counts only non-passing outcomes", func(t *testing.T) {
		var s HarnessSummary
		s.Record(NewPassed())
		s.Record(NewCommandFailed(RunStep, "x", ""))
		s.Record(NewOutputMismatch("a", "b"))
		s.Record(NewPassed())

		assert.Equal(t, 4, s.Total)
		assert.Equal(t, 2, s.Failed)
		assert.Equal(t, 2, s.Passed())
		assert.False(t, s.Succeeded())
	})
}

func TestErrors(t *testing.T) {
	t.Run("discovery error", func(t *testing.T) {
		base := errors.New("no such file or directory")
		err := NewDiscoveryError("cases", base)
		assert.Equal(t, "cannot discover test cases in cases: no such file or directory", err.Error())
		assert.Equal(t, base, err.Unwrap())
	})

	t.Run("comparison error", func(t *testing.T) {
		base := errors.New("permission denied")
		err := NewComparisonError("expected/hello.txt", base)
		assert.Equal(t, "cannot read expected/hello.txt: permission denied", err.Error())
		assert.True(t, errors.Is(err, base))
	})

	t.Run("config error", func(t *testing.T) {
		assert.Equal(t, "configuration error in field 'layout.extension': must start with a dot",
			NewConfigError("layout.extension", "must start with a dot", nil).Error())
		assert.Equal(t, "configuration error: bad file",
			NewConfigError("", "bad file", nil).Error())
	})

	t.Run("failures error", func(t *testing.T) {
		var err error = &FailuresError{Count: 3}
		var target *FailuresError
		assert.True(t, errors.As(err, &target))
		assert.Equal(t, "3 integration test(s) failed", err.Error())
	})
}
