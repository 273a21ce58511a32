package execution

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pit/internal/domain"
)

// Pipeline compiles a case and runs the resulting artifact
type Pipeline struct {
	runner     ProcessRunner
	compiler   string
	compileEnv map[string]string
}

// NewPipeline creates a Pipeline that invokes compiler with compileEnv added
// to the environment of the compile step
func NewPipeline(runner ProcessRunner, compiler string, compileEnv map[string]string) *Pipeline {
	return &Pipeline{
		runner:     runner,
		compiler:   compiler,
		compileEnv: compileEnv,
	}
}

// Steps returns the compile step followed by the run step
func (p *Pipeline) Steps(tc domain.TestCase) []domain.CommandStep {
	return []domain.CommandStep{
		{
			Program: p.compiler,
			Args:    []string{tc.SourcePath, tc.ArtifactPath},
			Env:     p.compileEnv,
		},
		{
			Program: tc.ArtifactPath,
			Stdout:  tc.ActualOutputPath,
		},
	}
}

// Run executes the steps in order and stops at the first one that fails.
// The bool is true when every step succeeded.
func (p *Pipeline) Run(ctx context.Context, tc domain.TestCase) (domain.CaseOutcome, bool) {
	for _, dir := range []string{filepath.Dir(tc.ArtifactPath), filepath.Dir(tc.ActualOutputPath)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return domain.NewCommandFailed(domain.CompileStep, fmt.Sprintf("mkdir %s", dir), err.Error()), false
		}
	}

	for i, step := range p.Steps(tc) {
		result := p.runner.Run(ctx, step)
		if !result.Success {
			return domain.NewCommandFailed(i+1, step.Describe(), diagnostics(result)), false
		}
	}
	return domain.NewPassed(), true
}

func diagnostics(result ExitResult) string {
	var lines []string
	if out := strings.TrimRight(result.Diagnostics, "\n"); out != "" {
		lines = append(lines, out)
	}
	if reason := result.Reason(); reason != "" {
		lines = append(lines, reason)
	}
	return strings.Join(lines, "\n")
}
