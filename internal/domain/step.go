package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Step indices within a case pipeline
const (
	CompileStep = 1
	RunStep     = 2
)

// CommandStep is one external invocation of a case pipeline
type CommandStep struct {
	Program string            // Executable path
	Args    []string          // Positional arguments
	Env     map[string]string // Variables added on top of the harness environment
	Stdout  string            // File that receives stdout; empty means captured as diagnostics
}

// Describe renders the step the way it would be typed in a shell
func (s CommandStep) Describe() string {
	var parts []string

	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", k, s.Env[k]))
	}

	parts = append(parts, s.Program)
	parts = append(parts, s.Args...)
	if s.Stdout != "" {
		parts = append(parts, ">", s.Stdout)
	}
	return strings.Join(parts, " ")
}

// Environ returns the step variables as KEY=VALUE pairs in a stable order
func (s CommandStep) Environ() []string {
	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+s.Env[k])
	}
	return env
}
