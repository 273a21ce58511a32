package cli

import (
	"time"

	"pit/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	Root        string
	Compiler    string
	RuntimePath string
	Timeout     time.Duration
	NameFilter  string
	Format      string
	NoColor     bool
	Inspect     bool
	Verbose     bool
	Debug       bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:  f.ConfigFile,
		Root:        f.Root,
		Compiler:    f.Compiler,
		RuntimePath: f.RuntimePath,
		Timeout:     f.Timeout,
		NameFilter:  f.NameFilter,
		Format:      f.Format,
		NoColor:     f.NoColor,
		Inspect:     f.Inspect,
		Verbose:     f.Verbose,
		Debug:       f.Debug,
	}
}
