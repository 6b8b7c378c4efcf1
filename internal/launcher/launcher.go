// Package launcher picks the best way to start the agent runtime and
// hands the process over to it. Candidates are tried in a strict
// priority order: a project-local build, the go tool, then whatever
// is on PATH (falling back to the current executable).
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// BinaryName is the name of the agent executable.
const BinaryName = "github-mcp-agent"

// ErrNoCandidate is returned when no launch strategy is available.
var ErrNoCandidate = errors.New("launcher: no runnable candidate found")

// Candidate is one launch strategy: a predicate deciding whether it
// applies, and the argv it produces when it does.
type Candidate struct {
	// Name identifies the strategy in the diagnostic line.
	Name string

	// Available reports whether this candidate can be used.
	Available func() bool

	// Argv builds the full command line, including the program.
	Argv func() []string
}

// Resolved is the selected launch command.
type Resolved struct {
	Name string
	Argv []string
}

// Launcher resolves and executes a launch strategy.
type Launcher struct {
	candidates []Candidate
	stderr     io.Writer
	execFn     func(argv0 string, argv []string, envv []string) error
}

// New creates a Launcher with the default candidate order for the
// project rooted at workDir. args are appended to the resolved
// command (typically the subcommand to run, e.g. "serve").
func New(workDir string, args ...string) *Launcher {
	localBin := filepath.Join(workDir, "bin", BinaryName)

	return NewWithCandidates(
		Candidate{
			Name: "local build",
			Available: func() bool {
				info, err := os.Stat(localBin)
				return err == nil && !info.IsDir()
			},
			Argv: func() []string {
				return append([]string{localBin}, args...)
			},
		},
		Candidate{
			Name: "go run",
			Available: func() bool {
				_, err := exec.LookPath("go")
				return err == nil
			},
			Argv: func() []string {
				return append([]string{"go", "run", "./cmd/" + BinaryName}, args...)
			},
		},
		Candidate{
			Name: "system binary",
			Available: func() bool {
				if _, err := exec.LookPath(BinaryName); err == nil {
					return true
				}
				_, err := os.Executable()
				return err == nil
			},
			Argv: func() []string {
				if path, err := exec.LookPath(BinaryName); err == nil {
					return append([]string{path}, args...)
				}
				self, _ := os.Executable()
				return append([]string{self}, args...)
			},
		},
	)
}

// NewWithCandidates creates a Launcher with an explicit candidate list.
func NewWithCandidates(candidates ...Candidate) *Launcher {
	return &Launcher{
		candidates: candidates,
		stderr:     os.Stderr,
		execFn:     syscall.Exec,
	}
}

// Resolve returns the first available candidate. The order is fixed;
// a later candidate is never chosen while an earlier one is available.
func (l *Launcher) Resolve() (Resolved, error) {
	for _, c := range l.candidates {
		if c.Available() {
			return Resolved{Name: c.Name, Argv: c.Argv()}, nil
		}
	}
	return Resolved{}, ErrNoCandidate
}

// Launch resolves a candidate, writes one diagnostic line to stderr,
// and replaces the current process with the resolved command. On
// success it never returns; once the handoff happens there is no
// fallback to later candidates.
func (l *Launcher) Launch() error {
	resolved, err := l.Resolve()
	if err != nil {
		return err
	}

	fmt.Fprintf(l.stderr, "Launching agent via %s: %s\n", resolved.Name, resolved.Argv[0])

	argv0 := resolved.Argv[0]
	if !filepath.IsAbs(argv0) {
		path, err := exec.LookPath(argv0)
		if err != nil {
			return fmt.Errorf("launcher: %s: %w", argv0, err)
		}
		argv0 = path
	}

	return l.execFn(argv0, resolved.Argv, os.Environ())
}
