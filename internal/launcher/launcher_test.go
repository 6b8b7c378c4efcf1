package launcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidate(name string, available bool, argv ...string) Candidate {
	return Candidate{
		Name:      name,
		Available: func() bool { return available },
		Argv:      func() []string { return argv },
	}
}

func TestResolveStrictPriority(t *testing.T) {
	t.Run("first available wins", func(t *testing.T) {
		l := NewWithCandidates(
			candidate("first", true, "/bin/first", "serve"),
			candidate("second", true, "/bin/second", "serve"),
		)
		resolved, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "first", resolved.Name)
		assert.Equal(t, []string{"/bin/first", "serve"}, resolved.Argv)
	})

	t.Run("skips unavailable candidates", func(t *testing.T) {
		l := NewWithCandidates(
			candidate("first", false, "/bin/first"),
			candidate("second", false, "/bin/second"),
			candidate("third", true, "/bin/third"),
		)
		resolved, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "third", resolved.Name)
	})

	t.Run("no candidate available", func(t *testing.T) {
		l := NewWithCandidates(candidate("only", false, "/bin/only"))
		_, err := l.Resolve()
		assert.ErrorIs(t, err, ErrNoCandidate)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		l := NewWithCandidates(
			candidate("a", true, "/bin/a"),
			candidate("b", true, "/bin/b"),
		)
		for i := 0; i < 5; i++ {
			resolved, err := l.Resolve()
			require.NoError(t, err)
			assert.Equal(t, "a", resolved.Name)
		}
	})
}

func TestDefaultCandidateOrder(t *testing.T) {
	t.Run("local build preferred when present", func(t *testing.T) {
		workDir := t.TempDir()
		binDir := filepath.Join(workDir, "bin")
		require.NoError(t, os.MkdirAll(binDir, 0o755))
		localBin := filepath.Join(binDir, BinaryName)
		require.NoError(t, os.WriteFile(localBin, []byte("#!/bin/sh\n"), 0o755))

		l := New(workDir, "serve")
		resolved, err := l.Resolve()
		require.NoError(t, err)
		assert.Equal(t, "local build", resolved.Name)
		assert.Equal(t, []string{localBin, "serve"}, resolved.Argv)
	})

	t.Run("falls through when local build missing", func(t *testing.T) {
		l := New(t.TempDir(), "serve")
		resolved, err := l.Resolve()
		require.NoError(t, err)
		assert.NotEqual(t, "local build", resolved.Name)
		assert.Contains(t, resolved.Argv[len(resolved.Argv)-1], "serve")
	})

	t.Run("directory at bin path does not count", func(t *testing.T) {
		workDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(workDir, "bin", BinaryName), 0o755))

		l := New(workDir, "serve")
		resolved, err := l.Resolve()
		require.NoError(t, err)
		assert.NotEqual(t, "local build", resolved.Name)
	})
}

func TestLaunchWritesSingleDiagnosticLine(t *testing.T) {
	var buf bytes.Buffer
	var gotArgv []string

	l := NewWithCandidates(candidate("fake", true, "/bin/fake", "serve"))
	l.stderr = &buf
	l.execFn = func(argv0 string, argv []string, envv []string) error {
		gotArgv = argv
		return nil
	}

	require.NoError(t, l.Launch())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "fake")
	assert.Equal(t, []string{"/bin/fake", "serve"}, gotArgv)
}

func TestLaunchNoCandidate(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithCandidates()
	l.stderr = &buf

	err := l.Launch()
	assert.ErrorIs(t, err, ErrNoCandidate)
	assert.Empty(t, buf.String())
}

func TestLaunchResolvesRelativeArgv0(t *testing.T) {
	var gotArgv0 string
	l := NewWithCandidates(candidate("path lookup", true, "sh", "-c", "true"))
	l.stderr = &bytes.Buffer{}
	l.execFn = func(argv0 string, argv []string, envv []string) error {
		gotArgv0 = argv0
		return nil
	}

	require.NoError(t, l.Launch())
	assert.True(t, filepath.IsAbs(gotArgv0))
}
