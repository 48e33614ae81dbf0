package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"
)

// Repo is a handle on a directory git commands run in. Commands get the
// directory through exec.Cmd.Dir, so the process working directory is
// never touched.
type Repo struct {
	Dir    string
	binary string
}

// NewRepo returns a handle for dir using the given git binary.
func NewRepo(binary, dir string) Repo {
	return Repo{Dir: dir, binary: binary}
}

// commandError carries the stderr of a failed git invocation.
type commandError struct {
	args   []string
	stderr string
	err    error
}

func (e *commandError) Error() string {
	return fmt.Sprintf("git %s: %v", strings.Join(e.args, " "), e.err)
}

func (e *commandError) Unwrap() error { return e.err }

// run executes git with args in the repo directory and returns stdout.
// It blocks until the process exits.
func (r Repo) run(ctx context.Context, args ...string) (string, error) {
	logger.Debugf("[git] (%s) git %s", r.Dir, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), &commandError{args: args, stderr: stderr.String(), err: err}
	}
	return stdout.String(), nil
}

// FindGitBinary locates the git executable.
func FindGitBinary() (string, error) {
	if path, err := exec.LookPath("git"); err == nil {
		return path, nil
	}

	for _, candidate := range []string{"/usr/bin/git", "/usr/local/bin/git", "/opt/homebrew/bin/git"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("git not found in PATH or common locations")
}

// stderrOf returns the captured stderr of a git failure, if any.
func stderrOf(err error) string {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.stderr
	}
	return ""
}

// dirExists reports whether path exists. Existence is the only signal used
// to decide whether a mirror or snapshot is already in place.
func dirExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
