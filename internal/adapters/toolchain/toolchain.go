// Package toolchain runs the Node.js tools a generated project depends on.
package toolchain

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/example/tsclean/internal/ports/secondary"
)

// ExecToolchain implements secondary.Toolchain by shelling out.
type ExecToolchain struct {
	lookPath func(string) (string, error)
}

// New creates an ExecToolchain resolving tools from PATH.
func New() *ExecToolchain {
	return &ExecToolchain{lookPath: exec.LookPath}
}

// Version returns the trimmed `<tool> --version` output.
func (t *ExecToolchain) Version(ctx context.Context, tool string) (string, error) {
	path, err := t.lookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%s not found in PATH", tool)
	}

	output, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("%s --version failed: %w", tool, err)
	}

	return strings.TrimSpace(string(output)), nil
}

// Install runs `npm install` in dir.
func (t *ExecToolchain) Install(ctx context.Context, dir string) error {
	path, err := t.lookPath("npm")
	if err != nil {
		return fmt.Errorf("npm not found in PATH")
	}

	cmd := exec.CommandContext(ctx, path, "install")
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("npm install failed: %w: %s", err, lastLine(string(output)))
	}

	return nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

var _ secondary.Toolchain = (*ExecToolchain)(nil)
