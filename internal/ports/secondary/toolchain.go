package secondary

import "context"

// Toolchain defines the secondary port for the Node.js tools a generated project needs.
type Toolchain interface {
	// Version returns the trimmed `<tool> --version` output, or an error if the tool is missing.
	Version(ctx context.Context, tool string) (string, error)

	// Install runs `npm install` in dir.
	Install(ctx context.Context, dir string) error
}
