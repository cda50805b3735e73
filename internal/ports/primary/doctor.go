package primary

import "context"

// Check statuses.
const (
	CheckOK   = "ok"
	CheckWarn = "warn"
	CheckFail = "fail"
)

// DoctorService defines the primary port for environment checks.
type DoctorService interface {
	// Check inspects the local Node.js toolchain.
	Check(ctx context.Context) []CheckResult
}

// CheckResult represents the outcome of a single check.
type CheckResult struct {
	Name    string
	Status  string
	Version string // detected version, if any
	Details string // only set when Status != CheckOK
}
