package app

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/ports/secondary"
)

var majorVersionRe = regexp.MustCompile(`(\d+)(?:\.\d+)*`)

// DoctorServiceImpl implements the DoctorService interface.
type DoctorServiceImpl struct {
	toolchain      secondary.Toolchain
	nodeMinVersion int
}

// NewDoctorService creates a new DoctorService with injected dependencies.
func NewDoctorService(toolchain secondary.Toolchain, nodeMinVersion int) *DoctorServiceImpl {
	return &DoctorServiceImpl{
		toolchain:      toolchain,
		nodeMinVersion: nodeMinVersion,
	}
}

// Check runs the node, npm and tsc checks. Only node and npm can fail;
// a missing global tsc is a warning since generated projects install it locally.
func (s *DoctorServiceImpl) Check(ctx context.Context) []primary.CheckResult {
	return []primary.CheckResult{
		s.checkNode(ctx),
		s.checkTool(ctx, "npm", primary.CheckFail, "npm is not installed. Please install npm."),
		s.checkTool(ctx, "tsc", primary.CheckWarn, "TypeScript is not installed globally; the generated project uses its local copy."),
	}
}

func (s *DoctorServiceImpl) checkNode(ctx context.Context) primary.CheckResult {
	result := primary.CheckResult{Name: "node", Status: primary.CheckOK}

	version, err := s.toolchain.Version(ctx, "node")
	if err != nil {
		result.Status = primary.CheckFail
		result.Details = fmt.Sprintf("Node.js is not installed. Please install Node.js version %d or higher.", s.nodeMinVersion)
		return result
	}
	result.Version = version

	major, ok := majorVersion(version)
	if !ok {
		result.Status = primary.CheckWarn
		result.Details = fmt.Sprintf("Could not parse Node.js version %q", version)
		return result
	}
	if major < s.nodeMinVersion {
		result.Status = primary.CheckFail
		result.Details = fmt.Sprintf("Node.js version %d or higher is required. Found: %s", s.nodeMinVersion, version)
	}

	return result
}

func (s *DoctorServiceImpl) checkTool(ctx context.Context, tool, missingStatus, missingDetails string) primary.CheckResult {
	version, err := s.toolchain.Version(ctx, tool)
	if err != nil {
		return primary.CheckResult{Name: tool, Status: missingStatus, Details: missingDetails}
	}
	return primary.CheckResult{Name: tool, Status: primary.CheckOK, Version: version}
}

// majorVersion extracts the leading major number from "v20.11.1" or "Version 5.6.3".
func majorVersion(version string) (int, bool) {
	m := majorVersionRe.FindStringSubmatch(version)
	if m == nil {
		return 0, false
	}
	major, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return major, true
}

// failedChecks returns the details of every failing check.
func failedChecks(results []primary.CheckResult) []string {
	var failed []string
	for _, r := range results {
		if r.Status == primary.CheckFail {
			failed = append(failed, r.Details)
		}
	}
	return failed
}
