package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/ports/secondary"
	"github.com/example/tsclean/internal/scaffold"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.WorkspaceWriter = (*mockWorkspaceWriter)(nil)
	_ secondary.RunJournal      = (*mockRunJournal)(nil)
	_ secondary.Toolchain       = (*mockToolchain)(nil)
	_ primary.DoctorService     = (*mockDoctor)(nil)
)

// mockWorkspaceWriter implements secondary.WorkspaceWriter for testing.
// failAfter > 0 makes Apply fail once that many files were written.
type mockWorkspaceWriter struct {
	existing  map[string]bool
	applied   []*scaffold.Plan
	failAfter int
	existsErr error
}

func newMockWorkspaceWriter() *mockWorkspaceWriter {
	return &mockWorkspaceWriter{existing: make(map[string]bool)}
}

func (m *mockWorkspaceWriter) Apply(ctx context.Context, root string, plan *scaffold.Plan, onWrite secondary.WriteFunc) error {
	m.applied = append(m.applied, plan)
	for _, d := range plan.Directories {
		onWrite("dir", d)
	}
	for i, f := range plan.Files {
		if m.failAfter > 0 && i == m.failAfter {
			return fmt.Errorf("failed to write %s: disk full", f.Path)
		}
		onWrite("file", f.Path)
	}
	m.existing[root] = true
	return nil
}

func (m *mockWorkspaceWriter) Exists(ctx context.Context, path string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	return m.existing[path], nil
}

// mockRunJournal implements secondary.RunJournal for testing.
type mockRunJournal struct {
	mu       sync.Mutex
	runs     map[int64]*secondary.RunRecord
	files    map[int64][]*secondary.RunFileRecord
	nextID   int64
	startErr error
}

func newMockRunJournal() *mockRunJournal {
	return &mockRunJournal{
		runs:   make(map[int64]*secondary.RunRecord),
		files:  make(map[int64][]*secondary.RunFileRecord),
		nextID: 1,
	}
}

func (m *mockRunJournal) Start(ctx context.Context, run *secondary.RunRecord) (int64, error) {
	if m.startErr != nil {
		return 0, m.startErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	run.ID = m.nextID
	run.Status = secondary.RunStatusRunning
	m.runs[run.ID] = run
	m.nextID++
	return run.ID, nil
}

func (m *mockRunJournal) AddFiles(ctx context.Context, runID int64, files []*secondary.RunFileRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[runID] = append(m.files[runID], files...)
	return nil
}

func (m *mockRunJournal) Finish(ctx context.Context, runID int64, status, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[runID]
	if !ok {
		return fmt.Errorf("run %d not found", runID)
	}
	run.Status = status
	run.Error = errMsg
	run.FinishedAt = "2026-01-01T00:00:00Z"
	return nil
}

func (m *mockRunJournal) GetByID(ctx context.Context, id int64) (*secondary.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run, ok := m.runs[id]
	if !ok {
		return nil, fmt.Errorf("run %d not found", id)
	}
	return run, nil
}

func (m *mockRunJournal) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var result []*secondary.RunRecord
	for _, r := range m.runs {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockRunJournal) Files(ctx context.Context, runID int64) ([]*secondary.RunFileRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.files[runID], nil
}

// mockToolchain implements secondary.Toolchain for testing.
type mockToolchain struct {
	versions   map[string]string // missing key means "not installed"
	installErr error
	installed  []string
}

func newMockToolchain() *mockToolchain {
	return &mockToolchain{versions: map[string]string{
		"node": "v20.11.1",
		"npm":  "10.2.4",
		"tsc":  "Version 5.6.3",
	}}
}

func (m *mockToolchain) Version(ctx context.Context, tool string) (string, error) {
	v, ok := m.versions[tool]
	if !ok {
		return "", errors.New(tool + " not found in PATH")
	}
	return v, nil
}

func (m *mockToolchain) Install(ctx context.Context, dir string) error {
	if m.installErr != nil {
		return m.installErr
	}
	m.installed = append(m.installed, dir)
	return nil
}

// mockDoctor implements primary.DoctorService for testing.
type mockDoctor struct {
	results []primary.CheckResult
	calls   int
}

func (m *mockDoctor) Check(ctx context.Context) []primary.CheckResult {
	m.calls++
	return m.results
}
