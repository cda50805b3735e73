// Package wire provides dependency injection for the tsclean application.
// It creates singleton services with lazy initialization.
package wire

import (
	"database/sql"
	"sync"

	"github.com/example/tsclean/internal/adapters/filesystem"
	"github.com/example/tsclean/internal/adapters/sqlite"
	"github.com/example/tsclean/internal/adapters/toolchain"
	"github.com/example/tsclean/internal/app"
	"github.com/example/tsclean/internal/config"
	"github.com/example/tsclean/internal/db"
	"github.com/example/tsclean/internal/logger"
	"github.com/example/tsclean/internal/ports/primary"
	"github.com/example/tsclean/internal/ports/secondary"
)

var (
	scaffoldService primary.ScaffoldService
	historyService  primary.HistoryService
	doctorService   primary.DoctorService
	database        *sql.DB
	noHistory       bool
	once            sync.Once
)

// DisableHistory turns the run journal off. Must be called before any service accessor.
func DisableHistory() {
	noHistory = true
}

// ScaffoldService returns the singleton ScaffoldService instance.
func ScaffoldService() primary.ScaffoldService {
	once.Do(initServices)
	return scaffoldService
}

// HistoryService returns the singleton HistoryService instance.
func HistoryService() primary.HistoryService {
	once.Do(initServices)
	return historyService
}

// DoctorService returns the singleton DoctorService instance.
func DoctorService() primary.DoctorService {
	once.Do(initServices)
	return doctorService
}

// Close releases the journal database, if one was opened.
func Close() error {
	if database != nil {
		return database.Close()
	}
	return nil
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	settings := config.Load()

	// The journal is optional: a broken history database never blocks generation.
	var journal secondary.RunJournal
	if settings.HistoryEnabled && !noHistory {
		var err error
		database, err = db.Open(settings.HistoryPath)
		if err != nil {
			logger.Warn("history disabled", "path", settings.HistoryPath, "error", err)
		} else {
			journal = sqlite.NewRunRepository(database)
		}
	}

	tools := toolchain.New()
	doctorService = app.NewDoctorService(tools, settings.NodeMinVersion)
	scaffoldService = app.NewScaffoldService(filesystem.NewWorkspaceAdapter(0), journal, tools, doctorService)
	historyService = app.NewHistoryService(journal)
}
