package cli

import (
	"time"

	"github.com/stride-sh/stride/internal/backup"
	"github.com/stride-sh/stride/internal/logger"
	"github.com/stride-sh/stride/internal/manager"
	"github.com/stride-sh/stride/internal/period"
	"github.com/stride-sh/stride/internal/storage"
	"github.com/stride-sh/stride/internal/validation"
)

type Context struct {
	Store   storage.Provider
	Manager *manager.Manager
}

// load hydrates the manager from storage. Every command except init starts
// here.
func (ctx *Context) load() error {
	return ctx.Manager.Load()
}

// autoBackup takes a best-effort backup of the store. Failures are logged
// and never block the command.
func (ctx *Context) autoBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// resolveDate turns an optional YYYY-MM-DD flag into a reference time.
// An empty flag means now, in the local timezone.
func resolveDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	return validation.Date(s, time.Local)
}

// periodNoun is the singular unit a streak of the given periodicity counts.
func periodNoun(p period.Periodicity) string {
	switch p {
	case period.Weekly:
		return "week"
	case period.Monthly:
		return "month"
	case period.Yearly:
		return "year"
	default:
		return "day"
	}
}

// pluralize appends "s" when n calls for it.
func pluralize(noun string, n int) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
