package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/stride-sh/stride/internal/storage"
)

type MigrateCmd struct {
	Target string `arg:"" help:"Destination store. Backend is chosen by extension (.json or .db)." type:"path"`
}

func (c *MigrateCmd) Validate() error {
	switch strings.ToLower(filepath.Ext(c.Target)) {
	case ".json", ".db", ".sqlite", ".sqlite3":
		return nil
	default:
		return fmt.Errorf("unsupported store format: %s (use .json, .db, .sqlite, or .sqlite3)", filepath.Ext(c.Target))
	}
}

func (c *MigrateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	target := storage.NewStore(c.Target)
	if err := target.Init(); err != nil {
		return err
	}
	defer target.Close()

	if err := storage.Migrate(ctx.Store, target); err != nil {
		return err
	}

	fmt.Printf("Migrated habits from %s to %s\n", ctx.Store.GetConfigPath(), c.Target)
	return nil
}
