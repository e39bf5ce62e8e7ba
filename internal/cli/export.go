package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

type ExportCmd struct {
	Output string `arg:"" help:"Destination file. Format is chosen by extension (.json or .csv)." type:"path"`
}

func (c *ExportCmd) Validate() error {
	switch strings.ToLower(filepath.Ext(c.Output)) {
	case ".json", ".csv":
		return nil
	default:
		return fmt.Errorf("unsupported export format: %s (use .json or .csv)", filepath.Ext(c.Output))
	}
}

func (c *ExportCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	now := time.Now()
	var err error
	if strings.EqualFold(filepath.Ext(c.Output), ".csv") {
		err = ctx.Manager.ExportCSV(c.Output, now)
	} else {
		err = ctx.Manager.ExportJSON(c.Output, now)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Exported habits to: %s\n", c.Output)
	return nil
}
