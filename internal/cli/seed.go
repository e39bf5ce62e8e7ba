package cli

import (
	"fmt"
	"time"
)

type SeedCmd struct{}

func (c *SeedCmd) Run(ctx *Context) error {
	if err := ctx.load(); err != nil {
		return err
	}

	created, err := ctx.Manager.Seed(time.Now())
	if err != nil {
		return err
	}
	if created == 0 {
		fmt.Println("Sample habits already present, nothing to do")
		return nil
	}
	fmt.Printf("Seeded %d sample habits with completion history\n", created)
	return nil
}
