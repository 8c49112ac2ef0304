package cli

import "fmt"

type InitCmd struct{}

func (c *InitCmd) Run(ctx *Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized timecraft storage at %s\n", ctx.Store.Path())
	fmt.Println("Run 'timecraft onboard' to set up your first cycle.")
	return nil
}
