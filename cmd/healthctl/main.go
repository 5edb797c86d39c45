// Command healthctl runs operator tasks against the healthtrack database.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// CLI is the healthctl command tree.
type CLI struct {
	Migrate struct {
		Up     MigrateUpCmd     `cmd:"" help:"Apply every pending migration."`
		Down   MigrateDownCmd   `cmd:"" help:"Roll back the most recent migration."`
		Status MigrateStatusCmd `cmd:"" help:"Print the state of every migration."`
	} `cmd:"" help:"Manage the database schema."`

	CreateAdmin CreateAdminCmd `cmd:"" name:"create-admin" help:"Create an administrator or promote an existing account."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("healthctl"),
		kong.Description("Operator tooling for the healthtrack API."),
		kong.UsageOnError(),
	)

	if err := ctx.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
