// Package app contains the CLI application assembly.
package app

import (
	"fmt"
	"os"
	"runtime"

	"github.com/frol/nearlib/cli/account"
	"github.com/frol/nearlib/cli/keys"
	"github.com/urfave/cli"
)

// Version is the version of the tool, set at build time.
var Version string

func versionPrinter(c *cli.Context) {
	_, _ = fmt.Fprintf(c.App.Writer, "nearlib\nVersion: %s\nGoVersion: %s\n",
		Version,
		runtime.Version(),
	)
}

// New creates a nearlib instance of [cli.App] with all commands included.
func New() *cli.App {
	cli.VersionPrinter = versionPrinter
	ctl := cli.NewApp()
	ctl.Name = "nearlib"
	ctl.Version = Version
	ctl.Usage = "NEAR RPC client and key management tool"
	ctl.ErrWriter = os.Stdout

	ctl.Commands = append(ctl.Commands, account.NewCommands()...)
	ctl.Commands = append(ctl.Commands, keys.NewCommands()...)
	return ctl
}
