// Command foil works with airfoil coordinate files.
// Run "foil" without arguments for a list of commands.
package main

import (
	"os"

	"github.com/npillmayer/airfoil/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
