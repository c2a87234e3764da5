// Command azd-buildenv reports the operating system family and Windows shell
// layer a build runs under, and provides the classpath and path helpers used
// by the build extension.
package main

import (
	"os"

	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/cmd/azd-buildenv/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		cliout.Error("%v", err)
		os.Exit(1)
	}
}
