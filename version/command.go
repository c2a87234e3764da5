package version

import (
	"fmt"

	"github.com/jongio/azd-buildenv/cliout"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command that displays version info in the
// format selected through cliout.SetFormat.
func NewCommand(info *Info) *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info.resolve()
			if quiet && !cliout.IsStructured() {
				cliout.Plain("%s", info.Version)
				return nil
			}

			return cliout.Print(info, func() {
				cliout.Header(fmt.Sprintf("%s Version", info.Name))
				cliout.Label("Version", info.Version)
				cliout.Label("Build Date", info.BuildDate)
				cliout.Label("Git Commit", info.GitCommit)
				cliout.Label("Extension ID", info.ExtensionID)
				cliout.Label("Go", info.GoVersion)
				cliout.Label("OS Family", info.Family.String())
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	return cmd
}
