// Package commands implements the azd-buildenv command tree.
package commands

import (
	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/logutil"
	"github.com/jongio/azd-buildenv/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ExtensionID identifies the extension to the azd host.
const ExtensionID = "jongio.azd.buildenv"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	output         string
	debug          bool
	structuredLogs bool
	noColor        bool
}

func (o *globalOptions) flagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.StringVarP(&o.output, "output", "o", "default", "Output format: default, json or yaml")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&o.structuredLogs, "structured-logs", false, "Write logs as JSON")
	fs.BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	return fs
}

func (o *globalOptions) apply() error {
	logutil.SetupLogger(o.debug, o.structuredLogs)
	if o.noColor {
		cliout.NoColor()
	}
	return cliout.SetFormat(o.output)
}

// NewRootCommand builds the azd-buildenv command tree.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "azd-buildenv",
		Short: "Inspect the build environment: OS family, Cygwin/MinGW shells, classpaths and paths",
		Long: `azd-buildenv reports how the build host is classified.

The OS family is derived from the OS name (override with AZD_BUILDENV_OS_NAME).
On Windows, Cygwin and MinGW/MSYS shells are detected from SHELL, PATH, TERM,
MSYSTEM, MINGW_PREFIX and MINGW_CHOST.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply()
		},
	}
	root.PersistentFlags().AddFlagSet(opts.flagSet())

	root.AddCommand(
		newDetectCommand(),
		newClasspathCommand(),
		newPathsCommand(),
		version.NewCommand(version.New(ExtensionID, "azd buildenv")),
	)
	return root
}
