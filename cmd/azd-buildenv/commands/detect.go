package commands

import (
	"github.com/jongio/azd-buildenv/classpath"
	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/env"
	"github.com/jongio/azd-buildenv/logutil"
	"github.com/jongio/azd-buildenv/platform"
	"github.com/jongio/azd-buildenv/shellutil"
	"github.com/spf13/cobra"
)

type detectOptions struct {
	osName  string
	env     []string
	noEnv   bool
	showEnv bool
}

// lookup returns the live environment unless --env or --no-env was given.
func (o *detectOptions) lookup() (platform.Lookup, error) {
	if len(o.env) == 0 && !o.noEnv {
		return platform.OSLookup(), nil
	}
	vars, err := env.ParsePairs(o.env)
	if err != nil {
		return nil, err
	}
	return platform.MapLookup(vars), nil
}

func (o *detectOptions) name(cmd *cobra.Command) string {
	if cmd.Flags().Changed("os-name") {
		return o.osName
	}
	return platform.CurrentOSName()
}

// detectResult is the detect command output.
type detectResult struct {
	platform.Report `yaml:",inline"`
	Separator       string            `json:"classpathSeparator" yaml:"classpathSeparator"`
	Shell           string            `json:"shell" yaml:"shell"`
	Variables       map[string]string `json:"variables,omitempty" yaml:"variables,omitempty"`
}

func newDetectCommand() *cobra.Command {
	opts := &detectOptions{}

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Classify the OS family and Windows shell environment",
		Example: `  azd-buildenv detect
  azd-buildenv detect --os-name "Windows 10" --env MSYSTEM=MINGW64 --env SHELL=/usr/bin/bash
  azd-buildenv detect --os-name "Windows 10" --no-env -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := opts.lookup()
			if err != nil {
				return err
			}

			report := platform.Describe(opts.name(cmd), lookup)
			logutil.NewLogger("detect").Debug("classified OS",
				"name", report.OSName, "family", report.Family, "cygwin", report.Cygwin, "mingw", report.Mingw)

			result := detectResult{
				Report:    report,
				Separator: classpath.Separator(report.Family),
				Shell:     shellutil.DefaultShell(report.OSName, lookup),
			}
			if opts.showEnv {
				result.Variables = env.Snapshot(lookup, env.HeuristicKeys...)
			}
			return cliout.Print(result, func() { printReport(result) })
		},
	}

	cmd.Flags().StringVar(&opts.osName, "os-name", "", "Classify this OS name instead of the host's")
	cmd.Flags().StringArrayVar(&opts.env, "env", nil, "Use KEY=VALUE instead of the live environment (repeatable)")
	cmd.Flags().BoolVar(&opts.noEnv, "no-env", false, "Evaluate against an empty environment")
	cmd.Flags().BoolVar(&opts.showEnv, "show-env", false, "Include the variables the Windows checks read")
	return cmd
}

func printReport(r detectResult) {
	cliout.Header("Build Environment")
	cliout.Label("OS Name", r.OSName)
	cliout.LabelColored("Family", r.Family.String(), cliout.Cyan)
	cliout.Label("Separator", r.Separator)
	cliout.Label("Shell", r.Shell)
	if r.Family == platform.FamilyWindows {
		cliout.LabelBool("Cygwin", r.Cygwin)
		cliout.LabelBool("MinGW", r.Mingw)
		if r.Cygwin && r.Mingw {
			cliout.Bullet("MinGW shells also satisfy the Cygwin checks")
		}
	}
	if r.Variables == nil {
		return
	}
	cliout.Header("Variables")
	if len(r.Variables) == 0 {
		cliout.Plain("   (none set)")
		return
	}
	for _, pair := range env.MapToSlice(r.Variables) {
		cliout.Bullet("%s", pair)
	}
}
