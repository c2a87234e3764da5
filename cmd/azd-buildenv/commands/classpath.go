package commands

import (
	"github.com/jongio/azd-buildenv/classpath"
	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/platform"
	"github.com/spf13/cobra"
)

type classpathResult struct {
	Family    platform.Family `json:"family" yaml:"family"`
	Separator string          `json:"separator" yaml:"separator"`
	Entries   []string        `json:"entries" yaml:"entries"`
	Classpath string          `json:"classpath" yaml:"classpath"`
}

func newClasspathCommand() *cobra.Command {
	var (
		familyName string
		appendTo   string
	)

	cmd := &cobra.Command{
		Use:   "classpath ENTRY...",
		Short: "Join classpath entries with the separator of an OS family",
		Example: `  azd-buildenv classpath target/classes lib/a.jar
  azd-buildenv classpath --family windows C:\lib\a.jar C:\lib\b.jar
  azd-buildenv classpath --append-to "a.jar:b.jar" c.jar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			family := platform.CurrentFamily()
			if cmd.Flags().Changed("family") {
				parsed, err := platform.ParseFamily(familyName)
				if err != nil {
					return err
				}
				family = parsed
			}

			cp := classpath.AppendFor(family, appendTo, args...)
			result := classpathResult{
				Family:    family,
				Separator: classpath.Separator(family),
				Entries:   classpath.SplitFor(family, cp),
				Classpath: cp,
			}
			return cliout.Print(result, func() { cliout.Plain("%s", result.Classpath) })
		},
	}

	cmd.Flags().StringVar(&familyName, "family", "", "Target OS family (aix, freebsd, linux, macos, openvms, solaris, windows, other)")
	cmd.Flags().StringVar(&appendTo, "append-to", "", "Existing classpath to extend; duplicate entries are skipped")
	return cmd
}
