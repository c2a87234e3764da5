package commands

import (
	"errors"
	"fmt"

	"github.com/jongio/azd-buildenv/cliout"
	"github.com/jongio/azd-buildenv/fileutil"
	"github.com/jongio/azd-buildenv/security"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

const (
	ensureDir  = "dir"
	ensureFile = "file"

	requireAll = "all"
	requireAny = "any"
)

type pathStatus struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	IsFile bool   `json:"isFile" yaml:"isFile"`
	IsDir  bool   `json:"isDir" yaml:"isDir"`
}

func statPath(path string) pathStatus {
	return pathStatus{
		Path:   path,
		Exists: fileutil.Exists(path),
		IsFile: fileutil.IsFile(path),
		IsDir:  fileutil.IsDir(path),
	}
}

func ensurePath(kind, path string) error {
	switch kind {
	case "":
		return nil
	case ensureDir:
		return fileutil.EnsureDir(path)
	case ensureFile:
		return fileutil.EnsureFile(path)
	default:
		return fmt.Errorf("invalid --ensure value %q (valid options: %s, %s)", kind, ensureDir, ensureFile)
	}
}

// requireCheck returns the --require rule as a predicate over resolved paths.
func requireCheck(rule string) (func(paths []string) error, error) {
	switch rule {
	case "":
		return func([]string) error { return nil }, nil
	case requireAll:
		return func(paths []string) error {
			if !fileutil.FilesExistAll("", paths...) {
				return errors.New("not all paths exist")
			}
			return nil
		}, nil
	case requireAny:
		return func(paths []string) error {
			if !fileutil.FileExistsAny("", paths...) {
				return errors.New("none of the paths exist")
			}
			return nil
		}, nil
	default:
		return nil, fmt.Errorf("invalid --require value %q (valid options: %s, %s)", rule, requireAll, requireAny)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func newPathsCommand() *cobra.Command {
	var ensure, require, dir string

	cmd := &cobra.Command{
		Use:   "paths PATH...",
		Short: "Report whether paths exist, optionally creating them",
		Example: `  azd-buildenv paths pom.xml target
  azd-buildenv paths --ensure dir target/classes target/test-classes
  azd-buildenv paths --ensure file target/.stamp
  azd-buildenv paths --dir . --require any pom.xml build.gradle build.gradle.kts`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			check, err := requireCheck(require)
			if err != nil {
				return err
			}
			// cmd.exe leaves "~" alone, so expand it here.
			if dir, err = homedir.Expand(dir); err != nil {
				return err
			}

			resolved := make([]string, 0, len(args))
			statuses := make([]pathStatus, 0, len(args))
			for _, name := range args {
				var path string
				if dir != "" {
					path, err = security.ResolveWithin(dir, name)
				} else {
					path, err = homedir.Expand(name)
				}
				if err != nil {
					return err
				}
				if err := ensurePath(ensure, path); err != nil {
					return err
				}
				resolved = append(resolved, path)
				statuses = append(statuses, statPath(path))
			}

			err = cliout.Print(statuses, func() {
				rows := make([]cliout.TableRow, 0, len(statuses))
				for _, s := range statuses {
					rows = append(rows, cliout.TableRow{
						"Path":   s.Path,
						"Exists": yesNo(s.Exists),
						"Type":   pathType(s),
					})
				}
				cliout.Table([]string{"Path", "Exists", "Type"}, rows)
			})
			if err != nil {
				return err
			}
			return check(resolved)
		},
	}

	cmd.Flags().StringVar(&ensure, "ensure", "", "Create missing paths as a directory (dir) or empty file (file)")
	cmd.Flags().StringVar(&require, "require", "", "Fail unless all or any of the paths exist")
	cmd.Flags().StringVar(&dir, "dir", "", "Resolve paths relative to this directory; names may not leave it")
	return cmd
}

func pathType(s pathStatus) string {
	switch {
	case s.IsDir:
		return "directory"
	case s.IsFile:
		return "file"
	default:
		return "-"
	}
}
