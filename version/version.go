// Package version provides build version information for azd-buildenv and
// the reusable `version` command.
package version

import (
	"fmt"
	"runtime"

	"github.com/jongio/azd-buildenv/platform"
)

// Set via -ldflags "-X github.com/jongio/azd-buildenv/version.Version=...".
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for an extension.
type Info struct {
	Version     string          `json:"version" yaml:"version"`
	BuildDate   string          `json:"buildDate" yaml:"buildDate"`
	GitCommit   string          `json:"gitCommit" yaml:"gitCommit"`
	ExtensionID string          `json:"extensionId" yaml:"extensionId"`
	Name        string          `json:"name" yaml:"name"`
	GoVersion   string          `json:"goVersion" yaml:"goVersion"`
	Family      platform.Family `json:"family" yaml:"family"`

	// resolveFamily fills Family when the command runs, so building the
	// command tree never queries the host.
	resolveFamily func() platform.Family
}

// New creates an Info from the linker-provided build values. The host family
// is looked up on first display.
func New(extensionID, name string) *Info {
	return &Info{
		Version:       Version,
		BuildDate:     BuildDate,
		GitCommit:     GitCommit,
		ExtensionID:   extensionID,
		Name:          name,
		GoVersion:     runtime.Version(),
		resolveFamily: platform.CurrentFamily,
	}
}

// resolve fills the host family once.
func (i *Info) resolve() {
	if i.resolveFamily != nil {
		i.Family = i.resolveFamily()
		i.resolveFamily = nil
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
