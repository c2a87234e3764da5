package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/jongio/azd-buildenv/platform"
	"github.com/jongio/azd-buildenv/testutil"
)

func TestNew(t *testing.T) {
	info := New("jongio.azd.buildenv", "azd buildenv")

	if info.Version != Version || info.BuildDate != BuildDate || info.GitCommit != GitCommit {
		t.Errorf("build values not copied: %+v", info)
	}
	if info.ExtensionID != "jongio.azd.buildenv" {
		t.Errorf("expected ExtensionID 'jongio.azd.buildenv', got %q", info.ExtensionID)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("expected GoVersion %q, got %q", runtime.Version(), info.GoVersion)
	}
	if info.resolveFamily == nil {
		t.Fatal("expected the host family to be resolved lazily")
	}
	info.resolve()
	if info.Family != platform.CurrentFamily() {
		t.Errorf("expected Family %v, got %v", platform.CurrentFamily(), info.Family)
	}
}

func TestNewCommand_ResolvesFamilyOnRun(t *testing.T) {
	buf := testutil.CaptureOutput(t, "json")

	calls := 0
	info := New("jongio.azd.buildenv", "azd buildenv")
	info.resolveFamily = func() platform.Family {
		calls++
		return platform.FamilySolaris
	}

	cmd := NewCommand(info)
	if calls != 0 {
		t.Fatalf("building the command resolved the family %d times", calls)
	}

	for i := 0; i < 2; i++ {
		buf.Reset()
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
	}
	if calls != 1 {
		t.Errorf("expected one family lookup, got %d", calls)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded["family"] != "solaris" {
		t.Errorf("expected family 'solaris', got %q", decoded["family"])
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "azd buildenv",
	}
	expected := "azd buildenv version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got := info.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestNewCommand_HumanReadable(t *testing.T) {
	buf := testutil.CaptureOutput(t, "default")

	cmd := NewCommand(New("jongio.azd.buildenv", "azd buildenv"))
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"azd buildenv Version", "Build Date", "Git Commit", "Extension ID", "OS Family"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected output to contain %q, got: %s", want, buf.String())
		}
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	buf := testutil.CaptureOutput(t, "default")

	info := &Info{Version: "2.0.0", Name: "azd buildenv"}
	cmd := NewCommand(info)
	cmd.SetArgs([]string{"--quiet"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	if got := strings.TrimSpace(buf.String()); got != "2.0.0" {
		t.Errorf("expected '2.0.0', got %q", got)
	}
}

func TestNewCommand_JSON(t *testing.T) {
	buf := testutil.CaptureOutput(t, "json")

	info := &Info{Version: "1.0.0", ExtensionID: "jongio.azd.buildenv", Name: "azd buildenv", Family: platform.FamilyMacOS}
	cmd := NewCommand(info)
	cmd.SetArgs([]string{"--quiet"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	var decoded map[string]string
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if decoded["version"] != "1.0.0" {
		t.Errorf("expected version '1.0.0', got %q", decoded["version"])
	}
	if decoded["family"] != "macos" {
		t.Errorf("expected family 'macos', got %q", decoded["family"])
	}
}

func TestNewCommand_RejectsArgs(t *testing.T) {
	testutil.CaptureOutput(t, "default")

	cmd := NewCommand(New("x", "x"))
	cmd.SetArgs([]string{"extra"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unexpected argument")
	}
}
