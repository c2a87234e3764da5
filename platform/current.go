// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/jongio/azd-buildenv/logutil"
	"github.com/jongio/azd-buildenv/textutil"
	"github.com/shirou/gopsutil/v4/host"
)

// EnvOSName overrides the detected host OS name when set to a non-blank value.
const EnvOSName = "AZD_BUILDENV_OS_NAME"

// hostInfoTimeout bounds the one-time gopsutil host query.
const hostInfoTimeout = 2 * time.Second

// hostInfo is replaced in tests.
var hostInfo = host.InfoWithContext

// currentOSName holds the process OS name once resolved.
var currentOSName = sync.OnceValue(func() string {
	return resolveOSName(OSLookup())
})

// CurrentOSName returns the OS name of this process, e.g. "windows 10.0.22631".
// It is resolved on first use and cached for the life of the process.
func CurrentOSName() string {
	return currentOSName()
}

// resolveOSName picks the OS name from the override variable, then host
// information, then runtime.GOOS.
func resolveOSName(lookup Lookup) string {
	log := logutil.NewLogger("platform").WithOperation("resolve-os-name")

	if name, ok := lookup.get(EnvOSName); ok && textutil.IsNotBlank(name) {
		name = strings.TrimSpace(name)
		log.Debug("using OS name override", "env", EnvOSName, "name", name)
		return name
	}

	ctx, cancel := context.WithTimeout(context.Background(), hostInfoTimeout)
	defer cancel()

	info, err := hostInfo(ctx)
	if err != nil || info == nil || textutil.IsBlank(info.OS) {
		log.Debug("host information unavailable, falling back to GOOS", "goos", runtime.GOOS, "error", err)
		return runtime.GOOS
	}

	name := info.OS
	if textutil.IsNotBlank(info.PlatformVersion) {
		name += " " + strings.TrimSpace(info.PlatformVersion)
	}
	log.Debug("detected host OS", "name", name, "platform", info.Platform, "kernel", info.KernelVersion)
	return name
}

// CurrentFamily returns the family of CurrentOSName.
func CurrentFamily() Family { return Classify(CurrentOSName()) }

// IsAIX reports whether this process runs on AIX.
func IsAIX() bool { return IsAIXName(CurrentOSName()) }

// IsFreeBSD reports whether this process runs on FreeBSD.
func IsFreeBSD() bool { return IsFreeBSDName(CurrentOSName()) }

// IsLinux reports whether this process runs on Linux or another Unix.
func IsLinux() bool { return IsLinuxName(CurrentOSName()) }

// IsMacOS reports whether this process runs on macOS.
func IsMacOS() bool { return IsMacOSName(CurrentOSName()) }

// IsOpenVMS reports whether this process runs on OpenVMS.
func IsOpenVMS() bool { return IsOpenVMSName(CurrentOSName()) }

// IsSolaris reports whether this process runs on Solaris.
func IsSolaris() bool { return IsSolarisName(CurrentOSName()) }

// IsWindows reports whether this process runs on Windows.
func IsWindows() bool { return IsWindowsName(CurrentOSName()) }

// IsOther reports whether this process runs on an unrecognized OS.
func IsOther() bool { return IsOtherName(CurrentOSName()) }

// IsCygwin reports whether this process runs in a Cygwin-style shell on
// Windows, reading the live environment.
func IsCygwin() bool { return IsCygwinEnv(CurrentOSName(), OSLookup()) }

// IsMingw reports whether this process runs in a MinGW/MSYS shell on
// Windows, reading the live environment.
func IsMingw() bool { return IsMingwEnv(CurrentOSName(), OSLookup()) }
