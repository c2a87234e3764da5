// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"fmt"
	"strings"
)

// Family is an operating system family. The zero value is FamilyOther.
type Family int

const (
	// FamilyOther is any OS not matched by a named family.
	FamilyOther Family = iota
	// FamilyAIX is IBM AIX.
	FamilyAIX
	// FamilyFreeBSD is FreeBSD.
	FamilyFreeBSD
	// FamilyLinux is Linux and generic Unix.
	FamilyLinux
	// FamilyMacOS is macOS / Darwin.
	FamilyMacOS
	// FamilyOpenVMS is OpenVMS.
	FamilyOpenVMS
	// FamilySolaris is Solaris / SunOS.
	FamilySolaris
	// FamilyWindows is Microsoft Windows.
	FamilyWindows
)

var familyNames = map[Family]string{
	FamilyOther:   "other",
	FamilyAIX:     "aix",
	FamilyFreeBSD: "freebsd",
	FamilyLinux:   "linux",
	FamilyMacOS:   "macos",
	FamilyOpenVMS: "openvms",
	FamilySolaris: "solaris",
	FamilyWindows: "windows",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{
		FamilyOther,
		FamilyAIX,
		FamilyFreeBSD,
		FamilyLinux,
		FamilyMacOS,
		FamilyOpenVMS,
		FamilySolaris,
		FamilyWindows,
	}
}

// String returns the lowercase identifier of the family.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return familyNames[FamilyOther]
}

// ParseFamily converts an identifier produced by Family.String back into a Family.
// Matching ignores case and surrounding whitespace.
func ParseFamily(s string) (Family, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for _, f := range Families() {
		if familyNames[f] == want {
			return f, nil
		}
	}
	return FamilyOther, fmt.Errorf("unknown OS family %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Normalize lowercases an OS name. An empty name stays empty.
func Normalize(name string) string {
	return strings.ToLower(name)
}

// detector pairs a family with its substring rule.
type detector struct {
	family  Family
	matches func(normalized string) bool
}

// detectors are evaluated in order. The named rules never overlap for real OS
// names; the order only settles contrived inputs like "darwin-linux" so that
// exactly one family wins.
var detectors = []detector{
	{FamilyWindows, func(n string) bool {
		return strings.Contains(n, "windows") || strings.HasPrefix(n, "win")
	}},
	{FamilyMacOS, func(n string) bool {
		return containsAny(n, "mac", "darwin", "osx")
	}},
	{FamilyAIX, func(n string) bool {
		return strings.Contains(n, "aix")
	}},
	{FamilyFreeBSD, func(n string) bool {
		return strings.Contains(n, "freebsd")
	}},
	{FamilyOpenVMS, func(n string) bool {
		return strings.Contains(n, "openvms")
	}},
	{FamilySolaris, func(n string) bool {
		return containsAny(n, "solaris", "sunos")
	}},
	{FamilyLinux, func(n string) bool {
		return containsAny(n, "linux", "unix")
	}},
}

// Classify returns the family of an OS name such as "Windows 11" or "SunOS".
// Names that match no family, including the empty name, are FamilyOther.
func Classify(name string) Family {
	n := Normalize(name)
	for _, d := range detectors {
		if d.matches(n) {
			return d.family
		}
	}
	return FamilyOther
}

// IsAIXName reports whether name is an AIX OS name.
func IsAIXName(name string) bool { return Classify(name) == FamilyAIX }

// IsFreeBSDName reports whether name is a FreeBSD OS name.
func IsFreeBSDName(name string) bool { return Classify(name) == FamilyFreeBSD }

// IsLinuxName reports whether name is a Linux or Unix OS name.
func IsLinuxName(name string) bool { return Classify(name) == FamilyLinux }

// IsMacOSName reports whether name is a macOS OS name.
func IsMacOSName(name string) bool { return Classify(name) == FamilyMacOS }

// IsOpenVMSName reports whether name is an OpenVMS OS name.
func IsOpenVMSName(name string) bool { return Classify(name) == FamilyOpenVMS }

// IsSolarisName reports whether name is a Solaris or SunOS OS name.
func IsSolarisName(name string) bool { return Classify(name) == FamilySolaris }

// IsWindowsName reports whether name is a Windows OS name.
func IsWindowsName(name string) bool { return Classify(name) == FamilyWindows }

// IsOtherName reports whether name matches none of the named families.
func IsOtherName(name string) bool { return Classify(name) == FamilyOther }

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
