// Package platform classifies the operating system a build runs on and, on
// Windows, the POSIX layer (Cygwin or MinGW/MSYS) the shell is hosted in.
//
// Classification works on raw OS-name strings such as "Windows 11",
// "Mac OS X", "SunOS" or "FreeBSD 13.0" rather than on runtime.GOOS, so it
// behaves the same whether the name came from the host, a toolchain property
// or a test literal.
//
// # OS Families
//
// Every name maps to exactly one Family:
//   - FamilyWindows: contains "windows" or starts with "win"
//   - FamilyMacOS: contains "mac", "darwin" or "osx"
//   - FamilyAIX: contains "aix"
//   - FamilyFreeBSD: contains "freebsd"
//   - FamilyOpenVMS: contains "openvms"
//   - FamilySolaris: contains "solaris" or "sunos"
//   - FamilyLinux: contains "linux" or "unix"
//   - FamilyOther: none of the above (including the empty name)
//
// Matching is case-insensitive and uses substrings so version suffixes are
// tolerated.
//
// # Windows Sub-Environments
//
// Cygwin and MinGW are detected from environment variables read through a
// Lookup, which tests replace with a literal map:
//
//	env := platform.MapLookup(map[string]string{"MSYSTEM": "MINGW64"})
//	platform.IsMingwEnv("Windows 10", env) // true
//	platform.IsMingwEnv("Linux", env)      // false, not Windows
//
// The two checks are independent; a MinGW shell normally satisfies the
// Cygwin checks too.
//
// # Current Host
//
// The no-argument helpers (IsWindows, IsCygwin, CurrentFamily, ...) use
// CurrentOSName, which is resolved once per process from AZD_BUILDENV_OS_NAME,
// then gopsutil host information, then runtime.GOOS.
package platform
