// Package domain contains the core domain model for benchmark build
// descriptor generation.
package domain

import "strings"

// Moniker is a target framework moniker such as "netcoreapp3.1" or "net48".
type Moniker string

const netCoreAppPrefix = "netcoreapp"

// IsNetCoreApp reports whether the moniker names a netcoreapp-family target.
// The prefix match is case-insensitive, mirroring how build tooling treats
// moniker strings.
func (m Moniker) IsNetCoreApp() bool {
	if len(m) < len(netCoreAppPrefix) {
		return false
	}
	return strings.EqualFold(string(m[:len(netCoreAppPrefix)]), netCoreAppPrefix)
}

// Platform is the processor architecture the generated program is built for.
type Platform string

// The platform values accepted by the descriptor toolchain.
const (
	PlatformAnyCPU Platform = "AnyCPU"
	PlatformX86    Platform = "x86"
	PlatformX64    Platform = "x64"
	PlatformARM    Platform = "ARM"
	PlatformARM64  Platform = "ARM64"
)

// BuildRequest identifies one benchmark case build: which suite it comes
// from, what runtime it targets, and the optional characteristics that tune
// the generated descriptor. Requests are value objects; generation never
// mutates them.
type BuildRequest struct {
	// CaseID uniquely identifies the benchmark case within its suite.
	CaseID string

	// SuiteAssembly is the simple name of the assembly defining the suite.
	// Convention locators assume the host descriptor is named after it.
	SuiteAssembly string

	// AssemblyPath is the on-disk location of the suite assembly. Empty when
	// the assembly has no location, for example single-file or in-memory
	// hosts; artifact paths then anchor to the working directory.
	AssemblyPath string

	// Moniker is the target framework the generated program is compiled for.
	Moniker Moniker

	// Platform selects the processor architecture of the generated build.
	Platform Platform

	// Configuration is the build configuration name, typically "Release".
	Configuration string

	// RuntimeFrameworkVersion, when set, pins the runtime and bypasses
	// settings inheritance entirely.
	RuntimeFrameworkVersion string

	// GC carries the garbage collector characteristics requested by the case.
	GC GCMode

	// ProgramName overrides the derived program name when non-empty.
	ProgramName string

	// SourceCode is the generated benchmark program text. It is treated as
	// opaque and written next to the descriptor when present.
	SourceCode string
}
