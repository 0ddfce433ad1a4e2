package locator

import (
	"os"
	"path/filepath"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

const descriptorExtension = ".csproj"

// SuiteDirectoryLocator guesses that the host descriptor sits next to the
// suite assembly and is named after it. This matches suites run straight
// from their project directory.
type SuiteDirectoryLocator struct{}

var _ ports.DescriptorLocator = SuiteDirectoryLocator{}

// Purpose reports what the locator locates.
func (SuiteDirectoryLocator) Purpose() ports.LocatorPurpose {
	return ports.PurposeBuildDescriptor
}

// TryLocate returns <assembly dir>/<SuiteAssembly>.csproj.
func (SuiteDirectoryLocator) TryLocate(request domain.BuildRequest) (string, bool) {
	if request.SuiteAssembly == "" {
		return "", false
	}
	return filepath.Join(startDir(request), request.SuiteAssembly+descriptorExtension), true
}

// AncestorLocator walks from the suite assembly directory toward the
// filesystem root looking for a descriptor named after the assembly. Build
// output usually sits a few levels below the project file, under
// bin/<configuration>/<moniker>.
type AncestorLocator struct{}

var _ ports.DescriptorLocator = AncestorLocator{}

// Purpose reports what the locator locates.
func (AncestorLocator) Purpose() ports.LocatorPurpose {
	return ports.PurposeBuildDescriptor
}

// TryLocate returns the nearest ancestor directory containing
// <SuiteAssembly>.csproj. When no ancestor has one it still returns the
// deepest guess so the caller can report where it looked.
func (AncestorLocator) TryLocate(request domain.BuildRequest) (string, bool) {
	if request.SuiteAssembly == "" {
		return "", false
	}
	name := request.SuiteAssembly + descriptorExtension
	dir := startDir(request)
	for {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return filepath.Join(startDir(request), name), true
}

func startDir(request domain.BuildRequest) string {
	if request.AssemblyPath != "" {
		return filepath.Dir(request.AssemblyPath)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}
