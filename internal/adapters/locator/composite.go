// Package locator implements discovery of host build descriptors.
package locator

import (
	"os"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
	"go.trai.ch/zerr"
)

// Composite queries an ordered set of descriptor locators and returns the
// first candidate that exists on disk.
type Composite struct {
	locators []ports.DescriptorLocator
}

var _ ports.Locator = (*Composite)(nil)

// NewComposite creates a Composite consulting the given locators in order.
func NewComposite(locators ...ports.DescriptorLocator) *Composite {
	return &Composite{locators: locators}
}

// Locate consults every build-descriptor locator in priority order. Misses
// are remembered so a failed search reports exactly where it looked.
func (c *Composite) Locate(request domain.BuildRequest) (string, error) {
	var attempted []string
	for _, l := range c.locators {
		if l.Purpose() != ports.PurposeBuildDescriptor {
			continue
		}
		candidate, found := l.TryLocate(request)
		if !found {
			continue
		}
		if fileExists(candidate) {
			return candidate, nil
		}
		attempted = append(attempted, candidate)
	}
	return "", zerr.With(domain.ErrDescriptorNotFound, "attempted", attempted)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
