// Package ports defines the core interfaces of the application.
package ports

import "go.trai.ch/crucible/internal/core/domain"

// LocatorPurpose declares what kind of file a locator knows how to find.
type LocatorPurpose string

// PurposeBuildDescriptor marks locators that find host build descriptors.
const PurposeBuildDescriptor LocatorPurpose = "build-descriptor"

//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks

// DescriptorLocator is one pluggable strategy for guessing where the host
// build descriptor of a benchmark suite lives. Locators are consulted in
// registration order; earlier locators take priority.
type DescriptorLocator interface {
	// Purpose reports what the locator locates. Only build-descriptor
	// locators are consulted during generation.
	Purpose() LocatorPurpose

	// TryLocate returns a candidate path for the request's host descriptor.
	// found is false when the locator has no guess at all. A returned
	// candidate is not required to exist on disk.
	TryLocate(request domain.BuildRequest) (path string, found bool)
}

// Locator finds the host build descriptor for a request.
type Locator interface {
	// Locate returns the path of an existing host descriptor, or
	// domain.ErrDescriptorNotFound carrying every attempted candidate.
	Locate(request domain.BuildRequest) (string, error)
}
