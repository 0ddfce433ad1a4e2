package domain

import "go.trai.ch/zerr"

var (
	// ErrDescriptorNotFound is returned when no locator produced an existing host descriptor.
	ErrDescriptorNotFound = zerr.New("host build descriptor not found")

	// ErrMissingDescriptorDirectory is returned when a host descriptor path has no containing directory.
	ErrMissingDescriptorDirectory = zerr.New("host descriptor has no containing directory")

	// ErrUnknownTemplate is returned when a descriptor template name is not registered.
	ErrUnknownTemplate = zerr.New("unknown descriptor template")

	// ErrManifestNotFound is returned when the suite manifest file does not exist.
	ErrManifestNotFound = zerr.New("suite manifest not found")

	// ErrNoRequests is returned when a generation run has no benchmark cases to build.
	ErrNoRequests = zerr.New("no benchmark cases to generate")

	// ErrDuplicateCase is returned when a suite manifest declares the same case id twice.
	ErrDuplicateCase = zerr.New("duplicate benchmark case id")
)
