package domain

// DefaultSdkName is the toolchain identifier used when the host descriptor
// declares none.
const DefaultSdkName = "Microsoft.NET.Sdk"

// MergedSettings is the outcome of walking a host descriptor and everything
// it transitively imports.
type MergedSettings struct {
	// Settings is the serialized copied-settings markup: at most one item
	// block and one property block joined by a blank line. Empty when the
	// walk found nothing inheritable.
	Settings string

	// SdkName is the toolchain identifier governing the generated build.
	// Never empty.
	SdkName string
}
