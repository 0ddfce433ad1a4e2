// export_test.go exports private rendering helpers for white-box testing.
package generator

// Exported aliases for tests.
var (
	Render            = render
	RuntimeProperties = runtimeProperties
	DeriveProgramName = deriveProgramName
	SanitizeStem      = sanitizeStem
)

// Substitutions exposes the private substitutions type for tests.
type Substitutions = substitutions
