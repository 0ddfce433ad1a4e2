package generator

import "strings"

// substitutions carries the values for the closed placeholder set of the
// descriptor templates.
type substitutions struct {
	Platform        string
	CodeFileName    string
	HostProjectPath string
	Moniker         string
	ProgramName     string
	RuntimeSettings string
	CopiedSettings  string
	Configuration   string
	SdkName         string
}

// render substitutes every placeholder in a single pass over the template.
// Substituted values are never re-scanned, so placeholder-shaped text inside
// a value survives literally, and unknown tokens pass through untouched.
func render(template string, subs substitutions) string {
	replacer := strings.NewReplacer(
		"$PLATFORM$", subs.Platform,
		"$CODEFILENAME$", subs.CodeFileName,
		"$CSPROJPATH$", subs.HostProjectPath,
		"$TFM$", subs.Moniker,
		"$PROGRAMNAME$", subs.ProgramName,
		"$RUNTIMESETTINGS$", subs.RuntimeSettings,
		"$COPIEDSETTINGS$", subs.CopiedSettings,
		"$CONFIGURATIONNAME$", subs.Configuration,
		"$SDKNAME$", subs.SdkName,
	)
	return replacer.Replace(template)
}
