package config

// Manifest represents the structure of the crucible.yaml suite manifest.
type Manifest struct {
	Version  string      `yaml:"version"`
	Defaults DefaultsDTO `yaml:"defaults"`
	Cases    []CaseDTO   `yaml:"cases"`
}

// DefaultsDTO carries suite-wide values applied to every case that leaves
// the corresponding field empty.
type DefaultsDTO struct {
	SuiteAssembly string `yaml:"suiteAssembly"`
	AssemblyPath  string `yaml:"assemblyPath"`
	Moniker       string `yaml:"moniker"`
	Platform      string `yaml:"platform"`
	Configuration string `yaml:"configuration"`
}

// CaseDTO represents one benchmark case entry.
type CaseDTO struct {
	ID                      string `yaml:"id"`
	SuiteAssembly           string `yaml:"suiteAssembly"`
	AssemblyPath            string `yaml:"assemblyPath"`
	Moniker                 string `yaml:"moniker"`
	Platform                string `yaml:"platform"`
	Configuration           string `yaml:"configuration"`
	RuntimeFrameworkVersion string `yaml:"runtimeFrameworkVersion"`
	ProgramName             string `yaml:"programName"`
	GC                      GCDTO  `yaml:"gc"`
}

// GCDTO mirrors the tri-state garbage collector settings of a case.
type GCDTO struct {
	Server     *bool `yaml:"server"`
	Concurrent *bool `yaml:"concurrent"`
	RetainVM   *bool `yaml:"retainVm"`
}
