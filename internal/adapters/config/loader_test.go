package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/internal/adapters/config"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/zerr"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	path := filepath.Join(dir, config.DefaultManifestName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  assemblyPath: /work/out/Benchmarks.dll
  moniker: net8.0
cases:
  - id: md5-vs-sha256
  - id: sorting
    moniker: netcoreapp3.1
    configuration: Debug
`)

	requests, err := config.NewLoader().Load(dir, "")
	require.NoError(t, err)
	require.Len(t, requests, 2)

	first := requests[0]
	assert.Equal(t, "md5-vs-sha256", first.CaseID)
	assert.Equal(t, "Benchmarks", first.SuiteAssembly)
	assert.Equal(t, "/work/out/Benchmarks.dll", first.AssemblyPath)
	assert.Equal(t, domain.Moniker("net8.0"), first.Moniker)
	assert.Equal(t, domain.PlatformAnyCPU, first.Platform)
	assert.Equal(t, "Release", first.Configuration)

	second := requests[1]
	assert.Equal(t, domain.Moniker("netcoreapp3.1"), second.Moniker)
	assert.Equal(t, "Debug", second.Configuration)
}

func TestLoad_GCCharacteristics(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  moniker: net8.0
cases:
  - id: gc-case
    gc:
      server: true
      retainVm: false
  - id: plain-case
`)

	requests, err := config.NewLoader().Load(dir, "")
	require.NoError(t, err)
	require.Len(t, requests, 2)

	gc := requests[0].GC
	value, ok := gc.Value(domain.GCServer)
	require.True(t, ok)
	assert.True(t, value)
	value, ok = gc.Value(domain.GCRetainVM)
	require.True(t, ok)
	assert.False(t, value)
	assert.False(t, gc.Has(domain.GCConcurrent), "unset characteristic must stay unset")

	assert.False(t, requests[1].GC.Has(domain.GCServer))
}

func TestLoad_RuntimeFrameworkVersionAndProgramName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  moniker: netcoreapp3.0
cases:
  - id: pinned
    runtimeFrameworkVersion: 3.0.0-preview5
    programName: pinned-program
`)

	requests, err := config.NewLoader().Load(dir, "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "3.0.0-preview5", requests[0].RuntimeFrameworkVersion)
	assert.Equal(t, "pinned-program", requests[0].ProgramName)
}

func TestLoad_MissingManifest(t *testing.T) {
	_, err := config.NewLoader().Load(t.TempDir(), "")
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoad_CustomManifestName(t *testing.T) {
	dir := t.TempDir()
	content := `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  moniker: net8.0
cases:
  - id: only
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "suite.yaml"), []byte(content), 0o600))

	requests, err := config.NewLoader().Load(dir, "suite.yaml")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "only", requests[0].CaseID)

	// The default name is not present in the directory.
	_, err = config.NewLoader().Load(dir, "")
	require.ErrorIs(t, err, domain.ErrManifestNotFound)
}

func TestLoad_MalformedManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "cases: [\n")

	_, err := config.NewLoader().Load(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse suite manifest")
}

func TestLoad_NoCases(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
cases: []
`)

	_, err := config.NewLoader().Load(dir, "")
	require.ErrorIs(t, err, domain.ErrNoRequests)
}

func TestLoad_DuplicateCaseID(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  moniker: net8.0
cases:
  - id: twice
  - id: twice
`)

	_, err := config.NewLoader().Load(dir, "")
	require.ErrorIs(t, err, domain.ErrDuplicateCase)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "twice", zErr.Metadata()["case_id"])
}

func TestLoad_MissingMoniker(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
cases:
  - id: no-moniker
`)

	_, err := config.NewLoader().Load(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no target moniker")
}

func TestLoad_MissingCaseID(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
version: "1"
defaults:
  suiteAssembly: Benchmarks
  moniker: net8.0
cases:
  - configuration: Debug
`)

	_, err := config.NewLoader().Load(dir, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing an id")
}
