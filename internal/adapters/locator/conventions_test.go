package locator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/internal/adapters/locator"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

func TestSuiteDirectoryLocator(t *testing.T) {
	l := locator.SuiteDirectoryLocator{}
	assert.Equal(t, ports.PurposeBuildDescriptor, l.Purpose())

	t.Run("guesses next to assembly", func(t *testing.T) {
		path, found := l.TryLocate(domain.BuildRequest{
			SuiteAssembly: "Benchmarks",
			AssemblyPath:  filepath.Join("/work", "out", "Benchmarks.dll"),
		})
		require.True(t, found)
		assert.Equal(t, filepath.Join("/work", "out", "Benchmarks.csproj"), path)
	})

	t.Run("no guess without assembly name", func(t *testing.T) {
		_, found := l.TryLocate(domain.BuildRequest{})
		assert.False(t, found)
	})

	t.Run("falls back to working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		cwd, err := os.Getwd()
		require.NoError(t, err)

		path, found := l.TryLocate(domain.BuildRequest{SuiteAssembly: "Benchmarks"})
		require.True(t, found)
		assert.Equal(t, filepath.Join(cwd, "Benchmarks.csproj"), path)
	})
}

func TestAncestorLocator(t *testing.T) {
	l := locator.AncestorLocator{}
	assert.Equal(t, ports.PurposeBuildDescriptor, l.Purpose())

	t.Run("finds descriptor above build output", func(t *testing.T) {
		dir := t.TempDir()
		project := filepath.Join(dir, "Benchmarks.csproj")
		require.NoError(t, os.WriteFile(project, []byte("<Project/>"), 0o600))
		outDir := filepath.Join(dir, "bin", "Release", "net8.0")
		require.NoError(t, os.MkdirAll(outDir, 0o750))

		path, found := l.TryLocate(domain.BuildRequest{
			SuiteAssembly: "Benchmarks",
			AssemblyPath:  filepath.Join(outDir, "Benchmarks.dll"),
		})
		require.True(t, found)
		assert.Equal(t, project, path)
	})

	t.Run("returns deepest guess when nothing exists", func(t *testing.T) {
		dir := t.TempDir()
		outDir := filepath.Join(dir, "bin")
		require.NoError(t, os.MkdirAll(outDir, 0o750))

		path, found := l.TryLocate(domain.BuildRequest{
			SuiteAssembly: "Benchmarks",
			AssemblyPath:  filepath.Join(outDir, "Benchmarks.dll"),
		})
		require.True(t, found)
		assert.Equal(t, filepath.Join(outDir, "Benchmarks.csproj"), path)
	})

	t.Run("no guess without assembly name", func(t *testing.T) {
		_, found := l.TryLocate(domain.BuildRequest{})
		assert.False(t, found)
	})
}
