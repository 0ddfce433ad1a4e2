package domain_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/internal/core/domain"
)

func TestNewArtifactPaths(t *testing.T) {
	request := domain.BuildRequest{
		AssemblyPath:  filepath.Join("/work", "suite", "bin", "Benchmarks.dll"),
		Moniker:       "netcoreapp3.1",
		Configuration: "Release",
	}

	paths := domain.NewArtifactPaths(request, "job-1234")

	root := filepath.Join("/work", "suite", "bin", "job-1234")
	assert.Equal(t, root, paths.ArtifactsDir)
	assert.Equal(t, filepath.Join(root, domain.GeneratedDescriptorName), paths.ProjectFilePath)
	assert.Equal(t, filepath.Join(root, "job-1234.notcs"), paths.ProgramCodePath)
	assert.Equal(t, filepath.Join(root, "bin", "Release", "netcoreapp3.1"), paths.BinariesDir)
	assert.Equal(t, filepath.Join(root, "obj", "Release", "netcoreapp3.1"), paths.IntermediateDir)
	assert.Equal(t, "job-1234", paths.ProgramName)
	assert.True(t, filepath.IsAbs(paths.ExecutablePath))
	assert.Contains(t, paths.ExecutablePath, "job-1234")
}

func TestNewArtifactPaths_FallsBackToWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())
	cwd, err := os.Getwd()
	require.NoError(t, err)

	paths := domain.NewArtifactPaths(domain.BuildRequest{Configuration: "Release"}, "job")

	assert.Equal(t, filepath.Join(cwd, "crucible-artifacts", "job"), paths.ArtifactsDir)
}

func TestNewArtifactPaths_ExecutableInsideBinaries(t *testing.T) {
	request := domain.BuildRequest{
		AssemblyPath:  filepath.Join("/work", "Benchmarks.dll"),
		Moniker:       "net48",
		Configuration: "Debug",
	}

	paths := domain.NewArtifactPaths(request, "case")

	assert.Equal(t, paths.BinariesDir, filepath.Dir(paths.ExecutablePath))
}
