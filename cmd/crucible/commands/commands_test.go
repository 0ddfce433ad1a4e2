package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/crucible/cmd/crucible/commands"
	"go.trai.ch/crucible/internal/app"
	"go.trai.ch/crucible/internal/build"
)

type mockApp struct {
	runFunc func(ctx context.Context, dir string, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, dir string, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, dir, opts)
	}
	return nil
}

func TestCommands_Generate(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.RunOptions
		var capturedDir string
		called := false

		mock := &mockApp{
			runFunc: func(_ context.Context, dir string, opts app.RunOptions) error {
				capturedOpts = opts
				capturedDir = dir
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"generate", "suites/md5",
			"--config", "suite.yaml",
			"--parallelism", "4",
			"--report", "out/report.json",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "suites/md5", capturedDir)
		assert.Equal(t, "suite.yaml", capturedOpts.ManifestName)
		assert.Equal(t, 4, capturedOpts.Parallelism)
		assert.Equal(t, "out/report.json", capturedOpts.ReportPath)
	})

	t.Run("defaults to the current directory", func(t *testing.T) {
		var capturedDir string
		var capturedOpts app.RunOptions

		mock := &mockApp{
			runFunc: func(_ context.Context, dir string, opts app.RunOptions) error {
				capturedDir = dir
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, ".", capturedDir)
		assert.Equal(t, app.RunOptions{}, capturedOpts)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"generate"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ string, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"generate", "one", "two"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
