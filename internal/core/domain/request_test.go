package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crucible/internal/core/domain"
)

func TestMoniker_IsNetCoreApp(t *testing.T) {
	tests := []struct {
		name    string
		moniker domain.Moniker
		want    bool
	}{
		{name: "netcoreapp3.1", moniker: "netcoreapp3.1", want: true},
		{name: "netcoreapp2.0", moniker: "netcoreapp2.0", want: true},
		{name: "mixed case prefix", moniker: "NetCoreApp3.1", want: true},
		{name: "bare prefix", moniker: "netcoreapp", want: true},
		{name: "classic framework", moniker: "net48", want: false},
		{name: "modern tfm", moniker: "net8.0", want: false},
		{name: "standard", moniker: "netstandard2.0", want: false},
		{name: "empty", moniker: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.moniker.IsNetCoreApp())
		})
	}
}
