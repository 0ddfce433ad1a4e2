package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crucible/internal/core/domain"
)

func boolPtr(v bool) *bool { return &v }

func TestGCMode_Value(t *testing.T) {
	mode := domain.GCMode{
		Server:   boolPtr(true),
		RetainVM: boolPtr(false),
	}

	value, ok := mode.Value(domain.GCServer)
	assert.True(t, ok)
	assert.True(t, value)

	value, ok = mode.Value(domain.GCRetainVM)
	assert.True(t, ok)
	assert.False(t, value)

	_, ok = mode.Value(domain.GCConcurrent)
	assert.False(t, ok, "unset characteristic must not report a value")
}

func TestGCMode_Has(t *testing.T) {
	mode := domain.GCMode{Concurrent: boolPtr(false)}

	assert.True(t, mode.Has(domain.GCConcurrent))
	assert.False(t, mode.Has(domain.GCServer))
	assert.False(t, mode.Has(domain.GCRetainVM))
}

func TestDefaultResolver_ResolveGC(t *testing.T) {
	tests := []struct {
		name           string
		mode           domain.GCMode
		characteristic domain.GCCharacteristic
		want           bool
	}{
		{
			name:           "explicit value wins",
			mode:           domain.GCMode{Server: boolPtr(true)},
			characteristic: domain.GCServer,
			want:           true,
		},
		{
			name:           "explicit false beats default true",
			mode:           domain.GCMode{Concurrent: boolPtr(false)},
			characteristic: domain.GCConcurrent,
			want:           false,
		},
		{
			name:           "server defaults to workstation",
			mode:           domain.GCMode{},
			characteristic: domain.GCServer,
			want:           false,
		},
		{
			name:           "concurrent defaults to on",
			mode:           domain.GCMode{},
			characteristic: domain.GCConcurrent,
			want:           true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := domain.DefaultResolver{}
			assert.Equal(t, tt.want, resolver.ResolveGC(tt.mode, tt.characteristic))
		})
	}
}
