package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/engine/generator"
)

func TestDeriveProgramName_Deterministic(t *testing.T) {
	request := domain.BuildRequest{
		CaseID:        "Md5VsSha256",
		Moniker:       "net8.0",
		Configuration: "Release",
	}

	first := generator.DeriveProgramName(request)
	second := generator.DeriveProgramName(request)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "Md5VsSha256-"), "got %q", first)
}

func TestDeriveProgramName_DistinguishesMonikerAndConfiguration(t *testing.T) {
	base := domain.BuildRequest{CaseID: "Md5VsSha256", Moniker: "net8.0", Configuration: "Release"}

	otherMoniker := base
	otherMoniker.Moniker = "netcoreapp3.1"
	otherConfiguration := base
	otherConfiguration.Configuration = "Debug"

	name := generator.DeriveProgramName(base)
	assert.NotEqual(t, name, generator.DeriveProgramName(otherMoniker))
	assert.NotEqual(t, name, generator.DeriveProgramName(otherConfiguration))
}

// Case ids that sanitize to the same stem still get distinct program names
// through the hash suffix.
func TestDeriveProgramName_CollidingStemsStayApart(t *testing.T) {
	a := domain.BuildRequest{CaseID: "a.b", Moniker: "net8.0", Configuration: "Release"}
	b := domain.BuildRequest{CaseID: "a/b", Moniker: "net8.0", Configuration: "Release"}

	nameA := generator.DeriveProgramName(a)
	nameB := generator.DeriveProgramName(b)

	assert.True(t, strings.HasPrefix(nameA, "a-b-"), "got %q", nameA)
	assert.True(t, strings.HasPrefix(nameB, "a-b-"), "got %q", nameB)
	assert.NotEqual(t, nameA, nameB)
}

func TestSanitizeStem(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "kept characters", id: "Case_01-x", want: "Case_01-x"},
		{name: "path separators", id: "Suite/Md5.Sha256", want: "Suite-Md5-Sha256"},
		{name: "spaces and non-ascii", id: "bench märk 1", want: "bench-m-rk-1"},
		{name: "generic parameters", id: "Bench<int, string>", want: "Bench-int--string-"},
		{name: "empty id", id: "", want: "benchmark"},
		{name: "long id truncated", id: strings.Repeat("a", 80), want: strings.Repeat("a", 64)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generator.SanitizeStem(tt.id))
		})
	}
}
