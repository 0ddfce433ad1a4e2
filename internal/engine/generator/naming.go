package generator

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/crucible/internal/core/domain"
)

const maxNameStemLength = 64

// deriveProgramName builds a stable, filesystem-safe name for a generated
// program. The xxhash suffix keeps cases apart whose sanitized ids collide,
// and makes reruns land in the same artifacts directory.
func deriveProgramName(request domain.BuildRequest) string {
	h := xxhash.New()
	_, _ = h.WriteString(request.CaseID)
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(string(request.Moniker))
	_, _ = h.Write([]byte{0})
	_, _ = h.WriteString(request.Configuration)

	return fmt.Sprintf("%s-%016x", sanitizeStem(request.CaseID), h.Sum64())
}

// sanitizeStem reduces a case id to characters safe in file names on every
// platform the toolchain builds for.
func sanitizeStem(id string) string {
	var b strings.Builder
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	stem := b.String()
	if len(stem) > maxNameStemLength {
		stem = stem[:maxNameStemLength]
	}
	if stem == "" {
		stem = "benchmark"
	}
	return stem
}
