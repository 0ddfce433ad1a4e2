package generator

import (
	"fmt"
	"strings"

	"go.trai.ch/crucible/internal/core/domain"
	"go.trai.ch/crucible/internal/core/ports"
)

// runtimeProperties renders the garbage collector block of a generated
// descriptor. Server and concurrent GC are always stated explicitly so the
// generated program cannot silently inherit machine-wide settings. Retain-VM
// only appears when the case set it: emitting it at all changes runtime
// behavior on some runtimes.
func runtimeProperties(gc domain.GCMode, resolver ports.CharacteristicResolver) string {
	var b strings.Builder
	b.WriteString("<PropertyGroup>\n")
	fmt.Fprintf(&b, "  <ServerGarbageCollection>%t</ServerGarbageCollection>\n",
		resolver.ResolveGC(gc, domain.GCServer))
	fmt.Fprintf(&b, "  <ConcurrentGarbageCollection>%t</ConcurrentGarbageCollection>\n",
		resolver.ResolveGC(gc, domain.GCConcurrent))
	if gc.Has(domain.GCRetainVM) {
		fmt.Fprintf(&b, "  <RetainVMGarbageCollection>%t</RetainVMGarbageCollection>\n",
			resolver.ResolveGC(gc, domain.GCRetainVM))
	}
	b.WriteString("</PropertyGroup>")
	return b.String()
}
