package domain

// GCCharacteristic identifies one tunable garbage collector setting of a
// benchmark case.
type GCCharacteristic string

// The garbage collector characteristics a case can set.
const (
	GCServer     GCCharacteristic = "Server"
	GCConcurrent GCCharacteristic = "Concurrent"
	GCRetainVM   GCCharacteristic = "RetainVM"
)

// GCMode describes the garbage collector settings requested by a benchmark
// case. Each characteristic is tri-state: a nil field means the case left it
// unset and a resolver default applies.
type GCMode struct {
	Server     *bool
	Concurrent *bool
	RetainVM   *bool
}

// Has reports whether the characteristic was explicitly set.
func (m GCMode) Has(c GCCharacteristic) bool {
	_, ok := m.Value(c)
	return ok
}

// Value returns the explicit value of the characteristic. ok is false when
// the case left it unset.
func (m GCMode) Value(c GCCharacteristic) (value, ok bool) {
	var field *bool
	switch c {
	case GCServer:
		field = m.Server
	case GCConcurrent:
		field = m.Concurrent
	case GCRetainVM:
		field = m.RetainVM
	}
	if field == nil {
		return false, false
	}
	return *field, true
}

// gcDefaults are the fallback values applied when a characteristic is unset.
// RetainVM has no meaningful default: it is only ever emitted when a case
// sets it explicitly.
var gcDefaults = map[GCCharacteristic]bool{
	GCServer:     false,
	GCConcurrent: true,
	GCRetainVM:   false,
}

// DefaultResolver resolves characteristics by falling back to the workload
// defaults when a case leaves them unset.
type DefaultResolver struct{}

// ResolveGC returns the effective boolean value of a GC characteristic.
func (DefaultResolver) ResolveGC(mode GCMode, c GCCharacteristic) bool {
	if value, ok := mode.Value(c); ok {
		return value
	}
	return gcDefaults[c]
}
