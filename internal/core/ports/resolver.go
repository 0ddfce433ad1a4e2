package ports

import "go.trai.ch/crucible/internal/core/domain"

// CharacteristicResolver resolves optional case settings to effective
// values, applying defaults where the case left a characteristic unset.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type CharacteristicResolver interface {
	// ResolveGC returns the effective boolean value of a garbage collector
	// characteristic.
	ResolveGC(mode domain.GCMode, characteristic domain.GCCharacteristic) bool
}
