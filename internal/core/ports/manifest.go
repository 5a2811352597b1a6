package ports

import "go.trai.ch/xcsync/internal/core/domain"

// ManifestLoader loads the integration targets computed by the installation
// pass, with their per-configuration framework/resource path lists and
// declared user script phases.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestLoader interface {
	Load(path string) ([]*domain.IntegrationTarget, error)
}
