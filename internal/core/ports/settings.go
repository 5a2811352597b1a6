package ports

import "go.trai.ch/xcsync/internal/core/domain"

// SettingsIntegrator applies build-setting (xcconfig) integration for a
// target. The real implementation lives in the surrounding installer; the
// reconciler only schedules it at the right point in the integration
// sequence.
//
//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsIntegrator interface {
	Apply(project *domain.Project, target *domain.IntegrationTarget) error
}
