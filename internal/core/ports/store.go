package ports

import "go.trai.ch/xcsync/internal/core/domain"

// ProjectStore loads and persists the project graph snapshot.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ProjectStore interface {
	Load(path string) (*domain.Project, error)
	Save(path string, project *domain.Project) error
}
