package storage

import (
	"jtr/internal/config"
	"jtr/internal/domain"
)

// Storage persists and loads generated reports (e.g. for the failures viewer)
type Storage interface {
	SaveReport(report *domain.ReportOutput, markdown string) error
	LoadReport() (*domain.ReportOutput, error)
	SaveFailures(output *domain.FailuresOutput) error
	LoadFailures() (*domain.FailuresOutput, error)
}

// JSONStorage stores reports under the configured output paths
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output paths
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
