package junit

import "jtr/internal/domain"

// Parser extracts failure records from one test-result document
type Parser interface {
	Extract(data []byte) ([]domain.FailureRecord, error)
}
