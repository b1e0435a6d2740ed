package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"jtr/internal/domain"
)

// SaveReport writes the JSON report and the Markdown report to the output dir
func (s *JSONStorage) SaveReport(report *domain.ReportOutput, markdown string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	jsonPath := s.cfg.GetJSONPath()
	if err := os.MkdirAll(filepath.Dir(jsonPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		return fmt.Errorf("write JSON report: %w", err)
	}

	if err := os.WriteFile(s.cfg.GetMarkdownPath(), []byte(markdown), 0644); err != nil {
		return fmt.Errorf("write Markdown report: %w", err)
	}
	return nil
}

// LoadReport reads the last JSON report from the output dir
func (s *JSONStorage) LoadReport() (*domain.ReportOutput, error) {
	data, err := os.ReadFile(s.cfg.GetJSONPath())
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.ReportOutput
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}

// SaveFailures writes the extracted failure records to the output dir
func (s *JSONStorage) SaveFailures(output *domain.FailuresOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal failures: %w", err)
	}

	path := s.cfg.GetFailuresPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write failures: %w", err)
	}
	return nil
}

// LoadFailures reads the last extracted failure records from the output dir
func (s *JSONStorage) LoadFailures() (*domain.FailuresOutput, error) {
	data, err := os.ReadFile(s.cfg.GetFailuresPath())
	if err != nil {
		return nil, fmt.Errorf("read failures file: %w", err)
	}
	var output domain.FailuresOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse failures: %w", err)
	}
	return &output, nil
}
