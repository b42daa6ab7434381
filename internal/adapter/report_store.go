package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/testrunner/internal/model"
	"gopkg.in/yaml.v3"
)

// ReportStore persists run records so results can be viewed later.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, record m.RunRecord) error
	LoadReport(ctx context.Context, path m.Path) (m.RunRecord, error)
}

// YAMLReportStore stores one run record per YAML file.
type YAMLReportStore struct{}

// NewReportStore constructs the YAML backed ReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes record to path, creating parent directories.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, record m.RunRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := yaml.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode run record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		slog.Error("Failed to create report directory", "path", path, "error", err)
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return fmt.Errorf("write report: %w", err)
	}

	slog.Debug("Saved run record", "path", path, "id", record.ID)

	return nil
}

// LoadReport reads the record stored at path.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return m.RunRecord{}, err
	}

	// #nosec G304 - path is the report file chosen by the user
	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.RunRecord{}, fmt.Errorf("read report: %w", err)
	}

	var record m.RunRecord
	if err := yaml.Unmarshal(data, &record); err != nil {
		return m.RunRecord{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return record, nil
}
