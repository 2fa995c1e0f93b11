package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/raygun/internal/model"
)

// ReportFileName is the file a run report is stored under in the output
// directory.
const ReportFileName = "raygun-report.yaml"

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(dir m.Path, report m.RunReport) (m.Path, error)
	LoadReport(dir m.Path) (m.RunReport, error)
}

// YAMLReportStore stores one YAML report file per output directory.
type YAMLReportStore struct{}

// NewYAMLReportStore constructs a YAMLReportStore.
func NewYAMLReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes report to dir, replacing a previous report, and returns
// the file path.
func (s *YAMLReportStore) SaveReport(dir m.Path, report m.RunReport) (m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)

	// Write then rename so a crashed run never leaves half a report behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads the report stored in dir. dir may also name the report
// file itself.
func (s *YAMLReportStore) LoadReport(dir m.Path) (m.RunReport, error) {
	path := string(dir)
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, ReportFileName)
	}

	// #nosec G304 - report path comes from the user's own configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("decode report %s: %w", path, err)
	}

	return report, nil
}
