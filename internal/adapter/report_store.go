package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/sensorgrid/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves answers computed by the workflow.
type ReportStore interface {
	SaveReport(dir m.Path, report m.Report) (m.Report, error)
	LoadReports(dir m.Path) ([]m.Report, error)
}

// LocalReportStore writes one YAML file per report into a directory.
type LocalReportStore struct {
	now func() time.Time
}

// NewReportStore constructs a ReportStore backed by the local filesystem.
func NewReportStore() ReportStore {
	return &LocalReportStore{now: time.Now}
}

// SaveReport assigns an id and timestamp when missing and writes <id>.yaml.
// The stored report is returned.
func (rs *LocalReportStore) SaveReport(dir m.Path, report m.Report) (m.Report, error) {
	if err := ensureReportsDir(dir, true); err != nil {
		return m.Report{}, err
	}

	if report.ID == "" {
		report.ID = uuid.NewString()
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = rs.clock().UTC()
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return m.Report{}, fmt.Errorf("marshal report %s: %w", report.ID, err)
	}

	path := filepath.Join(string(dir), report.ID+reportExt)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return m.Report{}, fmt.Errorf("write report %s: %w", path, err)
	}

	return report, nil
}

// LoadReports reads every report in dir, oldest first.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.Report, error) {
	if err := ensureReportsDir(dir, false); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	reports := make([]m.Report, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.Report
		if err := yaml.Unmarshal(data, &report); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", path, err)
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		if reports[i].CreatedAt.Equal(reports[j].CreatedAt) {
			return reports[i].ID < reports[j].ID
		}

		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}

func (rs *LocalReportStore) clock() time.Time {
	if rs.now == nil {
		return time.Now()
	}

	return rs.now()
}

func ensureReportsDir(dir m.Path, create bool) error {
	if dir == "" {
		return errors.New("reports directory path is required")
	}

	info, err := os.Stat(string(dir))
	if errors.Is(err, os.ErrNotExist) && create {
		if err := os.MkdirAll(string(dir), 0o750); err != nil {
			return fmt.Errorf("create reports directory: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("reports directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", dir)
	}

	return nil
}
