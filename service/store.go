package service

import (
	"fmt"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=store.go -destination=mocks/report_store.go -package=mocks

// ReportStore persists rendered report files and hands back a path the HTTP
// layer can serve from.
type ReportStore interface {
	Save(name string, data []byte) (string, error)
}

// LocalReportStore keeps reports on the local filesystem under one base
// directory (reports.dir in the configuration).
type LocalReportStore struct {
	baseDir string
}

func NewLocalReportStore(baseDir string) (*LocalReportStore, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir %s: %w", baseDir, err)
	}
	return &LocalReportStore{baseDir: baseDir}, nil
}

func (s *LocalReportStore) Save(name string, data []byte) (string, error) {
	// Base strips any path segments a caller may smuggle into the name.
	path := filepath.Join(s.baseDir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write report %s: %w", path, err)
	}
	return path, nil
}
