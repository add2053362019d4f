package artifacts

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"log-admin-probe/internal/shared/filestorages"
)

const (
	fileCSV  = "logs.csv"
	fileJSON = "logs.json"
)

// ExportStore keeps the bodies returned by the export endpoints, one directory per probe run.
//
//go:generate mockgen -source=export_store.go -destination=./mocks/export_store_mock.go -package=mocks
type ExportStore interface {
	SaveCSV(ctx context.Context, runID string, body []byte) (string, error)
	SaveJSON(ctx context.Context, runID string, body []byte) (string, error)
}

type exportStore struct {
	fileStorage filestorages.FileStorage
}

func NewExportStore(fileStorage filestorages.FileStorage) ExportStore {
	return &exportStore{fileStorage: fileStorage}
}

func (s *exportStore) SaveCSV(ctx context.Context, runID string, body []byte) (string, error) {
	return s.save(ctx, runID, fileCSV, body)
}

func (s *exportStore) SaveJSON(ctx context.Context, runID string, body []byte) (string, error) {
	return s.save(ctx, runID, fileJSON, body)
}

// save writes body to <runID>/<name>. A run never overwrites its own artifacts.
func (s *exportStore) save(ctx context.Context, runID, name string, body []byte) (string, error) {
	if runID == "" {
		return "", fmt.Errorf("failed to save %s: empty run id", name)
	}
	key := path.Join(runID, name)

	result, err := s.fileStorage.Put(ctx, key, bytes.NewReader(body), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		return "", fmt.Errorf("failed to save %s: %w", key, err)
	}
	return result.Path, nil
}

// NopExportStore discards everything. Used when no artifact directory is configured.
type NopExportStore struct{}

func (NopExportStore) SaveCSV(context.Context, string, []byte) (string, error)  { return "", nil }
func (NopExportStore) SaveJSON(context.Context, string, []byte) (string, error) { return "", nil }
