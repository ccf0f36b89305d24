// Package localbinding writes output-binding payloads to the local
// filesystem, the development stand-in for cloud blob storage. The blob
// name is taken from the "blobName" metadata entry.
package localbinding

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"reddog/internal/pkg/errs"
)

type Storage struct {
	dir string
}

func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrap(err, "failed to create binding directory")
	}
	return &Storage{dir: dir}, nil
}

func (s *Storage) Create(_ context.Context, payload any, metadata map[string]string) error {
	blobName := metadata["blobName"]
	if blobName == "" {
		return errs.New("binding metadata missing blobName")
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errs.Wrap(err, "failed to marshal binding payload")
	}

	if err := os.WriteFile(filepath.Join(s.dir, blobName), data, 0o644); err != nil {
		return errs.Wrap(err, "failed to write blob "+blobName)
	}
	return nil
}
