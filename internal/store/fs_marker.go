// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/spf13/afero"
)

// MarkerFileName is the marker file kept in the store root.
const MarkerFileName = "last_switched_account.log"

type fileActiveAccountMarker struct {
	fs     afero.Fs
	path   string
	logger *logger.Logger
}

// NewActiveAccountMarker returns an [ActiveAccountMarker] stored as raw text
// in root/last_switched_account.log.
func NewActiveAccountMarker(fsys afero.Fs, root string, log *logger.Logger) ActiveAccountMarker {
	return &fileActiveAccountMarker{fs: fsys, path: filepath.Join(root, MarkerFileName), logger: log}
}

func (m *fileActiveAccountMarker) Get(ctx context.Context) (string, error) {
	content, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("%w: read marker: %w", ErrIO, err)
	}
	return strings.TrimRight(string(content), "\r\n"), nil
}

func (m *fileActiveAccountMarker) Set(ctx context.Context, name string) error {
	if err := m.fs.MkdirAll(filepath.Dir(m.path), dirPerm); err != nil {
		return fmt.Errorf("%w: create store root: %w", ErrIO, err)
	}
	if err := afero.WriteFile(m.fs, m.path, []byte(name), filePerm); err != nil {
		m.logger.Err(err).Str("func", "fileActiveAccountMarker.Set").Str("account", name).Msg("failed to write marker")
		return fmt.Errorf("%w: write marker: %w", ErrIO, err)
	}
	return nil
}

func (m *fileActiveAccountMarker) Clear(ctx context.Context) error {
	if err := m.fs.Remove(m.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove marker: %w", ErrIO, err)
	}
	return nil
}
