// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/spf13/afero"
)

// Lock file layout: name:pid:port:password:protocol.
const (
	lockfileMinFields     = 4
	lockfilePortField     = 2
	lockfilePasswordField = 3
)

type lockFileReader struct {
	fs     afero.Fs
	path   string
	logger *logger.Logger
}

// NewLockFileReader returns a [LockFileReader] reading path from fsys.
func NewLockFileReader(fsys afero.Fs, path string, log *logger.Logger) LockFileReader {
	return &lockFileReader{fs: fsys, path: path, logger: log}
}

func (r *lockFileReader) Exists() bool {
	ok, err := afero.Exists(r.fs, r.path)
	return err == nil && ok
}

func (r *lockFileReader) Locate(ctx context.Context) (models.LockFileCredentials, error) {
	content, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.LockFileCredentials{}, ErrLockfileNotFound
		}
		r.logger.Err(err).Str("func", "lockFileReader.Locate").Str("path", r.path).Msg("failed to read lockfile")
		return models.LockFileCredentials{}, fmt.Errorf("%w: read lockfile: %w", ErrIO, err)
	}

	creds, err := ParseLockfile(string(content))
	if err != nil {
		r.logger.Warn().Str("func", "lockFileReader.Locate").Str("path", r.path).Msg("lockfile is malformed")
		return models.LockFileCredentials{}, err
	}
	return creds, nil
}

// ParseLockfile extracts the port (field 2) and password (field 3) from a
// colon-delimited lock file record. Fields past index 3 are ignored.
func ParseLockfile(content string) (models.LockFileCredentials, error) {
	parts := strings.Split(strings.TrimSpace(content), ":")
	if len(parts) < lockfileMinFields {
		return models.LockFileCredentials{}, ErrMalformedLockfile
	}

	port, err := strconv.Atoi(parts[lockfilePortField])
	if err != nil || port < 1 || port > 65535 {
		return models.LockFileCredentials{}, fmt.Errorf("%w: bad port %q", ErrMalformedLockfile, parts[lockfilePortField])
	}

	return models.LockFileCredentials{Port: port, Password: parts[lockfilePasswordField]}, nil
}
