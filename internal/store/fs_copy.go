// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// copyPath copies src to dst on fsys. Directories are copied recursively,
// files are overwritten. dst's parent directories are created as needed.
func copyPath(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(fsys, src, dst, info.Mode().Perm())
	}

	return afero.Walk(fsys, src, func(path string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if fi.IsDir() {
			return fsys.MkdirAll(target, fi.Mode().Perm()|0o700)
		}
		return copyFile(fsys, path, target, fi.Mode().Perm())
	})
}

func copyFile(fsys afero.Fs, src, dst string, perm os.FileMode) error {
	if err := fsys.MkdirAll(filepath.Dir(dst), dirPerm); err != nil {
		return err
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if perm == 0 {
		perm = filePerm
	}
	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// pathExists is afero.Exists without the error: an unreadable path counts as
// absent.
func pathExists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
