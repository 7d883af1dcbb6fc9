// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/spf13/afero"
)

// IDGenerator names the temporary directories used by Restore.
type IDGenerator interface {
	Generate() string
}

type accountSnapshotStore struct {
	fs       afero.Fs
	root     string
	liveRoot string
	managed  models.ManagedPathSet
	ids      IDGenerator
	logger   *logger.Logger
}

// NewAccountSnapshotStore returns an [AccountSnapshotStore] keeping snapshots
// under root and restoring them into liveRoot.
func NewAccountSnapshotStore(fsys afero.Fs, root, liveRoot string, managed models.ManagedPathSet, ids IDGenerator, log *logger.Logger) AccountSnapshotStore {
	return &accountSnapshotStore{
		fs:       fsys,
		root:     root,
		liveRoot: liveRoot,
		managed:  managed,
		ids:      ids,
		logger:   log,
	}
}

func (s *accountSnapshotStore) accountDir(name string) string {
	return filepath.Join(s.root, name)
}

func (s *accountSnapshotStore) livePath(i int) string {
	return filepath.Join(s.liveRoot, filepath.FromSlash(s.managed[i]))
}

func (s *accountSnapshotStore) List(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		s.logger.Err(err).Str("func", "accountSnapshotStore.List").Str("root", s.root).Msg("failed to read store root")
		return nil, fmt.Errorf("%w: list accounts: %w", ErrIO, err)
	}

	// afero.ReadDir sorts by name.
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func (s *accountSnapshotStore) Save(ctx context.Context, name string) (models.AccountSnapshot, error) {
	dir := s.accountDir(name)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return models.AccountSnapshot{}, fmt.Errorf("%w: create account dir: %w", ErrIO, err)
	}

	snapshot := models.AccountSnapshot{Name: name, Contents: []string{}}
	for i, rel := range s.managed {
		if err := ctx.Err(); err != nil {
			return models.AccountSnapshot{}, err
		}

		src := s.livePath(i)
		dst := filepath.Join(dir, s.managed.Leaf(i))
		if !pathExists(s.fs, src) {
			// a path absent from the live installation must not survive from
			// an earlier save
			if err := s.fs.RemoveAll(dst); err != nil {
				return models.AccountSnapshot{}, fmt.Errorf("%w: remove stale copy of %s: %w", ErrIO, rel, err)
			}
			continue
		}

		if err := s.fs.RemoveAll(dst); err != nil {
			return models.AccountSnapshot{}, fmt.Errorf("%w: remove previous copy of %s: %w", ErrIO, rel, err)
		}
		if err := copyPath(s.fs, src, dst); err != nil {
			s.logger.Err(err).
				Str("func", "accountSnapshotStore.Save").
				Str("account", name).
				Str("path", rel).
				Msg("failed to copy managed path")
			return models.AccountSnapshot{}, fmt.Errorf("%w: copy %s: %w", ErrIO, rel, err)
		}
		snapshot.Contents = append(snapshot.Contents, rel)
	}

	s.logger.Info().
		Str("func", "accountSnapshotStore.Save").
		Str("account", name).
		Strs("contents", snapshot.Contents).
		Msg("account snapshot saved")

	return snapshot, nil
}

// swap records one managed path that Restore has replaced.
type swap struct {
	live    string
	backup  string
	hadLive bool
	// createdDirs lists the parents of live that swapIn had to create,
	// deepest first.
	createdDirs []string
}

func (s *accountSnapshotStore) Restore(ctx context.Context, name string) error {
	dir := s.accountDir(name)
	if ok, _ := afero.DirExists(s.fs, dir); !ok {
		return ErrAccountNotFound
	}

	// Staging and backup live next to the installation so the final moves
	// are renames on one volume.
	id := s.ids.Generate()
	base := filepath.Base(s.liveRoot)
	staging := filepath.Join(filepath.Dir(s.liveRoot), "."+base+"-staging-"+id)
	backup := filepath.Join(filepath.Dir(s.liveRoot), "."+base+"-backup-"+id)
	defer s.removeTemp(staging)

	var pending []int
	for i := range s.managed {
		if err := ctx.Err(); err != nil {
			return err
		}

		leaf := s.managed.Leaf(i)
		src := filepath.Join(dir, leaf)
		if !pathExists(s.fs, src) {
			continue
		}
		if err := copyPath(s.fs, src, filepath.Join(staging, leaf)); err != nil {
			return fmt.Errorf("%w: stage %s: %w", ErrIO, leaf, err)
		}
		pending = append(pending, i)
	}
	if len(pending) == 0 {
		return nil
	}

	if err := s.fs.MkdirAll(backup, dirPerm); err != nil {
		return fmt.Errorf("%w: create backup dir: %w", ErrIO, err)
	}

	done := make([]swap, 0, len(pending))
	for _, i := range pending {
		leaf := s.managed.Leaf(i)
		sw := swap{live: s.livePath(i), backup: filepath.Join(backup, leaf)}

		if err := s.swapIn(&sw, filepath.Join(staging, leaf)); err != nil {
			s.logger.Err(err).
				Str("func", "accountSnapshotStore.Restore").
				Str("account", name).
				Str("path", s.managed[i]).
				Msg("restore failed, rolling back")
			s.removeCreatedDirs(sw.createdDirs)
			s.rollback(done)
			s.removeTemp(backup)
			return fmt.Errorf("%w: restore %s: %w", ErrIO, s.managed[i], err)
		}
		done = append(done, sw)
	}

	s.removeTemp(backup)

	s.logger.Info().
		Str("func", "accountSnapshotStore.Restore").
		Str("account", name).
		Int("paths", len(done)).
		Msg("account snapshot restored")

	return nil
}

// swapIn moves the live path aside and the staged copy into its place. If
// the second move fails the live path is put back.
func (s *accountSnapshotStore) swapIn(sw *swap, staged string) error {
	for dir := filepath.Dir(sw.live); !pathExists(s.fs, dir); dir = filepath.Dir(dir) {
		sw.createdDirs = append(sw.createdDirs, dir)
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	if err := s.fs.MkdirAll(filepath.Dir(sw.live), dirPerm); err != nil {
		return err
	}

	if pathExists(s.fs, sw.live) {
		if err := s.fs.Rename(sw.live, sw.backup); err != nil {
			return err
		}
		sw.hadLive = true
	}

	if err := s.fs.Rename(staged, sw.live); err != nil {
		if sw.hadLive {
			if rbErr := s.fs.Rename(sw.backup, sw.live); rbErr != nil {
				return errors.Join(err, rbErr)
			}
		}
		return err
	}
	return nil
}

// rollback undoes completed swaps in reverse order.
func (s *accountSnapshotStore) rollback(done []swap) {
	for i := len(done) - 1; i >= 0; i-- {
		sw := done[i]
		if err := s.fs.RemoveAll(sw.live); err != nil {
			s.logger.Err(err).Str("func", "accountSnapshotStore.rollback").Str("path", sw.live).Msg("failed to remove restored path")
			continue
		}
		if sw.hadLive {
			if err := s.fs.Rename(sw.backup, sw.live); err != nil {
				s.logger.Err(err).Str("func", "accountSnapshotStore.rollback").Str("path", sw.live).Msg("failed to put back live path")
			}
		}
		s.removeCreatedDirs(sw.createdDirs)
	}
}

// removeCreatedDirs removes directories created by swapIn, deepest first,
// stopping at the first one that is not empty.
func (s *accountSnapshotStore) removeCreatedDirs(dirs []string) {
	for _, dir := range dirs {
		empty, err := afero.IsEmpty(s.fs, dir)
		if err != nil || !empty {
			return
		}
		if err := s.fs.Remove(dir); err != nil {
			s.logger.Err(err).Str("func", "accountSnapshotStore.removeCreatedDirs").Str("path", dir).Msg("failed to remove created dir")
			return
		}
	}
}

func (s *accountSnapshotStore) removeTemp(path string) {
	if err := s.fs.RemoveAll(path); err != nil {
		s.logger.Warn().Err(err).Str("func", "accountSnapshotStore.removeTemp").Str("path", path).Msg("failed to remove temporary dir")
	}
}

func (s *accountSnapshotStore) Delete(ctx context.Context, name string) error {
	dir := s.accountDir(name)
	if ok, _ := afero.DirExists(s.fs, dir); !ok {
		return ErrAccountNotFound
	}
	if err := s.fs.RemoveAll(dir); err != nil {
		s.logger.Err(err).Str("func", "accountSnapshotStore.Delete").Str("account", name).Msg("failed to delete snapshot")
		return fmt.Errorf("%w: delete account: %w", ErrIO, err)
	}
	return nil
}

func (s *accountSnapshotStore) Exists(ctx context.Context, name string) (bool, error) {
	ok, err := afero.DirExists(s.fs, s.accountDir(name))
	if err != nil {
		return false, fmt.Errorf("%w: stat account: %w", ErrIO, err)
	}
	return ok, nil
}

func (s *accountSnapshotStore) ClearLive(ctx context.Context) error {
	var errs []error
	for i := range s.managed {
		if err := s.fs.RemoveAll(s.livePath(i)); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: clear live installation: %w", ErrIO, err)
	}
	return nil
}

func (s *accountSnapshotStore) LiveRootExists() bool {
	ok, err := afero.DirExists(s.fs, s.liveRoot)
	return err == nil && ok
}
