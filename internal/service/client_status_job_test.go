// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/logger"
	"github.com/MKhiriev/go-riot-switcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyLockFile counts Exists calls and reports a switchable result.
type spyLockFile struct {
	calls  atomic.Int64
	exists atomic.Bool
}

func (s *spyLockFile) Exists() bool {
	s.calls.Add(1)
	return s.exists.Load()
}

func (s *spyLockFile) Locate(context.Context) (models.LockFileCredentials, error) {
	return models.LockFileCredentials{}, nil
}

func receive(t *testing.T, ch <-chan bool) bool {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(time.Second):
		t.Fatal("no status update received")
		return false
	}
}

func TestClientStatusJob_ProbesImmediatelyAndOnTick(t *testing.T) {
	spy := &spyLockFile{}
	job := NewClientStatusJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	assert.False(t, receive(t, job.Updates()), "first probe is always published")

	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
}

func TestClientStatusJob_PublishesChanges(t *testing.T) {
	spy := &spyLockFile{}
	job := NewClientStatusJob(spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	defer job.Stop()

	require.False(t, receive(t, job.Updates()))

	spy.exists.Store(true)
	assert.True(t, receive(t, job.Updates()))
	assert.True(t, job.Running())
}

func TestClientStatusJob_StopStopsGoroutine(t *testing.T) {
	spy := &spyLockFile{}
	job := NewClientStatusJob(spy, logger.Nop())

	job.Start(context.Background(), 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}

func TestClientStatusJob_StopBeforeStart_NoPanic(t *testing.T) {
	job := NewClientStatusJob(&spyLockFile{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientStatusJob_DefaultInterval(t *testing.T) {
	spy := &spyLockFile{}
	job := NewClientStatusJob(spy, logger.Nop())

	// only the initial probe runs within 20ms at the 5s default
	job.Start(context.Background(), 0)
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}
