// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one unit.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their own goroutines and keep
// working until ctx is cancelled or Stop is called. Stop blocks until the
// worker has fully terminated.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
