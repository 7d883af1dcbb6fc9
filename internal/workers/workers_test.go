// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-riot-switcher/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// orderWorker records run and stop events into a shared log.
type orderWorker struct {
	id  int
	log *[]string
}

func (w *orderWorker) Run(context.Context) {
	*w.log = append(*w.log, "run", string(rune('0'+w.id)))
}

func (w *orderWorker) Stop() {
	*w.log = append(*w.log, "stop", string(rune('0'+w.id)))
}

func TestWorkers_RunAndStopOrder(t *testing.T) {
	var log []string
	ws := NewWorkers(&orderWorker{id: 1, log: &log}, &orderWorker{id: 2, log: &log}, &orderWorker{id: 3, log: &log})

	ws.Run(context.Background())
	ws.Stop()

	assert.Equal(t, []string{
		"run", "1", "run", "2", "run", "3",
		"stop", "3", "stop", "2", "stop", "1",
	}, log)
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run(context.Background())
	ws.Stop()
}

func TestWorkers_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run(context.Background())
	ws.Stop()
}

func TestStatusWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientStatusJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, 3*time.Second),
		job.EXPECT().Stop(),
	)

	w := NewStatusWorker(job, 3*time.Second)
	w.Run(ctx)
	w.Stop()
}
