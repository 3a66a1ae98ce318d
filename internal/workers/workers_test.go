// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/clip-keeper/internal/logger"
)

// mockJob is a test implementation of the Job interface
// that tracks how many times Start and Stop were called.
type mockJob struct {
	startCount int
	stopCount  int
	startErr   error
}

func (m *mockJob) Name() string { return "mock" }

func (m *mockJob) Start(context.Context) error {
	m.startCount++
	return m.startErr
}

func (m *mockJob) Stop() {
	m.stopCount++
}

func TestRunner_Start_AllJobsAreStarted(t *testing.T) {
	j1 := &mockJob{}
	j2 := &mockJob{}
	j3 := &mockJob{}

	r := NewRunner(logger.Nop(), j1, j2, j3)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, j := range []*mockJob{j1, j2, j3} {
		if j.startCount != 1 {
			t.Errorf("job[%d]: expected startCount=1, got %d", i, j.startCount)
		}
	}
}

func TestRunner_Start_Empty(t *testing.T) {
	r := NewRunner(logger.Nop())

	// Should not fail or panic on empty job list
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Stop()
}

func TestRunner_Start_Order(t *testing.T) {
	calls := []string{}

	newOrderJob := func(id string) Job {
		return &orderJob{id: id, calls: &calls}
	}

	r := NewRunner(logger.Nop(),
		newOrderJob("first"),
		newOrderJob("second"),
		newOrderJob("third"),
	)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"start:first", "start:second", "start:third"}
	for i, v := range expected {
		if calls[i] != v {
			t.Errorf("expected calls[%d]=%q, got %q", i, v, calls[i])
		}
	}
}

func TestRunner_Stop_ReverseOrder(t *testing.T) {
	calls := []string{}

	r := NewRunner(logger.Nop(),
		&orderJob{id: "first", calls: &calls},
		&orderJob{id: "second", calls: &calls},
	)
	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Stop()

	expected := []string{"start:first", "start:second", "stop:second", "stop:first"}
	if len(calls) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(calls), calls)
	}
	for i, v := range expected {
		if calls[i] != v {
			t.Errorf("expected calls[%d]=%q, got %q", i, v, calls[i])
		}
	}
}

func TestRunner_Start_FailureRollsBackStartedJobs(t *testing.T) {
	calls := []string{}
	startErr := errors.New("start failed")

	r := NewRunner(logger.Nop(),
		&orderJob{id: "first", calls: &calls},
		&orderJob{id: "second", calls: &calls, startErr: startErr},
		&orderJob{id: "third", calls: &calls},
	)

	err := r.Start(context.Background())
	if !errors.Is(err, startErr) {
		t.Fatalf("expected wrapped start error, got %v", err)
	}

	// Запустился только first — он же и останавливается; third не трогаем.
	expected := []string{"start:first", "start:second", "stop:first"}
	if len(calls) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(calls), calls)
	}
	for i, v := range expected {
		if calls[i] != v {
			t.Errorf("expected calls[%d]=%q, got %q", i, v, calls[i])
		}
	}
}

func TestRunner_Stop_WithoutStart(t *testing.T) {
	j := &mockJob{}
	r := NewRunner(logger.Nop(), j)

	// Stop before Start must not touch the job
	r.Stop()

	if j.stopCount != 0 {
		t.Errorf("expected stopCount=0, got %d", j.stopCount)
	}
}

func TestRunner_Restart(t *testing.T) {
	j := &mockJob{}
	r := NewRunner(logger.Nop(), j)

	for i := 0; i < 3; i++ {
		if err := r.Start(context.Background()); err != nil {
			t.Fatalf("cycle %d: unexpected error: %v", i, err)
		}
		r.Stop()
	}

	if j.startCount != 3 {
		t.Errorf("expected startCount=3, got %d", j.startCount)
	}
	if j.stopCount != 3 {
		t.Errorf("expected stopCount=3, got %d", j.stopCount)
	}
}

func TestRunner_DoubleStop(t *testing.T) {
	j := &mockJob{}
	r := NewRunner(logger.Nop(), j)

	if err := r.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r.Stop()
	r.Stop()

	if j.stopCount != 1 {
		t.Errorf("expected stopCount=1 after double Stop, got %d", j.stopCount)
	}
}

// orderJob is a helper that appends its ID to a shared slice on Start and Stop.
type orderJob struct {
	id       string
	startErr error
	calls    *[]string
}

func (o *orderJob) Name() string { return o.id }

func (o *orderJob) Start(context.Context) error {
	*o.calls = append(*o.calls, "start:"+o.id)
	return o.startErr
}

func (o *orderJob) Stop() {
	*o.calls = append(*o.calls, "stop:"+o.id)
}
