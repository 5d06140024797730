package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/agbru/scorering/internal/viewmodel"
)

func TestLaunchQueue_DrainEmpty(t *testing.T) {
	q := newLaunchQueue(context.Background())
	if q.Drain() != nil {
		t.Error("Drain() on an empty queue should be nil")
	}
}

func TestLaunchQueue_RunsWithQueueContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "screen")
	q := newLaunchQueue(ctx)

	boom := errors.New("boom")
	q.Launch(func(got context.Context) viewmodel.Result {
		if got.Value(key{}) != "screen" {
			t.Error("fetch should run under the queue context")
		}
		return viewmodel.Result{Err: boom}
	})

	cmd := q.Drain()
	if cmd == nil {
		t.Fatal("Drain() = nil after Launch")
	}
	msg, ok := cmd().(fetchResultMsg)
	if !ok {
		t.Fatalf("command produced %T", cmd())
	}
	if !errors.Is(msg.Result.Err, boom) {
		t.Errorf("Result.Err = %v", msg.Result.Err)
	}
	if q.Drain() != nil {
		t.Error("Drain() should empty the queue")
	}
}
