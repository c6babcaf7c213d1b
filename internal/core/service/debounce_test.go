package service

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_ZeroDelayRunsSynchronously(t *testing.T) {
	d := NewDebouncer(0)

	ran := false
	d.Trigger(func() { ran = true })

	if !ran {
		t.Fatal("zero delay must invoke the callback immediately")
	}
}

func TestDebouncer_BurstRunsOnlyLastCallback(t *testing.T) {
	d := NewDebouncer(15 * time.Millisecond)

	var count atomic.Int32
	var last atomic.Int32
	for i := 1; i <= 5; i++ {
		i := i
		d.Trigger(func() {
			count.Add(1)
			last.Store(int32(i))
		})
	}

	time.Sleep(50 * time.Millisecond)

	if got := count.Load(); got != 1 {
		t.Errorf("expected exactly 1 invocation, got %d", got)
	}
	if got := last.Load(); got != 5 {
		t.Errorf("expected the most recent callback to run, got %d", got)
	}
}

func TestDebouncer_SeparatedTriggersEachRun(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	var count atomic.Int32
	d.Trigger(func() { count.Add(1) })
	time.Sleep(30 * time.Millisecond)
	d.Trigger(func() { count.Add(1) })
	time.Sleep(30 * time.Millisecond)

	if got := count.Load(); got != 2 {
		t.Errorf("expected 2 invocations for quiescent triggers, got %d", got)
	}
}

func TestDebouncer_FlushCancelsPending(t *testing.T) {
	d := NewDebouncer(15 * time.Millisecond)

	var count atomic.Int32
	d.Trigger(func() { count.Add(1) })
	d.Flush()

	time.Sleep(40 * time.Millisecond)

	if got := count.Load(); got != 0 {
		t.Errorf("flushed callback must not run, got %d invocations", got)
	}
}
