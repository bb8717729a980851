package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	id      int
	counter *int64
	fail    bool
	delay   time.Duration
}

type testResult struct {
	id  int
	err error
}

func (r *testResult) GetError() error {
	return r.err
}

func (j *testJob) Execute(ctx context.Context) Result {
	if j.delay > 0 {
		select {
		case <-time.After(j.delay):
		case <-ctx.Done():
			return &testResult{id: j.id, err: ctx.Err()}
		}
	}

	atomic.AddInt64(j.counter, 1)

	if j.fail {
		return &testResult{id: j.id, err: errors.New("job failed")}
	}
	return &testResult{id: j.id}
}

func TestPool_ExecutesAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start()

	var counter int64
	for i := 0; i < 10; i++ {
		pool.Submit(&testJob{id: i, counter: &counter})
	}

	results := pool.Wait()

	if len(results) != 10 {
		t.Errorf("expected 10 results, got %d", len(results))
	}
	if atomic.LoadInt64(&counter) != 10 {
		t.Errorf("expected 10 executions, got %d", counter)
	}
}

func TestPool_CollectsErrors(t *testing.T) {
	pool := NewPool(2)
	pool.Start()

	var counter int64
	pool.Submit(&testJob{id: 1, counter: &counter})
	pool.Submit(&testJob{id: 2, counter: &counter, fail: true})
	pool.Submit(&testJob{id: 3, counter: &counter})

	results := pool.Wait()

	failed := 0
	for _, r := range results {
		if r.GetError() != nil {
			failed++
		}
	}

	if failed != 1 {
		t.Errorf("expected 1 failed job, got %d", failed)
	}
}

func TestPool_ZeroWorkersClamped(t *testing.T) {
	pool := NewPool(0)
	pool.Start()

	var counter int64
	pool.Submit(&testJob{id: 1, counter: &counter})

	results := pool.Wait()

	if len(results) != 1 {
		t.Errorf("expected the single job to run, got %d results", len(results))
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(1)
	pool.Start()

	var counter int64
	pool.Submit(&testJob{id: 1, counter: &counter, delay: 5 * time.Second})

	done := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("shutdown did not cancel the in-flight job")
	}
}
