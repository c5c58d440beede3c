package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestLocalAllowWithinBurst(t *testing.T) {
	l := NewLocal(1, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, "client-a")
		if err != nil {
			t.Fatalf("Allow() error = %v", err)
		}
		if !ok {
			t.Fatalf("request %d denied inside burst", i+1)
		}
	}

	ok, _ := l.Allow(ctx, "client-a")
	if ok {
		t.Error("request beyond burst was allowed")
	}
}

func TestLocalKeysAreIndependent(t *testing.T) {
	l := NewLocal(1, 1)
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "client-a"); !ok {
		t.Fatal("first request for client-a denied")
	}
	if ok, _ := l.Allow(ctx, "client-a"); ok {
		t.Fatal("second request for client-a allowed beyond burst")
	}

	// A different client still has its full burst.
	if ok, _ := l.Allow(ctx, "client-b"); !ok {
		t.Error("first request for client-b denied")
	}
}

func TestLocalRefillsOverTime(t *testing.T) {
	l := NewLocal(50, 1) // one token every 20ms
	ctx := context.Background()

	if ok, _ := l.Allow(ctx, "client-a"); !ok {
		t.Fatal("first request denied")
	}
	if ok, _ := l.Allow(ctx, "client-a"); ok {
		t.Fatal("immediate second request allowed")
	}

	time.Sleep(40 * time.Millisecond)

	if ok, _ := l.Allow(ctx, "client-a"); !ok {
		t.Error("request after refill window denied")
	}
}

func TestLocalSweepDropsIdleBuckets(t *testing.T) {
	l := NewLocal(1, 1)
	ctx := context.Background()

	l.Allow(ctx, "client-a")
	l.Allow(ctx, "client-b")

	l.mu.Lock()
	l.buckets["client-a"].lastSeen = time.Now().Add(-2 * idleTTL)
	l.sweep(time.Now())
	_, aKept := l.buckets["client-a"]
	_, bKept := l.buckets["client-b"]
	l.mu.Unlock()

	if aKept {
		t.Error("idle bucket survived the sweep")
	}
	if !bKept {
		t.Error("active bucket was swept")
	}
}
