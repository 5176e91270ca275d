package thread

import (
	"sync"
	"testing"
)

func TestMutexExclusion(t *testing.T) {
	const (
		workers    = 8
		increments = 1000
	)
	mu := NewMutex("counter lock")
	counter := 0

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range increments {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != workers*increments {
		t.Fatalf("counter = %d, want %d", counter, workers*increments)
	}
}

func TestMutexTryLock(t *testing.T) {
	mu := NewMutex("try lock")
	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		mu.Lock()
		close(locked)
		<-release
		mu.Unlock()
	}()

	<-locked
	if mu.TryLock() {
		t.Fatal("TryLock succeeded while held elsewhere")
	}
	close(release)
	<-done

	if !mu.TryLock() {
		t.Fatal("TryLock failed on a free mutex")
	}
	mu.Unlock()
}

func TestMutexUnlockByNonOwner(t *testing.T) {
	rt := testRuntime()
	mu := NewMutex("owner check")
	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		th := Attach(rt)
		defer th.Detach()
		mu.Lock()
		close(locked)
		<-release
		mu.Unlock()
	}()

	<-locked
	// This context is not the owner; the unlock must be rejected
	// fatally, never silently succeed.
	expectFatal(t, "unlock by", func() {
		mu.Unlock()
	})
	close(release)
	<-done
}

func TestMutexOwnerBookkeeping(t *testing.T) {
	rt := testRuntime()
	attachOn(t, rt, func(th *Thread) {
		mu := NewMutex("bookkeeping")
		if mu.Owner() != nil {
			t.Fatal("fresh mutex has an owner")
		}
		mu.Lock()
		if mu.Owner() != th {
			t.Fatalf("owner = %v, want %v", mu.Owner(), th)
		}
		mu.Unlock()
		if mu.Owner() != nil {
			t.Fatal("owner not cleared on unlock")
		}
	})
}

func TestMutexName(t *testing.T) {
	mu := NewMutex("heap lock")
	if mu.Name() != "heap lock" {
		t.Fatalf("name = %q", mu.Name())
	}
}
