package thread

import (
	stderrors "errors"
	"testing"

	"github.com/ternvm/tern/errors"
)

func TestInitTwice(t *testing.T) {
	// TestMain already ran Init; a second initialization must be
	// reported, not silently accepted.
	err := Init()
	if err == nil {
		t.Fatal("second Init succeeded")
	}
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindAlreadyInitialized}) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCurrentUnattached(t *testing.T) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if cur := Current(); cur != nil {
			t.Errorf("Current() on unattached context = %v, want nil", cur)
		}
	}()
	<-done
}

func TestGoroutineID(t *testing.T) {
	if goid() == 0 {
		t.Fatal("goid() returned 0")
	}

	other := make(chan uint64, 1)
	go func() { other <- goid() }()
	if id := <-other; id == goid() {
		t.Fatal("distinct goroutines share a native id")
	}
}
