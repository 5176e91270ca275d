package monitor

import (
	"os"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ternvm/tern"
	"github.com/ternvm/tern/thread"
)

func TestMain(m *testing.M) {
	if err := thread.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestCollectorGauges(t *testing.T) {
	rt := tern.NewRuntime(tern.Config{StackSize: 64 * 1024})
	list := thread.NewList()

	release := make(chan struct{})
	registered := make(chan struct{})
	spawn := func() {
		thread.Create(rt, func(self *thread.Thread) {
			list.Register(self)
			registered <- struct{}{}
			<-release
			list.Unregister(self)
		})
	}
	spawn()
	spawn()
	<-registered
	<-registered

	c := NewCollector(list)
	want := `
# HELP tern_threads_by_state Registered runtime threads by scheduling state.
# TYPE tern_threads_by_state gauge
tern_threads_by_state{state="Runnable"} 2
# HELP tern_threads_live Number of registered runtime threads.
# TYPE tern_threads_live gauge
tern_threads_live 2
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(want)); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}

	close(release)
}

func TestCollectorEmptyRegistry(t *testing.T) {
	c := NewCollector(thread.NewList())

	want := `
# HELP tern_threads_live Number of registered runtime threads.
# TYPE tern_threads_live gauge
tern_threads_live 0
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(want), "tern_threads_live"); err != nil {
		t.Fatalf("unexpected metrics: %v", err)
	}

	if got := testutil.CollectAndCount(c); got != 1 {
		t.Fatalf("metric count = %d, want 1 (no by-state series)", got)
	}
}
