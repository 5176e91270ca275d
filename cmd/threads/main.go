package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/ternvm/tern"
	"github.com/ternvm/tern/engine"
	"github.com/ternvm/tern/internal/miniwasm"
	"github.com/ternvm/tern/monitor"
	"github.com/ternvm/tern/thread"
)

func main() {
	var (
		workers  = flag.Int("workers", 4, "Number of threads to spawn")
		duration = flag.Duration("duration", 10*time.Second, "How long to run")
		stack    = flag.Int("stack", 0, "Stack size per thread in bytes (0 = default)")
		metrics  = flag.String("metrics", "", "Serve prometheus metrics on this address (e.g. :9150)")
		plain    = flag.Bool("plain", false, "Plain text output instead of TUI")
		debug    = flag.Bool("debug", false, "Verbose runtime logging")
	)
	flag.Parse()

	if err := run(*workers, *duration, *stack, *metrics, *plain, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(workers int, duration time.Duration, stack int, metricsAddr string, plain, debug bool) error {
	if debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer logger.Sync()
		thread.SetLogger(logger)
		engine.SetLogger(logger)
	}

	if err := thread.Init(); err != nil {
		return fmt.Errorf("init thread core: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	exec := engine.New(ctx)
	defer exec.Close(context.Background())

	mod, err := exec.Load(ctx, "demo", miniwasm.AddModule())
	if err != nil {
		return fmt.Errorf("load demo module: %w", err)
	}

	rt := tern.NewRuntime(tern.Config{StackSize: stack})
	rt.Exec = exec

	list := thread.NewList()
	self := thread.Attach(rt)
	list.Register(self)

	if metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(monitor.NewCollector(list))
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				fmt.Fprintf(os.Stderr, "metrics server: %v\n", err)
			}
		}()
	}

	for i := 0; i < workers; i++ {
		thread.Create(rt, func(t *thread.Thread) {
			worker(ctx, t, list, mod)
		})
	}

	if !plain && term.IsTerminal(int(os.Stdout.Fd())) {
		err = runTUI(ctx, cancel, list)
	} else {
		err = runPlain(ctx, list)
	}

	// Workers unregister themselves on the way out; wait for them
	// before tearing the registry down.
	for list.Len() > 1 {
		time.Sleep(10 * time.Millisecond)
	}
	list.Unregister(self)
	list.Shutdown()
	self.Detach()
	return err
}

// worker cycles a thread through managed calls and idle waits so the
// registry has something to show.
func worker(ctx context.Context, t *thread.Thread, list *thread.List, mod *engine.Module) {
	list.Register(t)
	defer list.Unregister(t)

	n := uint64(0)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if _, err := t.Env().Call(ctx, mod, "add", n, 1); err != nil {
			return
		}
		n++

		t.SetState(thread.StateTimedWaiting)
		select {
		case <-ctx.Done():
			t.SetState(thread.StateRunnable)
			return
		case <-time.After(time.Duration(50+10*int(t.ID()%5)) * time.Millisecond):
		}
		t.SetState(thread.StateRunnable)
	}
}

func runPlain(ctx context.Context, list *thread.List) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			snap := list.Snapshot()
			fmt.Printf("%d thread(s) registered\n", len(snap))
			for _, t := range snap {
				fmt.Printf("  %v\n", t)
			}
		}
	}
}
