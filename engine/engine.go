package engine

import (
	"context"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/ternvm/tern/errors"
)

// Engine wraps a wazero runtime that executes managed code.
type Engine struct {
	runtime wazero.Runtime
}

// Config holds configuration for engine creation
type Config struct {
	// MemoryLimitPages sets the maximum memory per module in pages
	// (64KB each). 0 means the wazero default.
	MemoryLimitPages uint32
}

// New creates an engine with default configuration.
func New(ctx context.Context) *Engine {
	return NewWithConfig(ctx, nil)
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(ctx context.Context, cfg *Config) *Engine {
	runtimeCfg := wazero.NewRuntimeConfig()
	if cfg != nil && cfg.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(cfg.MemoryLimitPages)
	}
	return &Engine{runtime: wazero.NewRuntimeWithConfig(ctx, runtimeCfg)}
}

// Close releases all engine resources.
// All modules loaded through this engine become unusable.
func (e *Engine) Close(ctx context.Context) error {
	return e.runtime.Close(ctx)
}

// RegisterHost instantiates a host module exposing fns under name.
// Must be called before loading modules that import these functions.
func (e *Engine) RegisterHost(ctx context.Context, name string, fns map[string]any) error {
	b := e.runtime.NewHostModuleBuilder(name)
	for fname, fn := range fns {
		b = b.NewFunctionBuilder().WithFunc(fn).Export(fname)
	}
	if _, err := b.Instantiate(ctx); err != nil {
		return errors.Load("instantiate host module "+name, err)
	}
	return nil
}

// Load compiles and instantiates a core wasm module.
func (e *Engine) Load(ctx context.Context, name string, wasm []byte) (*Module, error) {
	mod, err := e.runtime.InstantiateWithConfig(ctx, wasm, wazero.NewModuleConfig().WithName(name))
	if err != nil {
		return nil, errors.Load("instantiate module "+name, err)
	}
	Logger().Debug("module loaded",
		zap.String("name", name),
		zap.Int("size", len(wasm)))
	return &Module{mod: mod}, nil
}

// Module is a loaded, instantiated unit of managed code.
type Module struct {
	mod api.Module
}

// Call invokes an exported function by name.
func (m *Module) Call(ctx context.Context, fn string, args ...uint64) ([]uint64, error) {
	f := m.mod.ExportedFunction(fn)
	if f == nil {
		return nil, errors.NotFound(errors.PhaseExec, "function", fn)
	}
	results, err := f.Call(ctx, args...)
	if err != nil {
		return nil, errors.Exec(fn, err)
	}
	return results, nil
}

// Close releases the module instance.
func (m *Module) Close(ctx context.Context) error {
	return m.mod.Close(ctx)
}
