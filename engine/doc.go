// Package engine executes managed code for the runtime's threads.
//
// The engine wraps a wazero runtime configured for core WebAssembly
// modules. Threads reach it through their native-interface context;
// the engine itself knows nothing about threads.
package engine
