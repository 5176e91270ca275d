// Package miniwasm provides tiny hand-assembled core wasm modules for
// tests and the demo tool, avoiding binary fixtures on disk.
package miniwasm

// AddModule returns a module exporting add(i32, i32) -> i32.
//
//	(module
//	  (func (export "add") (param i32 i32) (result i32)
//	    local.get 0
//	    local.get 1
//	    i32.add))
func AddModule() []byte {
	return []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
		0x01, 0x07, 0x01, 0x60, 0x02, 0x7f, 0x7f, 0x01, 0x7f, // type: (i32,i32)->i32
		0x03, 0x02, 0x01, 0x00, // function
		0x07, 0x07, 0x01, 0x03, 'a', 'd', 'd', 0x00, 0x00, // export "add"
		0x0a, 0x09, 0x01, 0x07, 0x00, 0x20, 0x00, 0x20, 0x01, 0x6a, 0x0b, // code
	}
}

// ProbeModule returns a module importing env.probe and exporting run,
// which calls it once.
//
//	(module
//	  (import "env" "probe" (func))
//	  (func (export "run") call 0))
func ProbeModule() []byte {
	return []byte{
		0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
		0x01, 0x04, 0x01, 0x60, 0x00, 0x00, // type: ()->()
		0x02, 0x0d, 0x01, 0x03, 'e', 'n', 'v', 0x05, 'p', 'r', 'o', 'b', 'e', 0x00, 0x00, // import env.probe
		0x03, 0x02, 0x01, 0x00, // function
		0x07, 0x07, 0x01, 0x03, 'r', 'u', 'n', 0x00, 0x01, // export "run"
		0x0a, 0x06, 0x01, 0x04, 0x00, 0x10, 0x00, 0x0b, // code
	}
}
