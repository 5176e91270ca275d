package thread

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ternvm/tern"
)

// maxExceptionMessage bounds formatted exception messages.
const maxExceptionMessage = 512

// ThrowNew materializes an exception of the named class with msg and
// attaches it to t as the pending exception. Class resolution, object
// allocation and string construction are delegated to the runtime's
// object model; any failure there means the runtime cannot even build
// its error-reporting objects and is fatal.
//
// Constructor invocation is not implemented: the constructor is
// located and logged, and the uninitialized instance is attached.
func ThrowNew(rt *tern.Runtime, t *Thread, className, msg string) {
	if t == nil {
		fatalf("throw %s on nil thread", className)
	}
	om := rt.Objects
	if om == nil {
		fatalf("throw %s without an object model", className)
	}

	cls, err := om.FindClass(className)
	if err != nil {
		fatalf("throw: resolve class %q: %v", className, err)
	}
	exception, err := cls.NewInstance()
	if err != nil {
		fatalf("throw: allocate %q: %v", className, err)
	}
	if _, err := om.AllocString(msg); err != nil {
		fatalf("throw: allocate message string: %v", err)
	}

	// TODO: support constructors other than (string).
	ctor, ok := cls.FindConstructor("(string)")
	if !ok {
		fatalf("throw: %q has no (string) constructor", className)
	}

	Logger().Warn("exception constructor not invoked",
		zap.String("class", cls.Descriptor()),
		zap.String("constructor", ctor.Signature()),
		zap.String("msg", msg))

	t.SetPendingException(exception)
}

// ThrowNewf renders format into a bounded buffer, truncating past the
// limit, then delegates to ThrowNew.
func ThrowNewf(rt *tern.Runtime, t *Thread, className, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxExceptionMessage {
		msg = msg[:maxExceptionMessage]
	}
	ThrowNew(rt, t, className, msg)
}
