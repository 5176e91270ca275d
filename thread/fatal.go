package thread

import "fmt"

// fatalf reports a violated invariant or unrecoverable resource
// failure. Runtime state is considered corrupt past this point, so the
// failure is logged and never propagated as a value.
func fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	Logger().Error(msg)
	panic("thread: " + msg)
}
