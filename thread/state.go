package thread

import "strconv"

// State is a thread's scheduling state. Exactly one state holds at any
// instant. The core sets New at construction, Runnable after
// create/attach initialization and Terminated on exit; other
// transitions belong to cooperating subsystems.
type State int32

const (
	StateNew State = iota
	StateRunnable
	StateBlocked
	StateWaiting
	StateTimedWaiting
	StateNative
	StateTerminated
)

var stateNames = [...]string{
	"New",
	"Runnable",
	"Blocked",
	"Waiting",
	"TimedWaiting",
	"Native",
	"Terminated",
}

// String renders the state name, or a tagged fallback for values
// outside the defined range.
func (s State) String() string {
	if s >= StateNew && s <= StateTerminated {
		return stateNames[s]
	}
	return "State[" + strconv.Itoa(int(s)) + "]"
}
