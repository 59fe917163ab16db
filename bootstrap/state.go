package bootstrap

type State int

const (
	StateUninitialized State = iota
	StateWindowOpen
	StateInstanceCreated
	StateMessengerAttached
	StateDeviceSelected
	StateRunning
	StateShuttingDown
	StateClosed
)

var stateNames = [...]string{
	StateUninitialized:     "Uninitialized",
	StateWindowOpen:        "WindowOpen",
	StateInstanceCreated:   "InstanceCreated",
	StateMessengerAttached: "MessengerAttached",
	StateDeviceSelected:    "DeviceSelected",
	StateRunning:           "Running",
	StateShuttingDown:      "ShuttingDown",
	StateClosed:            "Closed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// releaseStack runs release functions in reverse registration order, each once.
type releaseStack struct {
	funcs []func()
}

func (r *releaseStack) push(release func()) {
	r.funcs = append(r.funcs, release)
}

func (r *releaseStack) unwind() {
	for len(r.funcs) > 0 {
		last := len(r.funcs) - 1
		release := r.funcs[last]
		r.funcs = r.funcs[:last]
		release()
	}
}
