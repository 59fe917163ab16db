package bootstrap

// Windowing is a native windowing subsystem able to host a Vulkan surface.
type Windowing interface {
	Init() error
	CreateWindow(title string, width, height int) (Window, error)
	Terminate()
}

type Window interface {
	// PollEvents drains pending OS events without waiting for new ones.
	PollEvents()
	ShouldClose() bool
	RequiredInstanceExtensions() []string
	Destroy()
}

// WindowHandle owns a window and the subsystem that created it. Close releases
// both exactly once.
type WindowHandle struct {
	sys      Windowing
	window   Window
	released bool
}

// OpenWindow initializes sys and creates a window of the given size.
func OpenWindow(sys Windowing, width, height int, title string) (*WindowHandle, error) {
	if width <= 0 || height <= 0 {
		return nil, markf(ErrWindowInit, nil, "openWindow: invalid window size %dx%d", width, height)
	}

	if err := sys.Init(); err != nil {
		return nil, markf(ErrWindowInit, err, "openWindow: cannot initialize windowing subsystem")
	}

	window, err := sys.CreateWindow(title, width, height)
	if err == nil && window == nil {
		err = markf(ErrWindowInit, nil, "no window returned")
	}
	if err != nil {
		sys.Terminate()
		return nil, markf(ErrWindowInit, err, "openWindow: cannot create %dx%d window %q", width, height, title)
	}

	return &WindowHandle{sys: sys, window: window}, nil
}

func (h *WindowHandle) PollEvents() {
	if h.released {
		return
	}
	h.window.PollEvents()
}

// ShouldClose reports whether a close request was observed. A released handle
// always reports true.
func (h *WindowHandle) ShouldClose() bool {
	if h.released {
		return true
	}
	return h.window.ShouldClose()
}

// RequiredExtensions returns a copy of the instance extensions the window
// system needs to present to this window.
func (h *WindowHandle) RequiredExtensions() []string {
	if h.released {
		return nil
	}
	return append([]string(nil), h.window.RequiredInstanceExtensions()...)
}

func (h *WindowHandle) Released() bool {
	return h.released
}

func (h *WindowHandle) Close() {
	if h == nil || h.released {
		return
	}
	h.released = true

	h.window.Destroy()
	h.sys.Terminate()
	h.window = nil
}
