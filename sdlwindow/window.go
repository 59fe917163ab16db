// Package sdlwindow hosts the bootstrap window on SDL2.
package sdlwindow

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/hellotriangle/bootstrap"
)

type Windowing struct{}

func (Windowing) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func (Windowing) CreateWindow(title string, width, height int) (bootstrap.Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return nil, errors.Wrap(err, "sdl")
	}

	return &Window{window: window}, nil
}

func (Windowing) Terminate() {
	sdl.Quit()
}

// InstanceProcAddr returns vkGetInstanceProcAddr from the Vulkan loader SDL
// opened for WINDOW_VULKAN windows.
func InstanceProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

type Window struct {
	window        *sdl.Window
	quitRequested bool
}

func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.quitRequested = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE {
				w.quitRequested = true
			}
		}
	}
}

func (w *Window) ShouldClose() bool {
	return w.quitRequested
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) Destroy() {
	_ = w.window.Destroy()
}
